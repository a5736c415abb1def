package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"ingrain/internal/adapters/tui/views"
	"ingrain/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewQueue ViewState = iota
	ViewProcedures
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo ports.ProcedureRepository

	state      ViewState
	queue      *views.QueueModel
	procedures *views.ProceduresModel
	help       *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.ProcedureRepository) *App {
	return &App{
		repo:       repo,
		state:      ViewQueue,
		queue:      views.NewQueueModel(repo),
		procedures: views.NewProceduresModel(repo),
		help:       views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.queue.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.WindowSizeMsg:
		size := msg.(tea.WindowSizeMsg)
		a.width = size.Width
		a.height = size.Height
		a.queue.SetSize(size.Width, size.Height)
		a.procedures.SetSize(size.Width, size.Height)
		a.help.SetSize(size.Width, size.Height)
		return a, nil

	case views.SwitchToQueueMsg:
		a.state = ViewQueue
		return a, a.queue.Reload()

	case views.SwitchToProceduresMsg:
		a.state = ViewProcedures
		return a, a.procedures.Reload()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewQueue:
		_, cmd = a.queue.Update(msg)
	case ViewProcedures:
		_, cmd = a.procedures.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewProcedures:
		return a.procedures.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.queue.View()
	}
}
