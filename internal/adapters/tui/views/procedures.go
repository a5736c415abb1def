package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ingrain/internal/adapters/tui/styles"
	"ingrain/internal/application/commands"
	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// ProceduresKeyMap defines key bindings for the procedure browser
type ProceduresKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Copy   key.Binding
	Queue  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var ProceduresKeys = ProceduresKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter", "toggle detail"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy steps"),
	),
	Queue: key.NewBinding(
		key.WithKeys("tab", "esc"),
		key.WithHelp("tab", "queue"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ProceduresModel is the model for the procedure browser: all saved
// procedures with progress, expandable into step and schedule detail.
type ProceduresModel struct {
	repo       ports.ProcedureRepository
	procedures []*domain.Procedure
	cursor     int
	expanded   bool
	status     string
	isErr      bool
	width      int
	height     int
}

// NewProceduresModel creates a new procedure browser model
func NewProceduresModel(repo ports.ProcedureRepository) *ProceduresModel {
	return &ProceduresModel{repo: repo}
}

// Init initializes the procedure browser
func (m *ProceduresModel) Init() tea.Cmd {
	return m.load()
}

// Reload refreshes the procedure list
func (m *ProceduresModel) Reload() tea.Cmd {
	return m.load()
}

type proceduresLoadedMsg struct {
	procedures []*domain.Procedure
	err        error
}

func (m *ProceduresModel) load() tea.Cmd {
	return func() tea.Msg {
		procedures, err := commands.NewListProceduresCommand(m.repo).Execute(context.Background())
		return proceduresLoadedMsg{procedures: procedures, err: err}
	}
}

// Update handles messages for the procedure browser
func (m *ProceduresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case proceduresLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.isErr = true
			return m, nil
		}
		m.procedures = msg.procedures
		if m.cursor >= len(m.procedures) {
			m.cursor = len(m.procedures) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ProceduresKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ProceduresKeys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.expanded = false
			}
			return m, nil

		case key.Matches(msg, ProceduresKeys.Down):
			if m.cursor < len(m.procedures)-1 {
				m.cursor++
				m.expanded = false
			}
			return m, nil

		case key.Matches(msg, ProceduresKeys.Toggle):
			if len(m.procedures) > 0 {
				m.expanded = !m.expanded
			}
			return m, nil

		case key.Matches(msg, ProceduresKeys.Copy):
			if len(m.procedures) > 0 {
				m.copySteps(m.procedures[m.cursor])
			}
			return m, nil

		case key.Matches(msg, ProceduresKeys.Queue):
			return m, func() tea.Msg { return SwitchToQueueMsg{} }

		case key.Matches(msg, ProceduresKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *ProceduresModel) copySteps(p *domain.Procedure) {
	var sb strings.Builder
	for _, step := range p.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", step.Order, step.Description)
	}
	if err := clipboard.WriteAll(sb.String()); err != nil {
		m.status = fmt.Sprintf("clipboard: %v", err)
		m.isErr = true
		return
	}
	m.status = fmt.Sprintf("Copied %d steps of %q", len(p.Steps), p.Title)
	m.isErr = false
}

// View renders the procedure browser
func (m *ProceduresModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Procedures"))
	b.WriteString("\n\n")

	if len(m.procedures) == 0 {
		b.WriteString(styles.MutedText.Render("No procedures saved yet."))
		b.WriteString("\n")
	}

	for i, p := range m.procedures {
		line := fmt.Sprintf("%s %-28s %s  progress %s",
			styles.AlgorithmStyle(p.Algorithm).Render(fmt.Sprintf("[%s]", p.Algorithm)),
			truncate(p.Title, 28),
			styles.MutedText.Render(fmt.Sprintf("%d steps", len(p.Steps))),
			p.Progress(),
		)
		if i == m.cursor {
			line = styles.RowSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if i == m.cursor && m.expanded {
			b.WriteString(m.renderDetail(p))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.isErr {
			b.WriteString(styles.ErrorMsg.Render(m.status))
		} else {
			b.WriteString(styles.Success.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("detail"),
		styles.HelpKey.Render("y"),
		styles.HelpDesc.Render("copy steps"),
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("queue"),
		styles.HelpKey.Render("q"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

func (m *ProceduresModel) renderDetail(p *domain.Procedure) string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render("    Steps"))
	b.WriteString("\n")
	for _, step := range p.Steps {
		b.WriteString(fmt.Sprintf("    %d. %s\n", step.Order, step.Description))
	}

	b.WriteString(styles.InputLabel.Render("    Schedule"))
	b.WriteString("\n")
	for i, ev := range p.ReviewSchedule {
		line := fmt.Sprintf("    %2d  %s  %s", i, ev.Date, ev.Label)
		if ev.Completed {
			line = styles.RowCompleted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize updates the view dimensions
func (m *ProceduresModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
