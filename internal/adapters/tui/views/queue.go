package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ingrain/internal/adapters/tui/styles"
	"ingrain/internal/application/commands"
	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// QueueKeyMap defines key bindings for the queue view
type QueueKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Mark   key.Binding
	Delay  key.Binding
	Reload key.Binding
	Browse key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var QueueKeys = QueueKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Mark: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "mark reviewed"),
	),
	Delay: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delay one day"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Browse: key.NewBinding(
		key.WithKeys("tab", "p"),
		key.WithHelp("tab", "procedures"),
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

// QueueModel is the model for the review queue view: the incomplete
// reviews due today, with mark and delay actions.
type QueueModel struct {
	repo   ports.ProcedureRepository
	date   domain.Date
	items  []commands.DueReview
	cursor int
	status string
	isErr  bool
	width  int
	height int
}

// NewQueueModel creates a new queue view model
func NewQueueModel(repo ports.ProcedureRepository) *QueueModel {
	return &QueueModel{
		repo: repo,
		date: domain.Today(),
	}
}

// Init initializes the queue view
func (m *QueueModel) Init() tea.Cmd {
	return m.load()
}

// Reload refreshes the queue for today
func (m *QueueModel) Reload() tea.Cmd {
	m.date = domain.Today()
	return m.load()
}

type queueLoadedMsg struct {
	items []commands.DueReview
	err   error
}

type reviewActionMsg struct {
	status string
	err    error
}

func (m *QueueModel) load() tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewQueueCommand(m.repo, m.date.String()).Execute(context.Background())
		if err != nil {
			return queueLoadedMsg{err: err}
		}
		return queueLoadedMsg{items: result.Items}
	}
}

func (m *QueueModel) markSelected() tea.Cmd {
	item := m.items[m.cursor]
	return func() tea.Msg {
		result, err := commands.NewMarkReviewedCommand(m.repo, item.ProcedureID, item.ReviewIndex).Execute(context.Background())
		if err != nil {
			return reviewActionMsg{err: err}
		}
		return reviewActionMsg{status: result.Message}
	}
}

func (m *QueueModel) delaySelected() tea.Cmd {
	item := m.items[m.cursor]
	return func() tea.Msg {
		result, err := commands.NewDelayReviewCommand(m.repo, item.ProcedureID, item.ReviewIndex).Execute(context.Background())
		if err != nil {
			return reviewActionMsg{err: err}
		}
		return reviewActionMsg{status: result.Message}
	}
}

// Update handles messages for the queue view
func (m *QueueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case queueLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.isErr = true
			return m, nil
		}
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case reviewActionMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.isErr = true
			return m, nil
		}
		m.status = msg.status
		m.isErr = false
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, QueueKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, QueueKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, QueueKeys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, QueueKeys.Mark):
			if len(m.items) > 0 {
				return m, m.markSelected()
			}
			return m, nil

		case key.Matches(msg, QueueKeys.Delay):
			if len(m.items) > 0 {
				return m, m.delaySelected()
			}
			return m, nil

		case key.Matches(msg, QueueKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, QueueKeys.Browse):
			return m, func() tea.Msg { return SwitchToProceduresMsg{} }

		case key.Matches(msg, QueueKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

// View renders the queue view
func (m *QueueModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("Reviews due %s", m.date)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(styles.MutedText.Render("Nothing due today. Well rehearsed."))
		b.WriteString("\n")
	} else {
		for i, item := range m.items {
			line := fmt.Sprintf("%s %-28s %s  review %d  %s",
				styles.AlgorithmStyle(item.Algorithm).Render(fmt.Sprintf("[%s]", item.Algorithm)),
				truncate(item.Title, 28),
				styles.MutedText.Render(fmt.Sprintf("%d steps", item.StepCount)),
				item.ReviewIndex,
				item.Label,
			)
			if i == m.cursor {
				line = styles.RowSelected.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
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
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("mark"),
		styles.HelpKey.Render("d"),
		styles.HelpDesc.Render("delay"),
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("procedures"),
		styles.HelpKey.Render("?"),
		styles.HelpDesc.Render("help"),
		styles.HelpKey.Render("q"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *QueueModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
