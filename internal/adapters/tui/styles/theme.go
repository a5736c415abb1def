package styles

import (
	"github.com/charmbracelet/lipgloss"

	"ingrain/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Algorithm colors
	Motor     = lipgloss.Color("#F97316") // Orange
	Cognitive = lipgloss.Color("#60A5FA") // Blue

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List rows
	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowCompleted = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	// Labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// AlgorithmStyle returns the style for an algorithm tag
func AlgorithmStyle(a domain.Algorithm) lipgloss.Style {
	switch a {
	case domain.AlgorithmMotor:
		return lipgloss.NewStyle().Foreground(Motor)
	case domain.AlgorithmCognitive:
		return lipgloss.NewStyle().Foreground(Cognitive)
	default:
		return lipgloss.NewStyle().Foreground(Muted)
	}
}
