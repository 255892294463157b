package report

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	OK = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Fail = lipgloss.NewStyle().
		Bold(true).
		Foreground(Error)

	Path = lipgloss.NewStyle()

	Detail = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true).
		Width(9)

	Notice = lipgloss.NewStyle().
		Foreground(Warning)
)
