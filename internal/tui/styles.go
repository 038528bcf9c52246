package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent   = lipgloss.Color("#89b4fa")
	colorMuted    = lipgloss.Color("241")
	colorSelected = lipgloss.Color("#f5c2e7")
	colorWarn     = lipgloss.Color("#fab387")

	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	laneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	activeLaneStyle = laneStyle.
			BorderForeground(colorAccent)

	laneTitleStyle = lipgloss.NewStyle().Bold(true)

	noteStyle = lipgloss.NewStyle()

	selectedNoteStyle = lipgloss.NewStyle().
				Foreground(colorSelected).
				Bold(true)

	editingStyle = lipgloss.NewStyle().Foreground(colorWarn)

	statusStyle = lipgloss.NewStyle().Foreground(colorMuted)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)
