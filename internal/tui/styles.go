package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent lipgloss.Color = "#89b4fa"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorError  lipgloss.Color = "#f38ba8"

	titleStyle = lipgloss.NewStyle().Bold(true)
	diagStyle  = lipgloss.NewStyle().Foreground(colorError)
	dimStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	selectedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)

	dieStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	dieMarkedStyle = dieStyle.
			BorderForeground(colorAccent).
			Foreground(colorAccent)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)
