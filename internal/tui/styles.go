package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#A0A0A0"}).
			Padding(0, 1).
			MarginLeft(2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// previewWidth is the space reserved right of the list for the palette.
const previewWidth = 44
