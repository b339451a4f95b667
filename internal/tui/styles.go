package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	dashStyle     = lipgloss.NewStyle().Padding(0, 1)
	overStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	listHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	onHoldStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Padding(0, 1)
)
