package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#8ecae6")
	borderColor = lipgloss.Color("#56526e")
	linkColor   = lipgloss.Color("#a3be8c")

	headerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5fafff"))
	headerBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	panelBorderStyle = lipgloss.NewStyle().Foreground(borderColor)
	panelStyle       = lipgloss.NewStyle()
	dialogBorder     = lipgloss.NewStyle().Foreground(accentColor)
	dialogStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#3a3a3a"))
	linkIndexStyle   = lipgloss.NewStyle().Bold(true).Foreground(linkColor)
	linkURLStyle     = lipgloss.NewStyle().Foreground(linkColor)
	footerBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	footerHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
)
