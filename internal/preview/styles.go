package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/chartkit/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorSecondary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	hiddenStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Strikethrough(true)

	tooltipStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	errorStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError)
)
