package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
var sparklineBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderSwatch renders width blocks in the hex color.
func RenderSwatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(strings.Repeat(SymbolSwatch, width))
}

// RenderSwatches renders one swatch per color separated by a space.
func RenderSwatches(colors []string, width int) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = RenderSwatch(c, width)
	}
	return strings.Join(parts, " ")
}

// RenderSparkline renders the last width values as block characters
// scaled between their min and max, in the given color.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)
	levels := len(sparklineBlocks)
	span := maxVal - minVal
	for _, v := range data {
		level := levels / 2
		if span > 0 {
			level = int((v - minVal) / span * float64(levels-1))
			level = max(0, min(levels-1, level))
		}
		sb.WriteRune(sparklineBlocks[level])
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
