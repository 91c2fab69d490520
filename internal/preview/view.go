package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/chartkit/internal/ui"
	"github.com/rileyhilliard/chartkit/pkg/chart"
)

// View renders the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	g := m.chart.Geometry()

	var b strings.Builder
	b.WriteString(m.renderTitle(g.Progress))
	b.WriteByte('\n')
	b.WriteString(Rasterize(g, m.styles, m.cols, m.rows).String())
	b.WriteByte('\n')
	b.WriteString(m.renderLegend())
	b.WriteByte('\n')
	b.WriteString(m.renderStatus(g))
	b.WriteByte('\n')
	m.help.ShowAll = m.showHelp
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTitle(progress float64) string {
	title := titleStyle.Render(m.title)
	if m.watchPath != "" {
		title += subtitleStyle.Render("  watching " + m.watchPath)
	}
	if progress < 1 {
		title += subtitleStyle.Render(fmt.Sprintf("  %3.0f%%", progress*100))
	}
	return title
}

func (m Model) renderLegend() string {
	entries := m.chart.Legend()
	parts := make([]string, 0, len(entries))
	for _, s := range m.legendSpans() {
		e := entries[s.index]
		if e.Hidden {
			parts = append(parts, hiddenStyle.Render(s.text))
			continue
		}
		style := lipgloss.NewStyle().Foreground(m.styles.TermColor(e.Color))
		parts = append(parts, style.Render(s.text))
	}
	return strings.Join(parts, legendSep)
}

func (m Model) renderStatus(g chart.Geometry) string {
	tip := g.Tooltip
	switch {
	case m.err != nil:
		return errorStyle.Render(ui.SymbolFail + " " + firstLine(m.err))
	case tip != nil && len(tip.Lines) > 0:
		parts := append([]string(nil), tip.Lines...)
		return tooltipStyle.Render(strings.Join(append(parts, m.pointerReadout(g)...), " · "))
	default:
		return subtitleStyle.Render("hover the chart to inspect values")
	}
}

// pointerReadout names the series nearest the pointer and the value under
// it on the y axis. Only vertical cartesian charts have one.
func (m Model) pointerReadout(g chart.Geometry) []string {
	if !m.pointer.ok || g.Cartesian == nil || g.Variant == chart.VariantHorizontal {
		return nil
	}
	var out []string
	if sv, ok := m.chart.Hover().Nearest(m.pointer.y); ok {
		out = append(out, "▸ "+sv.Name)
	}
	return append(out, "y "+chart.FormatValue(g.Cartesian.Y.Invert(m.pointer.y)))
}
