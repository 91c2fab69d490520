package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Palette", Width: 10},
		{Title: "Base", Width: 10},
	}
	rows := []table.Row{
		{"blue", "#3b82f6"},
		{"rose", "#f43f5e"},
	}

	view := NewTable(columns, rows).View()
	for _, s := range []string{"Palette", "Base", "blue", "#f43f5e"} {
		assert.Contains(t, view, s)
	}
}

func TestRenderSimpleTable(t *testing.T) {
	DisableColors()
	columns := []TableColumn{{Title: "Kind", Width: 10}, {Title: "Variants", Width: 30}}

	assert.Empty(t, RenderSimpleTable(columns, nil))

	out := RenderSimpleTable(columns, [][]string{
		{"area", "default, stacked"},
		{"pie", "default, donut"},
	})
	lines := strings.Split(stripANSI(out), "\n")
	assert.GreaterOrEqual(t, len(lines), 4, "header, border and two rows")
	assert.Contains(t, out, "default, stacked")
	assert.Less(t, strings.Index(out, "area"), strings.Index(out, "pie"))
}

func TestNewTableFitsColumns(t *testing.T) {
	DisableColors()
	columns := []TableColumn{{Title: "Kind"}, {Title: "Keys"}}
	rows := [][]string{
		{"radial", "name_key, value_key, max_key"},
		{"bar", "x_key, y_keys"},
	}

	out := stripANSI(RenderSimpleTable(columns, rows))
	assert.Contains(t, out, "name_key, value_key, max_key", "auto width never truncates")
	assert.NotContains(t, out, "…")
}

func TestFitWidth(t *testing.T) {
	rows := []table.Row{{"a", "longer cell"}, {"abc"}}
	assert.Equal(t, 4, fitWidth("Kind", 0, rows))
	assert.Equal(t, 11, fitWidth("Keys", 1, rows))
}
