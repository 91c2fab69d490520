package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn is a table column. A zero Width fits the widest of the title
// and the cells.
type TableColumn struct {
	Title string
	Width int
}

// tableStyles are the bubbles table styles for static CLI output: a bold
// header over a muted rule, and no selected row.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	s.Selected = lipgloss.NewStyle()
	return s
}

// NewTable builds an unfocused bubbles table tall enough for every row.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		w := c.Width
		if w <= 0 {
			w = fitWidth(c.Title, i, rows)
		}
		cols[i] = table.Column{Title: c.Title, Width: w}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(tableStyles())
	return t
}

func fitWidth(title string, col int, rows []table.Row) int {
	w := lipgloss.Width(title)
	for _, r := range rows {
		if col < len(r) {
			w = max(w, lipgloss.Width(r[col]))
		}
	}
	return w
}

// RenderSimpleTable renders rows as a static table, or "" when there are
// none.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}
	return NewTable(columns, tableRows).View()
}
