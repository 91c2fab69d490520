package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/chartkit/internal/ui"
	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/palette"
)

// Palettes lists every palette with swatches of its series colors and its
// shade ramp. hex adds a table of the raw colors.
func Palettes(w io.Writer, hex bool) {
	names := palette.Names()
	width := 0
	for _, n := range names {
		width = max(width, len(n.String()))
	}

	fmt.Fprintln(w, ui.TitleStyle().Render("Palettes"))
	fmt.Fprintln(w)
	for _, n := range names {
		s := palette.Lookup(n)
		label := fmt.Sprintf("%-*s", width, n.String())
		if n == palette.Default {
			label += ui.MutedStyle().Render(" *")
		} else {
			label += "  "
		}
		fmt.Fprintf(w, "  %s  %s   %s\n", label,
			ui.RenderSwatches(s.Series, 2),
			ui.RenderSwatches(s.Shades[:], 1))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.MutedStyle().Render("  * default. Series colors, then shades 50-900."))

	if !hex {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, paletteTable(names))
	fmt.Fprintln(w)
}

func paletteTable(names []palette.Name) string {
	columns := []ui.TableColumn{{Title: "Palette"}}
	for _, l := range palette.Levels {
		columns = append(columns, ui.TableColumn{Title: strconv.Itoa(l)})
	}
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		s := palette.Lookup(n)
		row := []string{n.String()}
		row = append(row, s.Shades[:]...)
		rows = append(rows, row)
	}
	return ui.RenderSimpleTable(columns, rows)
}

// Kinds lists every chart kind with its variants; the first variant is the
// default.
func Kinds(w io.Writer) {
	columns := []ui.TableColumn{{Title: "Kind"}, {Title: "Variants"}, {Title: "Keys"}}
	var rows [][]string
	for _, k := range chart.Kinds() {
		variants := chart.Variants(k)
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = string(v)
		}
		rows = append(rows, []string{k.String(), strings.Join(names, ", "), kindKeys(k)})
	}
	fmt.Fprintln(w, ui.RenderSimpleTable(columns, rows))
}

func kindKeys(k chart.Kind) string {
	switch k {
	case chart.Pie:
		return "name_key, value_key"
	case chart.Radial:
		return "name_key, value_key, max_key"
	case chart.Sparkline:
		return "value_key"
	default:
		return "x_key, y_keys"
	}
}

func completePalettes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := palette.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeKinds(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return kindNames(), cobra.ShellCompDirectiveNoFileComp
}

func kindNames() []string {
	kinds := chart.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}
