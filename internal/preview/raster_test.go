package preview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sample() []data.Point {
	return []data.Point{
		{"name": "Jan", "desktop": 10, "mobile": 4},
		{"name": "Feb", "desktop": 30, "mobile": 12},
		{"name": "Mar", "desktop": 20, "mobile": 8},
	}
}

func rasterOf(t *testing.T, k chart.Kind, variant string, items []data.Point, st chart.State) *Canvas {
	t.Helper()
	o := chart.Defaults(k)
	o.Variant = variant
	o.Width, o.Height = 40, 20
	o.ShowLegend = chart.LegendOff
	o.ShowXAxis, o.ShowYAxis = false, false
	if k != chart.Pie && k != chart.Radial {
		o.YKeys = []string{"desktop", "mobile"}
	}
	o.ValueKey = "desktop"
	g := chart.Compute(items, o, st)
	return Rasterize(g, palette.Resolve(o.Color), 20, 5)
}

func TestRasterize_EveryKind(t *testing.T) {
	for _, k := range chart.Kinds() {
		for _, v := range chart.Variants(k) {
			t.Run(k.String()+"/"+string(v), func(t *testing.T) {
				c := rasterOf(t, k, string(v), sample(), chart.FullState())
				assert.Greater(t, countDots(c), 0)

				lines := strings.Split(c.String(), "\n")
				require.Len(t, lines, 5)
				for _, l := range lines {
					assert.Equal(t, 20, lipgloss.Width(l))
				}
			})
		}
	}
}

func TestRasterize_ProgressZero(t *testing.T) {
	o := chart.Defaults(chart.Bar)
	o.Width, o.Height = 40, 20
	o.ShowXAxis, o.ShowYAxis = false, false
	st := chart.FullState()
	st.Progress = 0

	g := chart.Compute(sample(), o, st)
	bare := g
	bare.Bars = nil
	styles := palette.Resolve(o.Color)
	assert.Equal(t, countDots(Rasterize(bare, styles, 20, 5)), countDots(Rasterize(g, styles, 20, 5)),
		"bars draw nothing before the reveal")
}

func TestRasterize_BarsFillTheirRect(t *testing.T) {
	o := chart.Defaults(chart.Bar)
	o.Width, o.Height = 40, 20
	o.ShowGrid = false
	g := chart.Geometry{Kind: chart.Bar, Width: 40, Height: 20, Bars: []chart.BarShape{
		{X: 0, Y: 0, W: 4, H: 8, Color: "#ff0000"},
	}}
	c := Rasterize(g, palette.Resolve(o.Color), 20, 5)
	assert.Equal(t, 4*8, countDots(c))
	assert.True(t, strings.HasPrefix(c.String(), "⣿⣿ "))
}

func TestRasterize_Crosshair(t *testing.T) {
	items := sample()
	st := chart.FullState()
	without := countDots(rasterOf(t, chart.Area, "", items, st))

	o := chart.Defaults(chart.Area)
	o.Width, o.Height = 40, 20
	o.ShowLegend = chart.LegendOff
	o.ShowXAxis, o.ShowYAxis = false, false
	o.YKeys = []string{"desktop", "mobile"}
	c := chart.New(o, items)
	require.True(t, c.PointerMove(20, 10))

	with := countDots(Rasterize(c.Geometry(), palette.Resolve(o.Color), 20, 5))
	assert.Greater(t, with, without)
}
