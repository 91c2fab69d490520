package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/interact"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func months() []data.Point {
	return []data.Point{
		{"name": "Jan", "value": 10},
		{"name": "Feb", "value": 30},
		{"name": "Mar", "value": 20},
	}
}

func sized(k Kind, w, h float64) Options {
	o := Defaults(k)
	o.Width, o.Height = w, h
	o.ShowLegend = LegendOff
	return o
}

func TestArea_ScenarioA(t *testing.T) {
	o := sized(Area, 300, 150)
	o.Curve = path.Straight
	g := ComputeArea(months(), o, FullState())

	require.Len(t, g.Series, 1)
	pts := g.Series[0].Points
	require.Len(t, pts, 3)

	chartWidth := 300 - scale.DefaultYAxisWidth
	chartHeight := 150 - scale.DefaultXAxisHeight
	maxValue := 30 * scale.Headroom
	wantX := []float64{scale.DefaultYAxisWidth, scale.DefaultYAxisWidth + chartWidth/2, scale.DefaultYAxisWidth + chartWidth}
	for i, p := range pts {
		assert.InDelta(t, wantX[i], p.X, 1e-9)
		assert.InDelta(t, chartHeight-p.Value/maxValue*chartHeight, p.Y, 1e-9)
	}
	assert.Equal(t, "M40 83.64 L170 10.91 L300 47.27", g.Series[0].Line)
	assert.True(t, strings.HasSuffix(g.Series[0].Fill, "L300 120 L40 120 Z"))
	assert.Len(t, g.YLabels, scale.DefaultTickCount)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, []string{g.XLabels[0].Text, g.XLabels[1].Text, g.XLabels[2].Text})
}

func TestArea_HiddenSeriesExcludedButColorsStable(t *testing.T) {
	items := []data.Point{{"name": "a", "x": 100, "y": 10}, {"name": "b", "x": 50, "y": 20}}
	o := sized(Area, 300, 150)
	o.YKeys = []string{"x", "y"}

	all := ComputeArea(items, o, FullState())
	assert.InDelta(t, 100*scale.Headroom, all.Cartesian.Range.Max, 1e-9)

	o.Variant = string(VariantStacked)
	assert.InDelta(t, 110*scale.Headroom, ComputeArea(items, o, FullState()).Cartesian.Range.Max, 1e-9)
	o.Variant = ""

	st := FullState()
	st.Hidden = []bool{true, false}
	g := ComputeArea(items, o, st)
	assert.InDelta(t, 20*scale.Headroom, g.Cartesian.Range.Max, 1e-9)
	require.Len(t, g.Series, 1)
	assert.Equal(t, 1, g.Series[0].Series)
	assert.Equal(t, palette.Resolve(o.Color).Color(1), g.Series[0].Color)
}

func TestArea_ProgressRevealsPrefix(t *testing.T) {
	items := append(months(), data.Point{"name": "Apr", "value": 5})
	st := FullState()
	st.Progress = 0.5
	g := ComputeArea(items, sized(Area, 300, 150), st)
	require.Len(t, g.Series, 1)
	assert.Len(t, g.Series[0].Points, 2)

	st.Progress = 0
	g = ComputeArea(items, sized(Area, 300, 150), st)
	assert.Len(t, g.Series[0].Points, 1)
	assert.Empty(t, g.Series[0].Line)
}

func TestArea_StackedAndGradient(t *testing.T) {
	items := []data.Point{{"a": 1, "b": 2}, {"a": 3, "b": 1}, {"a": 2, "b": 2}}
	o := sized(Area, 300, 150)
	o.Variant = "stacked"
	o.YKeys = []string{"a", "b"}
	o.Gradient = true
	g := ComputeArea(items, o, FullState())

	require.Len(t, g.Series, 2)
	require.Len(t, g.Gradients, 2)
	assert.Equal(t, g.Gradients[1].ID, g.Series[1].FillRef)
	assert.Equal(t, 1.0, g.Series[1].Points[0].StackedBase)
	assert.NotEqual(t, g.Gradients[0].ID, g.Gradients[1].ID)

	again := ComputeArea(items, o, FullState())
	assert.Equal(t, g.Gradients, again.Gradients, "gradient ids are deterministic")
}

func TestArea_HoverCrosshairAndTooltip(t *testing.T) {
	o := sized(Area, 300, 150)
	base := ComputeArea(months(), o, FullState())

	st := FullState()
	require.True(t, st.Hover.Move(170, 60, *base.Cartesian, []string{"value"}, []string{"#3b82f6"}))
	g := ComputeArea(months(), o, st)
	require.NotNil(t, g.Crosshair)
	assert.Equal(t, 170.0, g.Crosshair.Line.X1)
	require.Len(t, g.Crosshair.Dots, 1)
	require.NotNil(t, g.Tooltip)
	assert.Equal(t, []string{"Feb", "value: 30"}, g.Tooltip.Lines)
	assert.True(t, g.Tooltip.Below, "the Feb peak sits near the top edge")
}

func TestBar_ScenarioB(t *testing.T) {
	items := []data.Point{{"name": "Q1", "a": 10, "b": 5}}
	o := sized(Bar, 300, 150)
	o.Variant = "stacked"
	o.YKeys = []string{"a", "b"}
	g := ComputeBar(items, o, FullState())

	require.Len(t, g.Bars, 2)
	a, b := g.Bars[0], g.Bars[1]
	plotH := 150 - scale.DefaultXAxisHeight

	assert.Equal(t, 0, a.Series)
	assert.InDelta(t, plotH*10/15, a.H, 1e-9)
	assert.InDelta(t, plotH, a.Y+a.H, 1e-9, "series A starts at the baseline")
	assert.InDelta(t, plotH*5/15, b.H, 1e-9)
	assert.InDelta(t, a.Y, b.Y+b.H, 1e-9, "series B sits on top of A")
	assert.InDelta(t, plotH, a.H+b.H, 1e-9, "total height is proportional to 15")

	assert.False(t, a.Top)
	assert.Zero(t, a.Radius)
	assert.True(t, b.Top)
	assert.Equal(t, DefaultBarRadius, b.Radius)
	assert.Equal(t, a.W, b.W)
}

func TestBar_StackedTopSkipsHiddenSeries(t *testing.T) {
	items := []data.Point{{"a": 10, "b": 5}}
	o := sized(Bar, 300, 150)
	o.Variant = "stacked"
	o.YKeys = []string{"a", "b"}
	st := FullState()
	st.Hidden = []bool{false, true}
	g := ComputeBar(items, o, st)

	require.Len(t, g.Bars, 1)
	assert.True(t, g.Bars[0].Top)
	assert.InDelta(t, 120, g.Bars[0].H, 1e-9)
}

func TestBar_GroupedWidths(t *testing.T) {
	items := []data.Point{{"a": 1, "b": 2}, {"a": 3, "b": 4}}
	o := sized(Bar, 300, 150)
	o.YKeys = []string{"a", "b"}
	g := ComputeBar(items, o, FullState())

	require.Len(t, g.Bars, 4)
	slot := 260.0 / 2
	wantW := (slot*(1-DefaultBarGap) - barInnerGap) / 2
	for _, b := range g.Bars {
		assert.InDelta(t, wantW, b.W, 1e-9)
		assert.True(t, b.Top)
	}
	assert.InDelta(t, g.Bars[0].X+wantW+barInnerGap, g.Bars[1].X, 1e-9)
	center := 40 + slot/2
	assert.InDelta(t, center, (g.Bars[0].X+g.Bars[1].X+g.Bars[1].W)/2, 1e-9)
}

func TestBar_Horizontal(t *testing.T) {
	items := []data.Point{{"name": "x", "value": 10}, {"name": "y", "value": 5}}
	o := sized(Bar, 300, 150)
	o.Horizontal = true
	g := ComputeBar(items, o, FullState())

	require.Len(t, g.Bars, 2)
	assert.True(t, g.Horizontal)
	assert.InDelta(t, g.Plot.X, g.Bars[0].X, 1e-9)
	assert.InDelta(t, g.Plot.W, g.Bars[0].W, 1e-9)
	assert.InDelta(t, g.Plot.W/2, g.Bars[1].W, 1e-9)
	assert.Less(t, g.Bars[0].Y, g.Bars[1].Y, "categories run top to bottom")
	assert.Contains(t, g.Bars[0].D, "A4 4")
}

func TestBar_ProgressRevealsPrefix(t *testing.T) {
	items := []data.Point{
		{"name": "Jan", "desktop": 10, "mobile": 4},
		{"name": "Feb", "desktop": 30, "mobile": 12},
		{"name": "Mar", "desktop": 20, "mobile": 8},
	}
	o := sized(Bar, 300, 150)
	o.YKeys = []string{"desktop", "mobile"}
	full := ComputeBar(items, o, FullState())
	require.Len(t, full.Bars, 6)

	tests := []struct {
		progress float64
		want     int
	}{
		{0, 0},
		{0.2, 2},
		{0.5, 4},
		{1, 6},
	}
	for _, tt := range tests {
		st := FullState()
		st.Progress = tt.progress
		g := ComputeBar(items, o, st)
		require.Len(t, g.Bars, tt.want, "progress %v", tt.progress)
		for i, b := range g.Bars {
			assert.Equal(t, full.Bars[i], b, "revealed bars are drawn at full height")
		}
	}
}

func TestPie_ScenarioC(t *testing.T) {
	items := []data.Point{{"name": "a", "value": 50}, {"name": "b", "value": 50}}
	g := ComputePie(items, sized(Pie, 300, 300), FullState())

	require.Len(t, g.Slices, 2)
	assert.InDelta(t, -math.Pi/2, g.Slices[0].Start, 1e-12)
	assert.InDelta(t, math.Pi/2, g.Slices[0].End, 1e-12)
	assert.InDelta(t, math.Pi/2, g.Slices[1].Start, 1e-12)
	assert.InDelta(t, 3*math.Pi/2, g.Slices[1].End, 1e-12)
	for _, s := range g.Slices {
		assert.Equal(t, 0.5, s.Percent)
		assert.InDelta(t, 180, scale.Degrees(s.End-s.Start), 1e-9)
	}
}

func TestPie_HiddenSliceHasZeroSpan(t *testing.T) {
	items := []data.Point{{"name": "a", "value": 25}, {"name": "b", "value": 50}, {"name": "c", "value": 25}}
	st := FullState()
	st.Hidden = []bool{false, true, false}
	g := ComputePie(items, sized(Pie, 300, 300), st)

	require.Len(t, g.Slices, 3)
	assert.Equal(t, g.Slices[1].Start, g.Slices[1].End)
	assert.Empty(t, g.Slices[1].D)
	assert.Equal(t, 0.5, g.Slices[0].Percent)
	assert.Equal(t, 0.5, g.Slices[2].Percent)
	assert.Equal(t, -1, interact.HitSlice(150, 150, []interact.Slice{g.Slices[1].Hit()}))
}

func TestPie_HoverScalesOuterAndInner(t *testing.T) {
	items := []data.Point{{"name": "a", "value": 1}, {"name": "b", "value": 3}}
	o := sized(Pie, 300, 300)
	o.Variant = "donut"
	plain := ComputePie(items, o, FullState())

	st := FullState()
	st.Hover = interact.Hover{Active: true, Slice: 0}
	g := ComputePie(items, o, st)

	assert.True(t, g.Slices[0].Hovered)
	assert.InDelta(t, plain.Slices[0].Outer*HoverScale, g.Slices[0].Outer, 1e-9)
	assert.InDelta(t, plain.Slices[0].Inner*HoverScale, g.Slices[0].Inner, 1e-9)
	assert.Equal(t, plain.Slices[1].Outer, g.Slices[1].Outer)
	require.NotNil(t, g.Tooltip)
	assert.Equal(t, []string{"a", "1 (25%)"}, g.Tooltip.Lines)
	require.NotNil(t, g.Center)
	assert.Equal(t, "4", g.Center.Text)
}

func TestPie_Variants(t *testing.T) {
	items := []data.Point{{"name": "a", "value": 10}, {"name": "b", "value": 30}}

	t.Run("rose radius follows value", func(t *testing.T) {
		o := sized(Pie, 300, 300)
		o.Variant = "rose"
		g := ComputePie(items, o, FullState())
		assert.InDelta(t, g.Slices[1].Outer/3, g.Slices[0].Outer, 1e-9)
		assert.InDelta(t, 0.25, g.Slices[0].Percent, 1e-12)
	})

	t.Run("exploded offsets along bisector", func(t *testing.T) {
		o := sized(Pie, 300, 300)
		o.Variant = "exploded"
		g := ComputePie(items, o, FullState())
		cx, cy := g.Plot.Center()
		for _, s := range g.Slices {
			assert.InDelta(t, ExplodeOffset, math.Hypot(s.CX-cx, s.CY-cy), 1e-9)
		}
	})

	t.Run("semi sweeps the upper half", func(t *testing.T) {
		o := sized(Pie, 300, 300)
		o.Variant = "semi"
		g := ComputePie(items, o, FullState())
		assert.InDelta(t, math.Pi, g.Slices[0].Start, 1e-12)
		assert.InDelta(t, 2*math.Pi, g.Slices[1].End, 1e-12)
	})

	t.Run("donut width", func(t *testing.T) {
		o := sized(Pie, 300, 300)
		o.Variant = "donut"
		o.DonutWidth = 20
		g := ComputePie(items, o, FullState())
		assert.InDelta(t, g.Slices[0].Outer-20, g.Slices[0].Inner, 1e-9)
	})

	t.Run("unknown variant falls back", func(t *testing.T) {
		o := sized(Pie, 300, 300)
		o.Variant = "spiral"
		g := ComputePie(items, o, FullState())
		assert.Equal(t, VariantDefault, g.Variant)
		assert.Zero(t, g.Slices[0].Inner)
	})
}

func TestPie_ProgressScalesSweep(t *testing.T) {
	items := []data.Point{{"name": "a", "value": 1}}
	st := FullState()
	st.Progress = 0.25
	g := ComputePie(items, sized(Pie, 300, 300), st)
	assert.InDelta(t, math.Pi/2, g.Slices[0].End-g.Slices[0].Start, 1e-12)
}

func TestRadar(t *testing.T) {
	items := []data.Point{
		{"name": "speed", "value": 10},
		{"name": "power", "value": 10},
		{"name": "range", "value": 10},
		{"name": "armor", "value": 10},
	}
	o := sized(Radar, 300, 300)
	g := ComputeRadar(items, o, FullState())

	require.Len(t, g.Series, 1)
	pts := g.Series[0].Points
	require.Len(t, pts, 4)
	assert.InDelta(t, g.CX, pts[0].X, 1e-9)
	assert.InDelta(t, g.CY-g.Radius, pts[0].Y, 1e-9, "first category points up")
	assert.InDelta(t, g.CX+g.Radius, pts[1].X, 1e-9)
	assert.True(t, strings.HasSuffix(g.Series[0].Line, "Z"))
	assert.Len(t, g.RadarGrid, DefaultRadarLevels)
	assert.Len(t, g.Spokes, 4)
	assert.Equal(t, AnchorStart, g.XLabels[1].Anchor)
	assert.Equal(t, AnchorEnd, g.XLabels[3].Anchor)

	st := FullState()
	st.Progress = 0.5
	half := ComputeRadar(items, o, st)
	assert.InDelta(t, g.CY-g.Radius/2, half.Series[0].Points[0].Y, 1e-9)

	o.Variant = "circle"
	circles := ComputeRadar(items, o, FullState())
	for _, d := range circles.RadarGrid {
		assert.Equal(t, 2, strings.Count(d, "A"))
	}
}

func TestRadial(t *testing.T) {
	items := []data.Point{
		{"name": "cpu", "value": 50},
		{"name": "mem", "value": 30, "max": 60},
		{"name": "disk", "value": 150},
	}

	t.Run("default draws the first item", func(t *testing.T) {
		g := ComputeRadial(items, sized(Radial, 200, 200), FullState())
		require.Len(t, g.Rings, 1)
		assert.Equal(t, 0.5, g.Rings[0].Fraction)
		require.NotNil(t, g.Center)
		assert.Equal(t, "50%", g.Center.Text)
		assert.Nil(t, g.Needle)
	})

	t.Run("multi rings shrink inward and clamp", func(t *testing.T) {
		o := sized(Radial, 200, 200)
		o.Variant = "multi"
		g := ComputeRadial(items, o, FullState())
		require.Len(t, g.Rings, 3)
		assert.Greater(t, g.Rings[0].Radius, g.Rings[1].Radius)
		assert.Equal(t, 0.5, g.Rings[1].Fraction)
		assert.Equal(t, 1.0, g.Rings[2].Fraction)
	})

	t.Run("gauge sweeps 270 degrees with a needle", func(t *testing.T) {
		o := sized(Radial, 200, 200)
		o.Variant = "gauge"
		g := ComputeRadial(items, o, FullState())
		require.Len(t, g.Rings, 1)
		assert.InDelta(t, 270, scale.Degrees(g.Rings[0].Sweep), 1e-9)
		require.NotNil(t, g.Needle)
		angle := math.Atan2(g.Needle.Y2-g.Needle.Y1, g.Needle.X2-g.Needle.X1)
		assert.InDelta(t, -math.Pi/2, angle, 1e-9, "half way round a 270 degree gauge points straight up")
	})
}

func TestSparkline(t *testing.T) {
	items := []data.Point{{"value": 5}, {"value": 2}, {"value": 9}, {"value": 2}, {"value": 9}}
	ref := 12.0
	o := Defaults(Sparkline)
	o.Reference = &ref
	g := ComputeSparkline(items, o, FullState())

	assert.Equal(t, scale.Range{Min: 2, Max: 12}, g.Cartesian.Range)
	require.NotNil(t, g.Reference)
	assert.InDelta(t, g.Plot.Y, g.Reference.Y1, 1e-9)
	require.Len(t, g.Series, 1)
	assert.Empty(t, g.XLabels)
	assert.Empty(t, g.Legend)

	var kinds []MarkerKind
	var idx []int
	for _, m := range g.Markers {
		kinds = append(kinds, m.Kind)
		idx = append(idx, m.Index)
	}
	assert.Equal(t, []MarkerKind{MarkerMin, MarkerMax}, kinds)
	assert.Equal(t, []int{1, 2}, idx, "first occurrence of min and max")
}

func TestSparkline_Variants(t *testing.T) {
	items := []data.Point{{"value": 1}, {"value": 3}, {"value": 2}}

	o := Defaults(Sparkline)
	o.Variant = "bar"
	bars := ComputeSparkline(items, o, FullState())
	assert.Len(t, bars.Bars, 3)
	assert.Equal(t, 0.0, bars.Cartesian.Range.Min, "bars anchor at zero")

	o.Variant = "dots"
	dots := ComputeSparkline(items, o, FullState())
	n := 0
	for _, m := range dots.Markers {
		if m.Kind == MarkerDot {
			n++
		}
	}
	assert.Equal(t, 3, n)

	o.Variant = "curved"
	curved := ComputeSparkline(items, o, FullState())
	assert.Contains(t, curved.Series[0].Line, "C")

	flat := ComputeSparkline([]data.Point{{"value": 4}, {"value": 4}}, Defaults(Sparkline), FullState())
	assert.Empty(t, flat.Markers)
}

func TestScenarioD_EmptyData(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			o := Defaults(k)
			for _, v := range Variants(k) {
				o.Variant = string(v)
				var g Geometry
				require.NotPanics(t, func() { g = Compute(nil, o, FullState()) })
				assert.True(t, g.Empty(), "variant %s", v)

				var buf bytes.Buffer
				require.NoError(t, WriteSVG(&buf, g, o))
				assert.NotContains(t, buf.String(), "NaN")
			}
		})
	}
}

func TestDegenerateData(t *testing.T) {
	inputs := map[string][]data.Point{
		"single point": {{"name": "only", "value": 7}},
		"all zero":     {{"value": 0}, {"value": 0}, {"value": 0}},
		"missing keys": {{"name": "a"}, {"other": "x"}, {"value": nil}},
		"garbage":      {{"value": "n/a"}, {"value": math.NaN()}, {"value": math.Inf(1)}},
	}
	for name, items := range inputs {
		for _, k := range Kinds() {
			o := Defaults(k)
			for _, v := range Variants(k) {
				o.Variant = string(v)
				g := Compute(items, o, FullState())
				var buf bytes.Buffer
				require.NoError(t, WriteSVG(&buf, g, o))
				assert.NotContains(t, buf.String(), "NaN", "%s %s/%s", name, k, v)
			}
		}
	}
}

func TestIdempotentOutput(t *testing.T) {
	items := []data.Point{{"name": "a", "x": 1.234, "y": 9.87}, {"name": "b", "x": 4.56, "y": 0.12}, {"name": "c", "x": 7.89, "y": 3.33}}
	for _, k := range Kinds() {
		o := Defaults(k)
		o.YKeys = []string{"x", "y"}
		o.ValueKey = "x"
		o.Gradient = true
		var a, b bytes.Buffer
		require.NoError(t, WriteSVG(&a, Compute(items, o, FullState()), o))
		require.NoError(t, WriteSVG(&b, Compute(items, o, FullState()), o))
		assert.Equal(t, a.String(), b.String(), "kind %s", k)
	}
}

func TestTooltipFormatter(t *testing.T) {
	var got []TooltipContext
	o := sized(Pie, 300, 300)
	o.TooltipFormatter = func(item data.Point, ctx TooltipContext) string {
		got = append(got, ctx)
		return item.Label("name") + " is " + FormatPercent(ctx.Percent) + "\n"
	}
	items := []data.Point{{"name": "a", "value": 1}, {"name": "b", "value": 1}}
	st := FullState()
	st.Hover = interact.Hover{Active: true, Slice: 1}
	g := ComputePie(items, o, st)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 0.5, got[0].Percent)
	require.NotNil(t, g.Tooltip)
	assert.Equal(t, []string{"b is 50%"}, g.Tooltip.Lines)
}

func TestLegendLayout(t *testing.T) {
	items := []data.Point{{"a": 1, "b": 2}, {"a": 2, "b": 1}}
	o := Defaults(Area)
	o.Width, o.Height = 300, 150
	o.YKeys = []string{"a", "b"}

	g := ComputeArea(items, o, FullState())
	require.Len(t, g.Legend, 2)
	assert.InDelta(t, 150-scale.DefaultXAxisHeight-scale.DefaultLegendHeight, g.Plot.H, 1e-9)
	assert.Greater(t, g.Legend[0].Y, g.Plot.Bottom())
	assert.Less(t, g.Legend[0].X, g.Legend[1].X)

	o.LegendPosition = scale.SideRight
	g = ComputeArea(items, o, FullState())
	assert.InDelta(t, 300-scale.DefaultYAxisWidth-scale.DefaultLegendWidth, g.Plot.W, 1e-9)
	assert.Less(t, g.Legend[0].Y, g.Legend[1].Y)
	assert.Greater(t, g.Legend[0].X, g.Plot.Right())
}

func TestComputeRadial_ZeroOptionsUseRingWidth(t *testing.T) {
	g := ComputeRadial([]data.Point{{"name": "cpu", "value": 40}}, Options{}, FullState())
	require.Len(t, g.Rings, 1)
	assert.Equal(t, DefaultRadialWidth, g.Rings[0].Width)
}

func TestPolarKinds_SmallPlotsKeepRadius(t *testing.T) {
	items := []data.Point{
		{"name": "a", "value": 10},
		{"name": "b", "value": 30},
		{"name": "c", "value": 20},
	}
	cases := []struct {
		kind    Kind
		variant string
	}{
		{Pie, "default"},
		{Pie, "exploded"},
		{Radar, "polygon"},
		{Radar, "circle"},
		{Radial, "default"},
		{Radial, "multi"},
		{Radial, "gauge"},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String()+"/"+tc.variant, func(t *testing.T) {
			o := sized(tc.kind, 40, 20)
			o.Variant = tc.variant
			g := Compute(items, o, FullState())
			switch tc.kind {
			case Pie:
				require.NotEmpty(t, g.Slices)
				assert.Greater(t, g.Slices[0].Outer, 0.0)
				assert.NotEmpty(t, g.Slices[0].D)
			case Radar:
				assert.Greater(t, g.Radius, 0.0)
				assert.Len(t, g.Series, 1)
			case Radial:
				require.NotEmpty(t, g.Rings)
				assert.Greater(t, g.Rings[0].Radius, g.Rings[0].Width/2)
				assert.LessOrEqual(t, g.Rings[0].Width, DefaultRadialWidth)
			}
		})
	}
}
