package chart

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// ComputeSparkline lays out a chrome-less single series chart. Line and
// dot variants fit the range to the data (and the reference value, if
// any); the bar variant anchors bars at zero. Min and max markers sit on
// the first occurrence of the smallest and largest value.
func ComputeSparkline(items []data.Point, o Options, st State) Geometry {
	o.Kind = Sparkline
	o = o.normalize()
	variant := o.variant()
	series := o.series()[:1]
	color := palette.Resolve(o.Color).Color(0)

	inset := math.Max(o.StrokeWidth, 3) + 1
	plot := scale.Rect{W: o.Width, H: o.Height}.Inset(inset)
	bars := variant == VariantBars
	opts := scale.ProjectOptions{Fit: !bars, Bands: bars, Headroom: 1}
	if o.Reference != nil {
		opts.Include = []float64{*o.Reference}
	}
	c := scale.Project(items, series, nil, plot, opts)

	g := Geometry{
		Kind:      Sparkline,
		Variant:   variant,
		Width:     o.Width,
		Height:    o.Height,
		Plot:      plot,
		Progress:  clamp01(st.Progress),
		Cartesian: &c,
	}
	if len(items) == 0 {
		return g
	}

	n := path.VisibleCount(len(items), g.Progress)
	pts := c.Series[0][:n]
	shape := SeriesShape{Series: 0, Name: series[0].Name, Color: color, Points: pts}
	switch variant {
	case VariantBars:
		w := c.X.Slot() * (1 - o.BarGap)
		for _, p := range pts {
			b := BarShape{
				Index: p.Index,
				X:     p.X - w/2,
				Y:     math.Min(p.Y, p.BaseY),
				W:     w,
				H:     math.Abs(p.BaseY - p.Y),
				Value: p.Value,
				Color: color,
				Top:   true,
			}
			edge := path.EdgeTop
			if p.Value < 0 {
				edge = path.EdgeBottom
			}
			b.Radius = math.Min(1, w/2)
			b.D = path.Bar(b.X, b.Y, b.W, b.H, b.Radius, edge)
			g.Bars = append(g.Bars, b)
		}
	case VariantDots:
		for _, p := range pts {
			g.Markers = append(g.Markers, Marker{Kind: MarkerDot, Index: p.Index, X: p.X, Y: p.Y, R: o.StrokeWidth + 0.5, Color: color})
		}
		g.Series = append(g.Series, shape)
	case VariantCurved:
		shape.Line = path.Line(path.Tops(pts), path.Curved)
		g.Series = append(g.Series, shape)
	default:
		shape.Line = path.Line(path.Tops(pts), path.Straight)
		g.Series = append(g.Series, shape)
	}

	if o.Reference != nil {
		y := c.Y.Map(*o.Reference)
		g.Reference = &Segment{X1: plot.X, Y1: y, X2: plot.Right(), Y2: y}
	}
	if o.ShowMinMax && !bars {
		g.Markers = append(g.Markers, extremes(series[0].Values(items), pts)...)
	}

	if o.ShowTooltip && st.Hover.Active {
		g.Crosshair = crosshairFor(st.Hover, plot)
		g.Tooltip = placeTooltip(cartesianTooltip(items, st.Hover, o), st.Hover.X, topmost(st.Hover, plot.Bottom()), o)
	}
	return g
}

// extremes marks the first minimum and first maximum of values among the
// revealed points. A flat or single-point series has no extremes.
func extremes(values []float64, revealed []scale.Point) []Marker {
	if len(values) < 2 {
		return nil
	}
	lo, hi := 0, 0
	for i, v := range values {
		if v < values[lo] {
			lo = i
		}
		if v > values[hi] {
			hi = i
		}
	}
	if values[lo] == values[hi] {
		return nil
	}
	var out []Marker
	for _, m := range []struct {
		kind  MarkerKind
		index int
		color string
	}{
		{MarkerMin, lo, palette.Lookup(palette.Rose).Color(0)},
		{MarkerMax, hi, palette.Lookup(palette.Green).Color(0)},
	} {
		if m.index >= len(revealed) {
			continue
		}
		p := revealed[m.index]
		out = append(out, Marker{Kind: m.kind, Index: m.index, X: p.X, Y: p.Y, R: 2.5, Color: m.color})
	}
	return out
}
