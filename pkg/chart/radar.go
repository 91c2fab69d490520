package chart

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/interact"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

const radarOpacity = 0.25

// ComputeRadar lays out a radar chart: one spoke per data item, clockwise
// from the top, and one closed polygon per visible series. The grid is
// RadarLevels concentric polygons, or circles for the circle variant. The
// animation scales every radius by the progress.
func ComputeRadar(items []data.Point, o Options, st State) Geometry {
	o.Kind = Radar
	o = o.normalize()
	variant := o.variant()
	series := o.series()
	names := seriesNames(series)
	colors := palette.Resolve(o.Color).Colors(len(series))

	plot, legend := plotArea(o, len(series))
	g := Geometry{
		Kind:     Radar,
		Variant:  variant,
		Width:    o.Width,
		Height:   o.Height,
		Plot:     plot,
		Progress: clamp01(st.Progress),
	}
	if legend {
		g.Legend = legendLayout(names, colors, st.Hidden, o, plot)
	}

	n := len(items)
	radius := math.Min(plot.W, plot.H)/2 - polarInset(plot, polarPad) - polarInset(plot, LineHeight)
	if n == 0 || radius <= 0 {
		return g
	}
	cx, cy := plot.Center()
	g.CX, g.CY, g.Radius = cx, cy, radius

	var values []float64
	for s, sr := range series {
		if !hiddenAt(st.Hidden, s) {
			values = append(values, sr.Values(items)...)
		}
	}
	radial := scale.Radial(scale.ZeroRange(values, 1), radius)

	if o.ShowGrid {
		for l := 1; l <= o.RadarLevels; l++ {
			r := radius * float64(l) / float64(o.RadarLevels)
			if variant == VariantCircle {
				g.RadarGrid = append(g.RadarGrid, path.Stroke(cx, cy, r, scale.TopAngle, scale.TopAngle+scale.FullTurn))
				continue
			}
			ring := make([]path.Point, n)
			for i := range ring {
				ring[i].X, ring[i].Y = scale.Polar(cx, cy, r, scale.CategoryAngle(i, n))
			}
			g.RadarGrid = append(g.RadarGrid, path.Polygon(ring))
		}
		for i := 0; i < n; i++ {
			x, y := scale.Polar(cx, cy, radius, scale.CategoryAngle(i, n))
			g.Spokes = append(g.Spokes, Segment{X1: cx, Y1: cy, X2: x, Y2: y})
		}
	}
	for i, item := range items {
		a := scale.CategoryAngle(i, n)
		x, y := scale.Polar(cx, cy, radius+labelOffset*0.75, a)
		anchor := AnchorMiddle
		switch c := math.Cos(a); {
		case c > 0.1:
			anchor = AnchorStart
		case c < -0.1:
			anchor = AnchorEnd
		}
		g.XLabels = append(g.XLabels, Label{X: x, Y: y + FontSize/3, Text: item.Label(o.XKey), Anchor: anchor})
	}

	for s, sr := range series {
		if hiddenAt(st.Hidden, s) {
			continue
		}
		vals := sr.Values(items)
		pts := make([]scale.Point, n)
		ring := make([]path.Point, n)
		for i, v := range vals {
			x, y := scale.Polar(cx, cy, radial.Map(v)*g.Progress, scale.CategoryAngle(i, n))
			pts[i] = scale.Point{X: x, Y: y, Value: v, Index: i, Series: s, Item: items[i]}
			ring[i] = path.Point{X: x, Y: y}
		}
		d := path.Polygon(ring)
		g.Series = append(g.Series, SeriesShape{
			Series:      s,
			Name:        names[s],
			Color:       colors[s],
			Line:        d,
			Fill:        d,
			FillOpacity: radarOpacity,
			Points:      pts,
		})
		if o.ShowDots {
			for _, p := range pts {
				g.Markers = append(g.Markers, Marker{Kind: MarkerDot, Index: p.Index, Series: s, X: p.X, Y: p.Y, R: 3, Color: colors[s]})
			}
		}
	}

	if o.ShowTooltip && st.Hover.Active && st.Hover.Index < n {
		a := scale.CategoryAngle(st.Hover.Index, n)
		x, y := scale.Polar(cx, cy, radius, a)
		ch := &Crosshair{Line: Segment{X1: cx, Y1: cy, X2: x, Y2: y}}
		for _, sh := range g.Series {
			p := sh.Points[st.Hover.Index]
			ch.Dots = append(ch.Dots, Marker{Kind: MarkerDot, Index: p.Index, Series: sh.Series, X: p.X, Y: p.Y, R: 4, Color: sh.Color})
		}
		g.Crosshair = ch
		g.Tooltip = placeTooltip(cartesianTooltip(items, st.Hover, o), x, y, o)
	}
	return g
}

// radarHover resolves a pointer over a radar chart to the nearest spoke.
func radarHover(g Geometry, x, y float64) (int, bool) {
	n := len(g.XLabels)
	if n == 0 || g.Radius <= 0 {
		return 0, false
	}
	if math.Hypot(x-g.CX, y-g.CY) > g.Radius+polarInset(g.Plot, polarPad) {
		return 0, false
	}
	return interact.SnapAngle(interact.AngleAt(g.CX, g.CY, x, y), n), true
}
