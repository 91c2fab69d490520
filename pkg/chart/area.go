package chart

import (
	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// Fill opacities of area charts.
const (
	areaOpacity        = 0.3
	stackedAreaOpacity = 0.6
)

// ComputeArea lays out an area chart: one stroked line and one filled area
// per visible series, stacked bottom-up for the stacked variant. The
// animation reveals a growing prefix of the points.
func ComputeArea(items []data.Point, o Options, st State) Geometry {
	o.Kind = Area
	o = o.normalize()
	variant := o.variant()
	stacked := variant == VariantStacked
	series := o.series()
	names := seriesNames(series)
	styles := palette.Resolve(o.Color)
	colors := styles.Colors(len(series))

	plot, legend := plotArea(o, len(series))
	mode := scale.ModeLinear
	if stacked {
		mode = scale.ModeStacked
	}
	c := scale.Project(items, series, st.Hidden, plot, scale.ProjectOptions{Mode: mode, Headroom: scale.Headroom})

	g := Geometry{
		Kind:      Area,
		Variant:   variant,
		Width:     o.Width,
		Height:    o.Height,
		Plot:      plot,
		Progress:  clamp01(st.Progress),
		Cartesian: &c,
	}
	g.Grid, g.YLabels = valueAxis(c, o)
	g.XLabels = categoryAxis(items, o.XKey, c, o)
	if legend {
		g.Legend = legendLayout(names, colors, st.Hidden, o, plot)
	}

	n := path.VisibleCount(len(items), g.Progress)
	for s, pts := range c.Series {
		if pts == nil || n == 0 {
			continue
		}
		pts = pts[:n]
		tops := path.Tops(pts)
		shape := SeriesShape{
			Series:      s,
			Name:        names[s],
			Color:       colors[s],
			Line:        path.Line(tops, o.Curve),
			Fill:        path.Area(tops, path.Bases(pts), o.Curve, stacked),
			FillOpacity: areaOpacity,
			Points:      pts,
		}
		if stacked {
			shape.FillOpacity = stackedAreaOpacity
		}
		if o.Gradient {
			id := elementID(o, "gradient", s, colors[s])
			g.Gradients = append(g.Gradients, Gradient{ID: id, Stops: []GradientStop{
				{Offset: 0, Color: colors[s], Opacity: 0.6},
				{Offset: 100, Color: colors[s], Opacity: 0.05},
			}})
			shape.FillRef = id
			shape.FillOpacity = 1
		}
		g.Series = append(g.Series, shape)

		if o.ShowDots {
			for _, p := range pts {
				g.Markers = append(g.Markers, Marker{Kind: MarkerDot, Index: p.Index, Series: s, X: p.X, Y: p.Y, R: 3, Color: colors[s]})
			}
		}
	}

	if o.ShowTooltip && st.Hover.Active {
		g.Crosshair = crosshairFor(st.Hover, plot)
		g.Tooltip = placeTooltip(cartesianTooltip(items, st.Hover, o), st.Hover.X, topmost(st.Hover, plot.Bottom()), o)
	}
	return g
}
