package chart

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// barInnerGap separates the bars of one group.
const barInnerGap = 2.0

// ComputeBar lays out a grouped or stacked bar chart, vertical or
// horizontal. Within a category slot the gap ratio is left empty and the
// rest is split between the visible series; stacked bars take the whole
// width and only the topmost visible segment gets rounded corners. The
// animation reveals a growing prefix of the categories; nothing is drawn
// at progress 0.
func ComputeBar(items []data.Point, o Options, st State) Geometry {
	o.Kind = Bar
	o = o.normalize()
	variant := o.variant()
	stacked := variant == VariantStacked
	horizontal := o.Horizontal || variant == VariantHorizontal
	series := o.series()
	names := seriesNames(series)
	colors := palette.Resolve(o.Color).Colors(len(series))

	plot, legend := plotArea(o, len(series))
	frame := plot
	if horizontal {
		frame = scale.Rect{W: plot.H, H: plot.W}
	}
	mode := scale.ModeLinear
	if stacked {
		mode = scale.ModeStacked
	}
	c := scale.Project(items, series, st.Hidden, frame, scale.ProjectOptions{Mode: mode, Bands: true})

	g := Geometry{
		Kind:       Bar,
		Variant:    variant,
		Width:      o.Width,
		Height:     o.Height,
		Plot:       plot,
		Progress:   clamp01(st.Progress),
		Horizontal: horizontal,
		Cartesian:  &c,
	}
	if horizontal {
		g.Grid, g.YLabels, g.XLabels = transposedAxes(items, c, plot, o)
	} else {
		g.Grid, g.YLabels = valueAxis(c, o)
		g.XLabels = categoryAxis(items, o.XKey, c, o)
	}
	if legend {
		g.Legend = legendLayout(names, colors, st.Hidden, o, plot)
	}

	visible := scale.Visible(st.Hidden, len(series))
	k := 0
	for _, v := range visible {
		if v {
			k++
		}
	}
	top := scale.TopVisible(visible, len(series))

	slot := c.X.Slot()
	usable := slot * (1 - o.BarGap)
	barW, inner := usable, 0.0
	if !stacked && k > 1 {
		inner = barInnerGap
		barW = (usable - inner*float64(k-1)) / float64(k)
		if barW <= 0 {
			inner, barW = 0, usable/float64(k)
		}
	}
	groupW := barW*float64(k) + inner*float64(max(k-1, 0))
	if stacked {
		groupW = barW
	}

	shown := 0
	if g.Progress > 0 {
		shown = path.VisibleCount(len(items), g.Progress)
	}
	for i := range items[:shown] {
		rank := 0
		for s, pts := range c.Series {
			if pts == nil {
				continue
			}
			p := pts[i]
			start := p.X - groupW/2
			if !stacked {
				start += float64(rank) * (barW + inner)
			}
			rank++

			base, tip := p.BaseY, p.Y
			isTop := !stacked || s == top
			b := BarShape{
				Series: s,
				Index:  i,
				Value:  p.Value,
				Color:  colors[s],
				Top:    isTop,
			}
			if isTop {
				b.Radius = DefaultBarRadius
			}
			var edge path.Edge
			if horizontal {
				x0, x1 := plot.X+plot.W-base, plot.X+plot.W-tip
				b.X, b.W = math.Min(x0, x1), math.Abs(x1-x0)
				b.Y, b.H = plot.Y+start, barW
				edge = path.EdgeRight
				if p.Value < 0 {
					edge = path.EdgeLeft
				}
			} else {
				b.X, b.W = start, barW
				b.Y, b.H = math.Min(base, tip), math.Abs(base-tip)
				edge = path.EdgeTop
				if p.Value < 0 {
					edge = path.EdgeBottom
				}
			}
			b.D = path.Bar(b.X, b.Y, b.W, b.H, b.Radius, edge)
			g.Bars = append(g.Bars, b)
		}
	}

	if o.ShowTooltip && st.Hover.Active && st.Hover.Index < len(items) {
		center := st.Hover.X
		ch := &Crosshair{}
		var ax, ay float64
		if horizontal {
			ch.Band = &scale.Rect{X: plot.X, Y: plot.Y + center - slot/2, W: plot.W, H: slot}
			ax, ay = plot.X+plot.W-topmost(st.Hover, plot.W), plot.Y+center-slot/2
		} else {
			ch.Band = &scale.Rect{X: center - slot/2, Y: plot.Y, W: slot, H: plot.H}
			ax, ay = center, topmost(st.Hover, plot.Bottom())
		}
		g.Crosshair = ch
		g.Tooltip = placeTooltip(cartesianTooltip(items, st.Hover, o), ax, ay, o)
	}
	return g
}

// transposedAxes returns the grid and labels of a horizontal bar chart:
// value ticks along the bottom and category labels on the left.
func transposedAxes(items []data.Point, c scale.Cartesian, plot scale.Rect, o Options) ([]Segment, []Label, []Label) {
	var grid []Segment
	var values, categories []Label
	for _, t := range c.Y.Ticks(scale.DefaultTickCount) {
		x := plot.X + plot.W - t.Pos
		if o.ShowGrid {
			grid = append(grid, Segment{X1: x, Y1: plot.Y, X2: x, Y2: plot.Bottom()})
		}
		if o.ShowXAxis {
			values = append(values, Label{X: x, Y: plot.Bottom() + labelOffset, Text: FormatValue(t.Value), Anchor: AnchorMiddle})
		}
	}
	if o.ShowYAxis {
		for i, item := range items {
			categories = append(categories, Label{
				X:      plot.X - 6,
				Y:      plot.Y + c.X.Pos(i) + FontSize/3,
				Text:   item.Label(o.XKey),
				Anchor: AnchorEnd,
			})
		}
	}
	return grid, categories, values
}
