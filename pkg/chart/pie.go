package chart

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// donutRatio is the default inner radius of a donut, relative to the
// outer radius.
const donutRatio = 0.6

// ComputePie lays out a pie chart. Slices start at the top and run
// clockwise, each spanning its share of the visible total; hidden slices
// keep their index with a zero span. The animation scales the total sweep.
//
// Variants: donut cuts an inner radius, rose scales each slice radius by
// its value, exploded pushes slices out along their bisector and semi
// sweeps the upper half circle from left to right.
func ComputePie(items []data.Point, o Options, st State) Geometry {
	o.Kind = Pie
	o = o.normalize()
	variant := o.variant()
	names := data.Labels(items, o.NameKey)
	colors := palette.Resolve(o.Color).Colors(len(items))

	plot, legend := plotArea(o, len(items))
	g := Geometry{
		Kind:     Pie,
		Variant:  variant,
		Width:    o.Width,
		Height:   o.Height,
		Plot:     plot,
		Progress: clamp01(st.Progress),
	}
	if legend {
		g.Legend = legendLayout(names, colors, st.Hidden, o, plot)
	}

	values := make([]float64, len(items))
	total, largest, shown := 0.0, 0.0, 0
	for i, item := range items {
		values[i] = math.Max(0, item.Value(o.ValueKey))
		if hiddenAt(st.Hidden, i) {
			continue
		}
		total += values[i]
		largest = math.Max(largest, values[i])
		if values[i] > 0 {
			shown++
		}
	}
	if total <= 0 {
		return g
	}

	pad, explode := polarInset(plot, polarPad), polarInset(plot, ExplodeOffset)
	if variant == VariantExploded {
		pad += explode
	}
	start, sweep := scale.TopAngle, scale.FullTurn
	cx, cy := plot.Center()
	var radius float64
	if variant == VariantSemi {
		start, sweep = math.Pi, math.Pi
		radius = (math.Min(plot.W/2, plot.H) - pad) / HoverScale
		cy = plot.Y + (plot.H+radius)/2
	} else {
		radius = (math.Min(plot.W, plot.H)/2 - pad) / HoverScale
	}
	if radius <= 0 {
		return g
	}
	inner := 0.0
	if variant == VariantDonut {
		inner = radius * donutRatio
		if o.DonutWidth > 0 {
			inner = math.Max(0, radius-o.DonutWidth)
		}
		g.Center = &Label{X: cx, Y: cy + FontSize/3, Text: FormatValue(total), Anchor: AnchorMiddle}
	}

	angle := start
	for i, v := range values {
		s := SliceShape{Index: i, Name: names[i], Value: v, Color: colors[i], Start: angle, End: angle, CX: cx, CY: cy}
		if hiddenAt(st.Hidden, i) {
			g.Slices = append(g.Slices, s)
			continue
		}
		frac := v / total
		span := frac * sweep * g.Progress
		s.Percent = frac
		s.End = angle + span
		s.Outer, s.Inner = radius, inner
		if variant == VariantRose {
			s.Outer = radius * v / largest
		}
		if variant == VariantExploded && shown > 1 {
			s.CX, s.CY = scale.Polar(cx, cy, explode, angle+span/2)
		}
		if st.Hover.Active && st.Hover.Slice == i {
			s.Hovered = true
			s.Outer *= HoverScale
			s.Inner *= HoverScale
		}
		s.D = path.Arc(s.CX, s.CY, s.Start, s.End, s.Outer, s.Inner)
		g.Slices = append(g.Slices, s)
		angle += span
	}

	if o.ShowTooltip && st.Hover.Active && st.Hover.Slice >= 0 && st.Hover.Slice < len(g.Slices) {
		s := g.Slices[st.Hover.Slice]
		ax, ay := scale.Polar(s.CX, s.CY, (s.Inner+s.Outer)/2, (s.Start+s.End)/2)
		g.Tooltip = placeTooltip(sliceTooltip(items, s, o), ax, ay, o)
	}
	return g
}

// sliceTooltip builds the tooltip lines of a hovered pie slice.
func sliceTooltip(items []data.Point, s SliceShape, o Options) []string {
	if s.Index >= len(items) {
		return nil
	}
	if o.TooltipFormatter != nil {
		return splitLines(o.TooltipFormatter(items[s.Index], TooltipContext{
			Kind:    o.Kind,
			Index:   s.Index,
			Series:  s.Name,
			Value:   s.Value,
			Percent: s.Percent,
			Label:   s.Name,
		}))
	}
	return []string{s.Name, FormatValue(s.Value) + " (" + FormatPercent(s.Percent) + ")"}
}
