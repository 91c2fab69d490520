package chart

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// Gauge geometry: a 270 degree sweep opening at the bottom.
const (
	gaugeStart  = 3 * math.Pi / 4
	gaugeSweep  = 3 * math.Pi / 2
	ringGap     = 4.0
	needleRatio = 0.8
)

// ComputeRadial lays out circular progress rings. The default variant
// draws the first visible item as a single ring, multi draws one
// concentric ring per item from the outside in, and gauge draws the first
// item on a 270 degree track with a needle. Each ring fills
// value/max of its track, where max is read from MaxKey and defaults to
// 100. The animation scales the filled sweep.
func ComputeRadial(items []data.Point, o Options, st State) Geometry {
	o.Kind = Radial
	o = o.normalize()
	variant := o.variant()
	names := data.Labels(items, o.NameKey)
	styles := palette.Resolve(o.Color)
	colors := styles.Colors(len(items))

	plot, legend := plotArea(o, len(items))
	g := Geometry{
		Kind:     Radial,
		Variant:  variant,
		Width:    o.Width,
		Height:   o.Height,
		Plot:     plot,
		Progress: clamp01(st.Progress),
	}
	if legend {
		g.Legend = legendLayout(names, colors, st.Hidden, o, plot)
	}

	outer := math.Min(plot.W, plot.H)/2 - polarInset(plot, polarPad)
	sw := math.Min(o.StrokeWidth, maxRingShare*outer)
	radius := outer - sw/2
	if len(items) == 0 || radius <= sw/2 {
		return g
	}
	cx, cy := plot.Center()
	g.CX, g.CY, g.Radius = cx, cy, radius

	start, sweep := scale.TopAngle, scale.FullTurn
	if variant == VariantGauge {
		start, sweep = gaugeStart, gaugeSweep
	}

	r := radius
	for i, item := range items {
		if hiddenAt(st.Hidden, i) {
			continue
		}
		if r <= sw/2 {
			break
		}
		v := item.Value(o.ValueKey)
		limit := item.Value(o.MaxKey)
		if limit <= 0 {
			limit = DefaultRadialMax
		}
		frac := clamp01(v / limit)
		filled := sweep * frac * g.Progress
		ring := RingShape{
			Index:    i,
			Name:     names[i],
			Value:    v,
			Max:      limit,
			Fraction: frac,
			CX:       cx,
			CY:       cy,
			Radius:   r,
			Width:    sw,
			Start:    start,
			Sweep:    sweep,
			Color:    colors[i],
			Track:    path.Stroke(cx, cy, r, start, start+sweep),
			Arc:      path.Stroke(cx, cy, r, start, start+filled),
			Hovered:  st.Hover.Active && st.Hover.Slice == i,
		}
		g.Rings = append(g.Rings, ring)

		if variant != VariantMulti {
			g.Center = &Label{X: cx, Y: cy + FontSize/3, Text: FormatPercent(frac * g.Progress), Anchor: AnchorMiddle}
			if variant == VariantGauge {
				x, y := scale.Polar(cx, cy, r*needleRatio, start+filled)
				g.Needle = &Segment{X1: cx, Y1: cy, X2: x, Y2: y}
			}
			break
		}
		r -= sw + ringGap
	}

	if o.ShowTooltip && st.Hover.Active {
		for _, ring := range g.Rings {
			if ring.Index != st.Hover.Slice {
				continue
			}
			x, y := scale.Polar(ring.CX, ring.CY, ring.Radius, ring.Start+ring.Sweep*ring.Fraction*g.Progress)
			g.Tooltip = placeTooltip(ringTooltip(items, ring, o), x, y, o)
		}
	}
	return g
}

// ringTooltip builds the tooltip lines of a hovered ring.
func ringTooltip(items []data.Point, r RingShape, o Options) []string {
	if r.Index >= len(items) {
		return nil
	}
	if o.TooltipFormatter != nil {
		return splitLines(o.TooltipFormatter(items[r.Index], TooltipContext{
			Kind:    o.Kind,
			Index:   r.Index,
			Series:  r.Name,
			Value:   r.Value,
			Percent: r.Fraction,
			Label:   r.Name,
		}))
	}
	lines := []string{FormatValue(r.Value) + " / " + FormatValue(r.Max) + " (" + FormatPercent(r.Fraction) + ")"}
	if r.Name != "" {
		lines = append([]string{r.Name}, lines...)
	}
	return lines
}
