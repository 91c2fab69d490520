package chart

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/interact"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// Chrome measurements shared by the compositions.
const (
	swatchSize   = 10.0
	swatchGap    = 6.0
	legendGap    = 14.0
	legendRow    = 18.0
	tooltipPad   = 6.0
	polarPad     = 8.0
	labelOffset  = 16.0
	minLabelStep = 48.0
	insetShare   = 0.1
	maxRingShare = 0.4
)

// polarInset caps a fixed reserve around a polar chart at a share of the
// plot's short side, so small plots keep a usable radius.
func polarInset(plot scale.Rect, reserve float64) float64 {
	return math.Min(reserve, insetShare*math.Min(plot.W, plot.H))
}

// plotArea reserves axes and, when shown, the legend band.
func plotArea(o Options, legendEntries int) (scale.Rect, bool) {
	r := scale.Reserve{
		YAxis: o.ShowYAxis,
		XAxis: o.ShowXAxis,
	}
	shown := o.legendShown(legendEntries)
	if shown {
		r.Legend = o.LegendPosition
		if r.Legend == scale.SideNone {
			r.Legend = scale.SideBottom
		}
	}
	return scale.Layout(o.Width, o.Height, r), shown
}

// valueAxis returns the horizontal grid lines and y tick labels of c.
func valueAxis(c scale.Cartesian, o Options) ([]Segment, []Label) {
	if !o.ShowGrid && !o.ShowYAxis {
		return nil, nil
	}
	var grid []Segment
	var labels []Label
	for _, t := range c.Y.Ticks(scale.DefaultTickCount) {
		if o.ShowGrid {
			grid = append(grid, Segment{X1: c.Rect.X, Y1: t.Pos, X2: c.Rect.Right(), Y2: t.Pos})
		}
		if o.ShowYAxis {
			labels = append(labels, Label{X: c.Rect.X - 6, Y: t.Pos + FontSize/3, Text: FormatValue(t.Value), Anchor: AnchorEnd})
		}
	}
	return grid, labels
}

// categoryAxis labels the data indices below the plot, thinning the labels
// when they would crowd.
func categoryAxis(items []data.Point, key string, c scale.Cartesian, o Options) []Label {
	if !o.ShowXAxis || len(items) == 0 {
		return nil
	}
	step := 1
	if c.X.Step > 0 && c.X.Step < minLabelStep && len(items) > 1 {
		step = int(math.Ceil(minLabelStep / c.X.Step))
	}
	var out []Label
	for i := 0; i < len(items); i += step {
		out = append(out, Label{
			X:      c.X.Pos(i),
			Y:      c.Rect.Bottom() + labelOffset,
			Text:   items[i].Label(key),
			Anchor: AnchorMiddle,
		})
	}
	return out
}

// legendLayout positions legend entries inside the band reserved on side.
func legendLayout(names, colors []string, hidden []bool, o Options, plot scale.Rect) []LegendItem {
	if len(names) == 0 {
		return nil
	}
	items := make([]LegendItem, len(names))
	for i, n := range names {
		items[i] = LegendItem{
			Index:  i,
			Name:   n,
			Color:  at(colors, i),
			Hidden: i < len(hidden) && hidden[i],
			W:      swatchSize + swatchGap + textWidth(n),
			H:      swatchSize + 4,
		}
	}

	side := o.LegendPosition
	switch side {
	case scale.SideLeft, scale.SideRight:
		x := polarPad
		if side == scale.SideRight {
			x = o.Width - scale.DefaultLegendWidth + polarPad
		}
		y := plot.Y + polarPad
		for i := range items {
			items[i].X, items[i].Y = x, y
			y += legendRow
		}
	default:
		total := 0.0
		for _, it := range items {
			total += it.W
		}
		total += legendGap * float64(len(items)-1)
		x := math.Max(polarPad, (o.Width-total)/2)
		y := (scale.DefaultLegendHeight - items[0].H) / 2
		if side != scale.SideTop {
			y += o.Height - scale.DefaultLegendHeight
		}
		for i := range items {
			items[i].X, items[i].Y = x, y
			x += items[i].W + legendGap
		}
	}
	return items
}

// placeTooltip runs the measure-then-position pass for lines anchored at
// (x, y) and returns the placed box, or nil when there is nothing to show.
func placeTooltip(lines []string, x, y float64, o Options) *TooltipBox {
	if len(lines) == 0 {
		return nil
	}
	tip := interact.NewTooltip(scale.Rect{W: o.Width, H: o.Height})
	tip.SetAnchor(x, y)
	w, h := measureLines(lines, tooltipPad)
	tip.Measure(interact.Size{W: w, H: h})
	p := tip.Place()
	if !p.Visible {
		return nil
	}
	return &TooltipBox{X: p.X, Y: p.Y, W: w, H: h, Lines: lines, Below: p.Below}
}

// cartesianTooltip builds the tooltip lines for a hovered data column.
func cartesianTooltip(items []data.Point, h interact.Hover, o Options) []string {
	if !h.Active || h.Index < 0 || h.Index >= len(items) {
		return nil
	}
	item := items[h.Index]
	if o.TooltipFormatter != nil {
		var lines []string
		for _, p := range h.Points {
			lines = append(lines, splitLines(o.TooltipFormatter(item, TooltipContext{
				Kind:    o.Kind,
				Index:   h.Index,
				Series:  p.Name,
				Value:   p.Value,
				Percent: -1,
				Label:   item.Label(o.XKey),
			}))...)
		}
		return lines
	}

	var lines []string
	if l := item.Label(o.XKey); l != "" {
		lines = append(lines, l)
	}
	for _, p := range h.Points {
		lines = append(lines, p.Name+": "+FormatValue(p.Value))
	}
	return lines
}

// crosshairFor builds the hover guide line and dots of a cartesian chart.
func crosshairFor(h interact.Hover, plot scale.Rect) *Crosshair {
	if !h.Active {
		return nil
	}
	ch := &Crosshair{Line: Segment{X1: h.X, Y1: plot.Y, X2: h.X, Y2: plot.Bottom()}}
	for _, p := range h.Points {
		ch.Dots = append(ch.Dots, Marker{Kind: MarkerDot, Index: h.Index, Series: p.Series, X: h.X, Y: p.Y, R: 4, Color: p.Color})
	}
	return ch
}

// topmost returns the smallest y among the hover dots, or fallback.
func topmost(h interact.Hover, fallback float64) float64 {
	y := fallback
	for _, p := range h.Points {
		y = math.Min(y, p.Y)
	}
	return y
}

// seriesNames returns the display names of series.
func seriesNames(series []data.Series) []string {
	out := make([]string, len(series))
	for i, s := range series {
		out[i] = s.Name
	}
	return out
}

func at(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

func hiddenAt(hidden []bool, i int) bool {
	return i >= 0 && i < len(hidden) && hidden[i]
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
