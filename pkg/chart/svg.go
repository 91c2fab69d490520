package chart

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/path"
)

// errWriter remembers the first write error so a whole document can be
// emitted before checking.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteSVG renders g as a standalone SVG document sized g.Width x
// g.Height. Only write errors are returned.
func WriteSVG(w io.Writer, g Geometry, o Options) error {
	ew := &errWriter{w: w}
	styles := palette.Resolve(o.Color)
	canvas := svg.New(ew)

	canvas.Start(px(g.Width), px(g.Height))
	canvas.Title(fmt.Sprintf("%s chart", g.Kind))

	if len(g.Gradients) > 0 {
		canvas.Def()
		for _, gr := range g.Gradients {
			stops := make([]svg.Offcolor, len(gr.Stops))
			for i, s := range gr.Stops {
				stops[i] = svg.Offcolor{Offset: s.Offset, Color: s.Color, Opacity: s.Opacity}
			}
			canvas.LinearGradient(gr.ID, 0, 0, 0, 100, stops)
		}
		canvas.DefEnd()
	}

	canvas.Gstyle(fmt.Sprintf("font-family:sans-serif;font-size:%gpx", FontSize))

	drawGrid(canvas, g, styles)
	drawLabels(canvas, g.XLabels, styles.Axis)
	drawLabels(canvas, g.YLabels, styles.Axis)

	for _, s := range g.Series {
		if s.Fill == "" {
			continue
		}
		if s.FillRef != "" {
			canvas.Path(s.Fill, "fill:url(#"+s.FillRef+");stroke:none")
		} else {
			canvas.Path(s.Fill, fmt.Sprintf("fill:%s;fill-opacity:%g;stroke:none", s.Color, s.FillOpacity))
		}
	}
	for _, s := range g.Series {
		if s.Line == "" {
			continue
		}
		canvas.Path(s.Line, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-linejoin:round;stroke-linecap:round", s.Color, o.StrokeWidth))
	}

	for _, b := range g.Bars {
		if b.D != "" {
			canvas.Path(b.D, "fill:"+b.Color)
		}
	}

	for _, s := range g.Slices {
		if s.D == "" {
			continue
		}
		style := "fill:" + s.Color + ";stroke:#ffffff;stroke-width:1"
		if s.Hovered {
			style += ";fill-opacity:0.9"
		}
		canvas.Path(s.D, style)
	}

	for _, r := range g.Rings {
		canvas.Path(r.Track, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", styles.Track, r.Width))
		if r.Arc == "" {
			continue
		}
		width := r.Width
		if r.Hovered {
			width *= HoverScale
		}
		canvas.Path(r.Arc, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round", r.Color, width))
	}
	if g.Needle != nil {
		canvas.Path(segmentPath(*g.Needle), "stroke:"+styles.Text+";stroke-width:2;stroke-linecap:round")
		canvas.Circle(px(g.Needle.X1), px(g.Needle.Y1), 4, "fill:"+styles.Text)
	}

	if g.Reference != nil {
		canvas.Path(segmentPath(*g.Reference), "stroke:"+styles.Axis+";stroke-width:1;stroke-dasharray:3 3")
	}
	for _, m := range g.Markers {
		canvas.Circle(px(m.X), px(m.Y), px(m.R), "fill:"+m.Color)
	}

	if g.Crosshair != nil {
		ch := g.Crosshair
		if ch.Band != nil {
			canvas.Rect(px(ch.Band.X), px(ch.Band.Y), px(ch.Band.W), px(ch.Band.H), "fill:"+styles.Axis+";fill-opacity:0.12")
		} else {
			canvas.Path(segmentPath(ch.Line), "stroke:"+styles.Axis+";stroke-width:1;stroke-dasharray:4 4")
		}
		for _, d := range ch.Dots {
			canvas.Circle(px(d.X), px(d.Y), px(d.R), "fill:"+d.Color+";stroke:#ffffff;stroke-width:2")
		}
	}

	if g.Center != nil {
		canvas.Text(px(g.Center.X), px(g.Center.Y), g.Center.Text, "text-anchor:middle;font-size:16px;font-weight:600;fill:"+styles.Text)
	}

	drawLegend(canvas, g.Legend, styles)
	drawTooltip(canvas, g.Tooltip, styles)

	canvas.Gend()
	canvas.End()
	return ew.err
}

func drawGrid(canvas *svg.SVG, g Geometry, styles palette.StyleSet) {
	if len(g.Grid) == 0 && len(g.RadarGrid) == 0 && len(g.Spokes) == 0 {
		return
	}
	canvas.Gstyle("fill:none;stroke:" + styles.Grid + ";stroke-width:1")
	for _, s := range g.Grid {
		canvas.Path(segmentPath(s))
	}
	for _, d := range g.RadarGrid {
		if d != "" {
			canvas.Path(d)
		}
	}
	for _, s := range g.Spokes {
		canvas.Path(segmentPath(s))
	}
	canvas.Gend()
}

func drawLabels(canvas *svg.SVG, labels []Label, color string) {
	if len(labels) == 0 {
		return
	}
	canvas.Gstyle("fill:" + color)
	for _, l := range labels {
		canvas.Text(px(l.X), px(l.Y), l.Text, "text-anchor:"+string(l.Anchor))
	}
	canvas.Gend()
}

func drawLegend(canvas *svg.SVG, items []LegendItem, styles palette.StyleSet) {
	if len(items) == 0 {
		return
	}
	canvas.Gstyle("fill:" + styles.Text)
	for _, it := range items {
		opacity := ""
		if it.Hidden {
			opacity = ";opacity:0.4"
		}
		swatchY := it.Y + (it.H-swatchSize)/2
		canvas.Rect(px(it.X), px(swatchY), px(swatchSize), px(swatchSize), "fill:"+it.Color+opacity)
		canvas.Text(px(it.X+swatchSize+swatchGap), px(swatchY+swatchSize-1), it.Name, "text-anchor:start"+opacity)
	}
	canvas.Gend()
}

func drawTooltip(canvas *svg.SVG, t *TooltipBox, styles palette.StyleSet) {
	if t == nil {
		return
	}
	canvas.Roundrect(px(t.X), px(t.Y), px(t.W), px(t.H), 4, 4, "fill:"+styles.TooltipBG+";fill-opacity:0.92")
	for i, line := range t.Lines {
		y := t.Y + tooltipPad + LineHeight*float64(i+1) - 3
		style := "fill:" + styles.TooltipText + ";text-anchor:start"
		if i == 0 && len(t.Lines) > 1 {
			style += ";font-weight:600"
		}
		canvas.Text(px(t.X+tooltipPad), px(y), line, style)
	}
}

func segmentPath(s Segment) string {
	var b path.Builder
	return b.MoveTo(s.X1, s.Y1).LineTo(s.X2, s.Y2).String()
}

// px rounds a coordinate for the integer based svgo primitives.
func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
