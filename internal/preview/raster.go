package preview

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/palette"
)

// Rasterize draws g onto a cols x rows braille canvas. g must have been
// computed at the canvas pixel size (cols*2 x rows*4). Text elements
// (labels, legend, tooltip) are left to the caller.
func Rasterize(g chart.Geometry, styles palette.StyleSet, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	grid := lipgloss.Color(styles.Grid)

	for _, s := range g.Grid {
		c.Line(s.X1, s.Y1, s.X2, s.Y2, grid)
	}
	for _, s := range g.Spokes {
		c.Line(s.X1, s.Y1, s.X2, s.Y2, grid)
	}
	if r := g.Reference; r != nil {
		dashed(c, *r, lipgloss.Color(styles.Axis))
	}

	for _, b := range g.Bars {
		c.FillRect(b.X, b.Y, b.W, b.H, lipgloss.Color(b.Color))
	}

	for _, s := range g.Slices {
		hit := s.Hit()
		c.Fill(s.CX-s.Outer, s.CY-s.Outer, s.CX+s.Outer, s.CY+s.Outer, hit.Contains, lipgloss.Color(s.Color))
	}

	for _, r := range g.Rings {
		track := r.Hit()
		c.Fill(r.CX-track.Outer, r.CY-track.Outer, r.CX+track.Outer, r.CY+track.Outer, track.Contains, lipgloss.Color(styles.Track))
		arc := track
		arc.End = r.Start + r.Sweep*r.Fraction*g.Progress
		c.Fill(r.CX-arc.Outer, r.CY-arc.Outer, r.CX+arc.Outer, r.CY+arc.Outer, arc.Contains, lipgloss.Color(r.Color))
	}
	if n := g.Needle; n != nil {
		c.Line(n.X1, n.Y1, n.X2, n.Y2, lipgloss.Color(styles.Text))
	}

	closed := g.Kind == chart.Radar
	for _, s := range g.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		c.Polyline(xs, ys, closed, lipgloss.Color(s.Color))
	}

	for _, m := range g.Markers {
		c.Disc(m.X, m.Y, math.Min(m.R, 2), lipgloss.Color(m.Color))
	}

	if ch := g.Crosshair; ch != nil {
		l := ch.Line
		if ch.Band != nil {
			b := *ch.Band
			if g.Horizontal {
				l = chart.Segment{X1: b.X, Y1: b.Y + b.H/2, X2: b.X + b.W, Y2: b.Y + b.H/2}
			} else {
				l = chart.Segment{X1: b.X + b.W/2, Y1: b.Y, X2: b.X + b.W/2, Y2: b.Y + b.H}
			}
		}
		dashed(c, l, lipgloss.Color(styles.Axis))
		for _, d := range ch.Dots {
			c.Disc(d.X, d.Y, 1.5, lipgloss.Color(d.Color))
		}
	}
	return c
}

// dashed draws every other pair of dots of a segment.
func dashed(c *Canvas, s chart.Segment, color lipgloss.Color) {
	length := math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
	if !(length > 0) {
		return
	}
	steps := int(math.Ceil(length))
	for i := 0; i <= steps; i++ {
		if (i/2)%2 == 1 {
			continue
		}
		t := float64(i) / float64(steps)
		c.Set(int(s.X1+(s.X2-s.X1)*t), int(s.Y1+(s.Y2-s.Y1)*t), color)
	}
}
