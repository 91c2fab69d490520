package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const brailleBase = '\u2800'

// brailleDots maps [row][col] of the 2x4 matrix to the bit of the dot.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Canvas is a braille raster. Each cell keeps one color, the last one
// drawn into it.
type Canvas struct {
	cols, rows int
	dots       []uint8
	colors     []lipgloss.Color
}

// NewCanvas returns an empty canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Canvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]uint8, cols*rows),
		colors: make([]lipgloss.Color, cols*rows),
	}
}

// PixelSize returns the raster size in dots.
func (c *Canvas) PixelSize() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Set turns on the dot at pixel (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.dots[cell] |= 1 << brailleDots[y%4][x%2]
	c.colors[cell] = color
}

// Line draws a straight line between two points in pixel space.
func (c *Canvas) Line(x1, y1, x2, y2 float64, color lipgloss.Color) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
	if steps == 0 {
		c.Set(int(x1), int(y1), color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.Set(int(x1+(x2-x1)*t), int(y1+(y2-y1)*t), color)
	}
}

// Polyline connects consecutive points; closed joins the last to the first.
func (c *Canvas) Polyline(xs, ys []float64, closed bool, color lipgloss.Color) {
	n := min(len(xs), len(ys))
	for i := 1; i < n; i++ {
		c.Line(xs[i-1], ys[i-1], xs[i], ys[i], color)
	}
	if closed && n > 2 {
		c.Line(xs[n-1], ys[n-1], xs[0], ys[0], color)
	}
	if n == 1 {
		c.Set(int(xs[0]), int(ys[0]), color)
	}
}

// FillRect sets every dot whose centre lies inside the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, color lipgloss.Color) {
	c.Fill(x, y, x+w, y+h, func(px, py float64) bool {
		return px >= x && px <= x+w && py >= y && py <= y+h
	}, color)
}

// Fill sets every dot within the bounding box whose centre satisfies inside.
func (c *Canvas) Fill(x0, y0, x1, y1 float64, inside func(x, y float64) bool, color lipgloss.Color) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	w, h := c.PixelSize()
	minX, maxX := max(int(math.Floor(x0)), 0), min(int(math.Ceil(x1)), w-1)
	minY, maxY := max(int(math.Floor(y0)), 0), min(int(math.Ceil(y1)), h-1)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			if inside(float64(px)+0.5, float64(py)+0.5) {
				c.Set(px, py, color)
			}
		}
	}
}

// Disc fills a circle.
func (c *Canvas) Disc(cx, cy, r float64, color lipgloss.Color) {
	r = math.Max(r, 0.5)
	c.Fill(cx-r, cy-r, cx+r, cy+r, func(x, y float64) bool {
		return math.Hypot(x-cx, y-cy) <= r
	}, color)
}

// String renders the canvas, one line per row, with runs of equally
// colored cells sharing one style.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.cols * c.rows * 4)
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			cell := row*c.cols + col
			color := c.colors[cell]
			if c.dots[cell] == 0 {
				color = ""
			}
			if color != runColor {
				flush()
				runColor = color
			}
			if c.dots[cell] == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(brailleBase + rune(c.dots[cell]))
			}
		}
		flush()
	}
	return b.String()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
