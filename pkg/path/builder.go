// Package path turns sequences of projected points into SVG path data.
//
// Every generator is a pure function of its input: numbers are written with
// a fixed two-decimal rounding so calling a generator twice with the same
// points yields byte-identical strings, and no NaN ever reaches the output.
package path

import (
	"math"
	"strconv"
	"strings"
)

// Point is a pixel coordinate.
type Point struct {
	X, Y float64
}

// Builder accumulates SVG path commands.
type Builder struct {
	sb strings.Builder
}

// MoveTo starts a new subpath at (x, y).
func (b *Builder) MoveTo(x, y float64) *Builder {
	return b.cmd("M", x, y)
}

// LineTo draws a straight line to (x, y).
func (b *Builder) LineTo(x, y float64) *Builder {
	return b.cmd("L", x, y)
}

// CubicTo draws a cubic Bézier curve to (x, y) through two control points.
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Builder {
	return b.cmd("C", c1x, c1y, c2x, c2y, x, y)
}

// ArcTo draws an elliptical arc of radius r to (x, y).
func (b *Builder) ArcTo(r float64, large, sweep bool, x, y float64) *Builder {
	b.sep()
	b.sb.WriteString("A")
	b.sb.WriteString(Num(r))
	b.sb.WriteByte(' ')
	b.sb.WriteString(Num(r))
	b.sb.WriteString(" 0 ")
	b.sb.WriteString(flag(large))
	b.sb.WriteByte(' ')
	b.sb.WriteString(flag(sweep))
	b.sb.WriteByte(' ')
	b.sb.WriteString(Num(x))
	b.sb.WriteByte(' ')
	b.sb.WriteString(Num(y))
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.sep()
	b.sb.WriteString("Z")
	return b
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return b.sb.Len() }

// String returns the path data.
func (b *Builder) String() string { return b.sb.String() }

func (b *Builder) cmd(name string, coords ...float64) *Builder {
	b.sep()
	b.sb.WriteString(name)
	for i, c := range coords {
		if i > 0 {
			b.sb.WriteByte(' ')
		}
		b.sb.WriteString(Num(c))
	}
	return b
}

func (b *Builder) sep() {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Num formats a coordinate rounded to two decimals. NaN and ±Inf are written
// as 0 and negative zero as "0".
func Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// VisibleCount returns how many of n points are revealed at the given
// animation progress: ceil(n*progress), at least 1 when n > 0.
func VisibleCount(n int, progress float64) int {
	if n <= 0 {
		return 0
	}
	if math.IsNaN(progress) || progress < 0 {
		progress = 0
	}
	if progress >= 1 {
		return n
	}
	// The epsilon absorbs products like 10*0.3 = 3.0000000000000004.
	c := int(math.Ceil(float64(n)*progress - 1e-9))
	return min(max(c, 1), n)
}
