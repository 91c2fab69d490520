package path

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/scale"
)

const fullTurn = scale.FullTurn

// Arc returns a pie slice from start to end (radians, clockwise in screen
// space) around (cx, cy). With inner > 0 the path returns along the inner
// radius to form a ring segment; otherwise it closes through the centre.
// A span of a full turn or more is drawn as two half arcs, since a single
// SVG arc cannot start and end on the same point.
func Arc(cx, cy, start, end, outer, inner float64) string {
	span := end - start
	if outer <= 0 || !(span > 0) {
		return ""
	}
	inner = math.Max(0, math.Min(inner, outer))

	var b Builder
	if span >= fullTurn-1e-9 {
		circle(&b, cx, cy, start, outer, true)
		if inner > 0 {
			circle(&b, cx, cy, start, inner, false)
		}
		return b.String()
	}

	large := span > math.Pi
	x0, y0 := polar(cx, cy, outer, start)
	x1, y1 := polar(cx, cy, outer, end)
	b.MoveTo(x0, y0).ArcTo(outer, large, true, x1, y1)
	if inner > 0 {
		ix1, iy1 := polar(cx, cy, inner, end)
		ix0, iy0 := polar(cx, cy, inner, start)
		b.LineTo(ix1, iy1).ArcTo(inner, large, false, ix0, iy0)
	} else {
		b.LineTo(cx, cy)
	}
	return b.Close().String()
}

// Stroke returns an open arc of radius r from start to end, used for
// progress rings and gauges drawn with a stroke instead of a fill.
func Stroke(cx, cy, r, start, end float64) string {
	span := end - start
	if r <= 0 || !(span > 0) {
		return ""
	}
	var b Builder
	if span >= fullTurn-1e-9 {
		x0, y0 := polar(cx, cy, r, start)
		xm, ym := polar(cx, cy, r, start+math.Pi)
		return b.MoveTo(x0, y0).ArcTo(r, false, true, xm, ym).ArcTo(r, false, true, x0, y0).String()
	}
	x0, y0 := polar(cx, cy, r, start)
	x1, y1 := polar(cx, cy, r, end)
	return b.MoveTo(x0, y0).ArcTo(r, span > math.Pi, true, x1, y1).String()
}

// circle appends a closed circle subpath made of two half arcs.
func circle(b *Builder, cx, cy, start, r float64, clockwise bool) {
	x0, y0 := polar(cx, cy, r, start)
	xm, ym := polar(cx, cy, r, start+math.Pi)
	b.MoveTo(x0, y0).ArcTo(r, false, clockwise, xm, ym).ArcTo(r, false, clockwise, x0, y0).Close()
}

func polar(cx, cy, r, angle float64) (float64, float64) {
	return scale.Polar(cx, cy, r, angle)
}
