package path

// Edge names the side of a bar that carries the rounded corners.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Bar returns a rectangle whose two corners on edge are rounded with
// radius r. The radius is clamped so the corners never overlap; r <= 0
// gives a plain rectangle. An empty rectangle yields an empty path.
func Bar(x, y, w, h, r float64, edge Edge) string {
	if !(w > 0) || !(h > 0) {
		return ""
	}
	var b Builder
	if edge == EdgeTop || edge == EdgeBottom {
		r = min(r, w/2, h)
	} else {
		r = min(r, h/2, w)
	}
	if r <= 0 {
		return b.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close().String()
	}

	switch edge {
	case EdgeBottom:
		b.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h-r).
			ArcTo(r, false, true, x+w-r, y+h).LineTo(x+r, y+h).
			ArcTo(r, false, true, x, y+h-r)
	case EdgeRight:
		b.MoveTo(x, y).LineTo(x+w-r, y).
			ArcTo(r, false, true, x+w, y+r).LineTo(x+w, y+h-r).
			ArcTo(r, false, true, x+w-r, y+h).LineTo(x, y+h)
	case EdgeLeft:
		b.MoveTo(x+w, y).LineTo(x+w, y+h).LineTo(x+r, y+h).
			ArcTo(r, false, true, x, y+h-r).LineTo(x, y+r).
			ArcTo(r, false, true, x+r, y)
	default:
		b.MoveTo(x, y+h).LineTo(x, y+r).
			ArcTo(r, false, true, x+r, y).LineTo(x+w-r, y).
			ArcTo(r, false, true, x+w, y+r).LineTo(x+w, y+h)
	}
	return b.Close().String()
}
