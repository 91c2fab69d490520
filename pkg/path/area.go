package path

// Area returns the filled region under top. The outline follows top with
// style, then returns along base in reverse order and closes.
//
// Unstacked areas close straight along the baseline. Stacked areas trace
// the reversed base points with the same style so the lower edge matches
// the stroke of the series below; the curve is recomputed for the reversed
// sequence rather than reusing the top curve's tangents.
func Area(top, base []Point, style Style, stacked bool) string {
	if len(top) < 2 {
		return ""
	}
	var b Builder
	b.MoveTo(top[0].X, top[0].Y)
	join(&b, top, style)

	if len(base) == 0 {
		return b.Close().String()
	}
	reversed := make([]Point, len(base))
	for i, p := range base {
		reversed[len(base)-1-i] = p
	}
	b.LineTo(reversed[0].X, reversed[0].Y)
	if stacked {
		join(&b, reversed, style)
	} else {
		last := reversed[len(reversed)-1]
		b.LineTo(last.X, last.Y)
	}
	return b.Close().String()
}

// Baseline returns len(top) points sharing top's x coordinates at height y.
func Baseline(top []Point, y float64) []Point {
	out := make([]Point, len(top))
	for i, p := range top {
		out[i] = Point{X: p.X, Y: y}
	}
	return out
}
