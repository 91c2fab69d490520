package path

// Style selects how consecutive points are joined.
type Style int

const (
	Curved Style = iota
	Straight
	Stepped
)

// String returns the config name of the style.
func (s Style) String() string {
	switch s {
	case Straight:
		return "straight"
	case Stepped:
		return "stepped"
	default:
		return "curved"
	}
}

// ParseStyle maps a config name to a Style. Unknown names fall back to
// Curved.
func ParseStyle(s string) Style {
	switch s {
	case "straight", "linear", "line":
		return Straight
	case "stepped", "step":
		return Stepped
	default:
		return Curved
	}
}

// Line returns the path through points joined with style. Fewer than two
// points yield an empty path; two curved points yield a straight segment.
func Line(points []Point, style Style) string {
	if len(points) < 2 {
		return ""
	}
	var b Builder
	b.MoveTo(points[0].X, points[0].Y)
	join(&b, points, style)
	return b.String()
}

// Polygon returns a closed straight path through points, as radar series
// and grid rings use.
func Polygon(points []Point) string {
	if len(points) < 2 {
		return ""
	}
	var b Builder
	b.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.LineTo(p.X, p.Y)
	}
	return b.Close().String()
}

// join appends the segments from points[0] to the last point, assuming the
// pen already sits on points[0].
func join(b *Builder, points []Point, style Style) {
	switch {
	case style == Stepped:
		for i := 1; i < len(points); i++ {
			b.LineTo(points[i].X, points[i-1].Y)
			b.LineTo(points[i].X, points[i].Y)
		}
	case style == Curved && len(points) > 2:
		for _, s := range MonotoneSegments(points) {
			b.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.P1.X, s.P1.Y)
		}
	default:
		for _, p := range points[1:] {
			b.LineTo(p.X, p.Y)
		}
	}
}
