package path

// Segment is one cubic Bézier piece of a monotone curve.
type Segment struct {
	P0, C1, C2, P1 Point
}

// At evaluates the segment at t in [0, 1].
func (s Segment) At(t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*s.P0.X + b*s.C1.X + c*s.C2.X + d*s.P1.X,
		Y: a*s.P0.Y + b*s.C1.Y + c*s.C2.Y + d*s.P1.Y,
	}
}

// MonotoneSegments returns the cubic segments of the monotone interpolation
// through points.
//
// Interior tangents are the harmonic mean of the neighbouring secants, or 0
// when the secants change sign; endpoints take their single secant. Control
// points sit at a third of each horizontal span, offset by tangent*dx/3.
// With harmonic-mean tangents bounded by twice the smaller secant, both
// control points stay between the segment's endpoints, so the curve never
// overshoots a monotonic run.
func MonotoneSegments(points []Point) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	tangents := monotoneTangents(points)
	segs := make([]Segment, n-1)
	for i := 0; i < n-1; i++ {
		p0, p1 := points[i], points[i+1]
		dx := (p1.X - p0.X) / 3
		segs[i] = Segment{
			P0: p0,
			C1: Point{X: p0.X + dx, Y: p0.Y + tangents[i]*dx},
			C2: Point{X: p1.X - dx, Y: p1.Y - tangents[i+1]*dx},
			P1: p1,
		}
	}
	return segs
}

func monotoneTangents(points []Point) []float64 {
	n := len(points)
	secants := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := points[i+1].X - points[i].X
		if dx != 0 {
			secants[i] = (points[i+1].Y - points[i].Y) / dx
		}
	}

	tangents := make([]float64, n)
	tangents[0] = secants[0]
	tangents[n-1] = secants[n-2]
	for i := 1; i < n-1; i++ {
		l, r := secants[i-1], secants[i]
		if l*r <= 0 {
			continue
		}
		tangents[i] = 2 / (1/l + 1/r)
	}
	return tangents
}
