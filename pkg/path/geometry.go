package path

import "github.com/rileyhilliard/chartkit/pkg/scale"

// Tops returns the plotted positions of projected points.
func Tops(points []scale.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

// Bases returns the closing edge of projected points: their x with the
// stacked base (or baseline) y.
func Bases(points []scale.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.BaseY}
	}
	return out
}
