package scale

import "math"

const (
	// TopAngle points straight up in SVG coordinates (y grows downward).
	TopAngle = -math.Pi / 2
	// FullTurn is a complete revolution in radians.
	FullTurn = 2 * math.Pi
)

// Polar converts an angle (radians, clockwise from +x in screen space) and
// radius around (cx, cy) to Cartesian coordinates.
func Polar(cx, cy, radius, angle float64) (float64, float64) {
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// CategoryAngle returns the angle of category i out of n, starting at the
// top and going clockwise.
func CategoryAngle(i, n int) float64 {
	return TopAngle + FullTurn*float64(i)/float64(max(n, 1))
}
