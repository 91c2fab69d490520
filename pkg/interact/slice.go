package interact

import "math"

// Slice is the hit area of one pie slice or radial ring: the ring sector
// between Inner and Outer radius spanning [Start, End) clockwise around
// (CX, CY). Hidden slices have Start == End and never hit.
type Slice struct {
	CX, CY     float64
	Start, End float64
	Inner      float64
	Outer      float64
}

// Contains reports whether (x, y) lies inside the sector.
func (s Slice) Contains(x, y float64) bool {
	span := s.End - s.Start
	if !(span > 0) || s.Outer <= 0 {
		return false
	}
	d := math.Hypot(x-s.CX, y-s.CY)
	if d > s.Outer || d < s.Inner {
		return false
	}
	if span >= 2*math.Pi {
		return true
	}
	return normalize(AngleAt(s.CX, s.CY, x, y)-s.Start) < span
}

// HitSlice returns the index of the first slice containing (x, y), or -1.
func HitSlice(x, y float64, slices []Slice) int {
	for i, s := range slices {
		if s.Contains(x, y) {
			return i
		}
	}
	return -1
}
