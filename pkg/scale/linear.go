package scale

import "math"

// Headroom is the multiplicative padding applied above the largest value of
// line and area charts so the topmost point is not clipped.
const Headroom = 1.1

// DefaultTickCount is the number of axis ticks when none is requested.
const DefaultTickCount = 5

// Range is a closed value interval [Min, Max]. Ranges built by this package
// always have Max > Min.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min, or 1 for a degenerate range.
func (r Range) Span() float64 {
	s := r.Max - r.Min
	if s <= 0 || math.IsNaN(s) {
		return 1
	}
	return s
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ZeroRange computes a range that always includes 0: min(0, rawMin) to
// max(0, rawMax) x headroom. A headroom <= 0 means none. An empty or all-zero
// input yields [0, 1].
func ZeroRange(values []float64, headroom float64) Range {
	if headroom <= 0 {
		headroom = 1
	}
	lo, hi := extent(values)
	r := Range{Min: math.Min(0, lo), Max: math.Max(0, hi) * headroom}
	if r.Max <= r.Min {
		r.Max = r.Min + 1
	}
	return r
}

// FitRange computes the raw [min, max] of values with no zero baseline, as
// used by sparklines. A flat series is centred in a one unit range.
func FitRange(values []float64) Range {
	if len(values) == 0 {
		return Range{Min: 0, Max: 1}
	}
	lo, hi := extent(values)
	if hi <= lo {
		return Range{Min: lo - 0.5, Max: lo + 0.5}
	}
	return Range{Min: lo, Max: hi}
}

func extent(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Linear maps a value range onto a pixel interval: Range.Min lands on Lo and
// Range.Max on Hi. Lo may be greater than Hi (vertical axes grow upward).
type Linear struct {
	Range  Range
	Lo, Hi float64
}

// Vertical maps r onto the height of rect: Min at the bottom edge, Max at
// the top edge.
func Vertical(r Range, rect Rect) Linear {
	return Linear{Range: r, Lo: rect.Bottom(), Hi: rect.Y}
}

// Horizontal maps r onto the width of rect, left to right.
func Horizontal(r Range, rect Rect) Linear {
	return Linear{Range: r, Lo: rect.X, Hi: rect.Right()}
}

// Radial maps r onto [0, radius] for polar charts.
func Radial(r Range, radius float64) Linear {
	return Linear{Range: r, Lo: 0, Hi: radius}
}

// Map converts a value to its pixel position.
func (l Linear) Map(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return l.Lo + (v-l.Range.Min)/l.Range.Span()*(l.Hi-l.Lo)
}

// Invert converts a pixel position back to a value.
func (l Linear) Invert(p float64) float64 {
	d := l.Hi - l.Lo
	if d == 0 {
		return l.Range.Min
	}
	return l.Range.Min + (p-l.Lo)/d*l.Range.Span()
}

// Tick is one axis tick: its value and pixel position.
type Tick struct {
	Value float64
	Pos   float64
}

// Ticks returns n evenly spaced ticks from Range.Min to Range.Max inclusive,
// positioned with the same mapping as the data. n < 2 uses DefaultTickCount.
func (l Linear) Ticks(n int) []Tick {
	if n < 2 {
		n = DefaultTickCount
	}
	span := l.Range.Max - l.Range.Min
	if span <= 0 {
		return []Tick{{Value: l.Range.Min, Pos: l.Map(l.Range.Min)}}
	}
	ticks := make([]Tick, n)
	for i := 0; i < n; i++ {
		v := l.Range.Min + span*float64(i)/float64(n-1)
		ticks[i] = Tick{Value: v, Pos: l.Map(v)}
	}
	return ticks
}
