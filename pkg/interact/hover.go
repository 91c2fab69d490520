package interact

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// SeriesValue is one crosshair dot: where a visible series sits at the
// hovered index.
type SeriesValue struct {
	Series int
	Name   string
	Y      float64
	Color  string
	Value  float64
	Item   data.Point
}

// Hover is the transient pointer state of a chart. Cartesian charts fill
// Index, X and Points; pie charts fill Slice. Slice is -1 when no slice is
// hovered.
type Hover struct {
	Active bool
	Index  int
	X      float64
	Points []SeriesValue
	Slice  int
}

// NewHover returns a cleared hover state.
func NewHover() Hover {
	return Hover{Slice: -1}
}

// Move snaps the pointer to the nearest data column of c and records the
// value of every visible series there. names and colors are indexed by
// series. It reports whether the pointer is over the plot; if not the state
// is cleared.
func (h *Hover) Move(x, y float64, c scale.Cartesian, names, colors []string) bool {
	idx, sx, ok := Snap(x, y, c.X, c.Rect)
	if !ok {
		h.Leave()
		return false
	}
	h.Active, h.Index, h.X, h.Slice = true, idx, sx, -1
	h.Points = h.Points[:0]
	for s, pts := range c.Series {
		if pts == nil || idx >= len(pts) {
			continue
		}
		p := pts[idx]
		h.Points = append(h.Points, SeriesValue{
			Series: s,
			Name:   at(names, s),
			Y:      p.Y,
			Color:  at(colors, s),
			Value:  p.Value,
			Item:   p.Item,
		})
	}
	return true
}

// MoveIndex hovers index i directly, as a radar chart does after resolving
// the pointer angle. values are the crosshair dots at i.
func (h *Hover) MoveIndex(i int, x float64, values []SeriesValue) {
	h.Active, h.Index, h.X, h.Slice = true, i, x, -1
	h.Points = append(h.Points[:0], values...)
}

// MoveSlice hovers the slice under the pointer, clearing the state when the
// pointer is over none.
func (h *Hover) MoveSlice(x, y float64, slices []Slice) bool {
	i := HitSlice(x, y, slices)
	if i < 0 {
		h.Leave()
		return false
	}
	h.Active, h.Slice, h.Index, h.X = true, i, i, 0
	h.Points = h.Points[:0]
	return true
}

// Leave clears every hover field.
func (h *Hover) Leave() {
	*h = Hover{Slice: -1, Points: h.Points[:0]}
}

// Nearest returns the crosshair dot closest to y, or false when there is
// none.
func (h Hover) Nearest(y float64) (SeriesValue, bool) {
	best, found := SeriesValue{}, false
	dist := math.Inf(1)
	for _, p := range h.Points {
		if d := math.Abs(p.Y - y); d < dist {
			best, dist, found = p, d, true
		}
	}
	return best, found
}

func at(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}
