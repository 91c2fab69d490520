// Package interact maps pointer positions back onto chart elements and
// keeps the transient hover, tooltip and legend state of a chart instance.
package interact

import (
	"math"

	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// Snap returns the data index nearest to pointer x and the x of that data
// column. The index is round-half-up of (x-start)/step, clamped to
// [0, n-1]. ok is false when the pointer is outside rect or there is no data.
func Snap(x, y float64, ix scale.Index, rect scale.Rect) (index int, snapX float64, ok bool) {
	if ix.N <= 0 || !rect.Contains(x, y) {
		return 0, 0, false
	}
	if ix.N == 1 || ix.Step == 0 {
		return 0, ix.Pos(0), true
	}
	i := int(math.Floor((x-ix.Start)/ix.Step + 0.5))
	i = min(max(i, 0), ix.N-1)
	return i, ix.Pos(i), true
}

// SnapAngle returns the category nearest to angle out of n categories laid
// out clockwise from the top, or -1 when n is 0.
func SnapAngle(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	step := scale.FullTurn / float64(n)
	rel := normalize(angle - scale.TopAngle)
	return int(math.Floor(rel/step+0.5)) % n
}

// AngleAt returns the screen-space angle of (x, y) around (cx, cy).
func AngleAt(cx, cy, x, y float64) float64 {
	return math.Atan2(y-cy, x-cx)
}

// normalize folds an angle into [0, 2π).
func normalize(a float64) float64 {
	a = math.Mod(a, scale.FullTurn)
	if a < 0 {
		a += scale.FullTurn
	}
	return a
}
