package interact

import "github.com/rileyhilliard/chartkit/pkg/scale"

// DefaultTooltipOffset is the gap between the anchor and the tooltip.
const DefaultTooltipOffset = 8.0

// Size is a measured width and height.
type Size struct {
	W, H float64
}

// Placement is where a tooltip box is drawn. Visible is false until the
// tooltip has been measured for the current anchor.
type Placement struct {
	X, Y    float64
	Visible bool
	Below   bool
}

// Tooltip positions a box near an anchor while keeping it inside the
// viewport. Placement is a two pass affair: the box is measured for the
// current anchor, then placed.
type Tooltip struct {
	Viewport scale.Rect
	Offset   float64

	anchorX, anchorY float64
	hasAnchor        bool
	size             Size
	measured         bool
}

// NewTooltip returns a tooltip confined to viewport.
func NewTooltip(viewport scale.Rect) *Tooltip {
	return &Tooltip{Viewport: viewport, Offset: DefaultTooltipOffset}
}

// SetAnchor moves the anchor. A new anchor invalidates the measurement.
func (t *Tooltip) SetAnchor(x, y float64) {
	if t.hasAnchor && x == t.anchorX && y == t.anchorY {
		return
	}
	t.anchorX, t.anchorY, t.hasAnchor = x, y, true
	t.measured = false
}

// Measure records the rendered size of the tooltip for the current anchor.
// Without an anchor there is nothing to measure against and the call is
// ignored.
func (t *Tooltip) Measure(s Size) {
	if !t.hasAnchor {
		return
	}
	t.size, t.measured = s, true
}

// Measured reports whether the tooltip has a size for the current anchor.
func (t *Tooltip) Measured() bool { return t.measured }

// Hide drops the anchor and the measurement.
func (t *Tooltip) Hide() {
	t.hasAnchor, t.measured = false, false
}

// Place computes the box position. The box is centred above the anchor;
// it shifts left or right by the amount it would overflow the viewport and
// flips below the anchor when it would overflow the top.
func (t *Tooltip) Place() Placement {
	if !t.hasAnchor || !t.measured {
		return Placement{}
	}
	vp := t.Viewport
	w, h := t.size.W, t.size.H

	p := Placement{
		X:       t.anchorX - w/2,
		Y:       t.anchorY - h - t.Offset,
		Visible: true,
	}
	if over := p.X + w - vp.Right(); over > 0 {
		p.X -= over
	}
	if p.X < vp.X {
		p.X = vp.X
	}
	if p.Y < vp.Y {
		p.Y = t.anchorY + t.Offset
		p.Below = true
	}
	return p
}
