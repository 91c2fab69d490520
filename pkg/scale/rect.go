package scale

// Default space reserved around the plot for axes and legends, in pixels.
const (
	DefaultYAxisWidth   = 40.0
	DefaultXAxisHeight  = 30.0
	DefaultLegendHeight = 28.0
	DefaultLegendWidth  = 100.0
)

// Side names the edge of the canvas a legend band is attached to.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns the config name of the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// ParseSide maps a config name to a Side, falling back to bottom.
func ParseSide(s string) Side {
	switch s {
	case "top":
		return SideTop
	case "left":
		return SideLeft
	case "right":
		return SideRight
	case "none":
		return SideNone
	default:
		return SideBottom
	}
}

// Rect is a pixel rectangle. Y grows downward, as in SVG.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the middle of the rectangle.
func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Inset shrinks the rectangle by d on every side, never below zero size.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// Reserve describes which bands are carved out of the canvas before plotting.
type Reserve struct {
	YAxis       bool
	YAxisWidth  float64
	XAxis       bool
	XAxisHeight float64
	Legend      Side
	LegendSize  float64
}

// DefaultReserve reserves both axes and no legend.
func DefaultReserve() Reserve {
	return Reserve{
		YAxis:       true,
		YAxisWidth:  DefaultYAxisWidth,
		XAxis:       true,
		XAxisHeight: DefaultXAxisHeight,
	}
}

// Layout computes the plot rectangle for a canvas of width x height.
// plotWidth = width - (YAxis ? YAxisWidth : 0), and likewise for the
// height with the x axis band; a legend band is removed from its side.
func Layout(width, height float64, r Reserve) Rect {
	rect := Rect{W: nonNegative(width), H: nonNegative(height)}
	if r.YAxis {
		w := r.YAxisWidth
		if w <= 0 {
			w = DefaultYAxisWidth
		}
		rect.X += w
		rect.W -= w
	}
	if r.XAxis {
		h := r.XAxisHeight
		if h <= 0 {
			h = DefaultXAxisHeight
		}
		rect.H -= h
	}

	switch r.Legend {
	case SideTop, SideBottom:
		size := r.LegendSize
		if size <= 0 {
			size = DefaultLegendHeight
		}
		if r.Legend == SideTop {
			rect.Y += size
		}
		rect.H -= size
	case SideLeft, SideRight:
		size := r.LegendSize
		if size <= 0 {
			size = DefaultLegendWidth
		}
		if r.Legend == SideLeft {
			rect.X += size
		}
		rect.W -= size
	}

	rect.W = nonNegative(rect.W)
	rect.H = nonNegative(rect.H)
	return rect
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
