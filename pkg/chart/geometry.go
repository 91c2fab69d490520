package chart

import (
	"github.com/rileyhilliard/chartkit/pkg/interact"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// State is the per-instance input to Compute besides data and options.
type State struct {
	// Hidden masks series (or pie slices, radial rings) out of the chart.
	Hidden []bool
	// Hover is the current pointer state.
	Hover interact.Hover
	// Progress is the animation progress in [0, 1].
	Progress float64
}

// FullState is a State with nothing hidden, nothing hovered and the
// animation finished.
func FullState() State {
	return State{Hover: interact.NewHover(), Progress: 1}
}

// Geometry is everything needed to draw one frame of a chart. Only the
// fields relevant to the chart's kind are filled.
type Geometry struct {
	Kind     Kind
	Variant  Variant
	Width    float64
	Height   float64
	Plot     scale.Rect
	Progress float64
	// Horizontal marks a transposed bar chart: Cartesian is then laid out
	// with categories along x of a rect rotated onto the plot.
	Horizontal bool

	// Cartesian is the projection behind area, bar and sparkline charts.
	Cartesian *scale.Cartesian

	Grid    []Segment
	XLabels []Label
	YLabels []Label

	Series    []SeriesShape
	Bars      []BarShape
	Slices    []SliceShape
	Rings     []RingShape
	Needle    *Segment
	Markers   []Marker
	Reference *Segment

	// Polar charts: the centre and outer radius of the plot.
	CX, CY float64
	Radius float64

	// Radar chrome.
	RadarGrid []string
	Spokes    []Segment

	Gradients []Gradient
	Legend    []LegendItem
	Crosshair *Crosshair
	Tooltip   *TooltipBox
	Center    *Label
}

// Empty reports whether the geometry plots no data.
func (g Geometry) Empty() bool {
	return len(g.Series) == 0 && len(g.Bars) == 0 && len(g.Slices) == 0 &&
		len(g.Rings) == 0 && len(g.Markers) == 0
}

// Segment is a straight line.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Anchor is an SVG text-anchor value.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Label is a positioned piece of text.
type Label struct {
	X, Y   float64
	Text   string
	Anchor Anchor
}

// SeriesShape is the drawn form of one visible series: its stroke, its
// fill and its points.
type SeriesShape struct {
	Series int
	Name   string
	Color  string
	// Line is the stroke path; Fill the closed area path (area and radar).
	Line string
	Fill string
	// FillRef names a gradient in Geometry.Gradients, or is empty.
	FillRef     string
	FillOpacity float64
	Points      []scale.Point
}

// BarShape is one bar segment.
type BarShape struct {
	Series int
	Index  int
	X, Y   float64
	W, H   float64
	Radius float64
	Value  float64
	Color  string
	// Top marks the segment that carries the rounded corners.
	Top bool
	D   string
}

// SliceShape is one pie slice.
type SliceShape struct {
	Index   int
	Name    string
	Value   float64
	Percent float64
	Start   float64
	End     float64
	Inner   float64
	Outer   float64
	CX, CY  float64
	Color   string
	Hovered bool
	D       string
}

// Hit returns the hit area of the slice.
func (s SliceShape) Hit() interact.Slice {
	return interact.Slice{CX: s.CX, CY: s.CY, Start: s.Start, End: s.End, Inner: s.Inner, Outer: s.Outer}
}

// RingShape is one radial progress ring.
type RingShape struct {
	Index    int
	Name     string
	Value    float64
	Max      float64
	Fraction float64
	CX, CY   float64
	Radius   float64
	Width    float64
	Start    float64
	Sweep    float64
	Color    string
	Track    string
	Arc      string
	Hovered  bool
}

// Hit returns the hit area of the ring: its whole track.
func (r RingShape) Hit() interact.Slice {
	return interact.Slice{
		CX: r.CX, CY: r.CY,
		Start: r.Start, End: r.Start + r.Sweep,
		Inner: r.Radius - r.Width/2, Outer: r.Radius + r.Width/2,
	}
}

// MarkerKind tells what a marker highlights.
type MarkerKind int

const (
	MarkerDot MarkerKind = iota
	MarkerMin
	MarkerMax
)

// Marker is a point highlight.
type Marker struct {
	Kind   MarkerKind
	Index  int
	Series int
	X, Y   float64
	R      float64
	Color  string
}

// GradientStop is one color stop of a vertical gradient.
type GradientStop struct {
	Offset  uint8
	Color   string
	Opacity float64
}

// Gradient is a vertical linear gradient definition.
type Gradient struct {
	ID    string
	Stops []GradientStop
}

// LegendItem is one legend entry with its hit box.
type LegendItem struct {
	Index  int
	Name   string
	Color  string
	Hidden bool
	X, Y   float64
	W, H   float64
}

// Contains reports whether (x, y) falls on the entry.
func (l LegendItem) Contains(x, y float64) bool {
	return x >= l.X && x <= l.X+l.W && y >= l.Y && y <= l.Y+l.H
}

// Crosshair is the hover guide of cartesian charts: a vertical line (or a
// band for bar charts) and one dot per visible series.
type Crosshair struct {
	Line Segment
	Band *scale.Rect
	Dots []Marker
}

// TooltipBox is a placed tooltip.
type TooltipBox struct {
	X, Y  float64
	W, H  float64
	Lines []string
	Below bool
}
