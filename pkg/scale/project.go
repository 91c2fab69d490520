package scale

import "github.com/rileyhilliard/chartkit/pkg/data"

// Point is the pixel-space projection of one (series, index) pair.
// StackedBase is the cumulative value of the visible series below this one
// (0 outside stacked layouts) and BaseY its pixel position, which closes the
// bottom edge of a stacked area or bar.
type Point struct {
	X, Y        float64
	Value       float64
	Index       int
	Series      int
	StackedBase float64
	BaseY       float64
	Item        data.Point
}

// Mode selects how series values combine.
type Mode int

const (
	ModeLinear Mode = iota
	ModeStacked
	ModePolar
)

// ProjectOptions tunes a Cartesian projection.
type ProjectOptions struct {
	Mode     Mode
	Headroom float64
	// Bands centres each index in an equal slot instead of spanning the
	// plot edge to edge.
	Bands bool
	// Fit fits the range to the data instead of anchoring it at zero.
	Fit bool
	// Include lists values that must fall inside the range (reference lines).
	Include []float64
}

// Cartesian is the projected geometry of a set of series on a plot rect.
// Series holds one slice per input series; hidden series are nil.
type Cartesian struct {
	Rect   Rect
	Range  Range
	X      Index
	Y      Linear
	Series [][]Point
	Stack  *Stacked
}

// Project maps every visible series onto rect. Hidden series do not take
// part in the range, so toggling one rescales the axis. An empty data
// sequence yields empty per-series slices and a [0, 1] range.
func Project(items []data.Point, series []data.Series, hidden []bool, rect Rect, opts ProjectOptions) Cartesian {
	visible := Visible(hidden, len(series))
	values := make([][]float64, len(series))
	for s, sr := range series {
		values[s] = sr.Values(items)
	}

	c := Cartesian{Rect: rect, Series: make([][]Point, len(series))}

	var extent []float64
	if opts.Mode == ModeStacked {
		st := Stack(values, visible)
		c.Stack = &st
		extent = st.Extent(visible)
	} else {
		for s, row := range values {
			if visible[s] {
				extent = append(extent, row...)
			}
		}
	}
	if len(extent) > 0 {
		extent = append(extent, opts.Include...)
	}

	if opts.Fit {
		c.Range = FitRange(extent)
	} else {
		c.Range = ZeroRange(extent, opts.Headroom)
	}
	c.Y = Vertical(c.Range, rect)
	if opts.Bands {
		c.X = Bands(len(items), rect.X, rect.Right())
	} else {
		c.X = Points(len(items), rect.X, rect.Right())
	}

	for s := range series {
		if !visible[s] {
			continue
		}
		pts := make([]Point, len(items))
		for i, item := range items {
			v := values[s][i]
			top, base := v, c.baseline()
			if c.Stack != nil {
				top, base = c.Stack.Tops[s][i], c.Stack.Bases[s][i]
			}
			pts[i] = Point{
				X:      c.X.Pos(i),
				Y:      c.Y.Map(top),
				Value:  v,
				Index:  i,
				Series: s,
				BaseY:  c.Y.Map(base),
				Item:   item,
			}
			if c.Stack != nil {
				pts[i].StackedBase = base
			}
		}
		c.Series[s] = pts
	}
	return c
}

// baseline is the value the unstacked fill closes against.
func (c Cartesian) baseline() float64 {
	if c.Range.Min > 0 {
		return c.Range.Min
	}
	if c.Range.Max < 0 {
		return c.Range.Max
	}
	return 0
}

// BaselineY returns the pixel y of the zero line (or the nearest range edge).
func (c Cartesian) BaselineY() float64 {
	return c.Y.Map(c.baseline())
}

// Len returns the number of data indices.
func (c Cartesian) Len() int {
	return c.X.N
}

// Visible converts a hidden mask into a visibility mask of length n.
func Visible(hidden []bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = i >= len(hidden) || !hidden[i]
	}
	return out
}
