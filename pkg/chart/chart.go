package chart

import (
	"io"
	"sync"
	"time"

	"github.com/rileyhilliard/chartkit/pkg/anim"
	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/interact"
	"github.com/rileyhilliard/chartkit/pkg/palette"
	"github.com/rileyhilliard/chartkit/pkg/scale"
)

// Compute dispatches to the composition of o.Kind.
func Compute(items []data.Point, o Options, st State) Geometry {
	switch o.Kind {
	case Bar:
		return ComputeBar(items, o, st)
	case Pie:
		return ComputePie(items, o, st)
	case Radar:
		return ComputeRadar(items, o, st)
	case Radial:
		return ComputeRadial(items, o, st)
	case Sparkline:
		return ComputeSparkline(items, o, st)
	default:
		return ComputeArea(items, o, st)
	}
}

// Chart is one chart instance: its data, options and the presentation
// state that pointer events and animation frames mutate. All methods are
// safe for concurrent use.
type Chart struct {
	mu      sync.Mutex
	opts    Options
	items   []data.Point
	legend  *interact.Legend
	hover   interact.Hover
	driver  *anim.Driver
	toggled []toggle
}

type toggle struct {
	index  int
	active bool
}

// New returns a chart over items. The animation driver is configured from
// the options; extra driver options (a fake clock in tests) are applied
// after.
func New(o Options, items []data.Point, driverOpts ...anim.Option) *Chart {
	o = o.normalize()
	c := &Chart{
		opts:  o,
		items: items,
		hover: interact.NewHover(),
	}
	c.driver = anim.New(o.AnimationMode(), append([]anim.Option{anim.WithDuration(o.Duration)}, driverOpts...)...)
	c.legend = interact.NewLegend(c.legendNames())
	c.legend.Interactive = o.Interactive
	c.legend.OnToggle = func(i int, active bool) {
		c.toggled = append(c.toggled, toggle{index: i, active: active})
	}
	return c
}

// legendNames returns the legend entries: data items for pie and radial
// charts, series otherwise.
func (c *Chart) legendNames() []string {
	switch c.opts.Kind {
	case Pie, Radial:
		return data.Labels(c.items, c.opts.NameKey)
	default:
		return seriesNames(c.opts.series())
	}
}

// Options returns the chart options.
func (c *Chart) Options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Kind returns the chart kind.
func (c *Chart) Kind() Kind {
	return c.Options().Kind
}

// SetData replaces the data and restarts the entrance animation. Hidden
// entries stay hidden when their name survives.
func (c *Chart) SetData(items []data.Point) {
	c.mu.Lock()
	c.items = items
	c.legend.Sync(c.legendNames())
	c.hover.Leave()
	c.mu.Unlock()

	c.driver.Reset()
}

// SetSize changes the drawing size.
func (c *Chart) SetSize(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Width, c.opts.Height = width, height
	c.opts = c.opts.normalize()
	c.hover.Leave()
}

// Hide hides the named series or slices without firing OnToggle.
func (c *Chart) Hide(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.legend.HideByName(names...)
}

// Mount starts the entrance animation on src; onFrame runs after every
// frame, typically to schedule a redraw.
func (c *Chart) Mount(src anim.FrameSource, onFrame func(progress float64)) {
	c.driver.Start()
	c.driver.Attach(src, onFrame)
}

// Start begins the entrance animation without a frame source; the caller
// drives it through Advance.
func (c *Chart) Start() {
	c.driver.Start()
}

// Advance moves the animation to now and reports whether more frames are
// needed.
func (c *Chart) Advance(now time.Time) (float64, bool) {
	return c.driver.Frame(now)
}

// Unmount stops the animation. Frames arriving afterwards are ignored.
func (c *Chart) Unmount() {
	c.driver.Stop()
}

// Progress returns the current animation progress.
func (c *Chart) Progress() float64 {
	return c.driver.Progress()
}

// Legend returns the legend entries.
func (c *Chart) Legend() []interact.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.legend.Entries()
}

// Hover returns a copy of the hover state.
func (c *Chart) Hover() interact.Hover {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := c.hover
	h.Points = append([]interact.SeriesValue(nil), c.hover.Points...)
	return h
}

// State returns the current state snapshot.
func (c *Chart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Chart) stateLocked() State {
	h := c.hover
	h.Points = append([]interact.SeriesValue(nil), c.hover.Points...)
	return State{Hidden: c.legend.Hidden(), Hover: h, Progress: c.driver.Progress()}
}

// Geometry computes the current frame.
func (c *Chart) Geometry() Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Compute(c.items, c.opts, c.stateLocked())
}

// PointerMove updates the hover state for a pointer at (x, y) in chart
// pixels and reports whether something is hovered.
func (c *Chart) PointerMove(x, y float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.stateLocked()
	st.Hover = interact.NewHover()
	g := Compute(c.items, c.opts, st)

	switch c.opts.Kind {
	case Pie:
		hits := make([]interact.Slice, len(g.Slices))
		for i, s := range g.Slices {
			hits[i] = s.Hit()
		}
		return c.hover.MoveSlice(x, y, hits)
	case Radial:
		hits := make([]interact.Slice, len(g.Rings))
		for i, r := range g.Rings {
			hits[i] = r.Hit()
		}
		if !c.hover.MoveSlice(x, y, hits) {
			return false
		}
		c.hover.Slice = g.Rings[c.hover.Slice].Index
		c.hover.Index = c.hover.Slice
		return true
	case Radar:
		i, ok := radarHover(g, x, y)
		if !ok {
			c.hover.Leave()
			return false
		}
		var values []interact.SeriesValue
		for _, s := range g.Series {
			p := s.Points[i]
			values = append(values, interact.SeriesValue{Series: s.Series, Name: s.Name, Y: p.Y, Color: s.Color, Value: p.Value, Item: p.Item})
		}
		c.hover.MoveIndex(i, 0, values)
		return true
	}

	if g.Cartesian == nil {
		c.hover.Leave()
		return false
	}
	series := c.opts.series()
	colors := palette.Resolve(c.opts.Color).Colors(len(series))
	if g.Kind == Sparkline {
		series = series[:1]
	}
	if g.Horizontal {
		x, y = y-g.Plot.Y, g.Plot.X+g.Plot.W-x
	}
	return c.hover.Move(x, y, *g.Cartesian, seriesNames(series), colors)
}

// PointerLeave clears the hover state.
func (c *Chart) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hover.Leave()
}

// Toggle flips the visibility of legend entry i and fires OnToggle. It
// reports whether anything changed.
func (c *Chart) Toggle(i int) bool {
	c.mu.Lock()
	changed := c.legend.Toggle(i)
	if changed {
		c.hover.Leave()
	}
	fired := c.toggled
	c.toggled = nil
	cb := c.opts.OnToggle
	c.mu.Unlock()

	if cb != nil {
		for _, t := range fired {
			cb(t.index, t.active)
		}
	}
	return changed
}

// Click toggles the legend entry under (x, y), if any.
func (c *Chart) Click(x, y float64) bool {
	for _, item := range c.Geometry().Legend {
		if item.Contains(x, y) {
			return c.Toggle(item.Index)
		}
	}
	return false
}

// Render writes the current frame as an SVG document.
func (c *Chart) Render(w io.Writer) error {
	c.mu.Lock()
	o := c.opts
	c.mu.Unlock()
	return WriteSVG(w, c.Geometry(), o)
}

// PlotRect returns the plot rectangle of the current layout.
func (c *Chart) PlotRect() scale.Rect {
	return c.Geometry().Plot
}
