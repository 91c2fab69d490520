package anim

import (
	"sync"
	"time"
)

// Default timings.
const (
	DefaultDuration  = 800 * time.Millisecond
	DefaultStepDelay = 50 * time.Millisecond
)

// Mode selects how progress advances.
type Mode int

const (
	// Timed advances linearly from 0 to 1 over the duration.
	Timed Mode = iota
	// Step holds 0 until the delay elapses, then jumps to 1.
	Step
	// Off pins progress at 1.
	Off
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case Step:
		return "step"
	case Off:
		return "off"
	default:
		return "timed"
	}
}

// ParseMode maps a config name to a Mode, falling back to Timed.
func ParseMode(s string) Mode {
	switch s {
	case "step":
		return Step
	case "off", "none", "false":
		return Off
	default:
		return Timed
	}
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock injects the time source.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithDuration sets the Timed duration or the Step delay.
func WithDuration(dur time.Duration) Option {
	return func(d *Driver) {
		if dur > 0 {
			d.duration = dur
		}
	}
}

// Driver owns the animation progress of one chart instance.
type Driver struct {
	mu       sync.Mutex
	mode     Mode
	duration time.Duration
	clock    Clock
	start    time.Time
	progress float64
	running  bool
	stopped  bool

	src     FrameSource
	onFrame func(progress float64)
	sub     *subscription
}

// New returns a driver in the given mode. Progress starts at 1 until Start
// is called so an unmounted chart renders fully.
func New(mode Mode, opts ...Option) *Driver {
	d := &Driver{mode: mode, clock: SystemClock{}, progress: 1}
	if mode == Step {
		d.duration = DefaultStepDelay
	} else {
		d.duration = DefaultDuration
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mode returns the driver's mode.
func (d *Driver) Mode() Mode { return d.mode }

// Start begins the reveal: progress drops to 0 and the clock starts. With
// Off the progress stays at 1.
func (d *Driver) Start() {
	d.restart()
}

// Reset restarts the reveal after the data changed.
func (d *Driver) Reset() {
	d.restart()
}

func (d *Driver) restart() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.start = d.clock.Now()
	if d.mode == Off {
		d.progress, d.running = 1, false
	} else {
		d.progress, d.running = 0, true
	}
	resubscribe := d.running && d.src != nil && d.sub == nil
	d.mu.Unlock()

	if resubscribe {
		d.subscribe()
	}
}

// Frame advances progress to now and reports whether more frames are
// needed. After Stop it changes nothing.
func (d *Driver) Frame(now time.Time) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || !d.running {
		return d.progress, false
	}
	elapsed := now.Sub(d.start)
	switch d.mode {
	case Step:
		if elapsed >= d.duration {
			d.progress = 1
		}
	default:
		p := float64(elapsed) / float64(d.duration)
		d.progress = min(max(p, d.progress), 1)
	}
	if d.progress >= 1 {
		d.running = false
	}
	return d.progress, d.running
}

// Progress returns the last computed progress.
func (d *Driver) Progress() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progress
}

// Running reports whether the reveal is still in flight.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Attach subscribes the driver to src and calls onFrame with the new
// progress on every frame. The subscription ends by itself once progress
// reaches 1, and is re-established by Reset.
func (d *Driver) Attach(src FrameSource, onFrame func(progress float64)) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	prev := d.sub.cancelFunc()
	d.src, d.onFrame, d.sub = src, onFrame, nil
	running := d.running
	d.mu.Unlock()

	prev()
	if running {
		d.subscribe()
	}
}

// subscription is one live FrameSource registration. cancel is set under
// the driver's lock once Subscribe returns.
type subscription struct {
	cancel func()
}

func (s *subscription) cancelFunc() func() {
	if s == nil || s.cancel == nil {
		return func() {}
	}
	return s.cancel
}

func (d *Driver) subscribe() {
	d.mu.Lock()
	if d.src == nil || d.stopped || d.sub != nil {
		d.mu.Unlock()
		return
	}
	src, sub := d.src, &subscription{}
	d.sub = sub
	d.mu.Unlock()

	cancel := src.Subscribe(func(now time.Time) { d.deliver(sub, now) })

	d.mu.Lock()
	sub.cancel = cancel
	stale := d.sub != sub
	d.mu.Unlock()
	if stale {
		cancel()
	}
}

// deliver handles one frame for sub. Frames of a replaced or stopped
// subscription are dropped.
func (d *Driver) deliver(sub *subscription, now time.Time) {
	p, more := d.Frame(now)

	d.mu.Lock()
	if d.stopped || d.sub != sub {
		d.mu.Unlock()
		return
	}
	fn := d.onFrame
	done := func() {}
	if !more {
		d.sub, done = nil, sub.cancelFunc()
	}
	d.mu.Unlock()

	if fn != nil {
		fn(p)
	}
	done()
}

// Stop unmounts the driver: the subscription is cancelled and any frame
// delivered afterwards is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	d.stopped, d.running = true, false
	cancel := d.sub.cancelFunc()
	d.sub, d.onFrame = nil, nil
	d.mu.Unlock()

	cancel()
}
