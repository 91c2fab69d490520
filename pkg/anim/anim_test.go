package anim

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestParseMode(t *testing.T) {
	assert.Equal(t, Step, ParseMode("step"))
	assert.Equal(t, Off, ParseMode("off"))
	assert.Equal(t, Timed, ParseMode("timed"))
	assert.Equal(t, Timed, ParseMode("bouncy"))
	assert.Equal(t, "step", Step.String())
}

func TestDriver_Timed(t *testing.T) {
	clock := NewFakeClock(epoch)
	d := New(Timed, WithClock(clock))

	assert.Equal(t, 1.0, d.Progress(), "unstarted driver renders fully")
	d.Start()
	assert.Equal(t, 0.0, d.Progress())
	assert.True(t, d.Running())

	tests := []struct {
		at   time.Duration
		want float64
		more bool
	}{
		{0, 0, true},
		{200 * time.Millisecond, 0.25, true},
		{400 * time.Millisecond, 0.5, true},
		{800 * time.Millisecond, 1, false},
		{2 * time.Second, 1, false},
	}
	for _, tt := range tests {
		p, more := d.Frame(epoch.Add(tt.at))
		assert.InDelta(t, tt.want, p, 1e-9, "at %v", tt.at)
		assert.Equal(t, tt.more, more, "at %v", tt.at)
	}
}

func TestDriver_ProgressNeverDecreases(t *testing.T) {
	clock := NewFakeClock(epoch)
	d := New(Timed, WithClock(clock), WithDuration(time.Second))
	d.Start()

	p1, _ := d.Frame(epoch.Add(600 * time.Millisecond))
	p2, _ := d.Frame(epoch.Add(300 * time.Millisecond))
	assert.InDelta(t, 0.6, p1, 1e-9)
	assert.Equal(t, p1, p2)
}

func TestDriver_Step(t *testing.T) {
	clock := NewFakeClock(epoch)
	d := New(Step, WithClock(clock))
	d.Start()

	p, more := d.Frame(epoch.Add(49 * time.Millisecond))
	assert.Equal(t, 0.0, p)
	assert.True(t, more)

	p, more = d.Frame(epoch.Add(DefaultStepDelay))
	assert.Equal(t, 1.0, p)
	assert.False(t, more)
}

func TestDriver_OffIsPinned(t *testing.T) {
	d := New(Off, WithClock(NewFakeClock(epoch)))
	d.Start()
	assert.Equal(t, 1.0, d.Progress())
	assert.False(t, d.Running())

	p, more := d.Frame(epoch)
	assert.Equal(t, 1.0, p)
	assert.False(t, more)
}

func TestDriver_ResetRestartsClock(t *testing.T) {
	clock := NewFakeClock(epoch)
	d := New(Timed, WithClock(clock))
	d.Start()
	d.Frame(epoch.Add(time.Second))
	require.Equal(t, 1.0, d.Progress())

	now := clock.Advance(5 * time.Second)
	d.Reset()
	assert.Equal(t, 0.0, d.Progress())

	p, _ := d.Frame(now.Add(400 * time.Millisecond))
	assert.InDelta(t, 0.5, p, 1e-9)
}

func TestDriver_StopMakesFramesNoops(t *testing.T) {
	clock := NewFakeClock(epoch)
	d := New(Timed, WithClock(clock))
	d.Start()
	d.Frame(epoch.Add(200 * time.Millisecond))
	d.Stop()

	p, more := d.Frame(epoch.Add(time.Second))
	assert.InDelta(t, 0.25, p, 1e-9)
	assert.False(t, more)

	d.Reset()
	assert.InDelta(t, 0.25, d.Progress(), 1e-9, "reset after stop is ignored")
}

func TestDriver_AttachManualSource(t *testing.T) {
	clock := NewFakeClock(epoch)
	src := NewManualSource()
	d := New(Timed, WithClock(clock))

	var got []float64
	d.Start()
	d.Attach(src, func(p float64) { got = append(got, p) })
	require.Equal(t, 1, src.Subscribers())

	src.Tick(epoch.Add(400 * time.Millisecond))
	src.Tick(epoch.Add(800 * time.Millisecond))
	assert.Equal(t, []float64{0.5, 1}, got)
	assert.Equal(t, 0, src.Subscribers(), "finished animation unsubscribes")

	src.Tick(epoch.Add(900 * time.Millisecond))
	assert.Len(t, got, 2)

	now := clock.Advance(time.Second)
	d.Reset()
	assert.Equal(t, 1, src.Subscribers(), "reset resubscribes")
	src.Tick(now.Add(200 * time.Millisecond))
	assert.Equal(t, []float64{0.5, 1, 0.25}, got)

	d.Stop()
	assert.Equal(t, 0, src.Subscribers())
	src.Tick(now.Add(400 * time.Millisecond))
	assert.Len(t, got, 3)
}

func TestDriver_AttachBeforeStart(t *testing.T) {
	src := NewManualSource()
	d := New(Timed, WithClock(NewFakeClock(epoch)))
	d.Attach(src, func(float64) {})
	assert.Equal(t, 0, src.Subscribers())

	d.Start()
	assert.Equal(t, 1, src.Subscribers())
}

// leakySource keeps calling a callback after it was cancelled, like a
// frame that was already scheduled when the chart unmounted.
type leakySource struct {
	mu sync.Mutex
	fn func(time.Time)
}

func (s *leakySource) Subscribe(fn func(time.Time)) func() {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
	return func() {}
}

func (s *leakySource) fire(now time.Time) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	fn(now)
}

func TestDriver_StaleCallbackAfterStop(t *testing.T) {
	src := &leakySource{}
	d := New(Timed, WithClock(NewFakeClock(epoch)))
	calls := 0
	d.Start()
	d.Attach(src, func(float64) { calls++ })

	d.Stop()
	src.fire(epoch.Add(400 * time.Millisecond))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0.0, d.Progress())
}

func TestTickerSource(t *testing.T) {
	src := NewTickerSource(time.Millisecond)
	frames := make(chan time.Time, 1)
	cancel := src.Subscribe(func(now time.Time) {
		select {
		case frames <- now:
		default:
		}
	})

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}
	cancel()
	cancel()
}

func TestDriver_AttachTickerSourceFinishes(t *testing.T) {
	d := New(Timed, WithDuration(20*time.Millisecond))
	done := make(chan struct{})
	var once sync.Once

	d.Start()
	d.Attach(NewTickerSource(time.Millisecond), func(p float64) {
		if p >= 1 {
			once.Do(func() { close(done) })
		}
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("animation never completed")
	}
	assert.False(t, d.Running())
	d.Stop()
}
