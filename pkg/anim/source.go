package anim

import (
	"sync"
	"time"
)

// DefaultFrameInterval paces TickerSource at 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// FrameSource delivers display frames to subscribers. The returned cancel
// func unsubscribes; it is safe to call more than once and from inside the
// callback.
type FrameSource interface {
	Subscribe(fn func(now time.Time)) (cancel func())
}

// TickerSource emits frames from a time.Ticker, one goroutine per
// subscription.
type TickerSource struct {
	Interval time.Duration
}

// NewTickerSource returns a source ticking every interval (or at 60fps when
// interval <= 0).
func NewTickerSource(interval time.Duration) *TickerSource {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerSource{Interval: interval}
}

// Subscribe starts delivering frames to fn until cancel is called.
func (s *TickerSource) Subscribe(fn func(now time.Time)) func() {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	stopChan := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopChan:
				return
			case now := <-ticker.C:
				select {
				case <-stopChan:
					return
				default:
				}
				fn(now)
			}
		}
	}()

	return func() { once.Do(func() { close(stopChan) }) }
}

// ManualSource delivers frames only when Tick is called. Tests use it to
// step an animation deterministically.
type ManualSource struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(time.Time)
}

// NewManualSource returns an empty source.
func NewManualSource() *ManualSource {
	return &ManualSource{subs: make(map[int]func(time.Time))}
}

// Subscribe registers fn.
func (s *ManualSource) Subscribe(fn func(now time.Time)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Tick delivers one frame at now to every current subscriber.
func (s *ManualSource) Tick(now time.Time) {
	s.mu.Lock()
	fns := make([]func(time.Time), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
}

// Subscribers returns the number of active subscriptions.
func (s *ManualSource) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
