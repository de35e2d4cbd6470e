package core

import (
	"sync"
	"time"
)

// IntervalNone is the sentinel interval meaning "inactive": the scheduler
// holds no timer and fires no ticks until a positive interval is set.
const IntervalNone time.Duration = 0

// Scheduler invokes a callback at a fixed wall-clock interval, independent
// of render cadence. It owns at most one outstanding timer: changing the
// interval (including to IntervalNone) takes effect on the next scheduling
// decision and never leaks the previous timer.
//
// The callback always observes the most recently supplied function -
// swapping it with SetFunc does not restart the cadence. Callbacks run
// synchronously, one at a time, on the scheduler's own goroutine; a panic
// inside the callback propagates and kills that goroutine rather than
// being swallowed, so step functions must stay total.
type Scheduler struct {
	mu       sync.Mutex
	fn       func()
	interval time.Duration
	timer    *time.Timer
	gen      uint64 // invalidates timers armed before the last change
	stopped  bool
}

// NewScheduler creates an inactive scheduler for the given callback.
// Call SetInterval to start ticking.
func NewScheduler(fn func()) *Scheduler {
	return &Scheduler{fn: fn, interval: IntervalNone}
}

// SetFunc replaces the callback. The next tick, whenever it fires,
// invokes the new function.
func (s *Scheduler) SetFunc(fn func()) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

// SetInterval changes the tick cadence. IntervalNone pauses the scheduler.
// A pending timer armed under the previous interval is invalidated, so no
// tick from the old cadence fires after this call returns.
func (s *Scheduler) SetInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || d == s.interval {
		return
	}
	s.interval = d
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if d > IntervalNone {
		s.armLocked(d, s.gen)
	}
}

// Interval returns the current tick interval (IntervalNone when paused).
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Stop permanently deactivates the scheduler. A tick already executing
// completes; no further tick fires.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// armLocked schedules the next tick. Caller holds s.mu.
func (s *Scheduler) armLocked(d time.Duration, gen uint64) {
	s.timer = time.AfterFunc(d, func() {
		s.tick(gen)
	})
}

// tick runs one callback invocation and re-arms the timer. The generation
// check discards ticks armed before an interval change or Stop, keeping
// the "at most one logical timeline" guarantee.
func (s *Scheduler) tick(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen || s.interval == IntervalNone {
		s.mu.Unlock()
		return
	}
	fn := s.fn
	s.mu.Unlock()

	if fn != nil {
		fn() // synchronous; panics propagate to the runtime
	}

	s.mu.Lock()
	if !s.stopped && gen == s.gen && s.interval > IntervalNone {
		s.armLocked(s.interval, gen)
	}
	s.mu.Unlock()
}
