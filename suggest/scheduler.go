package suggest

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultQuietInterval is how long the user must stop typing before a cycle
// starts.
const DefaultQuietInterval = 700 * time.Millisecond

// Scheduler collects change events and hands the whole batch to fire once no
// new event has arrived for the quiet interval.
//
// The buffer is unbounded: a user who never pauses grows it without limit.
// Each event restarts the timer, so fire runs exactly once per idle period,
// one quiet interval after the last event of the batch.
type Scheduler struct {
	quiet  time.Duration
	clock  Clock
	fire   func([]ChangeEvent)
	logger *zap.Logger

	mu       sync.Mutex
	buffered []ChangeEvent
	pending  Timer
	gen      uint64 // identifies the live timer; stale firings compare unequal
	stopped  bool
}

func NewScheduler(quiet time.Duration, clock Clock, fire func([]ChangeEvent), logger *zap.Logger) *Scheduler {
	if quiet <= 0 {
		quiet = DefaultQuietInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{quiet: quiet, clock: clock, fire: fire, logger: logger}
}

// Add buffers ev and restarts the quiet timer. Events are never rejected.
func (s *Scheduler) Add(ev ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.buffered = append(s.buffered, ev)
	s.cancelLocked()
	gen := s.gen
	s.pending = s.clock.AfterFunc(s.quiet, func() { s.expire(gen) })
}

// Flush fires immediately with whatever is buffered.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.stopped || len(s.buffered) == 0 {
		s.mu.Unlock()
		return
	}
	s.cancelLocked()
	events := s.takeLocked()
	s.mu.Unlock()
	s.run(events)
}

// Stop cancels the pending timer and drops buffered events. Later Adds are
// ignored.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.cancelLocked()
	s.buffered = nil
}

// Pending returns the number of buffered events.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffered)
}

func (s *Scheduler) expire(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen {
		s.mu.Unlock()
		return
	}
	events := s.takeLocked()
	s.mu.Unlock()
	s.run(events)
}

func (s *Scheduler) cancelLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.gen++
}

// takeLocked empties the buffer before fire runs, so a failing cycle never
// holds events back from the next one.
func (s *Scheduler) takeLocked() []ChangeEvent {
	events := s.buffered
	s.buffered = nil
	s.pending = nil
	return events
}

func (s *Scheduler) run(events []ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("suggestion cycle panicked", zap.Any("panic", r), zap.Int("events", len(events)))
		}
	}()
	s.fire(events)
}
