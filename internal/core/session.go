package core

import (
	"context"
	"sync"
	"time"
)

// WaitResult tells why Session.WaitFor returned.
type WaitResult int

const (
	WaitSatisfied WaitResult = iota // poll reported true
	WaitExpired                     // the duration elapsed
	WaitCancelled                   // the session was cancelled
)

// String returns a human-readable name for the result.
func (r WaitResult) String() string {
	switch r {
	case WaitSatisfied:
		return "satisfied"
	case WaitExpired:
		return "expired"
	case WaitCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session is the per-run context handed to every component of the game
// loop. It owns the cancellation token, the clock, the tick length and the
// housekeeping debouncer.
type Session struct {
	ctx       context.Context
	cancel    context.CancelFunc
	clock     Clock
	tick      time.Duration
	debouncer *Debouncer
}

// NewSession creates a session derived from parent. A nil clock means the
// system clock; a nil debouncer gets a fresh one with a zero interval.
func NewSession(parent context.Context, clock Clock, tick time.Duration, debouncer *Debouncer) *Session {
	if parent == nil {
		parent = context.Background()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if tick <= 0 {
		tick = time.Second / 60
	}
	if debouncer == nil {
		debouncer = NewDebouncer(0)
	}
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		ctx:       ctx,
		cancel:    cancel,
		clock:     clock,
		tick:      tick,
		debouncer: debouncer,
	}
}

// Cancel sets the quit flag. Safe to call from any goroutine, more than once.
func (s *Session) Cancel() { s.cancel() }

// Cancelled reports whether quit has been requested.
func (s *Session) Cancelled() bool { return s.ctx.Err() != nil }

// Done is closed once the session is cancelled.
func (s *Session) Done() <-chan struct{} { return s.ctx.Done() }

// Context exposes the cancellation token to APIs that take a context.
func (s *Session) Context() context.Context { return s.ctx }

// Clock returns the session clock.
func (s *Session) Clock() Clock { return s.clock }

// Now reads the session clock.
func (s *Session) Now() time.Time { return s.clock.Now() }

// Tick returns the poll interval.
func (s *Session) Tick() time.Duration { return s.tick }

// Debouncer returns the housekeeping debouncer.
func (s *Session) Debouncer() *Debouncer { return s.debouncer }

// WaitFor waits up to d for poll to report true, re-checking cancellation
// and calling poll once per tick. A nil poll just waits. poll runs at least
// once unless the session is already cancelled.
func (s *Session) WaitFor(d time.Duration, poll func() bool) WaitResult {
	deadline := s.clock.Now().Add(d)
	for {
		if s.Cancelled() {
			return WaitCancelled
		}
		if poll != nil && poll() {
			return WaitSatisfied
		}
		if s.Cancelled() {
			return WaitCancelled
		}

		remaining := deadline.Sub(s.clock.Now())
		if remaining <= 0 {
			return WaitExpired
		}
		s.clock.Sleep(min(remaining, s.tick))
	}
}

// Debouncer enforces a minimum spacing between activations of the same
// action. Stamps survive session cancellation so a debouncer can be shared
// across runs.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[Action]time.Time
}

// NewDebouncer creates a debouncer with the given interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		last:     make(map[Action]time.Time),
	}
}

// Allow reports whether a press of a at now should take effect, and records
// it if so. A press is accepted when strictly more than the interval has
// passed since the last accepted press of the same action.
func (d *Debouncer) Allow(a Action, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.last[a]; ok && now.Sub(last) <= d.interval {
		return false
	}
	d.last[a] = now
	return true
}
