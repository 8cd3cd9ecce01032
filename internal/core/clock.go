package core

import (
	"sync"
	"time"
)

// Clock is the time source used by the game loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock is a controllable clock for tests. Sleep advances time
// instantly and runs any hook registered with OnSleep.
type ManualClock struct {
	mu      sync.Mutex
	current time.Time
	onSleep func(now time.Time)
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current mocked time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sleep advances the clock by d.
func (c *ManualClock) Sleep(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	now := c.current
	hook := c.onSleep
	c.mu.Unlock()

	if hook != nil {
		hook(now)
	}
}

// Advance moves the clock forward without running the sleep hook.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// OnSleep registers a hook called after every Sleep.
func (c *ManualClock) OnSleep(fn func(now time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSleep = fn
}
