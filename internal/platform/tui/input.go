package tui

import (
	"sync/atomic"
	"time"

	"github.com/vovakirdan/blindrace/internal/core"
)

// DefaultInputBuffer is the number of key presses queued between polls.
const DefaultInputBuffer = 64

// ChannelInput queues events from the UI goroutine for the game loop.
// It implements reflex.InputSource.
type ChannelInput struct {
	events  chan core.InputEvent
	dropped atomic.Int64
}

// NewChannelInput creates an input queue holding up to size events.
func NewChannelInput(size int) *ChannelInput {
	if size <= 0 {
		size = DefaultInputBuffer
	}
	return &ChannelInput{events: make(chan core.InputEvent, size)}
}

// Push queues an event without blocking. A full queue drops the event.
func (c *ChannelInput) Push(ev core.InputEvent) bool {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case c.events <- ev:
		return true
	default:
		c.dropped.Add(1)
		return false
	}
}

// PollEvents returns everything queued since the last poll, oldest first.
func (c *ChannelInput) PollEvents() []core.InputEvent {
	var out []core.InputEvent
	for {
		select {
		case ev := <-c.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Dropped returns how many events were lost to a full queue.
func (c *ChannelInput) Dropped() int64 {
	return c.dropped.Load()
}
