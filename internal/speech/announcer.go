package speech

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blindrace/internal/core"
)

// Priority decides what happens when the announcer is already speaking.
type Priority int

const (
	// Normal utterances are dropped while another one is in flight.
	Normal Priority = iota
	// Interrupt stops the utterance in flight and speaks instead.
	Interrupt
)

// handoverTimeout bounds how long an interrupting utterance waits for the
// engine it replaced to exit.
const handoverTimeout = 250 * time.Millisecond

// Announcer owns a single speech slot. At most one utterance is in flight;
// a Normal request while busy is dropped, an Interrupt request replaces the
// current one.
type Announcer struct {
	synth Synthesizer
	log   *log.Logger

	root       context.Context
	rootCancel context.CancelFunc

	mu     sync.Mutex
	gen    uint64
	busy   bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAnnouncer creates an idle announcer.
func NewAnnouncer(synth Synthesizer, logger *log.Logger) *Announcer {
	if synth == nil {
		synth = NopSynthesizer{}
	}
	root, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	close(done)
	return &Announcer{
		synth:      synth,
		log:        logger.WithPrefix("speech"),
		root:       root,
		rootCancel: cancel,
		done:       done,
	}
}

// Engine returns the name of the underlying synthesizer.
func (a *Announcer) Engine() string { return a.synth.Name() }

// Submit requests an utterance and returns immediately. It reports whether
// the request was accepted.
func (a *Announcer) Submit(text string, priority Priority) bool {
	a.mu.Lock()
	if a.root.Err() != nil {
		a.mu.Unlock()
		return false
	}
	if a.busy && priority != Interrupt {
		a.mu.Unlock()
		a.log.Debug("utterance dropped", "text", text)
		return false
	}
	var prev chan struct{}
	if a.busy {
		a.cancel()
		prev = a.done
	}

	a.gen++
	gen := a.gen
	ctx, cancel := context.WithCancel(a.root)
	done := make(chan struct{})
	a.busy = true
	a.cancel = cancel
	a.done = done
	a.mu.Unlock()

	go a.speak(ctx, cancel, gen, text, prev, done)
	return true
}

// speak runs one utterance once the engine it replaces, if any, has exited.
func (a *Announcer) speak(ctx context.Context, cancel context.CancelFunc, gen uint64, text string, prev, done chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("speech engine panicked", "engine", a.synth.Name(), "panic", fmt.Sprint(r))
		}
		cancel()
		a.finish(gen)
		close(done)
	}()

	if prev != nil {
		select {
		case <-prev:
		case <-time.After(handoverTimeout):
			a.log.Debug("previous utterance still running", "engine", a.synth.Name())
		case <-ctx.Done():
			return
		}
	}

	if err := a.synth.Speak(ctx, text); err != nil && ctx.Err() == nil {
		a.log.Warn("speech failed", "engine", a.synth.Name(), "error", err)
	}
}

// finish clears the busy flag if gen is still the current utterance.
func (a *Announcer) finish(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen == gen {
		a.busy = false
		a.cancel = nil
	}
}

// Busy reports whether an utterance is in flight.
func (a *Announcer) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// Done returns a channel closed when the current (or last) utterance ends.
func (a *Announcer) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

// Stop cancels the utterance in flight and marks the announcer idle at once.
func (a *Announcer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.busy {
		return
	}
	a.cancel()
	a.gen++
	a.busy = false
	a.cancel = nil
}

// Wait waits up to timeout for the current utterance to end. On timeout or
// cancellation the utterance is stopped and Wait returns false.
func (a *Announcer) Wait(s *core.Session, timeout time.Duration) bool {
	done := a.Done()
	res := s.WaitFor(timeout, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	})
	if res == core.WaitSatisfied {
		return true
	}
	a.Stop()
	if res == core.WaitExpired {
		a.log.Debug("utterance timed out", "timeout", timeout)
	}
	return false
}

// Say interrupts whatever is being spoken, speaks text and waits for it.
func (a *Announcer) Say(s *core.Session, text string, timeout time.Duration) bool {
	if !a.Submit(text, Interrupt) {
		return false
	}
	return a.Wait(s, timeout)
}

// Close stops speech for good. Later submissions are refused.
func (a *Announcer) Close() {
	a.Stop()
	a.rootCancel()
}
