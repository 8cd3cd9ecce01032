package reflex

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
)

var epoch = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// seqRand returns its values in order, wrapping around.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type timedEvent struct {
	at time.Time
	ev core.InputEvent
}

// scriptedInput releases events pushed directly and events scheduled at a
// clock time once that time is reached.
type scriptedInput struct {
	mu        sync.Mutex
	clock     core.Clock
	pending   []core.InputEvent
	scheduled []timedEvent
}

func (in *scriptedInput) push(evs ...core.InputEvent) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pending = append(in.pending, evs...)
}

func (in *scriptedInput) at(offset time.Duration, ev core.InputEvent) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.scheduled = append(in.scheduled, timedEvent{at: epoch.Add(offset), ev: ev})
}

func (in *scriptedInput) PollEvents() []core.InputEvent {
	in.mu.Lock()
	defer in.mu.Unlock()

	now := in.clock.Now()
	out := in.pending
	in.pending = nil

	rest := in.scheduled[:0]
	for _, te := range in.scheduled {
		if !te.at.After(now) {
			out = append(out, te.ev)
		} else {
			rest = append(rest, te)
		}
	}
	in.scheduled = rest
	return out
}

type cueCall struct {
	name string
	pan  core.Pan
}

type recordingCues struct {
	played     []cueCall
	blocking   []string
	onBlocking func(s *core.Session, name string)
}

func (c *recordingCues) PlayCue(name string) {
	c.played = append(c.played, cueCall{name: name, pan: core.PanCenter})
}

func (c *recordingCues) PlayDirectionalCue(name string, pan core.Pan) {
	c.played = append(c.played, cueCall{name: name, pan: pan})
}

func (c *recordingCues) PlayBlockingCue(s *core.Session, name string) {
	c.blocking = append(c.blocking, name)
	if c.onBlocking != nil {
		c.onBlocking(s, name)
	}
}

func (c *recordingCues) count(name string) int {
	n := 0
	for _, call := range c.played {
		if call.name == name {
			n++
		}
	}
	return n
}

type recordingMusic struct {
	calls []string
}

func (m *recordingMusic) Start(loop bool) {
	if loop {
		m.calls = append(m.calls, "start-loop")
	} else {
		m.calls = append(m.calls, "start")
	}
}
func (m *recordingMusic) Pause()  { m.calls = append(m.calls, "pause") }
func (m *recordingMusic) Resume() { m.calls = append(m.calls, "resume") }
func (m *recordingMusic) Stop()   { m.calls = append(m.calls, "stop") }

func (m *recordingMusic) last() string {
	if len(m.calls) == 0 {
		return ""
	}
	return m.calls[len(m.calls)-1]
}

type recordingObserver struct {
	NopObserver
	clock    core.Clock
	respond  func(kind ObstacleKind, n int) []core.InputEvent
	input    *scriptedInput
	armed    []ObstacleKind
	armedAt  []time.Time
	outcomes []Outcome
	states   []RunState
	lives    []int
	toggles  []bool
	ended    []RunSummary
}

func (o *recordingObserver) ObstacleArmed(kind ObstacleKind) {
	o.armed = append(o.armed, kind)
	o.armedAt = append(o.armedAt, o.clock.Now())
	if o.respond != nil {
		o.input.push(o.respond(kind, len(o.armed)-1)...)
	}
}

func (o *recordingObserver) OutcomeResolved(_ ObstacleKind, outcome Outcome, state RunState) {
	o.outcomes = append(o.outcomes, outcome)
	o.states = append(o.states, state)
}

func (o *recordingObserver) LivesQueried(remaining int) { o.lives = append(o.lives, remaining) }
func (o *recordingObserver) MusicToggled(paused bool)   { o.toggles = append(o.toggles, paused) }
func (o *recordingObserver) RunEnded(s RunSummary)      { o.ended = append(o.ended, s) }

type harness struct {
	clock   *core.ManualClock
	session *core.Session
	input   *scriptedInput
	cues    *recordingCues
	music   *recordingMusic
	obs     *recordingObserver
	ctrl    *Controller
}

func newHarness(level int, kinds ...int) *harness {
	cfg := config.DefaultConfig()
	clock := core.NewManualClock(epoch)
	input := &scriptedInput{clock: clock}
	h := &harness{
		clock:   clock,
		session: core.NewSession(context.Background(), clock, time.Second/60, core.NewDebouncer(300*time.Millisecond)),
		input:   input,
		cues:    &recordingCues{},
		music:   &recordingMusic{},
		obs:     &recordingObserver{clock: clock, input: input},
	}
	if len(kinds) == 0 {
		kinds = []int{0}
	}
	h.ctrl = NewController(Options{
		Profile:  cfg.Difficulty.Profile(level),
		Timing:   cfg.Timing,
		Cues:     h.cues,
		Music:    h.music,
		Input:    input,
		Observer: h.obs,
		Rand:     &seqRand{vals: kinds},
		Host:     "test-host",
		Logger:   log.New(io.Discard),
	})
	return h
}

// answer returns a respond func that answers correctly the obstacles whose
// index is in hits and leaves the rest to time out.
func answer(hits ...int) func(ObstacleKind, int) []core.InputEvent {
	set := make(map[int]bool, len(hits))
	for _, i := range hits {
		set[i] = true
	}
	return func(kind ObstacleKind, n int) []core.InputEvent {
		if set[n] {
			return []core.InputEvent{core.KeyEvent(kind.RequiredAction())}
		}
		return nil
	}
}

// Generator draw values that force each kind with the Easy table (bonus weight 15).
const (
	drawLeft   = 0
	drawRight  = 24
	drawCenter = 48
	drawAbove  = 72
	drawBonus  = 96
)
