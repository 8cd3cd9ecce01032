package reflex

import (
	"time"

	"github.com/vovakirdan/blindrace/internal/core"
)

// Outcome is the resolution of one obstacle.
type Outcome int

const (
	OutcomeMissed Outcome = iota
	OutcomeDodged
	OutcomeBonusCollected
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeDodged:
		return "Dodged"
	case OutcomeBonusCollected:
		return "BonusCollected"
	default:
		return "Missed"
	}
}

// Resolve applies the outcome table. first is the first game action of the
// window, or ActionNone on timeout. Wrong keys and timeouts are both misses.
func Resolve(kind ObstacleKind, first core.Action) Outcome {
	if first == core.ActionNone || first != kind.RequiredAction() {
		return OutcomeMissed
	}
	if kind == ObstacleBonus {
		return OutcomeBonusCollected
	}
	return OutcomeDodged
}

// WindowState is the state of a reaction window.
type WindowState int

const (
	StateArmed WindowState = iota
	StateAwaitingInput
	StateResolved
	StateAborted
)

// String returns a human-readable name for the state.
func (s WindowState) String() string {
	switch s {
	case StateArmed:
		return "Armed"
	case StateAwaitingInput:
		return "AwaitingInput"
	case StateResolved:
		return "Resolved"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// ReactionWindow is the per-obstacle state machine. A window is used once:
// Armed -> AwaitingInput -> Resolved, or Aborted if quit is observed.
type ReactionWindow struct {
	kind    ObstacleKind
	budget  time.Duration
	state   WindowState
	first   core.Action
	outcome Outcome
}

// NewReactionWindow creates an armed window for an obstacle.
func NewReactionWindow(kind ObstacleKind, budget time.Duration) *ReactionWindow {
	return &ReactionWindow{
		kind:   kind,
		budget: budget,
		state:  StateArmed,
	}
}

// Arm dispatches the obstacle's cue and starts listening.
func (w *ReactionWindow) Arm(cues CuePlayer) {
	if w.state != StateArmed {
		return
	}
	if w.kind.IsDirectional() {
		cues.PlayDirectionalCue(w.kind.Cue(), w.kind.Pan())
	} else {
		cues.PlayCue(w.kind.Cue())
	}
	w.state = StateAwaitingInput
}

// Offer feeds one action to the window. The first game action resolves it;
// everything after that is ignored. Returns true if the action resolved the window.
func (w *ReactionWindow) Offer(a core.Action) bool {
	if w.state != StateAwaitingInput || !a.IsGame() {
		return false
	}
	w.first = a
	w.resolve()
	return true
}

// Expire resolves a window that received no game input.
func (w *ReactionWindow) Expire() {
	if w.state != StateAwaitingInput {
		return
	}
	w.first = core.ActionNone
	w.resolve()
}

// Abort discards the window without an outcome.
func (w *ReactionWindow) Abort() {
	if w.state == StateResolved {
		return
	}
	w.state = StateAborted
}

func (w *ReactionWindow) resolve() {
	w.outcome = Resolve(w.kind, w.first)
	w.state = StateResolved
}

// Await polls input until the window resolves, the budget runs out or the
// session is cancelled. Housekeeping actions seen before resolution are
// passed to housekeeping. Returns false if the window was aborted.
func (w *ReactionWindow) Await(s *core.Session, input InputSource, housekeeping func(core.Action)) (Outcome, bool) {
	if w.state == StateArmed {
		w.state = StateAwaitingInput
	}

	s.WaitFor(w.budget, func() bool {
		for _, ev := range input.PollEvents() {
			if ev.Kind == core.EventQuit {
				s.Cancel()
				return false
			}
			if w.state == StateResolved {
				continue // Only a quit matters once the first answer is in
			}
			if ev.Action.IsHousekeeping() {
				if housekeeping != nil {
					housekeeping(ev.Action)
				}
				continue
			}
			w.Offer(ev.Action)
		}
		return w.state == StateResolved
	})

	if s.Cancelled() {
		w.Abort()
		return 0, false
	}
	w.Expire()
	return w.outcome, true
}

// Kind returns the obstacle kind.
func (w *ReactionWindow) Kind() ObstacleKind { return w.kind }

// State returns the current state.
func (w *ReactionWindow) State() WindowState { return w.state }

// First returns the action that resolved the window, or ActionNone.
func (w *ReactionWindow) First() core.Action { return w.first }

// Outcome returns the resolved outcome. Only meaningful in StateResolved.
func (w *ReactionWindow) Outcome() Outcome { return w.outcome }
