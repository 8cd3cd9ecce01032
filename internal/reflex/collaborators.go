package reflex

import (
	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
)

// CuePlayer dispatches named sound cues. PlayCue and PlayDirectionalCue
// return immediately; PlayBlockingCue returns when the cue finishes, its
// timeout elapses or the session is cancelled.
type CuePlayer interface {
	PlayCue(name string)
	PlayDirectionalCue(name string, pan core.Pan)
	PlayBlockingCue(s *core.Session, name string)
}

// Music controls the background track.
type Music interface {
	Start(loop bool)
	Pause()
	Resume()
	Stop()
}

// InputSource delivers pending input events since the last poll.
// PollEvents must not block.
type InputSource interface {
	PollEvents() []core.InputEvent
}

// Observer receives run events. Front-ends use it to draw a HUD or to
// speak state changes. Callbacks run on the controller goroutine and must
// return quickly.
type Observer interface {
	RunStarted(profile config.DifficultyProfile)
	ObstacleArmed(kind ObstacleKind)
	OutcomeResolved(kind ObstacleKind, outcome Outcome, state RunState)
	LivesQueried(remaining int)
	MusicToggled(paused bool)
	RunEnded(summary RunSummary)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) RunStarted(config.DifficultyProfile)             {}
func (NopObserver) ObstacleArmed(ObstacleKind)                      {}
func (NopObserver) OutcomeResolved(ObstacleKind, Outcome, RunState) {}
func (NopObserver) LivesQueried(int)                                {}
func (NopObserver) MusicToggled(bool)                               {}
func (NopObserver) RunEnded(RunSummary)                             {}

// Observers fans events out to several observers in order.
type Observers []Observer

func (o Observers) RunStarted(p config.DifficultyProfile) {
	for _, obs := range o {
		obs.RunStarted(p)
	}
}

func (o Observers) ObstacleArmed(kind ObstacleKind) {
	for _, obs := range o {
		obs.ObstacleArmed(kind)
	}
}

func (o Observers) OutcomeResolved(kind ObstacleKind, outcome Outcome, state RunState) {
	for _, obs := range o {
		obs.OutcomeResolved(kind, outcome, state)
	}
}

func (o Observers) LivesQueried(remaining int) {
	for _, obs := range o {
		obs.LivesQueried(remaining)
	}
}

func (o Observers) MusicToggled(paused bool) {
	for _, obs := range o {
		obs.MusicToggled(paused)
	}
}

func (o Observers) RunEnded(summary RunSummary) {
	for _, obs := range o {
		obs.RunEnded(summary)
	}
}
