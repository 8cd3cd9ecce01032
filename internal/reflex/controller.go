package reflex

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
)

// ErrAborted is returned by Run when the player quits. No summary is produced.
var ErrAborted = errors.New("run aborted")

// DefaultReactionWindow is used when the timing config leaves it unset.
const DefaultReactionWindow = 700 * time.Millisecond

// Options wires a controller to its collaborators.
type Options struct {
	Profile  config.DifficultyProfile
	Timing   config.TimingConfig
	Cues     CuePlayer
	Music    Music
	Input    InputSource
	Observer Observer   // Optional
	Rand     RandSource // Optional; seeded from the clock if nil
	Host     string     // Optional; Hostname() if empty
	Logger   *log.Logger
}

// Controller runs one game from intro to game over.
type Controller struct {
	opts        Options
	gen         *Generator
	state       RunState
	musicPaused bool
	log         *log.Logger
}

// NewController creates a controller. Cues, Music and Input are required.
func NewController(opts Options) *Controller {
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Host == "" {
		opts.Host = Hostname()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		opts:  opts,
		gen:   NewGenerator(opts.Rand, opts.Profile.BonusWeight),
		state: NewRunState(opts.Profile),
		log:   logger.WithPrefix("reflex"),
	}
}

// State returns a snapshot of the run state.
func (c *Controller) State() RunState {
	return c.state
}

// MusicPaused reports whether the player paused the background track.
func (c *Controller) MusicPaused() bool {
	return c.musicPaused
}

// Run plays the intro, then presents obstacles until lives run out.
// It returns ErrAborted as soon as the session is cancelled.
func (c *Controller) Run(s *core.Session) (RunSummary, error) {
	c.state = NewRunState(c.opts.Profile)
	c.musicPaused = false
	c.opts.Observer.RunStarted(c.opts.Profile)
	c.log.Info("run started", "difficulty", c.opts.Profile.Label, "interval", c.state.CurrentInterval)

	// Keys pressed during the warm-up are discarded; only quit counts.
	s.WaitFor(config.Seconds(c.opts.Timing.Warmup), c.drain(s))
	if s.Cancelled() {
		return c.abort()
	}

	c.opts.Cues.PlayBlockingCue(s, core.CueIntro)
	if s.Cancelled() {
		return c.abort()
	}
	c.opts.Music.Start(true)

	budget := config.Seconds(c.opts.Timing.ReactionWindow)
	if budget <= 0 {
		budget = DefaultReactionWindow
	}

	for {
		s.WaitFor(c.state.Interval(), c.idle(s))
		if s.Cancelled() {
			return c.abort()
		}

		kind := c.gen.Next()
		c.opts.Observer.ObstacleArmed(kind)

		w := NewReactionWindow(kind, budget)
		w.Arm(c.opts.Cues)
		outcome, ok := w.Await(s, c.opts.Input, func(a core.Action) {
			c.housekeeping(s, a)
		})
		if !ok {
			return c.abort()
		}

		c.apply(kind, outcome, w.First())

		if c.state.GameOver() {
			break
		}
	}

	c.opts.Music.Stop()
	c.opts.Cues.PlayBlockingCue(s, core.CueOutro)
	if s.Cancelled() {
		return c.abort()
	}

	summary := NewRunSummary(c.state, s.Now(), c.opts.Host)
	c.log.Info("run finished", "score", summary.Score, "level", summary.Level, "obstacles", summary.Obstacles)
	c.opts.Observer.RunEnded(summary)
	return summary, nil
}

func (c *Controller) apply(kind ObstacleKind, outcome Outcome, first core.Action) {
	c.state.Apply(outcome)

	switch outcome {
	case OutcomeDodged:
		c.opts.Cues.PlayCue(core.CueDodged)
	case OutcomeBonusCollected:
		c.opts.Cues.PlayCue(core.CueLife)
	default:
		c.opts.Cues.PlayCue(core.CueCollision)
	}

	c.log.Debug("obstacle resolved",
		"kind", kind,
		"key", first,
		"outcome", outcome,
		"score", c.state.Score,
		"lives", c.state.LivesRemaining(),
		"next", c.state.CurrentInterval,
	)
	c.opts.Observer.OutcomeResolved(kind, outcome, c.state)
}

// drain consumes input, acting on quit only.
func (c *Controller) drain(s *core.Session) func() bool {
	return func() bool {
		for _, ev := range c.opts.Input.PollEvents() {
			if ev.Kind == core.EventQuit {
				s.Cancel()
				return false
			}
		}
		return false
	}
}

// idle consumes input between obstacles. Game keys have nothing to answer
// and are dropped.
func (c *Controller) idle(s *core.Session) func() bool {
	return func() bool {
		for _, ev := range c.opts.Input.PollEvents() {
			if ev.Kind == core.EventQuit {
				s.Cancel()
				return false
			}
			if ev.Action.IsHousekeeping() {
				c.housekeeping(s, ev.Action)
			}
		}
		return false
	}
}

func (c *Controller) housekeeping(s *core.Session, a core.Action) {
	if !s.Debouncer().Allow(a, s.Now()) {
		return
	}

	switch a {
	case core.ActionToggleMusic:
		if c.musicPaused {
			c.opts.Music.Resume()
		} else {
			c.opts.Music.Pause()
		}
		c.musicPaused = !c.musicPaused
		c.log.Debug("music toggled", "paused", c.musicPaused)
		c.opts.Observer.MusicToggled(c.musicPaused)
	case core.ActionQueryLives:
		remaining := c.state.LivesRemaining()
		c.log.Debug("lives queried", "remaining", remaining)
		c.opts.Observer.LivesQueried(remaining)
	}
}

func (c *Controller) abort() (RunSummary, error) {
	c.opts.Music.Stop()
	c.log.Info("run aborted", "score", c.state.Score, "obstacles", c.state.Obstacles)
	return RunSummary{}, ErrAborted
}
