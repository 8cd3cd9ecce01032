package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/reflex"
)

// PlayOptions configures one run.
type PlayOptions struct {
	Profile   config.DifficultyProfile
	Timing    config.TimingConfig
	Runtime   core.RuntimeConfig
	Cues      reflex.CuePlayer
	Music     reflex.Music
	Observer  reflex.Observer // Front-end notifications; optional
	Debouncer *core.Debouncer // Shared across runs so stamps survive a quit
	Logger    *log.Logger

	// ProgramOptions are appended to the defaults (alt screen).
	ProgramOptions []tea.ProgramOption
}

// Play runs one game. The HUD owns the terminal on this goroutine while the
// game loop runs on its own, fed by key presses through a ChannelInput.
// Returns reflex.ErrAborted if the player quit.
func Play(ctx context.Context, opts PlayOptions) (reflex.RunSummary, error) {
	timing := opts.Timing
	if opts.Runtime.TickRate > 0 {
		timing.TickRate = opts.Runtime.TickRate
	}

	input := NewChannelInput(DefaultInputBuffer)
	session := core.NewSession(ctx, core.SystemClock{}, timing.Tick(), opts.Debouncer)
	defer session.Cancel()

	model := NewGameModel(opts.Profile, input, session, opts.Runtime)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts.ProgramOptions...)...)

	observers := reflex.Observers{programObserver{send: p.Send}}
	if opts.Observer != nil {
		observers = append(observers, opts.Observer)
	}

	ctrl := reflex.NewController(reflex.Options{
		Profile:  opts.Profile,
		Timing:   timing,
		Cues:     opts.Cues,
		Music:    opts.Music,
		Input:    input,
		Observer: observers,
		Rand:     opts.Runtime.NewRand(),
		Logger:   opts.Logger,
	})

	results := make(chan runDoneMsg, 1)
	go func() {
		summary, err := ctrl.Run(session)
		res := runDoneMsg{summary: summary, err: err}
		results <- res
		p.Send(res)
	}()

	_, err := p.Run()
	// Normally the program exits on runDoneMsg. A signal can end it first.
	session.Cancel()
	res := <-results
	if err != nil {
		return reflex.RunSummary{}, fmt.Errorf("tui: game screen: %w", err)
	}
	if dropped := input.Dropped(); dropped > 0 && opts.Logger != nil {
		opts.Logger.Warn("input queue overflowed", "dropped", dropped)
	}
	return res.summary, res.err
}
