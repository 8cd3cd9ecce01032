package tui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/reflex"
)

type endObserver struct {
	reflex.NopObserver
	started chan struct{}
}

func (o endObserver) RunStarted(config.DifficultyProfile) { close(o.started) }

func headlessPlay(profile config.DifficultyProfile, obs reflex.Observer) PlayOptions {
	timing := config.DefaultConfig().Timing
	timing.Warmup = 0
	timing.ReactionWindow = 0.02
	timing.TickRate = 500
	return PlayOptions{
		Profile:   profile,
		Timing:    timing,
		Runtime:   core.RuntimeConfig{Seed: 7},
		Cues:      &fakeCues{},
		Music:     fakeMusic{},
		Observer:  obs,
		Debouncer: core.NewDebouncer(300 * time.Millisecond),
		Logger:    log.New(io.Discard),
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(nil),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
		},
	}
}

func TestPlayRunsToGameOver(t *testing.T) {
	profile := config.DifficultyProfile{
		Level:        config.LevelEasy,
		Label:        "Test",
		BaseInterval: 0.005,
		MinInterval:  0.001,
	}
	obs := endObserver{started: make(chan struct{})}

	done := make(chan struct{})
	var summary reflex.RunSummary
	var err error
	go func() {
		defer close(done)
		summary, err = Play(context.Background(), headlessPlay(profile, obs))
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Play() did not return")
	}
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if summary.LivesLost != reflex.BaseLives || summary.Score != 0 {
		t.Errorf("summary = %+v, want every obstacle missed", summary)
	}
	if summary.Difficulty != "Test" {
		t.Errorf("Difficulty = %q", summary.Difficulty)
	}
}

func TestPlayCancelledContextAborts(t *testing.T) {
	profile := config.DifficultyConfig{Profiles: config.DefaultProfiles()}.Profile(config.LevelEasy)
	obs := endObserver{started: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := Play(ctx, headlessPlay(profile, obs))
		done <- err
	}()

	select {
	case <-obs.started:
	case <-time.After(5 * time.Second):
		t.Fatal("run never started")
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, reflex.ErrAborted) {
			t.Errorf("Play() error = %v, want ErrAborted", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Play() did not return after cancellation")
	}
}
