package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blindrace/internal/audio"
	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/platform/tui"
	"github.com/vovakirdan/blindrace/internal/reflex"
	"github.com/vovakirdan/blindrace/internal/registry"
	"github.com/vovakirdan/blindrace/internal/speech"
)

// env holds the services shared by every screen and run of one launch.
type env struct {
	cfg       config.Config
	runtime   core.RuntimeConfig
	logger    *log.Logger
	bank      *audio.Bank
	out       audio.Output
	player    *audio.Player
	music     *audio.Music
	voice     *speech.Announcer
	debouncer *core.Debouncer

	closers []func()
}

// loadConfig resolves the configuration and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSounds != "" {
		cfg.Audio.SoundsDir = config.ExpandHome(flagSounds)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagFrontend == tui.SpeechFrontend {
		cfg.Speech.Enabled = true
	}
	return cfg, nil
}

// newEnv opens the logger, the audio device and the speech engine.
// withSpeech is false for commands that never talk.
func newEnv(withSpeech bool) (*env, error) {
	logger, closeLog, err := openLogger(flagLog, flagLogLevel)
	if err != nil {
		return nil, err
	}
	e := &env{logger: logger}
	e.closers = append(e.closers, func() { _ = closeLog() })

	if e.cfg, err = loadConfig(); err != nil {
		e.Close()
		return nil, err
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	e.runtime = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: e.cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	if flagHighContrast {
		tui.SetTheme(tui.HighContrastTheme())
	}

	if err := e.openAudio(); err != nil {
		e.Close()
		return nil, err
	}
	if withSpeech && e.cfg.Speech.Enabled {
		e.openSpeech()
	}

	e.debouncer = core.NewDebouncer(config.Seconds(e.cfg.Timing.Debounce))
	logger.Info("started",
		"frontend", flagFrontend,
		"sounds", e.cfg.Audio.SoundsDir,
		"muted", flagMute,
		"tick_rate", e.cfg.Timing.TickRate)
	return e, nil
}

func (e *env) openAudio() error {
	bank, err := audio.OpenBank(e.cfg.Audio, e.logger)
	if err != nil {
		return fmt.Errorf("failed to load sounds: %w", err)
	}
	e.bank = bank

	if flagMute {
		out := audio.NewNullOutput(e.cfg.Audio.SampleRate)
		ctx, cancel := context.WithCancel(context.Background())
		go out.Run(ctx, 20*time.Millisecond)
		e.out = out
		e.closers = append(e.closers, cancel)
	} else {
		buffer := time.Duration(e.cfg.Audio.BufferMs) * time.Millisecond
		out, err := audio.OpenSpeaker(e.cfg.Audio.SampleRate, buffer)
		if err != nil {
			return fmt.Errorf("%w (use --mute to play without sound)", err)
		}
		e.out = out
	}
	e.closers = append(e.closers, e.out.Close)

	e.player = audio.NewPlayer(e.out, bank, e.cfg.Audio, config.Seconds(e.cfg.Timing.BlockingCueTimeout), e.logger)
	e.music = audio.NewMusic(e.out, bank, core.CueMusic, e.cfg.Audio.MusicVolume)
	return nil
}

func (e *env) openSpeech() {
	synth, err := speech.NewSynthesizer(e.cfg.Speech)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: speech unavailable: %v\n", err)
		e.logger.Warn("speech unavailable", "error", err)
		synth = speech.NopSynthesizer{}
	}
	e.voice = speech.NewAnnouncer(synth, e.logger)
	e.closers = append(e.closers, e.voice.Close)
	e.logger.Info("speech engine", "engine", e.voice.Engine())
}

// Close releases everything in reverse order of opening.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	e.closers = nil
}

// frontend creates the front-end picked with --frontend.
func (e *env) frontend() (registry.Frontend, error) {
	f, err := registry.Create(flagFrontend, registry.Deps{
		Config:  e.cfg,
		Runtime: e.runtime,
		Sounds:  e.player,
		Voice:   e.voice,
		Logger:  e.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (run 'blindrace frontends' to see the choices)", err)
	}
	return f, nil
}

// playLoop plays runs at one level until the player declines another or
// quits mid-run.
func (e *env) playLoop(ctx context.Context, f registry.Frontend, level int) error {
	profile := e.cfg.Difficulty.Profile(level)
	for {
		summary, err := tui.Play(ctx, tui.PlayOptions{
			Profile:   profile,
			Timing:    e.cfg.Timing,
			Runtime:   e.runtime,
			Cues:      e.player,
			Music:     e.music,
			Observer:  f.Observer(),
			Debouncer: e.debouncer,
			Logger:    e.logger,
		})
		if errors.Is(err, reflex.ErrAborted) {
			e.player.Stop()
			return ctx.Err()
		}
		if err != nil {
			return err
		}

		e.logger.Info("run finished",
			"difficulty", summary.Difficulty,
			"score", summary.Score,
			"level", summary.Level,
			"obstacles", summary.Obstacles)

		again, err := f.Report(summary)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
