// Package speech drives an external text-to-speech engine through a
// single-slot announcer.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/vovakirdan/blindrace/internal/config"
)

// ErrNoEngine is returned when no speech engine can be found.
var ErrNoEngine = errors.New("no speech engine found")

// Synthesizer speaks text. Speak blocks until the utterance ends or ctx is
// cancelled.
type Synthesizer interface {
	Name() string
	Speak(ctx context.Context, text string) error
}

// NopSynthesizer accepts every utterance and says nothing.
type NopSynthesizer struct{}

func (NopSynthesizer) Name() string                        { return "none" }
func (NopSynthesizer) Speak(context.Context, string) error { return nil }

// ExecSynthesizer runs a command-line engine once per utterance, with the
// text as the last argument.
type ExecSynthesizer struct {
	name string
	path string
	args []string
}

func (e *ExecSynthesizer) Name() string { return e.name }

// Speak runs the engine. Cancelling ctx kills the process.
func (e *ExecSynthesizer) Speak(ctx context.Context, text string) error {
	args := append(append([]string(nil), e.args...), text)
	cmd := exec.CommandContext(ctx, e.path, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	return nil
}

// engine describes a known speech command and how to pass it a voice.
type engine struct {
	name  string
	base  []string
	voice string // Flag that precedes the voice name
}

// Search order for auto-detection.
var engines = []engine{
	{name: "espeak-ng", voice: "-v"},
	{name: "espeak", voice: "-v"},
	{name: "spd-say", base: []string{"-w"}, voice: "-y"},
	{name: "say", voice: "-v"},
}

// NewSynthesizer picks the engine described by cfg. A configured command is
// used as is; otherwise the known engines are searched on PATH. Speech
// disabled in the config yields a NopSynthesizer.
func NewSynthesizer(cfg config.SpeechConfig) (Synthesizer, error) {
	if !cfg.Enabled {
		return NopSynthesizer{}, nil
	}

	if cfg.Command != "" {
		path, err := exec.LookPath(cfg.Command)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrNoEngine, cfg.Command, err)
		}
		return &ExecSynthesizer{name: cfg.Command, path: path, args: cfg.Args}, nil
	}

	for _, e := range engines {
		path, err := exec.LookPath(e.name)
		if err != nil {
			continue
		}
		args := append([]string(nil), e.base...)
		if cfg.Voice != "" {
			args = append(args, e.voice, cfg.Voice)
		}
		args = append(args, cfg.Args...)
		return &ExecSynthesizer{name: e.name, path: path, args: args}, nil
	}
	return nil, ErrNoEngine
}
