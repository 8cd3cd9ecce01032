package tui

import (
	"os"
	"time"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/reflex"
	"github.com/vovakirdan/blindrace/internal/registry"
	"github.com/vovakirdan/blindrace/internal/report"
	"github.com/vovakirdan/blindrace/internal/speech"
)

// Front-end names accepted by --frontend.
const (
	VisualFrontend = "visual"
	SpeechFrontend = "speech"
)

func init() {
	registry.Register(VisualFrontend, func(d registry.Deps) registry.Frontend {
		return &visualFrontend{deps: d}
	})
	registry.Register(SpeechFrontend, func(d registry.Deps) registry.Frontend {
		return &speechFrontend{visualFrontend{deps: d}}
	})
}

// visualFrontend draws everything and relies on sound for the game itself.
type visualFrontend struct {
	deps registry.Deps
}

func (f *visualFrontend) Name() string  { return VisualFrontend }
func (f *visualFrontend) Title() string { return "Terminal screens" }

func (f *visualFrontend) Menu() (registry.MenuResult, error) {
	return RunMenu(f.menuOptions(nil))
}

func (f *visualFrontend) Observer() reflex.Observer { return reflex.NopObserver{} }

func (f *visualFrontend) Report(summary reflex.RunSummary) (bool, error) {
	return RunResult(f.resultOptions(summary, nil))
}

func (f *visualFrontend) menuOptions(n Narrator) MenuOptions {
	timing := f.deps.Config.Timing
	if f.deps.Runtime.TickRate > 0 {
		timing.TickRate = f.deps.Runtime.TickRate
	}
	return MenuOptions{
		Sounds:         f.deps.Sounds,
		Narrator:       n,
		SpeakerTestGap: config.Seconds(timing.SpeakerTestGap),
		Tick:           timing.Tick(),
		Screen:         f.deps.Runtime,
	}
}

func (f *visualFrontend) resultOptions(summary reflex.RunSummary, n Narrator) ResultOptions {
	return ResultOptions{
		Summary:   summary,
		Sounds:    f.deps.Sounds,
		Narrator:  n,
		Clipboard: report.NewClipboard(os.Stdout),
		Screen:    f.deps.Runtime,
	}
}

// speechFrontend shows the same screens and reads all of them aloud.
type speechFrontend struct {
	visualFrontend
}

func (f *speechFrontend) Name() string  { return SpeechFrontend }
func (f *speechFrontend) Title() string { return "Screen reader speech" }

func (f *speechFrontend) Menu() (registry.MenuResult, error) {
	return RunMenu(f.menuOptions(f.narrator()))
}

func (f *speechFrontend) Observer() reflex.Observer {
	return speechObserver{voice: f.deps.Voice}
}

func (f *speechFrontend) Report(summary reflex.RunSummary) (bool, error) {
	return RunResult(f.resultOptions(summary, f.narrator()))
}

func (f *speechFrontend) narrator() Narrator {
	if f.deps.Voice == nil {
		return nil
	}
	return NewVoiceNarrator(f.deps.Voice, config.Seconds(f.deps.Config.Speech.WaitTimeout))
}

// VoiceNarrator reads menu text through a speech announcer.
type VoiceNarrator struct {
	voice   *speech.Announcer
	timeout time.Duration
}

// NewVoiceNarrator creates a narrator. Blocking utterances give up after
// timeout.
func NewVoiceNarrator(voice *speech.Announcer, timeout time.Duration) *VoiceNarrator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &VoiceNarrator{voice: voice, timeout: timeout}
}

// Announce interrupts the current utterance with text.
func (n *VoiceNarrator) Announce(text string) {
	n.voice.Submit(text, speech.Interrupt)
}

// Say speaks text and waits for it.
func (n *VoiceNarrator) Say(s *core.Session, text string) bool {
	return n.voice.Say(s, text, n.timeout)
}

// speechObserver speaks what the screen would show during a run.
type speechObserver struct {
	reflex.NopObserver
	voice *speech.Announcer
}

func (o speechObserver) RunStarted(p config.DifficultyProfile) {
	o.say(p.Label+" mode. Get ready.", speech.Normal)
}

func (o speechObserver) LivesQueried(remaining int) {
	o.say(livesText(remaining), speech.Interrupt)
}

func (o speechObserver) say(text string, p speech.Priority) {
	if o.voice != nil {
		o.voice.Submit(text, p)
	}
}
