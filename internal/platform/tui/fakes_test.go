package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blindrace/internal/core"
)

// fakeSounds records menu audio.
type fakeSounds struct {
	mu      sync.Mutex
	played  []string
	stopped int
	tests   int
}

func (f *fakeSounds) PlayCue(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, name)
}

func (f *fakeSounds) SpeakerTest(s *core.Session, gap time.Duration) bool {
	f.mu.Lock()
	f.tests++
	f.mu.Unlock()
	return !s.Cancelled()
}

func (f *fakeSounds) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped++
}

func (f *fakeSounds) cues() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.played...)
}

// fakeNarrator records announcements.
type fakeNarrator struct {
	mu     sync.Mutex
	spoken []string
}

func (f *fakeNarrator) Announce(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
}

func (f *fakeNarrator) Say(s *core.Session, text string) bool {
	f.Announce(text)
	return !s.Cancelled()
}

func (f *fakeNarrator) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.spoken) == 0 {
		return ""
	}
	return f.spoken[len(f.spoken)-1]
}

// fakeCues is an instant cue player for full runs.
type fakeCues struct {
	mu     sync.Mutex
	played []string
}

func (f *fakeCues) PlayCue(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, name)
}

func (f *fakeCues) PlayDirectionalCue(name string, _ core.Pan)   { f.PlayCue(name) }
func (f *fakeCues) PlayBlockingCue(_ *core.Session, name string) { f.PlayCue(name) }

type fakeMusic struct{}

func (fakeMusic) Start(bool) {}
func (fakeMusic) Pause()     {}
func (fakeMusic) Resume()    {}
func (fakeMusic) Stop()      {}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// isQuit runs cmd and reports whether it produced tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
