package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// Music controls the background track. It satisfies reflex.Music.
type Music struct {
	out    Output
	bank   *Bank
	cue    string
	volume float64

	mu   sync.Mutex
	ctrl *beep.Ctrl
}

// NewMusic creates a controller for the cue named cue, at volume relative
// to full scale.
func NewMusic(out Output, bank *Bank, cue string, volume float64) *Music {
	return &Music{
		out:    out,
		bank:   bank,
		cue:    cue,
		volume: volume,
	}
}

// Start plays the track from the beginning, replacing any current playback.
func (m *Music) Start(loop bool) {
	m.Stop()

	buf := m.bank.Pick(m.cue)
	if buf == nil {
		return
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	ctrl := &beep.Ctrl{Streamer: gain(s, m.volume)}

	m.mu.Lock()
	m.ctrl = ctrl
	m.mu.Unlock()
	m.out.Play(ctrl)
}

// Pause holds the track at its current position.
func (m *Music) Pause() { m.setPaused(true) }

// Resume continues a paused track.
func (m *Music) Resume() { m.setPaused(false) }

func (m *Music) setPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl == nil {
		return
	}
	m.out.Lock()
	m.ctrl.Paused = paused
	m.out.Unlock()
}

// Stop ends playback. The track is removed from the mix on the next pull.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl == nil {
		return
	}
	m.out.Lock()
	m.ctrl.Streamer = nil
	m.out.Unlock()
	m.ctrl = nil
}

// Playing reports whether a track is loaded and not paused.
func (m *Music) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl == nil {
		return false
	}
	m.out.Lock()
	defer m.out.Unlock()
	return !m.ctrl.Paused
}
