package audio

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
)

// DefaultBlockingTimeout caps blocking cues when the config leaves it unset.
const DefaultBlockingTimeout = 10 * time.Second

// Player plays cues from a bank. It satisfies reflex.CuePlayer.
type Player struct {
	out             Output
	bank            *Bank
	volume          float64
	attenuation     float64
	blockingTimeout time.Duration
	log             *log.Logger
}

// NewPlayer creates a cue player.
func NewPlayer(out Output, bank *Bank, cfg config.AudioConfig, blockingTimeout time.Duration, logger *log.Logger) *Player {
	if blockingTimeout <= 0 {
		blockingTimeout = DefaultBlockingTimeout
	}
	return &Player{
		out:             out,
		bank:            bank,
		volume:          cfg.MasterVolume,
		attenuation:     cfg.PanAttenuation,
		blockingTimeout: blockingTimeout,
		log:             logger.WithPrefix("audio"),
	}
}

// Bank returns the player's cue bank.
func (p *Player) Bank() *Bank { return p.bank }

func (p *Player) stream(name string) beep.Streamer {
	buf := p.bank.Pick(name)
	if buf == nil {
		p.log.Debug("no sound for cue", "cue", name)
		return nil
	}
	return gain(buf.Streamer(0, buf.Len()), p.volume)
}

// PlayCue starts a cue and returns immediately.
func (p *Player) PlayCue(name string) {
	if s := p.stream(name); s != nil {
		p.out.Play(s)
	}
}

// PlayDirectionalCue starts a cue with the far channel attenuated.
func (p *Player) PlayDirectionalCue(name string, pan core.Pan) {
	s := p.stream(name)
	if s == nil {
		return
	}
	p.out.Play(p.pan(s, pan))
}

func (p *Player) pan(s beep.Streamer, pan core.Pan) beep.Streamer {
	switch pan {
	case core.PanLeft:
		return &balance{Streamer: s, Left: 1, Right: p.attenuation}
	case core.PanRight:
		return &balance{Streamer: s, Left: p.attenuation, Right: 1}
	default:
		return s
	}
}

// balance scales each channel by its own gain.
type balance struct {
	Streamer    beep.Streamer
	Left, Right float64
}

func (b *balance) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = b.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= b.Left
		samples[i][1] *= b.Right
	}
	return n, ok
}

func (b *balance) Err() error { return b.Streamer.Err() }

// PlayBlockingCue plays a cue and waits for it to finish. The cue is cut
// off if the session is cancelled or the timeout elapses first.
func (p *Player) PlayBlockingCue(s *core.Session, name string) {
	stream := p.stream(name)
	if stream == nil {
		return
	}

	done := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(stream, beep.Callback(func() { close(done) }))}
	p.out.Play(ctrl)

	res := s.WaitFor(p.blockingTimeout, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	})
	if res == core.WaitSatisfied {
		return
	}

	p.out.Lock()
	ctrl.Streamer = nil
	p.out.Unlock()
	p.log.Debug("blocking cue cut off", "cue", name, "reason", res)
}

// SpeakerTest plays the generic obstacle sound on the left, center and right
// in turn, gap apart. Returns false if the session was cancelled.
func (p *Player) SpeakerTest(s *core.Session, gap time.Duration) bool {
	for i, pan := range []core.Pan{core.PanLeft, core.PanCenter, core.PanRight} {
		if i > 0 && s.WaitFor(gap, nil) == core.WaitCancelled {
			return false
		}
		p.PlayDirectionalCue(core.CueObstacle, pan)
	}
	return !s.Cancelled()
}

// Stop silences every cue and the music.
func (p *Player) Stop() {
	p.out.Clear()
}
