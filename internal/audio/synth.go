package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/blindrace/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator.
type tone struct {
	freq  float64
	phase float64
	left  int
	wave  Wave
	rate  beep.SampleRate
	rng   *rand.Rand
}

// Tone returns a streamer producing d of the given wave at freq Hz.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq: freq,
		left: rate.N(d),
		wave: wave,
		rate: rate,
		rng:  rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.left <= 0 {
		return 0, false
	}
	for n = 0; n < len(samples) && t.left > 0; n++ {
		var v float64
		switch t.wave {
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2*t.phase - 1
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		samples[n][0] = v
		samples[n][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.left--
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// shape applies a linear attack and release to a finite streamer.
type shape struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// Shape wraps s with an attack/release envelope over a total length of d.
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shape{
		s:       beep.Take(rate.N(d), s),
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *shape) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *shape) Err() error { return e.s.Err() }

// gain scales a streamer by a linear factor. Zero or less is silent.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

func sine(freq float64, d time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %v Hz: %w", freq, err)
	}
	return Shape(s, d, 5*time.Millisecond, d/2, rate), nil
}

// Synth renders a stand-in sound for a cue. Used when no sound directory
// is configured.
func Synth(name string, rate beep.SampleRate) (beep.Streamer, error) {
	const ms = time.Millisecond

	switch name {
	case core.CueLeft, core.CueRight:
		return gain(note(440, 250*ms, WaveSquare, rate), 0.35), nil
	case core.CueCenter:
		return gain(note(330, 250*ms, WaveSquare, rate), 0.35), nil
	case core.CueAbove:
		return gain(beep.Seq(note(660, 120*ms, WaveSine, rate), note(880, 130*ms, WaveSine, rate)), 0.5), nil
	case core.CueObstacle:
		return gain(note(392, 250*ms, WaveSaw, rate), 0.3), nil
	case core.CueBonus:
		knock := func() beep.Streamer { return note(180, 60*ms, WaveNoise, rate) }
		return gain(beep.Seq(knock(), beep.Silence(rate.N(60*ms)), knock()), 0.5), nil
	case core.CueCollision:
		return gain(beep.Mix(note(90, 300*ms, WaveSaw, rate), note(120, 300*ms, WaveNoise, rate)), 0.4), nil
	case core.CueDodged:
		return gain(beep.Seq(note(660, 70*ms, WaveSquare, rate), note(990, 90*ms, WaveSquare, rate)), 0.25), nil
	case core.CueLife:
		a, err := sine(880, 150*ms, rate)
		if err != nil {
			return nil, err
		}
		b, err := sine(1320, 250*ms, rate)
		if err != nil {
			return nil, err
		}
		return gain(beep.Seq(a, b), 0.5), nil
	case core.CueMenu:
		s, err := sine(1000, 40*ms, rate)
		if err != nil {
			return nil, err
		}
		return gain(s, 0.4), nil
	case core.CueIntro:
		return gain(beep.Seq(
			note(262, 250*ms, WaveSquare, rate),
			note(330, 250*ms, WaveSquare, rate),
			note(392, 250*ms, WaveSquare, rate),
			note(523, 500*ms, WaveSquare, rate),
		), 0.3), nil
	case core.CueOutro:
		return gain(beep.Seq(
			note(392, 300*ms, WaveSaw, rate),
			note(330, 300*ms, WaveSaw, rate),
			note(262, 300*ms, WaveSaw, rate),
			note(196, 700*ms, WaveSaw, rate),
		), 0.3), nil
	case core.CueInstructions:
		return gain(note(523, 400*ms, WaveSine, rate), 0.3), nil
	case core.CueMusic:
		bass := []float64{110, 110, 147, 131}
		parts := make([]beep.Streamer, 0, len(bass))
		for _, f := range bass {
			parts = append(parts, note(f, 400*ms, WaveSine, rate))
		}
		return gain(beep.Seq(parts...), 0.25), nil
	default:
		return nil, fmt.Errorf("no synth recipe for cue %q", name)
	}
}
