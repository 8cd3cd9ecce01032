// Package audio plays the game's sound cues and background music through
// gopxl/beep.
package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is the device streamers are mixed into. Lock and Unlock guard
// changes to streamers that are already playing.
type Output interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Clear()
	Close()
}

// SpeakerOutput plays through the system audio device.
type SpeakerOutput struct {
	sr    beep.SampleRate
	mixer *beep.Mixer

	mu     sync.Mutex
	closed bool
}

// OpenSpeaker initializes the audio device. Only one speaker can be open per process.
func OpenSpeaker(sampleRate int, buffer time.Duration) (*SpeakerOutput, error) {
	sr := beep.SampleRate(sampleRate)
	if buffer <= 0 {
		buffer = 100 * time.Millisecond
	}
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return nil, fmt.Errorf("init audio device at %d Hz: %w", sampleRate, err)
	}

	out := &SpeakerOutput{
		sr:    sr,
		mixer: &beep.Mixer{},
	}
	speaker.Play(out.mixer)
	return out, nil
}

func (o *SpeakerOutput) SampleRate() beep.SampleRate { return o.sr }

func (o *SpeakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *SpeakerOutput) Lock()   { speaker.Lock() }
func (o *SpeakerOutput) Unlock() { speaker.Unlock() }

// Clear stops everything that is playing.
func (o *SpeakerOutput) Clear() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (o *SpeakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	o.Clear()
	speaker.Close()
}

// NullOutput mixes without a device. Nothing advances until Pump is called,
// which makes it usable as a muted output and as a test double.
type NullOutput struct {
	sr    beep.SampleRate
	mu    sync.Mutex
	mixer beep.Mixer
}

// NewNullOutput creates an output running at the given rate.
func NewNullOutput(sampleRate int) *NullOutput {
	return &NullOutput{sr: beep.SampleRate(sampleRate)}
}

func (o *NullOutput) SampleRate() beep.SampleRate { return o.sr }

func (o *NullOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	o.mixer.Add(s)
	o.mu.Unlock()
}

func (o *NullOutput) Lock()   { o.mu.Lock() }
func (o *NullOutput) Unlock() { o.mu.Unlock() }

func (o *NullOutput) Clear() {
	o.mu.Lock()
	o.mixer.Clear()
	o.mu.Unlock()
}

func (o *NullOutput) Close() { o.Clear() }

// Pump renders d worth of mixed samples and returns them.
func (o *NullOutput) Pump(d time.Duration) [][2]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([][2]float64, o.sr.N(d))
	const chunk = 512
	for i := 0; i < len(out); i += chunk {
		end := min(i+chunk, len(out))
		o.mixer.Stream(out[i:end])
	}
	return out
}

// Active returns the number of streamers still in the mix.
func (o *NullOutput) Active() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mixer.Len()
}

// Run pumps the mix in real time, period at a time, until ctx is done. A
// muted game uses it so cues still take as long as they would out loud.
func (o *NullOutput) Run(ctx context.Context, period time.Duration) {
	if period <= 0 {
		period = 20 * time.Millisecond
	}
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			o.Pump(period)
		}
	}
}
