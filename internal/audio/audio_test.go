package audio

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
)

const testRate = 44100

var epoch = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func quietLogger() *log.Logger { return log.New(io.Discard) }

// dc streams n samples of a constant value on both channels.
func dc(v float64, n int) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if n <= 0 {
			return 0, false
		}
		k := min(len(samples), n)
		for i := 0; i < k; i++ {
			samples[i] = [2]float64{v, v}
		}
		n -= k
		return k, true
	})
}

func testConfig() config.AudioConfig {
	cfg := config.DefaultConfig().Audio
	cfg.MasterVolume = 1
	return cfg
}

// newPumpedSession returns a session whose clock feeds the output as it sleeps,
// so queued streamers play in step with waits.
func newPumpedSession(out *NullOutput) (*core.ManualClock, *core.Session) {
	clock := core.NewManualClock(epoch)
	last := epoch
	clock.OnSleep(func(now time.Time) {
		out.Pump(now.Sub(last))
		last = now
	})
	return clock, core.NewSession(context.Background(), clock, time.Second/60, nil)
}

func TestSynthBankCoversEveryCue(t *testing.T) {
	b, err := SynthBank(testRate)
	if err != nil {
		t.Fatalf("SynthBank() failed: %v", err)
	}
	for _, name := range core.CueNames() {
		if !b.Has(name) {
			t.Errorf("missing cue %q", name)
			continue
		}
		if d := b.Duration(name); d <= 0 || d > 3*time.Second {
			t.Errorf("cue %q lasts %v", name, d)
		}
	}
}

func TestPickFallsBackToGenericObstacle(t *testing.T) {
	b := NewBank(testRate)
	if err := b.Add(core.CueObstacle, dc(0.5, 100)); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	for _, name := range []string{core.CueLeft, core.CueRight, core.CueCenter, core.CueAbove} {
		if b.Pick(name) == nil {
			t.Errorf("Pick(%q) should fall back to the obstacle cue", name)
		}
	}
	if b.Pick(core.CueBonus) != nil {
		t.Error("non-obstacle cues should not fall back")
	}
}

func TestPickChoosesAmongVariants(t *testing.T) {
	b := NewBank(testRate)
	for i := 1; i <= 4; i++ {
		if err := b.Add(core.CueObstacle, dc(0.1, i*10)); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		seen[b.Pick(core.CueObstacle).Len()] = true
	}
	if len(seen) < 2 {
		t.Errorf("200 picks used only %d variant(s)", len(seen))
	}
}

func writeWav(t *testing.T, path string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, dc(0.25, rate.N(d)), format); err != nil {
		t.Fatalf("wav.Encode() failed: %v", err)
	}
}

func TestLoadBank(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "colisao.wav"), 22050, 200*time.Millisecond)
	writeWav(t, filepath.Join(dir, "obstaculo_1.wav"), testRate, 100*time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "vida.wav"), []byte("not a wave file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bonus.ogg"), []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := map[string][]string{
		core.CueCollision: {"colisao.wav"},
		core.CueObstacle:  {"obstaculo_1.wav", "obstaculo_2.wav"},
		core.CueLife:      {"vida.wav"},
		core.CueBonus:     {"bonus.ogg"},
	}
	b, err := LoadBank(dir, files, testRate, quietLogger())
	if err != nil {
		t.Fatalf("LoadBank() failed: %v", err)
	}

	// Resampled from 22050 Hz, the length in time is preserved.
	if d := b.Duration(core.CueCollision); d < 190*time.Millisecond || d > 210*time.Millisecond {
		t.Errorf("collision lasts %v, want about 200ms", d)
	}
	if !b.Has(core.CueObstacle) {
		t.Error("obstacle should load from its one present variant")
	}
	if b.Has(core.CueLife) {
		t.Error("corrupt file should leave the cue silent")
	}
	if b.Has(core.CueBonus) {
		t.Error("unsupported format should leave the cue silent")
	}
}

func TestLoadBankMissingDir(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "nope"), nil, testRate, quietLogger())
	if !errors.Is(err, ErrNoSounds) {
		t.Errorf("LoadBank() error = %v, want ErrNoSounds", err)
	}
}

func TestOpenBankFallsBackToSynth(t *testing.T) {
	cfg := testConfig()
	cfg.SoundsDir = filepath.Join(t.TempDir(), "missing")

	b, err := OpenBank(cfg, quietLogger())
	if err != nil {
		t.Fatalf("OpenBank() failed: %v", err)
	}
	if !b.Has(core.CueIntro) {
		t.Error("fallback bank should contain synthesized cues")
	}
}

func newTestPlayer(t *testing.T, out *NullOutput, cues map[string]int) *Player {
	t.Helper()
	b := NewBank(testRate)
	for name, n := range cues {
		if err := b.Add(name, dc(0.5, n)); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}
	return NewPlayer(out, b, testConfig(), 0, quietLogger())
}

func TestDirectionalCueAttenuatesFarChannel(t *testing.T) {
	tests := []struct {
		pan         core.Pan
		left, right float64
	}{
		{core.PanLeft, 0.5, 0.05},
		{core.PanRight, 0.05, 0.5},
		{core.PanCenter, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.pan.String(), func(t *testing.T) {
			out := NewNullOutput(testRate)
			p := newTestPlayer(t, out, map[string]int{core.CueLeft: 1000})

			p.PlayDirectionalCue(core.CueLeft, tt.pan)
			got := out.Pump(10 * time.Millisecond)[0]

			if math.Abs(got[0]-tt.left) > 1e-9 || math.Abs(got[1]-tt.right) > 1e-9 {
				t.Errorf("sample = %v, want [%v %v]", got, tt.left, tt.right)
			}
		})
	}
}

func TestPlayCueMissingIsSilent(t *testing.T) {
	out := NewNullOutput(testRate)
	p := newTestPlayer(t, out, nil)

	p.PlayCue(core.CueDodged)
	p.PlayDirectionalCue(core.CueLeft, core.PanLeft)
	if out.Active() != 0 {
		t.Errorf("missing cues should not reach the output, active = %d", out.Active())
	}
}

func TestBlockingCueWaitsForCompletion(t *testing.T) {
	out := NewNullOutput(testRate)
	p := newTestPlayer(t, out, map[string]int{core.CueIntro: beep.SampleRate(testRate).N(200 * time.Millisecond)})
	clock, s := newPumpedSession(out)

	p.PlayBlockingCue(s, core.CueIntro)

	elapsed := clock.Now().Sub(epoch)
	if elapsed < 200*time.Millisecond || elapsed > 200*time.Millisecond+2*s.Tick() {
		t.Errorf("returned after %v, want about 200ms", elapsed)
	}
	out.Pump(time.Millisecond)
	if out.Active() != 0 {
		t.Errorf("finished cue still in the mix")
	}
}

func TestBlockingCueTimeout(t *testing.T) {
	out := NewNullOutput(testRate)
	b := NewBank(testRate)
	if err := b.Add(core.CueOutro, dc(0.5, testRate*5)); err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(out, b, testConfig(), 300*time.Millisecond, quietLogger())
	clock, s := newPumpedSession(out)

	p.PlayBlockingCue(s, core.CueOutro)

	if elapsed := clock.Now().Sub(epoch); elapsed != 300*time.Millisecond {
		t.Errorf("returned after %v, want the 300ms timeout", elapsed)
	}
	out.Pump(10 * time.Millisecond)
	if out.Active() != 0 {
		t.Error("timed-out cue should be cut off")
	}
}

func TestBlockingCueCancelled(t *testing.T) {
	out := NewNullOutput(testRate)
	p := newTestPlayer(t, out, map[string]int{core.CueIntro: testRate * 5})
	clock, s := newPumpedSession(out)
	clock.OnSleep(func(now time.Time) {
		out.Pump(s.Tick())
		if now.Sub(epoch) >= 100*time.Millisecond {
			s.Cancel()
		}
	})

	p.PlayBlockingCue(s, core.CueIntro)

	if elapsed := clock.Now().Sub(epoch); elapsed > 100*time.Millisecond+s.Tick() {
		t.Errorf("cancellation observed after %v", elapsed)
	}
	out.Pump(10 * time.Millisecond)
	if out.Active() != 0 {
		t.Error("cancelled cue should be cut off")
	}
}

func TestSpeakerTest(t *testing.T) {
	out := NewNullOutput(testRate)
	p := newTestPlayer(t, out, map[string]int{core.CueObstacle: testRate})
	clock, s := newPumpedSession(out)

	if !p.SpeakerTest(s, 1500*time.Millisecond) {
		t.Fatal("SpeakerTest() reported cancellation")
	}
	if elapsed := clock.Now().Sub(epoch); elapsed != 3*time.Second {
		t.Errorf("speaker test took %v, want two 1.5s gaps", elapsed)
	}
	// The last cue was panned right and has just started.
	got := out.Pump(time.Millisecond)[0]
	if got[0] >= got[1] {
		t.Errorf("last cue should favor the right channel, got %v", got)
	}
}

func TestMusicLoopsPausesAndStops(t *testing.T) {
	out := NewNullOutput(testRate)
	b := NewBank(testRate)
	if err := b.Add(core.CueMusic, dc(0.5, beep.SampleRate(testRate).N(100*time.Millisecond))); err != nil {
		t.Fatal(err)
	}
	m := NewMusic(out, b, core.CueMusic, 0.7)

	m.Start(true)
	out.Pump(350 * time.Millisecond)
	if out.Active() != 1 || !m.Playing() {
		t.Fatal("looping track should still be playing after several lengths")
	}
	if got := out.Pump(time.Millisecond)[0][0]; math.Abs(got-0.35) > 1e-9 {
		t.Errorf("sample = %v, want 0.35 at volume 0.7", got)
	}

	m.Pause()
	if got := out.Pump(10 * time.Millisecond)[0][0]; got != 0 {
		t.Errorf("paused sample = %v, want silence", got)
	}
	if m.Playing() {
		t.Error("Playing() should be false while paused")
	}

	m.Resume()
	if got := out.Pump(time.Millisecond)[0][0]; got == 0 {
		t.Error("resumed track should be audible")
	}

	m.Stop()
	out.Pump(time.Millisecond)
	if out.Active() != 0 {
		t.Error("stopped track should leave the mix")
	}
	m.Pause() // no-op after stop
}

func TestMusicWithoutTrack(t *testing.T) {
	out := NewNullOutput(testRate)
	m := NewMusic(out, NewBank(testRate), core.CueMusic, 0.7)

	m.Start(true)
	m.Pause()
	m.Resume()
	m.Stop()
	if out.Active() != 0 || m.Playing() {
		t.Error("missing track should be a silent no-op")
	}
}

func TestNullOutputRunDrainsInRealTime(t *testing.T) {
	out := NewNullOutput(testRate)
	out.Play(dc(0.5, testRate/100))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		out.Run(ctx, 5*time.Millisecond)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for out.Active() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done
	if out.Active() != 0 {
		t.Error("Run should drain finished streamers")
	}
}
