package audio

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
)

var (
	// ErrNoSounds is returned when the configured sound directory does not exist.
	ErrNoSounds = errors.New("sound directory not found")
	// ErrUnsupportedFormat is returned for files that are neither WAV nor MP3.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// resampleQuality is passed to beep.Resample. 4 is beep's recommended default.
const resampleQuality = 4

// Bank holds decoded cue buffers at the output sample rate. A cue may have
// several variants; one is picked at random per play.
type Bank struct {
	format beep.Format

	mu   sync.Mutex
	cues map[string][]*beep.Buffer
	rng  *rand.Rand
}

// NewBank creates an empty bank for the given rate.
func NewBank(rate beep.SampleRate) *Bank {
	return &Bank{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		cues:   make(map[string][]*beep.Buffer),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SampleRate returns the rate every buffer is stored at.
func (b *Bank) SampleRate() beep.SampleRate { return b.format.SampleRate }

// Add renders a finite streamer into a new variant of name.
func (b *Bank) Add(name string, s beep.Streamer) error {
	buf := beep.NewBuffer(b.format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.cues[name] = append(b.cues[name], buf)
	return nil
}

// Has reports whether name has at least one variant.
func (b *Bank) Has(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cues[name]) > 0
}

// Names returns the loaded cue names, sorted.
func (b *Bank) Names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.cues))
	for name, bufs := range b.cues {
		if len(bufs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Duration returns the length of the longest variant of name.
func (b *Bank) Duration(name string) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	longest := 0
	for _, buf := range b.cues[name] {
		longest = max(longest, buf.Len())
	}
	return b.format.SampleRate.D(longest)
}

// Pick returns a random variant of name. Obstacle cues without their own
// sound fall back to the generic obstacle variants. Returns nil if nothing
// can be played.
func (b *Bank) Pick(name string) *beep.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()

	bufs := b.cues[name]
	if len(bufs) == 0 && isObstacleCue(name) {
		bufs = b.cues[core.CueObstacle]
	}
	if len(bufs) == 0 {
		return nil
	}
	return bufs[b.rng.Intn(len(bufs))]
}

func isObstacleCue(name string) bool {
	switch name {
	case core.CueLeft, core.CueRight, core.CueCenter, core.CueAbove:
		return true
	}
	return false
}

// LoadBank decodes the files listed for each cue from dir. Files that are
// missing or cannot be decoded are logged and skipped, leaving that cue silent.
func LoadBank(dir string, files map[string][]string, rate beep.SampleRate, logger *log.Logger) (*Bank, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoSounds, dir)
	}

	b := NewBank(rate)
	for name, list := range files {
		for _, file := range list {
			path := file
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, file)
			}
			if err := b.load(name, path); err != nil {
				logger.Warn("skipping sound", "cue", name, "file", path, "error", err)
				continue
			}
			logger.Debug("loaded sound", "cue", name, "file", path)
		}
	}
	return b, nil
}

func (b *Bank) load(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("decode: %w", err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != b.format.SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, b.format.SampleRate, stream)
	}
	if err := b.Add(name, s); err != nil {
		return err
	}
	return stream.Err()
}

// SynthBank fills a bank with synthesized stand-ins for every cue.
func SynthBank(rate beep.SampleRate) (*Bank, error) {
	b := NewBank(rate)
	for _, name := range core.CueNames() {
		s, err := Synth(name, rate)
		if err != nil {
			return nil, err
		}
		if err := b.Add(name, s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// OpenBank builds the bank described by cfg: files from SoundsDir when set,
// synthesized tones otherwise or when the directory is missing.
func OpenBank(cfg config.AudioConfig, logger *log.Logger) (*Bank, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if cfg.SoundsDir != "" {
		b, err := LoadBank(cfg.SoundsDir, cfg.Files, rate, logger)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, ErrNoSounds) {
			return nil, err
		}
		logger.Warn("using synthesized sounds", "error", err)
	}
	return SynthBank(rate)
}
