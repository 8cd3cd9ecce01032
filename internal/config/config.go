// Package config provides YAML-based game configuration loading and
// difficulty management for Blind Race.
package config

import "time"

// Config contains all configuration for a Blind Race session.
type Config struct {
	Timing     TimingConfig     `yaml:"timing"`
	Audio      AudioConfig      `yaml:"audio"`
	Speech     SpeechConfig     `yaml:"speech"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the loop timing. All values are in seconds.
type TimingConfig struct {
	TickRate           int     `yaml:"tick_rate"`            // Input polls per second
	ReactionWindow     float64 `yaml:"reaction_window"`      // Budget to answer an obstacle
	Debounce           float64 `yaml:"debounce"`             // Minimum spacing of housekeeping keys
	BlockingCueTimeout float64 `yaml:"blocking_cue_timeout"` // Cap on intro/outro cues
	Warmup             float64 `yaml:"warmup"`               // Input drain before the intro cue
	SpeakerTestGap     float64 `yaml:"speaker_test_gap"`     // Pause between speaker test cues
}

// Tick returns the duration of one input poll.
func (t TimingConfig) Tick() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}

// AudioConfig defines the audio device and the sound asset layout.
type AudioConfig struct {
	SampleRate     int                 `yaml:"sample_rate"`
	BufferMs       int                 `yaml:"buffer_ms"`
	MasterVolume   float64             `yaml:"master_volume"`   // 0.0 - 1.0
	MusicVolume    float64             `yaml:"music_volume"`    // 0.0 - 1.0, relative to master
	PanAttenuation float64             `yaml:"pan_attenuation"` // Gain applied to the far channel
	SoundsDir      string              `yaml:"sounds_dir"`      // Empty = synthesized tones
	Files          map[string][]string `yaml:"files"`           // Cue name -> file variants
}

// SpeechConfig defines the external speech engine.
type SpeechConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Command     string   `yaml:"command"` // Empty = auto-detect
	Args        []string `yaml:"args"`
	Voice       string   `yaml:"voice"`
	WaitTimeout float64  `yaml:"wait_timeout"` // Seconds
}

// DifficultyConfig holds the difficulty table.
type DifficultyConfig struct {
	Profiles []DifficultyProfile `yaml:"profiles"`
}

// DifficultyProfile maps one difficulty level to pacing parameters.
// Interval values are seconds.
type DifficultyProfile struct {
	Level                int     `yaml:"level"`
	Label                string  `yaml:"label"`
	BaseInterval         float64 `yaml:"base_interval"`
	AccelerationPerPoint float64 `yaml:"acceleration_per_point"`
	MinInterval          float64 `yaml:"min_interval"`
	BonusWeight          int     `yaml:"bonus_weight"`
}

// Seconds converts a float number of seconds into a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
