package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Blind Race configuration and validates it.
// Search order: customPath -> ~/.blindrace/config.yaml -> ./configs/blindrace.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Audio.SoundsDir = ExpandHome(cfg.Audio.SoundsDir)
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/blindrace.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a file only needs
// the keys it changes. A profiles list replaces the whole table.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks timing values and every difficulty profile.
func (c Config) Validate() error {
	var errs []error

	t := c.Timing
	if t.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be > 0, got %d", t.TickRate))
	}
	if t.ReactionWindow <= 0 {
		errs = append(errs, fmt.Errorf("timing.reaction_window must be > 0, got %v", t.ReactionWindow))
	}
	if t.Debounce < 0 {
		errs = append(errs, fmt.Errorf("timing.debounce must be >= 0, got %v", t.Debounce))
	}
	if t.BlockingCueTimeout <= 0 {
		errs = append(errs, fmt.Errorf("timing.blocking_cue_timeout must be > 0, got %v", t.BlockingCueTimeout))
	}

	a := c.Audio
	if a.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be > 0, got %d", a.SampleRate))
	}
	if a.PanAttenuation < 0 || a.PanAttenuation > 1 {
		errs = append(errs, fmt.Errorf("audio.pan_attenuation must be within [0, 1], got %v", a.PanAttenuation))
	}

	if len(c.Difficulty.Profiles) == 0 {
		errs = append(errs, fmt.Errorf("%w: difficulty.profiles is empty", ErrInvalidProfile))
	}
	for _, p := range c.Difficulty.Profiles {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// UserDir returns ~/.blindrace, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blindrace")
}

// UserPath returns the path to a file in the user directory, or empty if home is unavailable.
func UserPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ExpandHome expands a leading ~ to the home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
