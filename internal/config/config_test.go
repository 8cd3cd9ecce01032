package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestProfileTable(t *testing.T) {
	cfg := DefaultConfig().Difficulty

	tests := []struct {
		level int
		label string
		base  float64
		accel float64
		bonus int
	}{
		{1, "Easy", 2.0, 0.018, 15},
		{2, "Medium", 1.5, 0.025, 10},
		{3, "Hard", 1.0, 0.040, 5},
		{4, "Impossible", 0.8, 0.055, 2},
		{0, "Impossible", 0.8, 0.055, 2},
		{7, "Impossible", 0.8, 0.055, 2},
		{-1, "Impossible", 0.8, 0.055, 2},
	}

	for _, tt := range tests {
		p := cfg.Profile(tt.level)
		if p.Label != tt.label || p.BaseInterval != tt.base || p.AccelerationPerPoint != tt.accel || p.BonusWeight != tt.bonus {
			t.Errorf("Profile(%d) = %+v, want %s/%v/%v/%d", tt.level, p, tt.label, tt.base, tt.accel, tt.bonus)
		}
		if p.MinInterval != 0.001 {
			t.Errorf("Profile(%d).MinInterval = %v, want 0.001", tt.level, p.MinInterval)
		}
	}
}

func TestProfileFallsBackWhenTableIsPartial(t *testing.T) {
	cfg := DifficultyConfig{Profiles: []DifficultyProfile{
		{Level: 1, Label: "Custom", BaseInterval: 3, AccelerationPerPoint: 0.1, MinInterval: 0.5, BonusWeight: 1},
	}}

	if got := cfg.Profile(1).Label; got != "Custom" {
		t.Errorf("Profile(1).Label = %q, want Custom", got)
	}
	if got := cfg.Profile(9).Label; got != "Impossible" {
		t.Errorf("Profile(9).Label = %q, want built-in Impossible", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]int{
		"easy":       1,
		"Easy":       1,
		"medium":     2,
		"normal":     2,
		"hard":       3,
		"impossible": 4,
		"1":          1,
		"3":          3,
		"4":          4,
		"12":         4,
		"":           4,
		"nightmare":  4,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestNextIntervalScenario(t *testing.T) {
	easy := DefaultConfig().Difficulty.Profile(LevelEasy)

	if got := NextInterval(easy, 0); got != 2.0 {
		t.Errorf("NextInterval(easy, 0) = %v, want 2.0", got)
	}
	if got := NextInterval(easy, 5); math.Abs(got-1.91) > 1e-9 {
		t.Errorf("NextInterval(easy, 5) = %v, want 1.91", got)
	}
}

func TestNextIntervalMonotonicAndFloored(t *testing.T) {
	for _, p := range DefaultProfiles() {
		prev := math.Inf(1)
		for score := 0; score <= 500; score++ {
			got := NextInterval(p, score)
			if got > prev {
				t.Fatalf("%s: interval increased at score %d: %v > %v", p.Label, score, got, prev)
			}
			if got < p.MinInterval {
				t.Fatalf("%s: interval %v below floor %v at score %d", p.Label, got, p.MinInterval, score)
			}
			prev = got
		}
		if got := NextInterval(p, 100000); got != p.MinInterval {
			t.Errorf("%s: interval at huge score = %v, want floor %v", p.Label, got, p.MinInterval)
		}
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile DifficultyProfile
		wantErr bool
	}{
		{"valid", DifficultyProfile{Level: 1, BaseInterval: 1, MinInterval: 0.1}, false},
		{"equal base and floor", DifficultyProfile{Level: 1, BaseInterval: 0.1, MinInterval: 0.1}, false},
		{"zero floor", DifficultyProfile{Level: 1, BaseInterval: 1, MinInterval: 0}, true},
		{"base below floor", DifficultyProfile{Level: 1, BaseInterval: 0.05, MinInterval: 0.1}, true},
		{"negative acceleration", DifficultyProfile{Level: 1, BaseInterval: 1, MinInterval: 0.1, AccelerationPerPoint: -1}, true},
		{"negative bonus", DifficultyProfile{Level: 1, BaseInterval: 1, MinInterval: 0.1, BonusWeight: -1}, true},
	}

	for _, tt := range tests {
		err := tt.profile.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("%s: error %v does not wrap ErrInvalidProfile", tt.name, err)
		}
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}

	want := DefaultConfig()
	if cfg.Timing != want.Timing {
		t.Errorf("timing = %+v, want %+v", cfg.Timing, want.Timing)
	}
	if len(cfg.Difficulty.Profiles) != len(want.Difficulty.Profiles) {
		t.Fatalf("profiles = %d, want %d", len(cfg.Difficulty.Profiles), len(want.Difficulty.Profiles))
	}
	for i := range want.Difficulty.Profiles {
		if cfg.Difficulty.Profiles[i] != want.Difficulty.Profiles[i] {
			t.Errorf("profile %d = %+v, want %+v", i, cfg.Difficulty.Profiles[i], want.Difficulty.Profiles[i])
		}
	}
	if len(cfg.Audio.Files["obstacle"]) != 4 {
		t.Errorf("obstacle variants = %v, want 4 files", cfg.Audio.Files["obstacle"])
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("timing:\n  reaction_window: 0.5\n")
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Timing.ReactionWindow != 0.5 {
		t.Errorf("reaction_window = %v, want 0.5", cfg.Timing.ReactionWindow)
	}
	if cfg.Timing.Debounce != 0.3 {
		t.Errorf("debounce = %v, want default 0.3", cfg.Timing.Debounce)
	}
	if len(cfg.Difficulty.Profiles) != 4 {
		t.Errorf("profiles = %d, want defaults kept", len(cfg.Difficulty.Profiles))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("audio:\n  sounds_dir: ./sons\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Audio.SoundsDir != "./sons" {
		t.Errorf("sounds_dir = %q, want ./sons", cfg.Audio.SoundsDir)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}
}

func TestLoadRejectsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	data := []byte("difficulty:\n  profiles:\n    - level: 1\n      label: Broken\n      base_interval: 1\n      min_interval: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("Load() err = %v, want ErrInvalidProfile", err)
	}
}

func TestTick(t *testing.T) {
	if got := (TimingConfig{TickRate: 60}).Tick(); got.Milliseconds() != 16 {
		t.Errorf("Tick() at 60Hz = %v", got)
	}
	if got := (TimingConfig{}).Tick(); got.Milliseconds() != 16 {
		t.Errorf("Tick() with zero rate = %v, want 60Hz fallback", got)
	}
}

func TestExpandHome(t *testing.T) {
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q", got)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/sons"); got != filepath.Join(home, "sons") {
		t.Errorf("ExpandHome(~/sons) = %q", got)
	}
}
