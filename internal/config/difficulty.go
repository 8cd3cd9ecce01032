package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Difficulty levels. Anything outside 1-3 plays as LevelImpossible.
const (
	LevelEasy       = 1
	LevelMedium     = 2
	LevelHard       = 3
	LevelImpossible = 4
)

// ErrInvalidProfile is returned when a difficulty profile breaks its invariants.
var ErrInvalidProfile = errors.New("invalid difficulty profile")

// DefaultProfiles returns the built-in difficulty table.
func DefaultProfiles() []DifficultyProfile {
	return []DifficultyProfile{
		{Level: LevelEasy, Label: "Easy", BaseInterval: 2.0, AccelerationPerPoint: 0.018, MinInterval: 0.001, BonusWeight: 15},
		{Level: LevelMedium, Label: "Medium", BaseInterval: 1.5, AccelerationPerPoint: 0.025, MinInterval: 0.001, BonusWeight: 10},
		{Level: LevelHard, Label: "Hard", BaseInterval: 1.0, AccelerationPerPoint: 0.040, MinInterval: 0.001, BonusWeight: 5},
		{Level: LevelImpossible, Label: "Impossible", BaseInterval: 0.8, AccelerationPerPoint: 0.055, MinInterval: 0.001, BonusWeight: 2},
	}
}

// ParseLevel converts a CLI/menu name into a difficulty level.
// Unknown names fall back to LevelImpossible, the same as the table lookup.
func ParseLevel(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return LevelEasy
	case "medium", "normal":
		return LevelMedium
	case "hard":
		return LevelHard
	case "impossible":
		return LevelImpossible
	}
	if n, err := strconv.Atoi(name); err == nil {
		return normalizeLevel(n)
	}
	return LevelImpossible
}

func normalizeLevel(level int) int {
	if level >= LevelEasy && level <= LevelHard {
		return level
	}
	return LevelImpossible
}

// Profile returns the profile for a level. Levels outside 1-3 resolve to the
// level 4 entry; if the table lacks it the built-in level 4 profile is used.
func (d DifficultyConfig) Profile(level int) DifficultyProfile {
	level = normalizeLevel(level)
	for _, p := range d.Profiles {
		if p.Level == level {
			return p
		}
	}
	for _, p := range DefaultProfiles() {
		if p.Level == level {
			return p
		}
	}
	return DefaultProfiles()[LevelImpossible-1]
}

// Validate checks the pacing invariants of a single profile.
func (p DifficultyProfile) Validate() error {
	if p.MinInterval <= 0 {
		return fmt.Errorf("%w: level %d: min_interval must be > 0, got %v", ErrInvalidProfile, p.Level, p.MinInterval)
	}
	if p.BaseInterval < p.MinInterval {
		return fmt.Errorf("%w: level %d: base_interval %v below min_interval %v", ErrInvalidProfile, p.Level, p.BaseInterval, p.MinInterval)
	}
	if p.AccelerationPerPoint < 0 {
		return fmt.Errorf("%w: level %d: acceleration_per_point must be >= 0", ErrInvalidProfile, p.Level)
	}
	if p.BonusWeight < 0 {
		return fmt.Errorf("%w: level %d: bonus_weight must be >= 0", ErrInvalidProfile, p.Level)
	}
	return nil
}

// NextInterval returns the delay in seconds before the next obstacle for the
// given score. It never drops below the profile's MinInterval.
func NextInterval(p DifficultyProfile, score int) float64 {
	return math.Max(p.MinInterval, p.BaseInterval-float64(score)*p.AccelerationPerPoint)
}
