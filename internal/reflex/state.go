package reflex

import (
	"time"

	"github.com/vovakirdan/blindrace/internal/config"
)

// BaseLives is the number of lives every run starts with.
const BaseLives = 3

// RunState is the mutable state of one run.
type RunState struct {
	Profile          config.DifficultyProfile
	Score            int     // Successful dodges
	LivesLost        int     // Misses, bonus misses included
	BonusLivesGained int     // Bonus boxes broken
	Obstacles        int     // Obstacles resolved
	CurrentInterval  float64 // Seconds until the next obstacle
}

// NewRunState creates the initial state for a profile.
func NewRunState(profile config.DifficultyProfile) RunState {
	return RunState{
		Profile:         profile,
		CurrentInterval: config.NextInterval(profile, 0),
	}
}

// Apply records an outcome and recomputes the interval.
func (s *RunState) Apply(outcome Outcome) {
	s.Obstacles++
	switch outcome {
	case OutcomeDodged:
		s.Score++
	case OutcomeBonusCollected:
		s.BonusLivesGained++
	default:
		s.LivesLost++
	}
	s.CurrentInterval = config.NextInterval(s.Profile, s.Score)
}

// LivesRemaining returns the lives left before the run ends.
func (s RunState) LivesRemaining() int {
	return BaseLives + s.BonusLivesGained - s.LivesLost
}

// GameOver reports whether the run has used up every life.
func (s RunState) GameOver() bool {
	return s.LivesLost >= BaseLives+s.BonusLivesGained
}

// Interval returns CurrentInterval as a duration.
func (s RunState) Interval() time.Duration {
	return config.Seconds(s.CurrentInterval)
}
