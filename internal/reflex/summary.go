package reflex

import (
	"os"
	"time"
)

// PointsPerLevel is how many dodges separate two displayed levels.
const PointsPerLevel = 10

// RunSummary is the immutable result of a finished run.
type RunSummary struct {
	Score            int
	Level            int
	Difficulty       string
	Timestamp        time.Time
	Host             string
	Obstacles        int
	LivesLost        int
	BonusLivesGained int
}

// GameLevel maps a score to the displayed level.
func GameLevel(score int) int {
	if score < 0 {
		score = 0
	}
	return score/PointsPerLevel + 1
}

// NewRunSummary builds a summary from the final state.
func NewRunSummary(state RunState, at time.Time, host string) RunSummary {
	return RunSummary{
		Score:            state.Score,
		Level:            GameLevel(state.Score),
		Difficulty:       state.Profile.Label,
		Timestamp:        at,
		Host:             host,
		Obstacles:        state.Obstacles,
		LivesLost:        state.LivesLost,
		BonusLivesGained: state.BonusLivesGained,
	}
}

// Hostname returns the machine name, or "unknown" if it cannot be read.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "unknown"
	}
	return name
}
