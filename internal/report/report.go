// Package report formats run summaries for display, speech and the clipboard.
package report

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/blindrace/internal/reflex"
)

// Format returns the full result sentence.
func Format(s reflex.RunSummary) string {
	return fmt.Sprintf("On %s at %s, %s finished the game on '%s' difficulty with %s, at level %d.",
		s.Timestamp.Format("2 January 2006"),
		s.Timestamp.Format("15:04"),
		s.Host,
		s.Difficulty,
		points(s.Score),
		s.Level,
	)
}

// Short returns a one-line result for status bars and speech.
func Short(s reflex.RunSummary) string {
	return fmt.Sprintf("%s, level %d, %s", points(s.Score), s.Level, s.Difficulty)
}

// Row is one label/value line of a summary table.
type Row struct {
	Label string
	Value string
}

// Rows breaks a summary into table rows.
func Rows(s reflex.RunSummary) []Row {
	return []Row{
		{"Difficulty", s.Difficulty},
		{"Score", strconv.Itoa(s.Score)},
		{"Level", strconv.Itoa(s.Level)},
		{"Obstacles", strconv.Itoa(s.Obstacles)},
		{"Extra lives", strconv.Itoa(s.BonusLivesGained)},
		{"Lives lost", strconv.Itoa(s.LivesLost)},
		{"Player", s.Host},
		{"Date", s.Timestamp.Format("2006-01-02 15:04")},
	}
}

func points(n int) string {
	if n == 1 {
		return "1 point"
	}
	return strconv.Itoa(n) + " points"
}
