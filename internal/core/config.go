package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains the per-launch settings resolved from the command line.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Input polls per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the current time
}

// ScreenSize returns the screen size, falling back to 80x24 for unset values.
func (c RuntimeConfig) ScreenSize() (int, int) {
	w, h := c.ScreenW, c.ScreenH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// NewRand returns the obstacle random source for a run.
func (c RuntimeConfig) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
