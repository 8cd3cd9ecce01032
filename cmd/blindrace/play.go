package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blindrace/internal/config"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run without the menu",
	Long: `Start playing right away at the chosen difficulty. After each run
the result is shown and you are asked whether to play again.

Controls:
  Right arrow   - Dodge an obstacle on the left
  Left arrow    - Dodge an obstacle on the right
  Up arrow      - Dodge an obstacle in the center
  Down arrow    - Dodge an obstacle from above
  Space/Enter   - Break a bonus box
  Home          - Pause or resume the music
  V             - Hear how many lives are left
  Esc/Ctrl+C    - Quit

Difficulty options:
  easy        - 2 seconds between obstacles at the start
  medium      - 1.5 seconds
  hard        - 1 second
  impossible  - 0.8 seconds, speeding up fastest

Examples:
  blindrace play
  blindrace play --difficulty hard
  blindrace play --difficulty 4 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "easy", "Difficulty: easy, medium, hard, impossible or 1-4")
}

// parseDifficulty accepts a level name or number and rejects anything else.
func parseDifficulty(name string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "medium", "normal", "hard", "impossible":
		return config.ParseLevel(name), nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= config.LevelEasy && n <= config.LevelImpossible {
		return n, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", name)
}

func runPlay(_ *cobra.Command, _ []string) {
	level, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Choose one of: easy, medium, hard, impossible.")
		os.Exit(1)
	}

	if err := playDirect(level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playDirect(level int) error {
	e, err := newEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	frontend, err := e.frontend()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	if err := e.playLoop(ctx, frontend, level); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
