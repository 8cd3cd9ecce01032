package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
)

var speakersCmd = &cobra.Command{
	Use:   "speakers",
	Short: "Run the speaker test",
	Long: `Plays the obstacle sound on the left speaker, then both, then the
right speaker. If the left and right sounds come from the wrong side, swap
your headphones before playing.`,
	Args: cobra.NoArgs,
	Run:  runSpeakers,
}

func runSpeakers(_ *cobra.Command, _ []string) {
	if err := speakerTest(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func speakerTest() error {
	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signalContext()
	defer stop()

	s := core.NewSession(ctx, core.SystemClock{}, e.cfg.Timing.Tick(), nil)
	defer s.Cancel()

	fmt.Println("Speaker test: left, center, right.")
	if !e.player.SpeakerTest(s, config.Seconds(e.cfg.Timing.SpeakerTestGap)) {
		fmt.Println("Speaker test cancelled.")
		return nil
	}

	// Let the last cue ring out before the device closes.
	s.WaitFor(e.bank.Duration(core.CueObstacle), nil)
	fmt.Println("Speaker test finished.")
	return nil
}
