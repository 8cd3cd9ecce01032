package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blindrace/internal/core"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds [name]",
	Short: "List game sounds, or play one",
	Long: `Without a name, lists every sound the game uses and what it means.
With a name, plays that sound once so you can learn it.

Examples:
  blindrace sounds
  blindrace sounds left
  blindrace sounds bonus --sounds ~/blindrace-sounds`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSounds,
}

func runSounds(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		listSounds()
		return
	}

	name := args[0]
	if !slices.Contains(core.CueNames(), name) {
		fmt.Fprintf(os.Stderr, "Error: unknown sound %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'blindrace sounds' to see available sounds.")
		os.Exit(1)
	}
	if err := playSound(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listSounds() {
	names := core.CueNames()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		maxNameLen = max(maxNameLen, len(n))
	}

	fmt.Println("Game sounds:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Meaning")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-------")
	for _, n := range names {
		fmt.Printf("  %-*s  %s\n", maxNameLen, n, core.CueDescription(n))
	}

	fmt.Println()
	fmt.Println("Run 'blindrace sounds <name>' to hear one.")
}

func playSound(name string) error {
	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signalContext()
	defer stop()

	if e.bank.Pick(name) == nil {
		fmt.Printf("No sound for %q, nothing to play.\n", name)
		return nil
	}

	fmt.Printf("Playing %s: %s\n", name, core.CueDescription(name))
	s := core.NewSession(ctx, core.SystemClock{}, e.cfg.Timing.Tick(), nil)
	defer s.Cancel()
	e.player.PlayBlockingCue(s, name)
	return nil
}
