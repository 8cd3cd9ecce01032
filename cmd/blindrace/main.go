// blindrace is an audio reflex game for blind and low-vision players.
//
// Usage:
//
//	blindrace                  - Open the main menu
//	blindrace play             - Start a run without the menu
//	blindrace sounds [name]    - List game sounds, or play one
//	blindrace speakers         - Run the left/center/right speaker test
//	blindrace frontends        - List available front-ends
//	blindrace config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set input poll rate (default: timing.tick_rate, 60)
//	--seed <value>        - Set RNG seed for a reproducible obstacle sequence
//	--config <path>       - Load configuration from a YAML file
//	--sounds <dir>        - Load sound files from a directory
//	--frontend <name>     - Pick the front-end: visual or speech
//	--mute                - Play without an audio device
//	--log <path>          - Write logs to a file, or "-" for stderr
//	--log-level <level>   - debug, info, warn or error
//	--high-contrast       - Use the high-contrast color theme
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blindrace/internal/platform/tui"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagConfig       string
	flagSounds       string
	flagFrontend     string
	flagMute         bool
	flagLog          string
	flagLogLevel     string
	flagHighContrast bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blindrace",
	Short: "Blind Race - an audio reflex game",
	Long: `Blind Race is a reflex game played by ear. Obstacles are announced
by sound from the left, the right, the center or above, and you have a
moment to dodge each one with the arrow keys. Bonus boxes are broken with
Space for an extra life.

Run without a command to open the main menu.

Available commands:
  play       - Start a run right away
  sounds     - List game sounds or play one
  speakers   - Check your left and right speakers
  frontends  - Show the available front-ends
  config     - Print the effective configuration

Examples:
  blindrace
  blindrace --frontend speech
  blindrace play --difficulty hard
  blindrace sounds bonus
  blindrace --sounds ~/blindrace-sounds --log -`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Input poll rate per second (0 = timing.tick_rate from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSounds, "sounds", "", "Directory with sound files (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", tui.VisualFrontend, "Front-end: visual or speech")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Play without opening an audio device")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", defaultLogPath, `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagHighContrast, "high-contrast", false, "Use the high-contrast theme")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(soundsCmd)
	rootCmd.AddCommand(speakersCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}
