package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blindrace/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available front-ends",
	Long:  `Shows the front-ends that can be picked with --frontend.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(_ *cobra.Command, _ []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No front-ends available.")
		return
	}

	fmt.Println("Available front-ends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range frontends {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'blindrace --frontend <name>' to use one.")
}
