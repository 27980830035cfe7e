package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aditya232-rtx/bouncetales/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the built-in levels in play order.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels := game.BuiltinLevels()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %s\n", "No.", maxNameLen, "Name", "Gems")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxNameLen, "----", "----")

	// Print levels
	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %d\n", i+1, maxNameLen, l.Name, len(l.Gems))
	}

	fmt.Println()
	fmt.Println("Run 'bounce play <no>' to start from a level.")
}
