package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aditya232-rtx/bouncetales/internal/score"
	"github.com/Aditya232-rtx/bouncetales/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history and high score",
	Long: `Display the top 10 runs and the all-time high score.

Examples:
  bounce scores
  bounce scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the entire run history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History - Bounce Tales")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bounce play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Score", "Level", "Cleared", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-------", "----")

	// Print runs
	for i, entry := range runs {
		cleared := "-"
		if entry.Cleared {
			cleared = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-8s  %s\n", i+1, entry.Score, entry.Level, cleared, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Cleared: %d  Best: %d\n", stats.TotalRuns, stats.ClearedRuns, stats.BestScore)
	}

	// The flat high score file may predate the run database
	if record, err := score.NewStore("").Read(); err == nil && record > 0 {
		fmt.Printf("All-time record: %d\n", record)
	}
}
