// bounce is a terminal platformer about steering a bouncing ball to the goal.
//
// Usage:
//
//	bounce play [level]      - Play directly, optionally from a given level
//	bounce menu              - Interactive menu (level select, customization, scores)
//	bounce levels            - List the available levels
//	bounce customize         - Edit the ball's look and feel
//	bounce scores            - Show the run history and the high score
//	bounce serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bounce/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/Aditya232-rtx/bouncetales/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce Tales - A ball-bouncing platformer in your terminal",
	Long: `Bounce Tales is a terminal platformer: roll and bounce a ball across
platforms, collect gems, dodge hazards, and reach the goal.

Available commands:
  play       - Play directly, optionally from a chosen level
  menu       - Interactive menu with level select and customization
  levels     - List the available levels
  customize  - Edit the ball's look and feel
  scores     - View run history and the high score
  serve      - Start SSH server for remote play

Examples:
  bounce play
  bounce play 2 --difficulty easy
  bounce menu
  bounce serve --ssh :2222
  bounce scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bounce/scores.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(customizeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
