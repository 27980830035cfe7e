package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Aditya232-rtx/bouncetales/internal/config"
	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/game"
	"github.com/Aditya232-rtx/bouncetales/internal/platform/tui"
	"github.com/Aditya232-rtx/bouncetales/internal/registry"
	"github.com/Aditya232-rtx/bouncetales/internal/score"
	"github.com/Aditya232-rtx/bouncetales/internal/skin"
	"github.com/Aditya232-rtx/bouncetales/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start playing, optionally from a given level number.

Controls:
  A/D or Left/Right  - Roll
  Space/W/Up         - Jump (only from the ground)
  P                  - Pause
  R                  - Restart the level
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  bounce play
  bounce play 2
  bounce play --difficulty hard
  bounce play --config ./my-bounce.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	startLevel := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: level must be a number, got %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'bounce levels' to see available levels.")
			os.Exit(1)
		}
		// Levels are shown 1-based; out-of-range values clamp in-game
		startLevel = n - 1
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// An explicitly supplied config that cannot be loaded is fatal;
	// the search-order fallbacks only apply without --config.
	if flagConfig != "" {
		if _, cfgErr := config.LoadBounce(flagConfig); cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cfgErr)
			os.Exit(1)
		}
	}

	// Configure the game before creation
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetStartLevel(startLevel)
	if sk, err := skin.Load(""); err == nil {
		game.SetSkin(sk)
	}

	g, err := registry.Create("bounce")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	highScores := score.NewStore("")

	_, runErr := tui.Run(g, store, highScores, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
