package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/game"
	"github.com/Aditya232-rtx/bouncetales/internal/platform/tui"
	"github.com/Aditya232-rtx/bouncetales/internal/registry"
	"github.com/Aditya232-rtx/bouncetales/internal/score"
	"github.com/Aditya232-rtx/bouncetales/internal/skin"
	"github.com/Aditya232-rtx/bouncetales/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with an interactive menu",
	Long: `Start in interactive menu mode: play, pick a level, customize the
ball, or browse the run history. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  bounce menu
  bounce menu --fps 30
  bounce menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	highScores := score.NewStore("")

	// Persisted skin applies to every run started from the menu
	if sk, skinErr := skin.Load(""); skinErr == nil {
		game.SetSkin(sk)
	}

	// Get terminal size
	width, height := 80, 24
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

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(highScores, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		switch menuResult.Choice {
		case tui.MenuChoicePlay:
			game.SetStartLevel(0)
			if !playFromMenu(store, highScores, &cfg) {
				return
			}

		case tui.MenuChoiceLevelSelect:
			idx, selErr := tui.RunLevelSelect(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if idx < 0 {
				continue // Back to menu
			}
			game.SetStartLevel(idx)
			if !playFromMenu(store, highScores, &cfg) {
				return
			}

		case tui.MenuChoiceCustomize:
			current, _ := skin.Load("")
			edited, custErr := tui.RunCustomize(current, "", cfg)
			if custErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", custErr)
				continue
			}
			game.SetSkin(edited)

		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, highScores, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				// User quit from scoreboard
				if store != nil {
					store.Close()
				}
				return
			}
		}
	}

	if store != nil {
		store.Close()
	}
}

// playFromMenu runs one game session. Returns false when the user quit
// outright rather than going back to the menu.
func playFromMenu(store *storage.Store, highScores *score.Store, cfg *core.RuntimeConfig) bool {
	g, err := registry.Create("bounce")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return true
	}

	// Fresh seed for each game
	cfg.Seed = time.Now().UnixNano()

	backToMenu, err := tui.Run(g, store, highScores, *cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return true
	}
	if !backToMenu {
		if store != nil {
			store.Close()
		}
		return false
	}
	return true
}
