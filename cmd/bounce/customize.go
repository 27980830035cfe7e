package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/platform/tui"
	"github.com/Aditya232-rtx/bouncetales/internal/skin"
)

var customizeCmd = &cobra.Command{
	Use:   "customize",
	Short: "Edit the ball's look and feel",
	Long: `Open the customization screen. Changes are saved to
~/.bounce/skin.yaml and apply to every new game.

Adjustable properties:
  Color, pattern color, size, texture, bounciness, opacity, and glow.

Examples:
  bounce customize`,
	Run: runCustomize,
}

func runCustomize(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	current, err := skin.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (starting from defaults)\n", err)
	}

	if _, err := tui.RunCustomize(current, "", cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
