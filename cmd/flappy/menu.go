package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc or B on the tutorial, pause or game over screen returns to the menu.
Tab opens the log of the best runs of this session.

Examples:
  flappy menu
  flappy menu --fps 30`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	logger, closer := newLogger(cmd, "")
	defer closer.Close()

	player := newAudio(logger)
	defer player.Close()

	err := tui.RunSession(runtimeConfig(), tui.SessionOptions{
		Audio:     player,
		Logger:    logger,
		Player:    os.Getenv("USER"),
		Clipboard: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
