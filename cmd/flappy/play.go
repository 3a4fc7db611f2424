package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game variant (default: flappy).

Variants:
  flappy          - Tap to start; day and night swap every 15 points
  flappy_classic  - Starts at once; day and night swap every 10 points

Controls:
  Space/Up/W/Enter/Click - Flap (also starts and restarts)
  P                      - Pause
  R                      - Restart (after game over)
  Ctrl+S                 - Save a text screenshot
  Q/Ctrl+C               - Quit

Examples:
  flappy play
  flappy play flappy_classic
  flappy play --seed 42 --mute
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := flappy.IDTutorial
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available games.")
		os.Exit(1)
	}

	// An explicit --config must be valid; fail before taking the terminal.
	if flagConfig != "" {
		if _, err := flappy.LoadConfig(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closer := newLogger(cmd, "")
	defer closer.Close()

	player := newAudio(logger)
	defer player.Close()

	runErr := tui.Run(game, runtimeConfig(), tui.GameOptions{
		Audio:     player,
		Logger:    logger,
		Player:    os.Getenv("USER"),
		Clipboard: true,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
