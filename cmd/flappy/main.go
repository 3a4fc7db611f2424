// flappy is a Flappy Bird-style arcade game for the terminal.
//
// Usage:
//
//	flappy play [game]       - Play a game (default: flappy)
//	flappy list              - List available game variants
//	flappy menu              - Pick a variant interactively
//	flappy serve             - Start SSH server for remote play
//	flappy config [game]     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gap placement
//	--config <path>       - Use a custom config file
//	--mute                - Disable sound
//	--log-file <path>     - Write logs to a file ("-" for stderr)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap to fly through the pipes in your terminal",
	Long: `Flappy is a Flappy Bird-style arcade game for the terminal.
Tap to flap, slip through the gap, and score a point for every pipe cleared.

Available commands:
  play     - Play a game variant directly
  list     - Show all game variants
  menu     - Interactive game picker with a run log
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play flappy_classic
  flappy menu
  flappy serve --ssh :2222
  flappy config --config ./my-flappy.yaml`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		flappy.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log destination ("-" for stderr, empty to discard)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger builds the process logger. defaultFile applies when --log-file
// was not given.
func newLogger(cmd *cobra.Command, defaultFile string) (*log.Logger, io.Closer) {
	file := flagLogFile
	if !cmd.Flags().Changed("log-file") {
		file = defaultFile
	}
	logger, closer, err := logging.New(logging.Options{File: file, Level: flagLogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

// newAudio opens the sound device using the volumes from the loaded config.
func newAudio(logger *log.Logger) audio.Player {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	return audio.New(audio.Options{
		Enabled:     cfg.Audio.Enabled && !flagMute,
		MusicVolume: cfg.Audio.MusicVolume,
		JumpVolume:  cfg.Audio.JumpVolume,
		Logger:      logger,
	})
}
