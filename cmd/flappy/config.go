package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game variant would run with, as YAML.

The file is resolved like 'play' does: --config, then
~/.flappy/configs/flappy.yaml, then ./configs/flappy.yaml, then the
built-in defaults. The variant's preset is applied on top.

Examples:
  flappy config
  flappy config flappy_classic
  flappy config --defaults > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	preset := config.PresetTutorial
	if len(args) == 1 {
		switch args[0] {
		case flappy.IDTutorial:
		case flappy.IDClassic:
			preset = config.PresetClassic
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
			os.Exit(1)
		}
	}

	cfg, err := flappy.LoadConfig(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
