package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would run with, after the search order
and flag overrides are applied. The output is a valid config file.

Search order:
  --config <path>
  ~/.arcade/configs/flappy.{yaml,yml,toml}
  ./configs/flappy.{yaml,yml,toml}
  built-in defaults

Examples:
  arcade config
  arcade config --format toml > ~/.arcade/configs/flappy.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fail("%v", err)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	if err := config.Encode(os.Stdout, cfg, format); err != nil {
		fail("%v", err)
	}
}
