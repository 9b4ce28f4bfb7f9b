package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W  - Hold to climb
  Enter/R     - Start or restart
  Q/Ctrl+C    - Quit

Examples:
  arcade play
  arcade play --seed 42
  arcade play --config ./my-flappy.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The game owns the terminal; only warnings reach stderr before it starts
	logger := newLogger("arcade")
	logger.Debug("config loaded", "source", source)

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	if err := tui.Run(cfg, runtime); err != nil {
		fail("running game: %v", err)
	}
}
