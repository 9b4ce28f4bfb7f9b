package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

var (
	flagMaxFrames   int
	flagInterval    time.Duration
	flagNoAutopilot bool
	flagPrint       bool
	flagSimWidth    int
	flagSimHeight   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game",
	Long: `Run the game without a terminal UI, driven by the fixed-rate loop.

The autopilot steers toward the next gap unless --no-autopilot is set, in
which case the player just falls. The run ends on game over, at
--max-frames, or on Ctrl+C.

Examples:
  arcade sim --seed 7 --max-frames 2000
  arcade sim --interval 1ms --print
  arcade sim --no-autopilot --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 3000, "Stop after this many frames (0 = until game over)")
	simCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Delay between ticks (0 = 1/tick_rate)")
	simCmd.Flags().BoolVar(&flagNoAutopilot, "no-autopilot", false, "Never ascend")
	simCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final frame")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Frame width in characters for --print")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Frame height in characters for --print")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger("arcade-sim")

	cfg, source, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interval := flagInterval
	if interval <= 0 {
		interval = time.Second / time.Duration(cfg.Loop.TickRate)
	}
	logger.Info("config loaded", "source", source, "seed", seed, "interval", interval)

	screen := core.NewScreen(flagSimWidth, flagSimHeight)
	canvas := core.NewCanvas(screen, cfg.Area.Width, cfg.Area.Height)
	game := flappy.New(cfg, canvas, flappy.DefaultAssets(), seed)

	opts := loop.Options{
		Interval:  interval,
		Logger:    logger,
		MaxFrames: flagMaxFrames,
	}
	if !flagNoAutopilot {
		opts.BeforeTick = steer(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := loop.NewRunner(game, opts)
	runner.Start(ctx)
	runner.Wait()

	s := runner.Snapshot()
	if flagPrint {
		runner.Do(func(*flappy.Game) {
			fmt.Println(screen.String())
		})
	}
	fmt.Printf("frames: %d\nscore:  %d\nphase:  %s\nreason: %s\n", s.Frame, s.Score, s.Phase, s.Reason)
}

// steer feeds the autopilot decision into the game before each tick.
func steer(cfg config.FlappyConfig) func(g *flappy.Game) {
	return func(g *flappy.Game) {
		if flappy.Autopilot(g.Snapshot(), cfg) {
			g.AscendBegin()
		} else {
			g.AscendEnd()
		}
	}
}
