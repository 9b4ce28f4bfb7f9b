package loop

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a Runner.
type Options struct {
	Interval time.Duration
	Logger   *log.Logger

	// BeforeTick runs with the game lock held right before each tick.
	BeforeTick func(g *flappy.Game)

	// MaxFrames stops the driver once the game reaches this frame. Zero means no limit.
	MaxFrames int
}

// Runner is the thread-safe command surface for a game driven by a Driver.
// Input may arrive from any goroutine; it is serialized with ticks.
type Runner struct {
	mu     sync.Mutex
	game   *flappy.Game
	driver *Driver
	opts   Options
	logger *log.Logger
}

// NewRunner wraps game. The game must not be used directly afterwards.
func NewRunner(game *flappy.Game, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Runner{
		game:   game,
		driver: NewDriver(opts.Interval, opts.Logger),
		opts:   opts,
		logger: opts.Logger,
	}
}

// Start resets the game and (re)starts the driver. Any previous driver is
// stopped before the game is reset.
func (r *Runner) Start(ctx context.Context) {
	r.driver.Stop()

	r.mu.Lock()
	r.game.Start()
	r.mu.Unlock()

	r.logger.Info("game started")
	r.driver.Start(ctx, r.step)
}

// AscendBegin switches the player to ascend gravity.
func (r *Runner) AscendBegin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game.AscendBegin()
}

// AscendEnd restores base gravity.
func (r *Runner) AscendEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game.AscendEnd()
}

// Snapshot returns a consistent copy of the game state.
func (r *Runner) Snapshot() flappy.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

// Do runs fn with the game lock held.
func (r *Runner) Do(fn func(g *flappy.Game)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.game)
}

// Wait blocks until the driver stops.
func (r *Runner) Wait() {
	r.driver.Wait()
}

// Stop halts the driver without changing the game phase.
func (r *Runner) Stop() {
	r.driver.Stop()
}

// Active reports whether the driver is ticking.
func (r *Runner) Active() bool {
	return r.driver.Active()
}

func (r *Runner) step() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.BeforeTick != nil {
		r.opts.BeforeTick(r.game)
	}

	running := r.game.Tick()
	if !running {
		s := r.game.Snapshot()
		r.logger.Info("game over", "frame", s.Frame, "score", s.Score, "reason", s.Reason)
		return false
	}
	if r.opts.MaxFrames > 0 && r.game.Frame() >= r.opts.MaxFrames {
		r.logger.Info("frame limit reached", "frame", r.game.Frame(), "score", r.game.Score())
		return false
	}
	return true
}
