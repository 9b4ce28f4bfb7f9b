// Package flappy implements a Flappy Bird-style game. The player falls under
// gravity and must pass through gaps between obstacle pairs that scroll in
// from the right.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first Start
	PhaseRunning               // Ticks advance the simulation
	PhaseGameOver              // Terminal until the next Start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason explains why a run ended.
type Reason int

const (
	ReasonNone        Reason = iota
	ReasonCollision          // Player hit an obstacle
	ReasonOutOfBounds        // Player left the play area vertically
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCollision:
		return "collision"
	case ReasonOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Game owns the complete simulation state: one player, the obstacle field,
// the frame counter, and the derived score. It is not safe for concurrent
// use; callers serialize Tick and the input methods.
type Game struct {
	cfg     config.FlappyConfig
	surface core.Surface
	assets  Assets
	rng     *rand.Rand

	player    *Entity
	obstacles *ObstacleField
	frame     int
	score     int
	phase     Phase
	reason    Reason
}

// New creates a game in the Idle phase. Nothing is drawn until Start.
func New(cfg config.FlappyConfig, surface core.Surface, assets Assets, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	return &Game{
		cfg:       cfg,
		surface:   surface,
		assets:    assets,
		rng:       rng,
		obstacles: NewObstacleField(rng, cfg, assets),
		phase:     PhaseIdle,
	}
}

// Start resets everything and enters Running. Calling it while Running
// restarts from scratch; there is no resume.
func (g *Game) Start() {
	p := g.cfg.Player
	g.player = NewEntity(p.Width, p.Height, p.X, p.Y, g.assets.Player)
	g.player.Gravity = g.cfg.Physics.Gravity
	g.obstacles.Reset()
	g.frame = 0
	g.score = 0
	g.transition(PhaseRunning, ReasonNone)
}

// Tick advances the game by one frame. It returns false once the game is no
// longer running, which tells the driver to stop.
func (g *Game) Tick() bool {
	if g.phase != PhaseRunning {
		return false
	}

	g.drawBackground()

	g.frame++
	if g.frame%g.cfg.Obstacles.SpawnEvery == 0 {
		g.obstacles.SpawnPair()
	}

	g.obstacles.Scroll(g.surface)
	g.obstacles.Prune()

	if g.obstacles.Collides(g.player) {
		g.end(ReasonCollision)
		return false
	}

	g.player.Advance()
	if g.player.Y < 0 || g.player.Y+g.player.Height() > g.cfg.Area.Height {
		g.end(ReasonOutOfBounds)
		return false
	}
	g.player.Render(g.surface)

	g.score = g.frame / g.cfg.Score.FramesPerPoint
	g.drawScore()

	return true
}

// Redraw paints the current state again without advancing it, for surfaces
// that lost their content (for example after a terminal resize).
func (g *Game) Redraw() {
	if g.phase == PhaseIdle {
		return
	}
	g.drawBackground()
	for _, o := range g.obstacles.Obstacles() {
		o.Render(g.surface)
	}
	g.player.Render(g.surface)
	g.drawScore()
	if g.phase == PhaseGameOver {
		g.drawGameOver()
	}
}

// AscendBegin makes the player accelerate upward from the next tick.
func (g *Game) AscendBegin() {
	if g.player != nil {
		g.player.Gravity = g.cfg.Physics.AscendGravity
	}
}

// AscendEnd restores the base downward gravity.
func (g *Game) AscendEnd() {
	if g.player != nil {
		g.player.Gravity = g.cfg.Physics.Gravity
	}
}

// end moves to GameOver and draws the failure message.
func (g *Game) end(reason Reason) {
	g.transition(PhaseGameOver, reason)
	g.drawGameOver()
}

func (g *Game) drawBackground() {
	area := g.area()
	g.surface.Clear(area)
	g.surface.DrawImage(g.assets.Background, area.X, area.Y, area.W, area.H)
}

func (g *Game) drawScore() {
	g.surface.DrawText(fmt.Sprintf("Score: %d", g.score), 10, 30, scoreFont, scoreColor)
}

func (g *Game) drawGameOver() {
	area := g.area()
	g.surface.DrawText(GameOverText, area.W/2-120, area.H/2, gameOverFont, gameOverColor)
}

// transition is the only place the phase changes.
// Start may enter Running from any phase; GameOver is only reachable from Running.
func (g *Game) transition(to Phase, reason Reason) {
	switch to {
	case PhaseRunning:
	case PhaseGameOver:
		if g.phase != PhaseRunning {
			panic(fmt.Sprintf("flappy: illegal transition %s -> %s", g.phase, to))
		}
	default:
		panic(fmt.Sprintf("flappy: illegal transition %s -> %s", g.phase, to))
	}
	g.phase = to
	g.reason = reason
}

// area returns the play area as a box at the origin.
func (g *Game) area() core.Box {
	return core.NewBox(0, 0, g.cfg.Area.Width, g.cfg.Area.Height)
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Frame returns the number of ticks since the last Start.
func (g *Game) Frame() int {
	return g.frame
}

// Score returns the score as of the last completed tick.
func (g *Game) Score() int {
	return g.score
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
