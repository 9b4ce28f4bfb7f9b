// Package config provides YAML/TOML game configuration loading for the
// arcade. Every tunable of the Flappy simulation lives here so the game
// package itself holds no magic numbers.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Area      Area      `yaml:"area" toml:"area"`
	Player    Player    `yaml:"player" toml:"player"`
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Obstacles Obstacles `yaml:"obstacles" toml:"obstacles"`
	Loop      Loop      `yaml:"loop" toml:"loop"`
	Score     Score     `yaml:"score" toml:"score"`
	Input     Input     `yaml:"input" toml:"input"`
}

// Area is the fixed play-area size in logical units.
type Area struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Player defines where the player spawns and how big it is.
type Player struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Physics holds the two gravity values the player switches between.
type Physics struct {
	Gravity       float64 `yaml:"gravity" toml:"gravity"`               // Base downward acceleration per tick
	AscendGravity float64 `yaml:"ascend_gravity" toml:"ascend_gravity"` // Applied while ascending (negative = up)
}

// Obstacles defines obstacle pair geometry and cadence.
type Obstacles struct {
	Width      float64 `yaml:"width" toml:"width"`
	Gap        int     `yaml:"gap" toml:"gap"`               // Vertical opening between the pair
	MinHeight  int     `yaml:"min_height" toml:"min_height"` // Shortest allowed top or bottom segment
	Speed      float64 `yaml:"speed" toml:"speed"`           // Leftward movement per tick
	SpawnEvery int     `yaml:"spawn_every" toml:"spawn_every"`
}

// Loop configures the tick driver.
type Loop struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"` // Ticks per second
}

// Score configures the derived score display.
type Score struct {
	FramesPerPoint int `yaml:"frames_per_point" toml:"frames_per_point"`
}

// Input configures the terminal key handling.
type Input struct {
	// ReleaseAfterMS is how long after the last ascend key event the ascend
	// is considered released. Terminals report presses and repeats only.
	ReleaseAfterMS int `yaml:"release_after_ms" toml:"release_after_ms"`
}

// Validate checks the invariants the simulation relies on.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Area.Width <= 0 || c.Area.Height <= 0:
		return fmt.Errorf("config: %w: area must be positive, got %vx%v", ErrInvalid, c.Area.Width, c.Area.Height)
	case c.Area.Height != math.Trunc(c.Area.Height):
		return fmt.Errorf("config: %w: area height must be a whole number, got %v", ErrInvalid, c.Area.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: %w: player size must be positive", ErrInvalid)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("config: %w: obstacle width must be positive", ErrInvalid)
	case float64(c.Obstacles.Gap) < c.Player.Height:
		return fmt.Errorf("config: %w: gap %d is smaller than player height %v", ErrInvalid, c.Obstacles.Gap, c.Player.Height)
	case c.Obstacles.MinHeight < 0:
		return fmt.Errorf("config: %w: min_height must not be negative", ErrInvalid)
	case float64(2*c.Obstacles.MinHeight+c.Obstacles.Gap) > c.Area.Height:
		return fmt.Errorf("config: %w: gap plus two min_height segments exceed area height", ErrInvalid)
	case c.Obstacles.SpawnEvery <= 0:
		return fmt.Errorf("config: %w: spawn_every must be positive", ErrInvalid)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("config: %w: tick_rate must be positive", ErrInvalid)
	case c.Score.FramesPerPoint <= 0:
		return fmt.Errorf("config: %w: frames_per_point must be positive", ErrInvalid)
	case c.Input.ReleaseAfterMS < 0:
		return fmt.Errorf("config: %w: release_after_ms must not be negative", ErrInvalid)
	}
	return nil
}
