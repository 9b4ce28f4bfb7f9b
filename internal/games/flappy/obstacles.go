package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstacleField handles spawning, scrolling, and removal of obstacle pairs.
// Obstacles are kept in spawn order.
type ObstacleField struct {
	obstacles []*Entity
	rng       *rand.Rand
	cfg       config.Obstacles
	areaW     float64
	areaH     float64
	assets    Assets
}

// NewObstacleField creates an empty field spawning at the right edge of an
// areaW × areaH play area.
func NewObstacleField(rng *rand.Rand, cfg config.FlappyConfig, assets Assets) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]*Entity, 0, 8),
		rng:       rng,
		cfg:       cfg.Obstacles,
		areaW:     cfg.Area.Width,
		areaH:     cfg.Area.Height,
		assets:    assets,
	}
}

// Reset removes all obstacles. The RNG keeps its sequence.
func (f *ObstacleField) Reset() {
	clear(f.obstacles)
	f.obstacles = f.obstacles[:0]
}

// SpawnPair appends a top and bottom obstacle at the right edge. The top
// height is drawn uniformly from [min, H - gap - min], so neither segment is
// shorter than min.
func (f *ObstacleField) SpawnPair() (top, bottom *Entity) {
	gap := f.cfg.Gap
	minH := f.cfg.MinHeight
	maxH := int(f.areaH) - gap - minH

	topH := minH
	if maxH > minH {
		topH = minH + f.rng.Intn(maxH-minH+1)
	}
	bottomH := int(f.areaH) - gap - topH

	top = NewEntity(f.cfg.Width, float64(topH), f.areaW, 0, f.assets.ObstacleTop)
	bottom = NewEntity(f.cfg.Width, float64(bottomH), f.areaW, float64(topH+gap), f.assets.ObstacleBottom)
	f.obstacles = append(f.obstacles, top, bottom)
	return top, bottom
}

// Scroll moves every obstacle left by the configured speed and draws it.
func (f *ObstacleField) Scroll(dst core.Surface) {
	for _, o := range f.obstacles {
		o.Translate(-f.cfg.Speed, 0)
		o.Render(dst)
	}
}

// Prune removes obstacles whose right edge has passed the left boundary.
// Returns the number removed.
func (f *ObstacleField) Prune() int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+o.Width() > 0 {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	clear(f.obstacles[len(kept):])
	f.obstacles = kept
	return removed
}

// Collides reports whether e overlaps any obstacle.
func (f *ObstacleField) Collides(e *Entity) bool {
	for _, o := range f.obstacles {
		if e.Overlaps(o) {
			return true
		}
	}
	return false
}

// Obstacles returns the active obstacles in spawn order.
func (f *ObstacleField) Obstacles() []*Entity {
	return f.obstacles
}

// Len returns the number of active obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
