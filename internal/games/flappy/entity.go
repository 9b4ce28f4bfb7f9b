package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Entity is a rectangular, axis-aligned moving body. The player and every
// obstacle segment are entities.
type Entity struct {
	width  float64
	height float64

	X, Y         float64
	SpeedX       float64
	SpeedY       float64
	Gravity      float64 // Signed acceleration applied each Advance
	GravitySpeed float64 // Accumulated fall speed, never clamped

	Visual core.Sprite
}

// NewEntity creates an entity at (x, y). Width and height are fixed for its
// lifetime.
func NewEntity(width, height, x, y float64, visual core.Sprite) *Entity {
	return &Entity{
		width:  width,
		height: height,
		X:      x,
		Y:      y,
		Visual: visual,
	}
}

// Width returns the entity's fixed width.
func (e *Entity) Width() float64 { return e.width }

// Height returns the entity's fixed height.
func (e *Entity) Height() float64 { return e.height }

// Box returns the current bounding box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.width, e.height)
}

// Render draws the entity's visual over its bounding box.
func (e *Entity) Render(dst core.Surface) {
	dst.DrawImage(e.Visual, e.X, e.Y, e.width, e.height)
}

// Advance integrates one tick: gravity accumulates into GravitySpeed before
// the position moves.
func (e *Entity) Advance() {
	e.GravitySpeed += e.Gravity
	e.X += e.SpeedX
	e.Y += e.SpeedY + e.GravitySpeed
}

// Translate moves the entity without touching its velocity.
func (e *Entity) Translate(dx, dy float64) {
	e.X += dx
	e.Y += dy
}

// Overlaps reports whether the bounding boxes intersect.
// Boxes that only touch along an edge do not collide.
func (e *Entity) Overlaps(other *Entity) bool {
	return e.Box().Overlaps(other.Box())
}
