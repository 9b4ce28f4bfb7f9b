// Package core provides the rendering and geometry primitives shared by the
// game and the terminal front end. It has no Bubble Tea dependency so game
// logic stays pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in play-area coordinates.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether the two boxes intersect.
// Boxes that only share an edge are separated.
func (b Box) Overlaps(other Box) bool {
	if b.Bottom() <= other.Y || b.Y >= other.Bottom() {
		return false
	}
	if b.Right() <= other.X || b.X >= other.Right() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// floorInt converts a play-area coordinate to a cell index.
func floorInt(v float64) int {
	return int(math.Floor(v))
}

// ceilInt is floorInt's counterpart for exclusive right/bottom edges.
func ceilInt(v float64) int {
	return int(math.Ceil(v))
}
