package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestEntityAdvance(t *testing.T) {
	e := NewEntity(40, 30, 50, 150, core.Sprite{})
	e.Gravity = 0.25

	e.Advance()

	// Gravity accumulates before the position update
	if e.GravitySpeed != 0.25 {
		t.Errorf("GravitySpeed = %v, expected 0.25", e.GravitySpeed)
	}
	if e.Y != 150.25 {
		t.Errorf("Y = %v, expected 150.25", e.Y)
	}

	e.Advance()
	if e.Y != 150.75 {
		t.Errorf("Y after two ticks = %v, expected 150.75", e.Y)
	}
}

func TestEntityAdvanceNoTerminalVelocity(t *testing.T) {
	e := NewEntity(1, 1, 0, 0, core.Sprite{})
	e.Gravity = 1

	for i := 0; i < 1000; i++ {
		e.Advance()
	}
	if e.GravitySpeed != 1000 {
		t.Errorf("GravitySpeed = %v, expected unbounded 1000", e.GravitySpeed)
	}
}

func TestEntityAdvanceAppliesSpeed(t *testing.T) {
	e := NewEntity(10, 10, 0, 0, core.Sprite{})
	e.SpeedX = 3
	e.SpeedY = -1

	e.Advance()
	if e.X != 3 || e.Y != -1 {
		t.Errorf("position = (%v, %v), expected (3, -1)", e.X, e.Y)
	}
}

func TestEntityOverlaps(t *testing.T) {
	base := NewEntity(50, 50, 100, 100, core.Sprite{})

	tests := []struct {
		name     string
		other    *Entity
		expected bool
	}{
		{"overlapping", NewEntity(50, 50, 120, 120, core.Sprite{}), true},
		{"adjacent right", NewEntity(50, 50, 150, 100, core.Sprite{}), false},
		{"adjacent left", NewEntity(50, 50, 50, 100, core.Sprite{}), false},
		{"adjacent above", NewEntity(50, 50, 100, 50, core.Sprite{}), false},
		{"adjacent below", NewEntity(50, 50, 100, 150, core.Sprite{}), false},
		{"far away", NewEntity(10, 10, 400, 400, core.Sprite{}), false},
		{"barely inside", NewEntity(50, 50, 149.5, 149.5, core.Sprite{}), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Overlaps(base); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEntityRenderDoesNotMutate(t *testing.T) {
	sprite := core.Sprite{Name: "player"}
	e := NewEntity(40, 30, 50, 150, sprite)
	e.Gravity = 0.25
	before := *e

	surface := &recordSurface{}
	e.Render(surface)

	if *e != before {
		t.Errorf("Render mutated entity: %+v -> %+v", before, *e)
	}
	want := imageCall{sprite: "player", x: 50, y: 150, w: 40, h: 30}
	if len(surface.images) != 1 || surface.images[0] != want {
		t.Errorf("Render drew %+v, expected %+v", surface.images, want)
	}
}

func TestEntityTranslate(t *testing.T) {
	e := NewEntity(50, 100, 0, 0, core.Sprite{})
	e.Translate(-2, 0)
	if e.X != -2 || e.Y != 0 {
		t.Errorf("position = (%v, %v), expected (-2, 0)", e.X, e.Y)
	}
	if e.Width() != 50 || e.Height() != 100 {
		t.Error("Translate must not change size")
	}
}
