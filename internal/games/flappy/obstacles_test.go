package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestField(seed int64) *ObstacleField {
	return NewObstacleField(rand.New(rand.NewSource(seed)), config.DefaultFlappyConfig(), DefaultAssets())
}

func TestSpawnPairInvariant(t *testing.T) {
	const (
		areaW = 500.0
		areaH = 600.0
		gap   = 120.0
		minH  = 20.0
	)

	for seed := int64(0); seed < 50; seed++ {
		f := newTestField(seed)
		for i := 0; i < 20; i++ {
			top, bottom := f.SpawnPair()

			if top.Height()+gap+bottom.Height() != areaH {
				t.Fatalf("seed %d: top %v + gap + bottom %v != %v", seed, top.Height(), bottom.Height(), areaH)
			}
			if top.Height() < minH || bottom.Height() < minH {
				t.Fatalf("seed %d: segment below minimum: top=%v bottom=%v", seed, top.Height(), bottom.Height())
			}
			if top.Y != 0 {
				t.Errorf("top obstacle Y = %v, expected 0", top.Y)
			}
			if bottom.Y != top.Height()+gap {
				t.Errorf("bottom obstacle Y = %v, expected %v", bottom.Y, top.Height()+gap)
			}
			if top.X != areaW || bottom.X != areaW {
				t.Errorf("pair should spawn at the right edge, got %v/%v", top.X, bottom.X)
			}
			if top.Width() != 50 || bottom.Width() != 50 {
				t.Errorf("obstacle width = %v/%v, expected 50", top.Width(), bottom.Width())
			}
		}
	}
}

func TestSpawnPairCoversHeightRange(t *testing.T) {
	f := newTestField(7)
	lo, hi := 1e9, -1e9
	for i := 0; i < 5000; i++ {
		top, _ := f.SpawnPair()
		lo = min(lo, top.Height())
		hi = max(hi, top.Height())
	}
	// [20, 600 - 120 - 20]
	if lo != 20 || hi != 460 {
		t.Errorf("top height range = [%v, %v], expected [20, 460]", lo, hi)
	}
}

func TestSpawnPairSprites(t *testing.T) {
	f := newTestField(1)
	top, bottom := f.SpawnPair()
	if top.Visual.Name != "obstacle_top" || bottom.Visual.Name != "obstacle_bottom" {
		t.Errorf("sprites = %q/%q", top.Visual.Name, bottom.Visual.Name)
	}
}

func TestObstacleScrollAndPrune(t *testing.T) {
	f := newTestField(1)
	o := NewEntity(50, 100, 0, 0, core.Sprite{Name: "obstacle_top"})
	f.obstacles = append(f.obstacles, o)
	surface := &recordSurface{}

	f.Scroll(surface)
	if o.X != -2 {
		t.Fatalf("X after one scroll = %v, expected -2", o.X)
	}
	if len(surface.images) != 1 {
		t.Errorf("Scroll should render each obstacle, drew %d", len(surface.images))
	}
	if removed := f.Prune(); removed != 0 || f.Len() != 1 {
		t.Fatalf("obstacle with right edge at 48 must survive, removed %d", removed)
	}

	// Right edge reaches 0 after 25 scrolls in total
	for i := 1; i < 24; i++ {
		f.Scroll(surface)
		f.Prune()
	}
	if o.X != -48 || f.Len() != 1 {
		t.Fatalf("X = %v len = %d, expected -48 and still present", o.X, f.Len())
	}

	f.Scroll(surface)
	if removed := f.Prune(); removed != 1 || f.Len() != 0 {
		t.Errorf("obstacle at x = %v should be pruned, removed %d", o.X, removed)
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	f := newTestField(1)
	gone := NewEntity(50, 10, -60, 0, core.Sprite{Name: "a"})
	first := NewEntity(50, 10, 10, 0, core.Sprite{Name: "b"})
	second := NewEntity(50, 10, 200, 0, core.Sprite{Name: "c"})
	f.obstacles = append(f.obstacles, gone, first, second)

	f.Prune()

	got := f.Obstacles()
	if len(got) != 2 || got[0] != first || got[1] != second {
		t.Errorf("Prune should keep survivors in spawn order, got %v", got)
	}
}

func TestObstacleFieldCollides(t *testing.T) {
	f := newTestField(1)
	f.obstacles = append(f.obstacles, NewEntity(50, 100, 100, 0, core.Sprite{}))

	if f.Collides(NewEntity(40, 30, 50, 150, core.Sprite{})) {
		t.Error("distant player should not collide")
	}
	if f.Collides(NewEntity(40, 30, 60, 100, core.Sprite{})) {
		t.Error("player touching the obstacle edge should not collide")
	}
	if !f.Collides(NewEntity(40, 30, 61, 99, core.Sprite{})) {
		t.Error("overlapping player should collide")
	}
}

func TestObstacleFieldReset(t *testing.T) {
	f := newTestField(1)
	f.SpawnPair()
	f.SpawnPair()
	f.Reset()
	if f.Len() != 0 {
		t.Errorf("Reset should clear obstacles, len = %d", f.Len())
	}
}
