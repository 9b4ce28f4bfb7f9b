package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

type imageCall struct {
	sprite     string
	x, y, w, h float64
}

type textCall struct {
	text  string
	x, y  float64
	color core.Color
}

// recordSurface captures draw calls so tests can assert on them.
type recordSurface struct {
	clears int
	images []imageCall
	texts  []textCall
}

func (r *recordSurface) Clear(core.Box) { r.clears++ }

func (r *recordSurface) DrawImage(img core.Sprite, x, y, w, h float64) {
	r.images = append(r.images, imageCall{sprite: img.Name, x: x, y: y, w: w, h: h})
}

func (r *recordSurface) DrawText(text string, x, y float64, _ core.Font, color core.Color) {
	r.texts = append(r.texts, textCall{text: text, x: x, y: y, color: color})
}

func (r *recordSurface) reset() {
	r.clears = 0
	r.images = nil
	r.texts = nil
}

func (r *recordSurface) lastText() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1].text
}

// newTestGame builds a started game on a recording surface.
func newTestGame(seed int64, mutate func(*config.FlappyConfig)) (*Game, *recordSurface) {
	cfg := config.DefaultFlappyConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	surface := &recordSurface{}
	g := New(cfg, surface, DefaultAssets(), seed)
	g.Start()
	return g, surface
}

// hover disables gravity so the player stays where it spawned.
func hover(cfg *config.FlappyConfig) {
	cfg.Physics.Gravity = 0
}
