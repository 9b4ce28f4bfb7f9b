package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Assets are the four pre-loaded visuals the game draws with.
type Assets struct {
	Background     core.Sprite
	Player         core.Sprite
	ObstacleTop    core.Sprite
	ObstacleBottom core.Sprite
}

// DefaultAssets returns terminal glyph sprites.
func DefaultAssets() Assets {
	return Assets{
		Background:     core.Sprite{Name: "background", Glyph: ' ', Color: core.ColorDefault},
		Player:         core.Sprite{Name: "player", Glyph: '●', Color: core.ColorBrightYellow},
		ObstacleTop:    core.Sprite{Name: "obstacle_top", Glyph: '█', Color: core.ColorGreen},
		ObstacleBottom: core.Sprite{Name: "obstacle_bottom", Glyph: '█', Color: core.ColorBrightGreen},
	}
}

// Text styles used for the HUD.
var (
	scoreFont    = core.Font{Family: "sans-serif", Size: 24}
	gameOverFont = core.Font{Family: "sans-serif", Size: 40}
)

const (
	scoreColor    = core.ColorBrightWhite
	gameOverColor = core.ColorBrightRed

	// GameOverText is drawn when the run ends.
	GameOverText = "GAME OVER"
)
