package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// autopilotLookahead is how many ticks of current vertical speed the
// autopilot projects when steering.
const autopilotLookahead = 20

// Autopilot reports whether the player should be ascending this tick. It aims
// the player's center at the middle of the next gap, or at mid-height when no
// obstacle is ahead. Used by the headless runner.
func Autopilot(s Snapshot, cfg config.FlappyConfig) bool {
	if s.Phase != PhaseRunning {
		return false
	}

	target := cfg.Area.Height / 2
	// Obstacles come in top/bottom pairs.
	for i := 0; i+1 < len(s.Obstacles); i += 2 {
		top, bottom := s.Obstacles[i], s.Obstacles[i+1]
		if top.X+top.Width < s.Player.X {
			continue
		}
		target = (top.Y + top.Height + bottom.Y) / 2
		break
	}

	center := s.Player.Y + s.Player.Height/2
	projected := center + s.Player.GravitySpeed*autopilotLookahead
	return projected > target
}
