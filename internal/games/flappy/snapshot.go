package flappy

// EntityState is a copy of an entity's observable fields.
type EntityState struct {
	X, Y          float64
	Width, Height float64
	Gravity       float64
	GravitySpeed  float64
}

// Snapshot captures the complete game state for tests, logging, and the
// autopilot. It shares no memory with the game.
type Snapshot struct {
	Phase     Phase
	Reason    Reason
	Frame     int
	Score     int
	Player    EntityState
	Obstacles []EntityState
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  g.phase,
		Reason: g.reason,
		Frame:  g.frame,
		Score:  g.score,
	}
	if g.player != nil {
		s.Player = stateOf(g.player)
	}
	s.Obstacles = make([]EntityState, 0, g.obstacles.Len())
	for _, o := range g.obstacles.Obstacles() {
		s.Obstacles = append(s.Obstacles, stateOf(o))
	}
	return s
}

func stateOf(e *Entity) EntityState {
	return EntityState{
		X:            e.X,
		Y:            e.Y,
		Width:        e.Width(),
		Height:       e.Height(),
		Gravity:      e.Gravity,
		GravitySpeed: e.GravitySpeed,
	}
}
