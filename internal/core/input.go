package core

// Action represents a semantic game command, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionAscend        // Space, W, Up - hold to climb
	ActionStart         // Enter, R - start or restart the game
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAscend:
		return "Ascend"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
