package core

// Action is a semantic command, abstracted from physical key presses and swipes.
// The input router produces actions and the engine consumes them one at a time.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Request a turn upwards
	ActionDown           // Request a turn downwards
	ActionLeft           // Request a turn to the left
	ActionRight          // Request a turn to the right
	ActionStart          // Enter - begin ticking from Idle (or a fresh game after death)
	ActionPause          // Space, P - toggle pause while running
	ActionRestart        // R - reset to Idle
	ActionQuit           // Q, Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four turn requests.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
