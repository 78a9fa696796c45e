package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard, swipe or SSH input all resolve to the same actions.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A - previous lane
	ActionMoveRight        // Right arrow, D - next lane
	ActionJump             // Up arrow, W, Space - jump
	ActionSpeedUp          // + - raise speed level
	ActionSpeedDown        // - - lower speed level
	ActionStart            // Enter, R - start or restart a run
	ActionPause            // P, Escape - pause/unpause
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
