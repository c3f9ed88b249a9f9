package core

// PlayerID identifies one of the two seats.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// Other returns the opposite seat.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Index returns 0 for Player1 and 1 for Player2.
func (p PlayerID) Index() int {
	return int(p)
}

// String returns "P1" or "P2".
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Action represents a semantic input, abstracted from physical key presses
// and button pins.
type Action int

const (
	ActionNone     Action = iota
	ActionTurnCW          // Rotate the heading clockwise
	ActionTurnCCW         // Rotate the heading counter-clockwise
	ActionPause           // Host-side pause toggle
	ActionRestart         // Host-side restart with a fresh seed
	ActionQuit            // Exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnCW:
		return "TurnCW"
	case ActionTurnCCW:
		return "TurnCCW"
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

// IsTurn reports whether the action is forwarded to the engine.
func (a Action) IsTurn() bool {
	return a == ActionTurnCW || a == ActionTurnCCW
}

// Input is one player's action.
type Input struct {
	Player PlayerID
	Action Action
}
