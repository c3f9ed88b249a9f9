package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Host tools use this to size their views and to seed the random source.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Driver PlayerID // Player currently allowed to turn
	Level  int      // Laps completed since the last reset
	Length int      // Active snake length
	Food   int      // Food eaten since the last reset
	Ticks  uint64   // Ticks since the last reset
	Resets int      // Fatal resets since the game was created
	Paused bool     // Whether the host paused the loop

	Interval time.Duration // Tick duration at the current level
}

// Outcome tags what a single tick did to the board.
type Outcome int

const (
	OutcomeMove  Outcome = iota // Normal move, length unchanged
	OutcomeGrow                 // Food eaten, length +1, driver handed over
	OutcomeLap                  // Food eaten at capacity: body reset to the head, level +1
	OutcomeReset                // Fatal collision: whole state replaced
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMove:
		return "move"
	case OutcomeGrow:
		return "grow"
	case OutcomeLap:
		return "lap"
	case OutcomeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Cause explains an OutcomeReset.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall       // Head would leave the grid
	CauseSelf       // Head would enter an occupied body cell
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState     // State after the tick
	Outcome Outcome       // What the tick did
	Cause   Cause         // Set only for OutcomeReset
	Ended   GameState     // State of the finished run, set only for OutcomeReset
	Next    time.Duration // How long the host waits before the next tick
}

// Frame is everything a host needs to draw one tick.
type Frame struct {
	LEDs   []RGB      // Physical strip order
	Panels [2][][]RGB // Per-player views, index 0 is Player1; rows bottom-first
}
