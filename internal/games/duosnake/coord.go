package duosnake

import (
	"fmt"

	"github.com/vovakirdan/duosnake/internal/config"
)

// Board geometry. Fixed at compile time.
const (
	Width     = config.GridWidth
	Height    = config.GridHeight
	CellCount = Width * Height

	// LEDCount is both panels plus the separators wired between row pairs.
	LEDCount = 2*CellCount + 5
)

// Rand is the random source the host threads through every call that needs it.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Coordinate is a cell on the board. (0, 0) is bottom left.
type Coordinate struct {
	X, Y int
}

// C is a convenience constructor for Coordinate.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// RandomCoordinate returns a uniformly chosen cell.
func RandomCoordinate(rng Rand) Coordinate {
	return Coordinate{X: rng.Intn(Width), Y: rng.Intn(Height)}
}

// InBounds returns true if the coordinate lies on the board.
func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Apply returns the neighbouring cell along h.
// ok is false when the step would leave the board; there is no wraparound.
func (c Coordinate) Apply(h Heading) (next Coordinate, ok bool) {
	switch h {
	case Up:
		if c.Y+1 < Height {
			return Coordinate{c.X, c.Y + 1}, true
		}
	case Down:
		if c.Y > 0 {
			return Coordinate{c.X, c.Y - 1}, true
		}
	case Left:
		if c.X > 0 {
			return Coordinate{c.X - 1, c.Y}, true
		}
	case Right:
		if c.X+1 < Width {
			return Coordinate{c.X + 1, c.Y}, true
		}
	}
	return c, false
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Heading is the current direction of travel.
type Heading int

const (
	Right Heading = iota
	Down
	Left
	Up
)

// Turn is a discrete rotation requested by the driver.
type Turn int

const (
	TurnNone Turn = iota
	Clockwise
	CounterClockwise
)

// Rotate returns the heading after one 90 degree turn.
// Headings are declared in clockwise order, so a turn is a step around the cycle.
func (h Heading) Rotate(t Turn) Heading {
	switch t {
	case Clockwise:
		return (h + 1) % 4
	case CounterClockwise:
		return (h + 3) % 4
	default:
		return h
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "none"
	}
}

// ParseTurn accepts "cw"/"ccw" and the long forms.
func ParseTurn(s string) (Turn, bool) {
	switch s {
	case "cw", "clockwise", "right", "r":
		return Clockwise, true
	case "ccw", "counterclockwise", "counter-clockwise", "left", "l":
		return CounterClockwise, true
	default:
		return TurnNone, false
	}
}
