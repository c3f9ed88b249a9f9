package duosnake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/duosnake/internal/core"
)

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Ticks   uint64
	Mode    string
	Driver  core.PlayerID
	Heading Heading
	Pending Turn
	HeadX   int
	HeadY   int
	FoodX   int
	FoodY   int
	Length  int
	Level   int
	Eaten   int
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	head := s.body.Head()
	return Snapshot{
		Ticks:   s.ticks,
		Mode:    string(s.rules.Mode),
		Driver:  s.driver,
		Heading: s.heading,
		Pending: s.pending,
		HeadX:   head.X,
		HeadY:   head.Y,
		FoodX:   s.food.X,
		FoodY:   s.food.Y,
		Length:  s.body.Len(),
		Level:   s.level,
		Eaten:   s.eaten,
	}
}

// DebugState returns a string representation of the game state, one board
// row per line with the top row first.
func (s *State) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Driver: %s, Level: %d\n", s.ticks, s.driver, s.level)
	fmt.Fprintf(&b, "Length: %d/%d, Heading: %s\n", s.body.Len(), s.body.Cap(), s.heading)

	head := s.body.Head()
	for y := Height - 1; y >= 0; y-- {
		for x := range Width {
			c := C(x, y)
			switch {
			case c == head:
				b.WriteByte('O')
			case s.body.Contains(c):
				b.WriteByte('o')
			case c == s.food && s.rules.Growing():
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
