package duosnake

import (
	"slices"

	"github.com/vovakirdan/duosnake/internal/core"
)

// Grid is one player's 6x6 panel, indexed [y][x] with row 0 at the bottom.
type Grid [Height][Width]core.RGB

// PlayfieldView returns what p sees.
//
// The driver sees only the head and the food. The observer sees the whole
// body but no food, and its panel is mounted mirrored, so every row is
// reversed.
func (s *State) PlayfieldView(p core.PlayerID) Grid {
	pal := s.rules.Palette

	var g Grid
	for y := range g {
		for x := range g[y] {
			g[y][x] = pal.Background
		}
	}

	head := s.body.Head()
	if s.IsDriver(p) {
		g[s.food.Y][s.food.X] = pal.Food
		g[head.Y][head.X] = pal.Head
		return g
	}

	for _, seg := range s.body.slots[1:s.body.length] {
		g[seg.Y][seg.X] = pal.Tail
	}
	g[head.Y][head.X] = pal.Head
	for y := range g {
		slices.Reverse(g[y][:])
	}
	return g
}

// LEDs returns the physical strip for the current state.
//
// The strip snakes across both panels two rows at a time:
// P1 even row, P2 even row, separator, P2 odd row reversed, P1 odd row
// reversed, separator. The last separator does not fit and is dropped.
func (s *State) LEDs() [LEDCount]core.RGB {
	sep := s.rules.Palette.Separator
	p1 := s.PlayfieldView(core.Player1)
	p2 := s.PlayfieldView(core.Player2)

	var leds [LEDCount]core.RGB
	offset := 0
	// row is a copy, reversing it leaves the grids alone
	put := func(row [Width]core.RGB, reverse bool) {
		if reverse {
			slices.Reverse(row[:])
		}
		offset += copy(leds[offset:], row[:])
	}

	for pair := range Height / 2 {
		put(p1[2*pair], false)
		put(p2[2*pair], false)
		leds[offset] = sep
		offset++
		put(p2[2*pair+1], true)
		put(p1[2*pair+1], true)
		if offset < LEDCount {
			leds[offset] = sep
			offset++
		}
	}
	return leds
}

// Frame bundles the strip and both panels for host tools.
func (s *State) Frame() core.Frame {
	leds := s.LEDs()
	frame := core.Frame{LEDs: leds[:]}
	for _, p := range []core.PlayerID{core.Player1, core.Player2} {
		g := s.PlayfieldView(p)
		rows := make([][]core.RGB, Height)
		for y := range g {
			rows[y] = slices.Clone(g[y][:])
		}
		frame.Panels[p.Index()] = rows
	}
	return frame
}
