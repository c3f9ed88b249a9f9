package duosnake

import (
	"testing"

	"github.com/vovakirdan/duosnake/internal/core"
)

func TestDriverView(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(4, 4), C(2, 3), C(1, 3), C(0, 3))
	pal := s.rules.Palette

	g := s.PlayfieldView(core.Player1)
	for y := range g {
		for x := range g[y] {
			want := pal.Background
			switch C(x, y) {
			case C(2, 3):
				want = pal.Head
			case C(4, 4):
				want = pal.Food
			}
			if g[y][x] != want {
				t.Errorf("driver cell (%d,%d) = %s, expected %s", x, y, g[y][x], want)
			}
		}
	}
}

func TestDriverViewHeadOverFood(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(2, 3), C(2, 3))

	g := s.PlayfieldView(core.Player1)
	if g[3][2] != s.rules.Palette.Head {
		t.Errorf("cell under head = %s, expected head color", g[3][2])
	}
}

func TestObserverViewMirrored(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(4, 4), C(2, 3), C(1, 3), C(1, 2))
	pal := s.rules.Palette

	g := s.PlayfieldView(core.Player2)
	want := map[Coordinate]core.RGB{
		C(Width-1-2, 3): pal.Head,
		C(Width-1-1, 3): pal.Tail,
		C(Width-1-1, 2): pal.Tail,
	}
	for y := range g {
		for x := range g[y] {
			exp, ok := want[C(x, y)]
			if !ok {
				exp = pal.Background
			}
			if g[y][x] != exp {
				t.Errorf("observer cell (%d,%d) = %s, expected %s", x, y, g[y][x], exp)
			}
		}
	}
}

func TestObserverViewFollowsDriverSwap(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(4, 4), C(0, 0))
	s.driver = core.Player2

	g1 := s.PlayfieldView(core.Player1)
	if g1[0][Width-1] != s.rules.Palette.Head {
		t.Errorf("P1 observing: mirrored head missing, row 0 = %v", g1[0])
	}
	g2 := s.PlayfieldView(core.Player2)
	if g2[0][0] != s.rules.Palette.Head || g2[4][4] != s.rules.Palette.Food {
		t.Errorf("P2 driving: expected head at (0,0) and food at (4,4)")
	}
}

func TestLEDLayout(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(4, 4), C(1, 3))
	pal := s.rules.Palette

	leds := s.LEDs()
	if len(leds) != 77 {
		t.Fatalf("len(LEDs) = %d, expected 77", len(leds))
	}

	want := map[int]core.RGB{
		12: pal.Separator,
		25: pal.Separator,
		38: pal.Separator,
		51: pal.Separator,
		64: pal.Separator,
		49: pal.Head, // P1 row 3, reversed
		40: pal.Head, // P2 row 3, mirrored then reversed
		56: pal.Food, // P1 row 4
	}
	for i, c := range leds {
		exp, ok := want[i]
		if !ok {
			exp = pal.Background
		}
		if c != exp {
			t.Errorf("led %d = %s, expected %s", i, c, exp)
		}
	}
}

func TestLEDsIdempotent(t *testing.T) {
	s := New(newRand(7), DefaultRules())
	for range 20 {
		s.Step(newRand(8))
	}
	before := s.Snapshot()

	a := s.LEDs()
	b := s.LEDs()
	if a != b {
		t.Error("LEDs() returned different strips for the same state")
	}
	if s.Snapshot() != before {
		t.Error("LEDs() changed the game state")
	}
}

func TestFramePanelsMatchViews(t *testing.T) {
	s := New(newRand(3), DefaultRules())
	f := s.Frame()

	if len(f.LEDs) != LEDCount {
		t.Fatalf("frame has %d LEDs", len(f.LEDs))
	}
	for _, p := range []core.PlayerID{core.Player1, core.Player2} {
		g := s.PlayfieldView(p)
		rows := f.Panels[p.Index()]
		if len(rows) != Height {
			t.Fatalf("%s panel has %d rows", p, len(rows))
		}
		for y := range g {
			for x := range g[y] {
				if rows[y][x] != g[y][x] {
					t.Errorf("%s panel (%d,%d) = %s, expected %s", p, x, y, rows[y][x], g[y][x])
				}
			}
		}
	}
}
