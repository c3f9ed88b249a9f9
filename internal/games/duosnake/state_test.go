package duosnake

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
)

// scripted returns queued values first, then falls back to a seeded source.
type scripted struct {
	vals     []int
	fallback Rand
}

func (r *scripted) Intn(n int) int {
	if len(r.vals) > 0 {
		v := r.vals[0]
		r.vals = r.vals[1:]
		return v % n
	}
	return r.fallback.Intn(n)
}

func testRules(mode config.Mode) Rules {
	cfg := config.DefaultConfig()
	cfg.Mode = mode
	return RulesFromConfig(cfg)
}

// place overwrites the interesting parts of a fresh state.
func place(s *State, heading Heading, food Coordinate, body ...Coordinate) {
	s.body.ResetToSingle(body[0])
	copy(s.body.slots[:], body)
	s.body.length = len(body)
	s.heading = heading
	s.food = food
}

func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	segs := s.Body()
	if len(segs) == 0 || len(segs) > s.body.Cap() {
		t.Fatalf("body length %d outside [1, %d]", len(segs), s.body.Cap())
	}
	seen := make(map[Coordinate]bool, len(segs))
	for _, c := range segs {
		if !c.InBounds() {
			t.Fatalf("segment %v out of bounds", c)
		}
		if seen[c] {
			t.Fatalf("segment %v occupied twice: %v", c, segs)
		}
		seen[c] = true
	}
	if !s.Food().InBounds() {
		t.Fatalf("food %v out of bounds", s.Food())
	}
}

func TestNewState(t *testing.T) {
	// First sample lands on the start cell and must be rejected.
	rng := &scripted{vals: []int{1, 3, 4, 4}, fallback: newRand(1)}
	s := New(rng, DefaultRules())

	if s.Head() != C(1, 3) || s.Len() != 1 {
		t.Errorf("head %v len %d, expected single head at (1,3)", s.Head(), s.Len())
	}
	if s.Heading() != Right {
		t.Errorf("Heading() = %s, expected right", s.Heading())
	}
	if s.Driver() != core.Player1 {
		t.Errorf("Driver() = %s, expected P1", s.Driver())
	}
	if s.Level() != 0 || s.Pending() != TurnNone {
		t.Errorf("level %d pending %s", s.Level(), s.Pending())
	}
	if s.Food() != C(4, 4) {
		t.Errorf("Food() = %v, expected (4,4)", s.Food())
	}
}

func TestNewPanicsOnBadRules(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with max length 1 should panic")
		}
	}()
	r := DefaultRules()
	r.MaxLength = 1
	New(newRand(1), r)
}

func TestNormalMoveKeepsLength(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(0, 0), C(2, 3), C(1, 3), C(0, 3))

	res := s.Step(newRand(2))
	if res.Outcome != core.OutcomeMove {
		t.Fatalf("Outcome = %s, expected move", res.Outcome)
	}
	want := []Coordinate{C(3, 3), C(2, 3), C(1, 3)}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if res.Next != time.Second {
		t.Errorf("Next = %v, expected 1s", res.Next)
	}
	if s.Driver() != core.Player1 {
		t.Error("a plain move should not hand over the driver")
	}
}

func TestDriverGating(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(0, 0), C(2, 2))

	s.ButtonPush(core.Player2, Clockwise)
	if s.Pending() != TurnNone {
		t.Fatalf("observer push changed pending turn to %s", s.Pending())
	}

	s.Tick(newRand(2))
	if s.Heading() != Right || s.Head() != C(3, 2) {
		t.Errorf("heading %s head %v, expected right (3,2)", s.Heading(), s.Head())
	}
}

func TestDriverTurnAppliedOnce(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(0, 0), C(2, 2))

	s.ButtonPush(core.Player1, CounterClockwise)
	s.ButtonPush(core.Player1, Clockwise) // last write wins
	s.Tick(newRand(2))

	if s.Heading() != Down || s.Head() != C(2, 1) {
		t.Errorf("heading %s head %v, expected down (2,1)", s.Heading(), s.Head())
	}
	if s.Pending() != TurnNone {
		t.Error("pending turn should be cleared after a tick")
	}

	s.Tick(newRand(3))
	if s.Heading() != Down || s.Head() != C(2, 0) {
		t.Errorf("turn applied twice: heading %s head %v", s.Heading(), s.Head())
	}
}

func TestBoundaryCollisionResets(t *testing.T) {
	rules := DefaultRules()
	rules.Start = C(Width-1, 3)
	s := New(newRand(1), rules)
	s.level = 2

	res := s.Step(newRand(2))
	if res.Outcome != core.OutcomeReset || res.Cause != core.CauseWall {
		t.Fatalf("Step() = %+v, expected wall reset", res)
	}
	if s.Len() != 1 || s.Head() != rules.Start || s.Heading() != Right {
		t.Errorf("after reset: len %d head %v heading %s", s.Len(), s.Head(), s.Heading())
	}
	if s.Level() != 0 {
		t.Errorf("Level() = %d, expected 0 after reset", s.Level())
	}
	if res.Next != rules.Schedule.Base {
		t.Errorf("Next = %v, expected base tick", res.Next)
	}
	checkInvariants(t, s)
	if s.body.Contains(s.Food()) {
		t.Errorf("food %v placed on the snake", s.Food())
	}
}

func TestSelfCollisionResets(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	// Heading right from (2,2) runs into (3,2), which is part of the body.
	place(s, Right, C(0, 0), C(2, 2), C(2, 1), C(3, 1), C(3, 2))
	s.driver = core.Player2

	res := s.Step(newRand(2))
	if res.Outcome != core.OutcomeReset || res.Cause != core.CauseSelf {
		t.Fatalf("Step() = %+v, expected self reset", res)
	}
	if s.Len() != 1 || s.Head() != C(1, 3) {
		t.Errorf("after reset: %v", s.Body())
	}
	if s.Driver() != core.Player1 || res.NextDriver != core.Player1 {
		t.Errorf("growth reset should start over with P1, got %s", s.Driver())
	}
}

func TestGrowth(t *testing.T) {
	s := New(newRand(1), DefaultRules())
	place(s, Right, C(3, 3), C(2, 3), C(1, 3))

	res := s.Step(newRand(2))
	if res.Outcome != core.OutcomeGrow {
		t.Fatalf("Outcome = %s, expected grow", res.Outcome)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
	if s.body.Contains(s.Food()) {
		t.Errorf("food %v relocated onto the body %v", s.Food(), s.Body())
	}
	if s.Driver() != core.Player2 || res.NextDriver != core.Player2 {
		t.Errorf("driver %s, expected P2 after eating", s.Driver())
	}
	if s.Eaten() != 1 {
		t.Errorf("Eaten() = %d, expected 1", s.Eaten())
	}
}

func TestLap(t *testing.T) {
	rules := DefaultRules()
	rules.MaxLength = 3
	s := New(newRand(1), rules)
	place(s, Right, C(3, 3), C(2, 3), C(1, 3))

	res := s.Step(newRand(2))
	if res.Outcome != core.OutcomeLap {
		t.Fatalf("Outcome = %s, expected lap", res.Outcome)
	}
	if s.Len() != 1 || s.Head() != C(3, 3) {
		t.Errorf("after lap: %v, expected single head at (3,3)", s.Body())
	}
	if s.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", s.Level())
	}
	if res.Next >= rules.Schedule.Base {
		t.Errorf("Next = %v, expected less than %v", res.Next, rules.Schedule.Base)
	}
	if s.Food() == s.Head() {
		t.Error("food placed on the head after a lap")
	}
	if s.Driver() != core.Player2 {
		t.Errorf("driver %s, expected P2 after a lap", s.Driver())
	}
}

func TestClassicKeepsTrailAndIgnoresFood(t *testing.T) {
	s := New(newRand(1), testRules(config.ModeClassic))
	place(s, Right, C(3, 3), C(2, 3))

	res := s.Step(newRand(2))
	if res.Outcome != core.OutcomeMove {
		t.Fatalf("Outcome = %s, classic mode should not eat", res.Outcome)
	}
	s.Step(newRand(3))
	want := []Coordinate{C(4, 3), C(3, 3), C(2, 3)}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Errorf("Body() = %v, expected full trail %v", got, want)
	}
	if s.Food() != C(3, 3) {
		t.Errorf("food moved to %v", s.Food())
	}
	if s.Driver() != core.Player1 {
		t.Error("classic mode only swaps on reset")
	}
	if res.Next != s.rules.Schedule.Base {
		t.Errorf("classic tick = %v, expected fixed %v", res.Next, s.rules.Schedule.Base)
	}
}

func TestClassicResetSwapsDriver(t *testing.T) {
	rules := testRules(config.ModeClassic)
	rules.Start = C(Width-1, 0)
	s := New(newRand(1), rules)

	res := s.Step(newRand(2))
	if res.Outcome != core.OutcomeReset || s.Driver() != core.Player2 {
		t.Fatalf("first reset: %+v driver %s", res, s.Driver())
	}
	s.Step(newRand(3))
	if s.Driver() != core.Player1 {
		t.Errorf("second reset should hand back to P1, got %s", s.Driver())
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for _, mode := range []config.Mode{config.ModeGrowth, config.ModeClassic} {
		t.Run(string(mode), func(t *testing.T) {
			rng := newRand(99)
			input := newRand(100)
			s := New(rng, testRules(mode))

			for i := 0; i < 5000; i++ {
				switch input.Intn(4) {
				case 0:
					s.ButtonPush(core.Player1, Clockwise)
				case 1:
					s.ButtonPush(core.Player2, CounterClockwise)
				}

				s.Step(rng)
				checkInvariants(t, s)
				if mode == config.ModeGrowth && s.body.Contains(s.Food()) {
					t.Fatalf("tick %d: food %v on body %v", i, s.Food(), s.Body())
				}
			}
		})
	}
}
