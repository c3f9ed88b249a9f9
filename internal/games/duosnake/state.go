// Package duosnake is the two-player snake engine behind the dual 6x6 LED
// matrix: movement, body store, food, driver handoff, laps and the mapping of
// both players' views onto one physical strip.
//
// A State is owned by exactly one caller and is not safe for concurrent use.
// The random source is passed into every call that needs it and never kept.
package duosnake

import (
	"time"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
)

// State is the complete game: heading, pending turn, body, food, driver and level.
type State struct {
	rules   Rules
	pending Turn
	heading Heading
	body    Body
	food    Coordinate
	driver  core.PlayerID
	level   int
	eaten   int
	ticks   uint64
}

// Result is the tagged outcome of one tick.
type Result struct {
	Outcome    core.Outcome
	Cause      core.Cause    // Only for OutcomeReset
	NextDriver core.PlayerID // Driver after the tick
	Next       time.Duration // How long to wait before the next tick
}

// New builds a fresh game: a single head at the start cell heading right,
// Player1 driving, level 0 and food somewhere off the snake.
// Panics if the rules are unusable; validate configuration first.
func New(rng Rand, rules Rules) *State {
	if err := rules.check(); err != nil {
		panic(err)
	}
	s := &State{
		rules:   rules,
		heading: Right,
		body:    NewBody(rules.Capacity(), rules.Start),
		driver:  core.Player1,
	}
	s.food = PlaceFood(rng, &s.body)
	return s
}

// Rules returns the rules the state was built with.
func (s *State) Rules() Rules {
	return s.rules
}

// Driver returns the player allowed to turn.
func (s *State) Driver() core.PlayerID {
	return s.driver
}

// IsDriver returns true if p is the current driver.
func (s *State) IsDriver(p core.PlayerID) bool {
	return p == s.driver
}

// ButtonPush latches a turn for the next tick. Input from the observer is
// ignored; repeated pushes between ticks overwrite each other.
func (s *State) ButtonPush(p core.PlayerID, t Turn) {
	if !s.IsDriver(p) || t == TurnNone {
		return
	}
	s.pending = t
}

// Pending returns the latched turn, TurnNone if there is none.
func (s *State) Pending() Turn {
	return s.pending
}

// Heading returns the current direction of travel.
func (s *State) Heading() Heading {
	return s.heading
}

// Head returns the head cell.
func (s *State) Head() Coordinate {
	return s.body.Head()
}

// Food returns the food cell.
func (s *State) Food() Coordinate {
	return s.food
}

// Body returns a copy of the occupied cells, head first.
func (s *State) Body() []Coordinate {
	return s.body.Segments()
}

// Len returns the active snake length.
func (s *State) Len() int {
	return s.body.Len()
}

// Level returns the number of laps since the last reset.
func (s *State) Level() int {
	return s.level
}

// Eaten returns the food eaten since the last reset.
func (s *State) Eaten() int {
	return s.eaten
}

// Ticks returns the ticks survived since the last reset.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// Tick advances one step and returns how long to wait before the next one.
func (s *State) Tick(rng Rand) time.Duration {
	return s.Step(rng).Next
}

// Step advances one step and reports what happened.
func (s *State) Step(rng Rand) Result {
	if s.pending != TurnNone {
		s.heading = s.heading.Rotate(s.pending)
		s.pending = TurnNone
	}

	head, outcome, cause := s.plan()
	switch outcome {
	case core.OutcomeReset:
		return s.reset(rng, cause)

	case core.OutcomeGrow:
		s.body.InsertHead(head)
		s.eaten++
		if s.body.Len() == s.body.Cap() {
			s.body.ResetToSingle(head)
			s.level++
			outcome = core.OutcomeLap
		}
		s.food = PlaceFood(rng, &s.body)
		s.driver = s.driver.Other()

	default:
		s.body.InsertHead(head)
		if s.rules.Growing() {
			s.body.TrimTail()
		}
	}

	s.ticks++
	return Result{
		Outcome:    outcome,
		NextDriver: s.driver,
		Next:       s.rules.Schedule.Duration(s.level),
	}
}

// plan decides the next move without touching the body, so a rejected move
// can never leave a half-applied state behind.
func (s *State) plan() (Coordinate, core.Outcome, core.Cause) {
	next, ok := s.body.Head().Apply(s.heading)
	if !ok {
		return next, core.OutcomeReset, core.CauseWall
	}
	if s.body.Contains(next) {
		return next, core.OutcomeReset, core.CauseSelf
	}
	if s.rules.Growing() && next == s.food {
		return next, core.OutcomeGrow, core.CauseNone
	}
	return next, core.OutcomeMove, core.CauseNone
}

// reset replaces the whole state with a fresh one. Classic rules hand the
// driver role to the other player; growth rules start over with Player1.
func (s *State) reset(rng Rand, cause core.Cause) Result {
	driver := core.Player1
	if s.rules.Mode == config.ModeClassic {
		driver = s.driver.Other()
	}

	*s = *New(rng, s.rules)
	s.driver = driver

	return Result{
		Outcome:    core.OutcomeReset,
		Cause:      cause,
		NextDriver: driver,
		Next:       s.rules.Schedule.Duration(0),
	}
}
