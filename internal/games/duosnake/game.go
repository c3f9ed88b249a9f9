package duosnake

import (
	"math/rand"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/registry"
)

// Registered game IDs.
const (
	IDGrowth  = "duosnake"
	IDClassic = "duosnake_classic"
)

// Game drives a State for the host tools. It owns the seeded random source,
// counts resets across runs and handles host-side pause.
type Game struct {
	id     string
	rules  Rules
	rng    *rand.Rand
	state  *State
	resets int
	paused bool
}

// NewGame creates a game for the given configuration.
// Call Reset before stepping.
func NewGame(cfg config.DuoSnakeConfig) *Game {
	id := IDGrowth
	if cfg.Mode == config.ModeClassic {
		id = IDClassic
	}
	return &Game{
		id:    id,
		rules: RulesFromConfig(cfg),
	}
}

// IDForMode returns the registry ID that runs the given mode.
func IDForMode(mode config.Mode) string {
	if mode == config.ModeClassic {
		return IDClassic
	}
	return IDGrowth
}

func init() {
	registry.Register(IDGrowth, func(cfg config.DuoSnakeConfig) registry.Game {
		cfg.Mode = config.ModeGrowth
		return NewGame(cfg)
	})
	registry.Register(IDClassic, func(cfg config.DuoSnakeConfig) registry.Game {
		cfg.Mode = config.ModeClassic
		return NewGame(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDClassic {
		return "Duo Snake (Classic)"
	}
	return "Duo Snake"
}

// Reset seeds the random source and starts over.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = New(g.rng, g.rules)
	g.resets = 0
	g.paused = false
}

// Push forwards turns to the engine and handles the pause toggle.
func (g *Game) Push(player core.PlayerID, action core.Action) {
	switch action {
	case core.ActionTurnCW:
		g.state.ButtonPush(player, Clockwise)
	case core.ActionTurnCCW:
		g.state.ButtonPush(player, CounterClockwise)
	case core.ActionPause:
		g.paused = !g.paused
	}
}

// Step advances the engine one tick. While paused nothing moves and the
// host is asked to come back after the current tick duration.
func (g *Game) Step() core.StepResult {
	if g.paused {
		st := g.State()
		return core.StepResult{State: st, Next: st.Interval}
	}

	before := g.State()
	res := g.state.Step(g.rng)

	result := core.StepResult{
		Outcome: res.Outcome,
		Cause:   res.Cause,
		Next:    res.Next,
	}
	if res.Outcome == core.OutcomeReset {
		g.resets++
		result.Ended = before
	}
	result.State = g.State()
	return result
}

// Frame returns the strip and both panels.
func (g *Game) Frame() core.Frame {
	return g.state.Frame()
}

// State returns a summary of the current game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Driver: g.state.Driver(),
		Level:  g.state.Level(),
		Length: g.state.Len(),
		Food:   g.state.Eaten(),
		Ticks:  g.state.Ticks(),
		Resets: g.resets,
		Paused: g.paused,

		Interval: g.rules.Schedule.Duration(g.state.Level()),
	}
}

// Engine exposes the underlying state for debug views.
func (g *Game) Engine() *State {
	return g.state
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}
