package duosnake

import (
	"fmt"

	"github.com/vovakirdan/duosnake/internal/config"
)

// Rules are the fixed parameters a State is built from.
// They survive every reset unchanged.
type Rules struct {
	Mode      config.Mode
	MaxLength int        // Growth-mode capacity; reaching it completes a lap
	Start     Coordinate // Spawn cell of the head
	Schedule  config.Schedule
	Palette   config.PaletteConfig
}

// DefaultRules returns the growth rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultConfig())
}

// RulesFromConfig converts a validated configuration to engine rules.
func RulesFromConfig(cfg config.DuoSnakeConfig) Rules {
	return Rules{
		Mode:      cfg.Mode,
		MaxLength: cfg.Board.MaxLength,
		Start:     C(cfg.Board.StartX, cfg.Board.StartY),
		Schedule:  cfg.Schedule(),
		Palette:   cfg.Palette,
	}
}

// Capacity returns the body capacity for the mode.
// Classic mode keeps the whole trail, so only the board bounds it.
func (r Rules) Capacity() int {
	if r.Mode == config.ModeClassic {
		return CellCount
	}
	return r.MaxLength
}

// Growing reports whether food is consumed under these rules.
func (r Rules) Growing() bool {
	return r.Mode != config.ModeClassic
}

// check returns an error for rules New cannot honor.
func (r Rules) check() error {
	switch r.Mode {
	case config.ModeGrowth:
		if r.MaxLength < 2 || r.MaxLength >= CellCount {
			return fmt.Errorf("duosnake: max length %d outside [2, %d)", r.MaxLength, CellCount)
		}
	case config.ModeClassic:
	default:
		return fmt.Errorf("duosnake: unknown mode %q", r.Mode)
	}
	if !r.Start.InBounds() {
		return fmt.Errorf("duosnake: start %v off the board", r.Start)
	}
	return nil
}
