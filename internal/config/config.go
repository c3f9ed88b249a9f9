// Package config provides YAML-based configuration loading and difficulty
// presets for duosnake.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/duosnake/internal/core"
)

// Grid dimensions are fixed; configuration can only move things around inside them.
const (
	GridWidth  = 6
	GridHeight = 6
)

// Mode selects the rule set.
type Mode string

const (
	// ModeGrowth eats food, grows, laps and speeds up.
	ModeGrowth Mode = "growth"
	// ModeClassic never trims the tail, ignores food and swaps drivers on reset.
	ModeClassic Mode = "classic"
)

// DuoSnakeConfig contains all configuration for the game and its host tools.
type DuoSnakeConfig struct {
	Mode       Mode             `yaml:"mode"`
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Palette    PaletteConfig    `yaml:"palette"`
	Strip      StripConfig      `yaml:"strip"`
}

// BoardConfig defines the snake capacity and spawn cell.
type BoardConfig struct {
	MaxLength int `yaml:"max_length"`
	StartX    int `yaml:"start_x"`
	StartY    int `yaml:"start_y"`
}

// TimingConfig defines the tick schedule in milliseconds.
type TimingConfig struct {
	BaseTickMs int `yaml:"base_tick_ms"`
	MinTickMs  int `yaml:"min_tick_ms"`
}

// PaletteConfig holds the five semantic LED colors.
type PaletteConfig struct {
	Background core.RGB `yaml:"background"`
	Head       core.RGB `yaml:"head"`
	Tail       core.RGB `yaml:"tail"`
	Food       core.RGB `yaml:"food"`
	Separator  core.RGB `yaml:"separator"`
}

// StripConfig controls the physical strip writer.
type StripConfig struct {
	Brightness int    `yaml:"brightness"`
	Format     string `yaml:"format"` // "hex" or "raw"
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the engine cannot work with.
func (c DuoSnakeConfig) Validate() error {
	switch c.Mode {
	case ModeGrowth, ModeClassic:
	default:
		return fmt.Errorf("config: mode %q: %w", c.Mode, ErrInvalid)
	}

	// Food placement needs at least one free cell, so the body can never fill the grid.
	if c.Board.MaxLength < 2 || c.Board.MaxLength >= GridWidth*GridHeight {
		return fmt.Errorf("config: max_length %d outside [2, %d): %w",
			c.Board.MaxLength, GridWidth*GridHeight, ErrInvalid)
	}
	if c.Board.StartX < 0 || c.Board.StartX >= GridWidth ||
		c.Board.StartY < 0 || c.Board.StartY >= GridHeight {
		return fmt.Errorf("config: start (%d,%d) off the %dx%d grid: %w",
			c.Board.StartX, c.Board.StartY, GridWidth, GridHeight, ErrInvalid)
	}

	if c.Timing.BaseTickMs <= 0 {
		return fmt.Errorf("config: base_tick_ms must be positive: %w", ErrInvalid)
	}
	if c.Timing.MinTickMs < 0 || c.Timing.MinTickMs > c.Timing.BaseTickMs {
		return fmt.Errorf("config: min_tick_ms %d outside [0, %d]: %w",
			c.Timing.MinTickMs, c.Timing.BaseTickMs, ErrInvalid)
	}

	switch c.Difficulty {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
	default:
		return fmt.Errorf("config: difficulty %q: %w", c.Difficulty, ErrInvalid)
	}

	if c.Strip.Brightness < 0 || c.Strip.Brightness > 255 {
		return fmt.Errorf("config: brightness %d outside [0, 255]: %w", c.Strip.Brightness, ErrInvalid)
	}
	switch c.Strip.Format {
	case "", "hex", "raw":
	default:
		return fmt.Errorf("config: strip format %q: %w", c.Strip.Format, ErrInvalid)
	}
	return nil
}
