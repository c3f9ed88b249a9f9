package config

import "time"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// baseScale returns the base tick multiplier in percent for a preset.
func baseScale(preset DifficultyPreset) int64 {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyHard:
		return 50
	default:
		return 100
	}
}

// IsFixedPreset returns true if the preset disables the speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Schedule maps a level to the tick duration the host waits.
// Each level halves the base tick, never going below Min.
type Schedule struct {
	Base        time.Duration
	Min         time.Duration
	Progressive bool
}

// Duration returns base / 2^level, floored at Min. Non-progressive schedules
// always return Base.
func (s Schedule) Duration(level int) time.Duration {
	if !s.Progressive || level <= 0 {
		return s.Base
	}
	// Shifting an int64 by 63 or more is zero anyway.
	if level >= 63 {
		return s.Min
	}
	d := s.Base >> uint(level)
	if d < s.Min {
		return s.Min
	}
	return d
}

// Schedule builds the tick schedule for this configuration.
// Classic mode keeps a fixed tick.
func (c DuoSnakeConfig) Schedule() Schedule {
	base := time.Duration(int64(c.Timing.BaseTickMs)*baseScale(c.Difficulty)/100) * time.Millisecond
	minTick := time.Duration(c.Timing.MinTickMs) * time.Millisecond
	if minTick > base {
		minTick = base
	}
	return Schedule{
		Base:        base,
		Min:         minTick,
		Progressive: c.Mode == ModeGrowth && !IsFixedPreset(c.Difficulty),
	}
}
