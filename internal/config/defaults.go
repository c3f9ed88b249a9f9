package config

import (
	_ "embed"

	"github.com/vovakirdan/duosnake/internal/core"
)

//go:embed defaults/duosnake.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, matching the embedded YAML.
func DefaultConfig() DuoSnakeConfig {
	return DuoSnakeConfig{
		Mode: ModeGrowth,
		Board: BoardConfig{
			MaxLength: 10,
			StartX:    1,
			StartY:    3,
		},
		Timing: TimingConfig{
			BaseTickMs: 1000,
			MinTickMs:  60,
		},
		Difficulty: DifficultyNormal,
		Palette:    DefaultPalette(),
		Strip: StripConfig{
			Brightness: 10,
			Format:     "hex",
		},
	}
}

// DefaultPalette returns the firmware colors.
func DefaultPalette() PaletteConfig {
	return PaletteConfig{
		Background: core.Black,
		Head:       core.Green,
		Tail:       core.Red,
		Food:       core.Blue,
		Separator:  core.Yellow,
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
