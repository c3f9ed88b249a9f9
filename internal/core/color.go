package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is one LED color, 8 bits per channel.
// The zero value is black (LED off).
type RGB struct {
	R, G, B uint8
}

// Named colors of the default palette.
var (
	Black  = RGB{0, 0, 0}
	Red    = RGB{255, 0, 0}
	Green  = RGB{0, 128, 0}
	Blue   = RGB{0, 0, 255}
	Yellow = RGB{255, 255, 0}
	White  = RGB{255, 255, 255}
)

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// IsOff reports whether all channels are zero.
func (c RGB) IsOff() bool {
	return c == Black
}

// ParseRGB parses "#rrggbb", "rrggbb" or one of the named colors.
func ParseRGB(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "black", "off":
		return Black, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "yellow":
		return Yellow, nil
	case "white":
		return White, nil
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("core: invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MarshalText implements encoding.TextMarshaler so colors round-trip through YAML.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
