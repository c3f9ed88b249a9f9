// Package strip turns a frame of LED colors into the bytes a WS2812 chain
// expects and writes them out once per tick.
package strip

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/vovakirdan/duosnake/internal/core"
)

// Format selects how frames are written.
type Format string

const (
	// FormatHex writes one line of lowercase hex per frame. Good for pipes and logs.
	FormatHex Format = "hex"
	// FormatRaw writes the GRB bytes as-is, for a serial bridge.
	FormatRaw Format = "raw"
)

// ParseFormat accepts "hex", "raw" or "" (hex).
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatHex:
		return FormatHex, nil
	case FormatRaw:
		return FormatRaw, nil
	default:
		return "", fmt.Errorf("strip: unknown format %q", s)
	}
}

// scale8 dims one channel. Brightness 255 leaves it untouched, 0 turns it off.
func scale8(c, brightness uint8) uint8 {
	return uint8(uint16(c) * (uint16(brightness) + 1) / 256)
}

// Scale returns a dimmed copy of colors.
func Scale(colors []core.RGB, brightness uint8) []core.RGB {
	out := make([]core.RGB, len(colors))
	for i, c := range colors {
		out[i] = core.RGB{
			R: scale8(c.R, brightness),
			G: scale8(c.G, brightness),
			B: scale8(c.B, brightness),
		}
	}
	return out
}

// EncodeGRB returns the colors in wire order: green, red, blue per LED.
func EncodeGRB(colors []core.RGB) []byte {
	return AppendGRB(make([]byte, 0, 3*len(colors)), colors)
}

// AppendGRB appends the wire encoding of colors to dst.
func AppendGRB(dst []byte, colors []core.RGB) []byte {
	for _, c := range colors {
		dst = append(dst, c.G, c.R, c.B)
	}
	return dst
}

// Writer writes dimmed, encoded frames to an underlying writer.
// It is not safe for concurrent use.
type Writer struct {
	w          *bufio.Writer
	format     Format
	brightness uint8
	buf        []byte
	frames     uint64
}

// NewWriter wraps w. Brightness is clamped to [0, 255].
func NewWriter(w io.Writer, format Format, brightness int) *Writer {
	return &Writer{
		w:          bufio.NewWriter(w),
		format:     format,
		brightness: uint8(core.Clamp(brightness, 0, 255)),
	}
}

// WriteFrame writes one frame and flushes it.
func (w *Writer) WriteFrame(colors []core.RGB) error {
	w.buf = AppendGRB(w.buf[:0], Scale(colors, w.brightness))

	var err error
	switch w.format {
	case FormatRaw:
		_, err = w.w.Write(w.buf)
	default:
		_, err = w.w.WriteString(hex.EncodeToString(w.buf))
		if err == nil {
			err = w.w.WriteByte('\n')
		}
	}
	if err != nil {
		return fmt.Errorf("strip: write frame: %w", err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("strip: flush frame: %w", err)
	}
	w.frames++
	return nil
}

// Frames returns how many frames were written.
func (w *Writer) Frames() uint64 {
	return w.frames
}
