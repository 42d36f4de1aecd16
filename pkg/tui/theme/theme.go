// ABOUTME: 24-bit colours and the single cursor highlight style.
// ABOUTME: RGB renders SGR 38;2 / 48;2 sequences; Highlight wraps a glyph with them.

package theme

import (
	"fmt"
	"strconv"
	"strings"
)

const reset = "\x1b[0m"

// RGB is a 24-bit terminal colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("parsing colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Fg returns the SGR sequence selecting c as foreground.
func (c RGB) Fg() string {
	return c.sgr("38")
}

// Bg returns the SGR sequence selecting c as background.
func (c RGB) Bg() string {
	return c.sgr("48")
}

func (c RGB) sgr(plane string) string {
	b := make([]byte, 0, 20)
	b = append(b, "\x1b["...)
	b = append(b, plane...)
	b = append(b, ";2;"...)
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.B), 10)
	return string(append(b, 'm'))
}

// Highlight is how the cursor cell is drawn.
type Highlight struct {
	Glyph      string
	Foreground RGB
	Background RGB
}

// DefaultHighlight is a black full block on a yellow background.
func DefaultHighlight() Highlight {
	return Highlight{
		Glyph:      "█",
		Foreground: RGB{0, 0, 0},
		Background: RGB{200, 200, 50},
	}
}

// Apply wraps text with the highlight colours and a reset suffix.
func (h Highlight) Apply(text string) string {
	return h.Foreground.Fg() + h.Background.Bg() + text + reset
}

// Cell returns the fully styled highlight glyph.
func (h Highlight) Cell() string {
	return h.Apply(h.Glyph)
}
