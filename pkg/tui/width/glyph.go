// ABOUTME: Validation of single-cell glyphs used to paint grid cells.
// ABOUTME: Glyphs are NFC-normalised, then must be one grapheme one column wide.

package width

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrGlyphEmpty reports an empty glyph.
	ErrGlyphEmpty = errors.New("glyph is empty")
	// ErrGlyphControl reports control characters inside a glyph.
	ErrGlyphControl = errors.New("glyph contains control characters")
	// ErrGlyphClusters reports a glyph that is not exactly one grapheme.
	ErrGlyphClusters = errors.New("glyph must be a single grapheme")
	// ErrGlyphWidth reports a glyph that does not occupy exactly one column.
	ErrGlyphWidth = errors.New("glyph must be one column wide")
)

// Glyph normalises s to NFC and checks it paints exactly one cell.
func Glyph(s string) (string, error) {
	g := norm.NFC.String(s)
	if g == "" {
		return "", ErrGlyphEmpty
	}
	if strings.IndexFunc(g, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrGlyphControl, s)
	}
	if n := uniseg.GraphemeClusterCount(g); n != 1 {
		return "", fmt.Errorf("%w: %q has %d", ErrGlyphClusters, s, n)
	}
	if w := VisibleWidth(g); w != 1 {
		return "", fmt.Errorf("%w: %q is %d columns", ErrGlyphWidth, s, w)
	}
	return g, nil
}
