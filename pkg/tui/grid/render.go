// ABOUTME: Full-frame renderer: clear, dot grid with one highlighted cell, cursor placement.
// ABOUTME: Frames are assembled in a pooled buffer and written with a single Write.

package grid

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mauromedda/gridwalk/pkg/tui/internal/pool"
	"github.com/mauromedda/gridwalk/pkg/tui/terminal"
	"github.com/mauromedda/gridwalk/pkg/tui/theme"
)

// DefaultCell is the glyph painted in every non-highlighted cell.
const DefaultCell = "."

// Renderer paints frames. Its glyphs are assumed to be one cell wide.
type Renderer struct {
	cell      string
	highlight string
}

// NewRenderer returns a Renderer painting cell everywhere and h at the cursor.
func NewRenderer(cell string, h theme.Highlight) *Renderer {
	return &Renderer{cell: cell, highlight: h.Cell()}
}

// AppendFrame writes one frame for a grid of size d with the cursor at c.
// Rows are separated by "\r\n"; no terminator follows the last row so the
// bottom line never scrolls the screen.
func (r *Renderer) AppendFrame(buf *bytes.Buffer, d terminal.Dimensions, c Cursor) {
	buf.WriteString(terminal.ClearScreen)
	buf.WriteString(terminal.CursorHome)

	for y := 1; y <= d.Rows; y++ {
		for x := 1; x <= d.Cols; x++ {
			if x == c.X && y == c.Y {
				buf.WriteString(r.highlight)
				continue
			}
			buf.WriteString(r.cell)
		}
		if y < d.Rows {
			buf.WriteString("\r\n")
		}
	}

	var pos [16]byte
	buf.Write(terminal.AppendCursorTo(pos[:0], c.Y, c.X))
}

// Draw renders one frame into w with a single Write.
func (r *Renderer) Draw(w io.Writer, d terminal.Dimensions, c Cursor) error {
	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)

	buf.Grow(d.Rows*(d.Cols*len(r.cell)+2) + len(r.highlight) + 32)
	r.AppendFrame(buf, d, c)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}
	return nil
}
