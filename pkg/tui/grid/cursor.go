// ABOUTME: Cursor position on the 1-based grid and its movement rules.
// ABOUTME: Moves past an edge are no-ops; Clamp pulls the cursor inside after a shrink.

package grid

import (
	"github.com/mauromedda/gridwalk/pkg/tui/key"
	"github.com/mauromedda/gridwalk/pkg/tui/terminal"
)

// Cursor is a 1-based cell position: X is the column, Y the row.
type Cursor struct {
	X, Y int
}

// Home is the top-left cell.
var Home = Cursor{X: 1, Y: 1}

// Within reports whether c lies inside d.
func (c Cursor) Within(d terminal.Dimensions) bool {
	return c.X >= 1 && c.X <= d.Cols && c.Y >= 1 && c.Y <= d.Rows
}

// Move returns the cursor after k on a grid of size d. Keys other than
// arrows, and arrows pushing against an edge, leave it unchanged.
func (c Cursor) Move(k key.Key, d terminal.Dimensions) Cursor {
	switch k.Type {
	case key.KeyUp:
		if c.Y > 1 {
			c.Y--
		}
	case key.KeyDown:
		if c.Y < d.Rows {
			c.Y++
		}
	case key.KeyRight:
		if c.X < d.Cols {
			c.X++
		}
	case key.KeyLeft:
		if c.X > 1 {
			c.X--
		}
	}
	return c
}

// Clamp returns c moved to the nearest cell inside d.
func (c Cursor) Clamp(d terminal.Dimensions) Cursor {
	c.X = max(1, min(c.X, d.Cols))
	c.Y = max(1, min(c.Y, d.Rows))
	return c
}
