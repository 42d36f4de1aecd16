// ABOUTME: ANSI/VT control sequences used for raw-mode setup, restore, and frame drawing.
// ABOUTME: Allocation-free append helpers for cursor positioning.

package terminal

import "strconv"

const (
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
	ResetStyle  = "\x1b[0m"
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
)

// RestoreSequence returns the terminal to a clean state for the shell prompt.
const RestoreSequence = ShowCursor + ResetStyle + ClearScreen + CursorHome

// AppendCursorTo appends ESC[<row>;<col>H to dst. Coordinates are 1-based.
func AppendCursorTo(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// CursorTo returns the sequence moving the cursor to (row, col).
func CursorTo(row, col int) string {
	var buf [16]byte
	return string(AppendCursorTo(buf[:0], row, col))
}
