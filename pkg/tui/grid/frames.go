// ABOUTME: Helpers that split captured terminal output back into frames and rows.
// ABOUTME: Used to inspect what a virtual terminal was asked to draw.

package grid

import (
	"strings"

	"github.com/mauromedda/gridwalk/pkg/tui/terminal"
)

const frameStart = terminal.ClearScreen + terminal.CursorHome

// Frames returns the non-empty frame bodies contained in out, oldest first.
func Frames(out string) []string {
	parts := strings.Split(out, frameStart)
	if len(parts) < 2 {
		return nil
	}
	frames := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p != "" {
			frames = append(frames, p)
		}
	}
	return frames
}

// Rows splits a frame body into its rows, dropping the final cursor placement.
func Rows(frame string) []string {
	if strings.HasSuffix(frame, "H") {
		if i := strings.LastIndex(frame, "\x1b["); i >= 0 {
			frame = frame[:i]
		}
	}
	return strings.Split(frame, "\r\n")
}
