// ABOUTME: Sentinel errors for terminal attribute and geometry failures.
// ABOUTME: Callers match them with errors.Is; wrapped errors carry the OS cause.

package terminal

import "errors"

var (
	// ErrTerminalQuery reports that the current terminal attributes could
	// not be read. Nothing has been mutated when it is returned.
	ErrTerminalQuery = errors.New("cannot read terminal attributes")

	// ErrTerminalSet reports that new terminal attributes could not be applied.
	ErrTerminalSet = errors.New("cannot apply terminal attributes")

	// ErrGeometryUnavailable reports that the terminal did not report a size.
	ErrGeometryUnavailable = errors.New("terminal size unavailable")

	// ErrUnsupported is returned on platforms without termios support.
	ErrUnsupported = errors.New("raw mode not supported on this platform")
)
