// ABOUTME: Stub ProcessTerminal for platforms without termios.
// ABOUTME: Every mode change fails with ErrUnsupported so startup aborts cleanly.

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"fmt"
	"os"
	"time"
)

// ProcessTerminal is unavailable on this platform.
type ProcessTerminal struct {
	in  *os.File
	out *os.File
}

// NewProcessTerminal returns a ProcessTerminal on os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal reading in and writing out.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

func (t *ProcessTerminal) EnterRawMode() error {
	return fmt.Errorf("%w: %w", ErrTerminalQuery, ErrUnsupported)
}

func (t *ProcessTerminal) ExitRawMode() error { return nil }

func (t *ProcessTerminal) Size() (int, int, error) {
	return 0, 0, fmt.Errorf("%w: %w", ErrGeometryUnavailable, ErrUnsupported)
}

func (t *ProcessTerminal) Read(p []byte) (int, error) { return t.in.Read(p) }

func (t *ProcessTerminal) ReadyWithin(time.Duration) (bool, error) { return true, nil }

func (t *ProcessTerminal) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t *ProcessTerminal) OnResize(func(width, height int)) {}

func (t *ProcessTerminal) Close() error { return nil }
