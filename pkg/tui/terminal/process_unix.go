// ABOUTME: ProcessTerminal implements Terminal on a real TTY via termios ioctls.
// ABOUTME: Owns the settings snapshot and the SIGWINCH listener for its lifetime.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an input and an output file,
// normally os.Stdin and os.Stdout.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	snapshot *unix.Termios
	resizeFn func(width, height int)
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewProcessTerminal returns a ProcessTerminal on os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal reading in and writing out.
// in must refer to the terminal whose mode is switched.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode captures the current settings and switches the input
// terminal to raw mode. The snapshot is taken before anything is changed;
// on failure the original settings are put back before returning.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snapshot != nil {
		return nil
	}

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: fd %d is not a terminal", ErrTerminalQuery, fd)
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalQuery, err)
	}

	raw := makeRaw(*orig)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermiosFlush, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalSet, err)
	}
	if _, err := t.out.WriteString(HideCursor); err != nil {
		herr := fmt.Errorf("hiding cursor: %w", err)
		if rerr := unix.IoctlSetTermios(fd, ioctlWriteTermiosFlush, orig); rerr != nil {
			return errors.Join(herr, fmt.Errorf("%w: %w", ErrTerminalSet, rerr))
		}
		return herr
	}
	t.snapshot = orig
	return nil
}

// ExitRawMode re-applies the captured snapshot and resets cursor, colours
// and screen. It is a no-op when raw mode is not active.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snapshot == nil {
		return nil
	}

	var errs []error
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermiosFlush, t.snapshot); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrTerminalSet, err))
	}
	t.snapshot = nil

	if _, err := t.out.WriteString(RestoreSequence); err != nil {
		errs = append(errs, fmt.Errorf("writing restore sequence: %w", err))
	}
	return errors.Join(errs...)
}

// Size returns the current dimensions of the output terminal.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrGeometryUnavailable, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: reported %dx%d", ErrGeometryUnavailable, w, h)
	}
	return w, h, nil
}

// Read reads raw bytes from the input terminal.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// ReadyWithin reports whether input becomes readable within d.
func (t *ProcessTerminal) ReadyWithin(d time.Duration) (bool, error) {
	deadline := time.Now().Add(d)
	fds := []unix.PollFd{{Fd: int32(t.in.Fd()), Events: unix.POLLIN}}

	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		n, err := unix.Poll(fds, int(remaining.Milliseconds()))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("polling input: %w", err)
		}
		return n > 0, nil
	}
}

// Write sends bytes to the output terminal.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// OnResize registers fn to be called with the new size after every
// SIGWINCH. The first call starts the listener goroutine.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeFn = fn
	if t.stopCh != nil {
		return
	}
	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGWINCH)
	go t.watchResize(sigCh, t.stopCh, t.doneCh)
}

// watchResize runs outside the main loop; it only queries the size and
// hands it to the callback.
func (t *ProcessTerminal) watchResize(sigCh chan os.Signal, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer signal.Stop(sigCh)
	defer RecoverGoroutine(t)

	for {
		select {
		case <-stopCh:
			return
		case <-sigCh:
			t.mu.Lock()
			fn := t.resizeFn
			t.mu.Unlock()

			if fn == nil {
				continue
			}
			w, h, err := t.Size()
			if err != nil {
				continue
			}
			fn(w, h)
		}
	}
}

// Close stops the resize listener. It does not restore the terminal.
func (t *ProcessTerminal) Close() error {
	t.mu.Lock()
	stopCh, doneCh := t.stopCh, t.doneCh
	t.stopCh, t.doneCh = nil, nil
	t.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-doneCh
	}
	return nil
}
