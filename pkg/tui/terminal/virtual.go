// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Feeds scripted input, captures output, and tracks raw-mode transitions.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output, serves fed input, and tracks raw-mode
// transitions with the same no-op rules as ProcessTerminal.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	resizeFn   func(width, height int)
	enterCount int
	exitCount  int
	enterErr   error
	closed     bool

	input   chan byte
	pending []byte
	eofOnce sync.Once
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
		input:  make(chan byte, 4096),
	}
}

// EnterRawMode records a raw-mode entry, or fails with the error set by
// FailEnter.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	if v.rawMode {
		return nil
	}
	v.rawMode = true
	v.enterCount++
	v.buf.WriteString(HideCursor)
	return nil
}

// ExitRawMode records a raw-mode exit. It is a no-op outside raw mode.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.rawMode {
		return nil
	}
	v.rawMode = false
	v.exitCount++
	v.buf.WriteString(RestoreSequence)
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Read blocks until fed input is available or input is closed.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	v.mu.Lock()
	if len(v.pending) > 0 {
		n := copy(p, v.pending)
		v.pending = v.pending[n:]
		v.mu.Unlock()
		return n, nil
	}
	v.mu.Unlock()

	b, ok := <-v.input
	if !ok {
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}

// ReadyWithin reports whether a fed byte arrives within d.
func (v *VirtualTerminal) ReadyWithin(d time.Duration) (bool, error) {
	v.mu.Lock()
	if len(v.pending) > 0 {
		v.mu.Unlock()
		return true, nil
	}
	v.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case b, ok := <-v.input:
		if !ok {
			// A closed input is readable: the next Read reports EOF.
			return true, nil
		}
		v.mu.Lock()
		v.pending = append(v.pending, b)
		v.mu.Unlock()
		return true, nil
	case <-timer.C:
		return false, nil
	}
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// Close marks the terminal closed and drops the resize callback.
func (v *VirtualTerminal) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.resizeFn = nil
	return nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues bytes to be returned by Read.
func (v *VirtualTerminal) Feed(data ...byte) {
	for _, b := range data {
		v.input <- b
	}
}

// FeedString queues the bytes of s.
func (v *VirtualTerminal) FeedString(s string) {
	v.Feed([]byte(s)...)
}

// CloseInput makes Read report io.EOF once queued input is drained.
func (v *VirtualTerminal) CloseInput() {
	v.eofOnce.Do(func() { close(v.input) })
}

// FailEnter makes subsequent EnterRawMode calls return err.
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// IsClosed reports whether Close was called.
func (v *VirtualTerminal) IsClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.closed
}

// EnterCount returns how many times raw mode was entered.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times raw mode was actually restored.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}
