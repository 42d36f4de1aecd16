// ABOUTME: Tests for the RawMode handle: single restore on every exit path
// ABOUTME: Covers release twice, fn errors, panics, failed entry, and termination signals

package terminal

import (
	"errors"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestAcquire_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	r, err := Acquire(vt)
	if err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Fatal("expected raw mode after Acquire")
	}

	for i := range 3 {
		if err := r.Release(); err != nil {
			t.Fatalf("Release() #%d unexpected error: %v", i, err)
		}
	}

	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestAcquire_EnterFailure(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	vt.FailEnter(ErrTerminalQuery)

	r, err := Acquire(vt)
	if !errors.Is(err, ErrTerminalQuery) {
		t.Fatalf("Acquire() error = %v, want ErrTerminalQuery", err)
	}
	if r != nil {
		t.Error("Acquire() returned a handle on failure")
	}
	if vt.EnterCount() != 0 || vt.ExitCount() != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", vt.EnterCount(), vt.ExitCount())
	}
}

func TestWithRawMode_RestoresOnEveryPath(t *testing.T) {
	t.Parallel()

	errQuit := errors.New("quit")

	tests := []struct {
		name    string
		fn      func() error
		wantErr error
		panics  bool
	}{
		{name: "normal return", fn: func() error { return nil }},
		{name: "error return", fn: func() error { return errQuit }, wantErr: errQuit},
		{name: "panic", fn: func() error { panic("boom") }, panics: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(80, 24)

			var (
				err       error
				recovered any
			)
			func() {
				defer func() { recovered = recover() }()
				err = WithRawMode(vt, func() error {
					if !vt.IsRawMode() {
						t.Error("fn ran outside raw mode")
					}
					return tt.fn()
				})
			}()

			if tt.panics != (recovered != nil) {
				t.Errorf("panic propagated = %v, want %v", recovered != nil, tt.panics)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WithRawMode() error = %v, want %v", err, tt.wantErr)
			}
			if vt.IsRawMode() {
				t.Error("terminal left in raw mode")
			}
			if vt.ExitCount() != 1 {
				t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
			}
		})
	}
}

func TestRawMode_TerminationSignalRestoresAndExits(t *testing.T) {
	exited := make(chan int, 1)
	saved := exitFunc
	exitFunc = func(code int) { exited <- code }
	t.Cleanup(func() { exitFunc = saved })

	vt := NewVirtualTerminal(80, 24)
	sigCh := make(chan os.Signal, 1)

	r, err := acquire(vt, sigCh)
	if err != nil {
		t.Fatalf("acquire() unexpected error: %v", err)
	}

	sigCh <- syscall.SIGTERM

	select {
	case code := <-exited:
		if code != 128+int(syscall.SIGTERM) {
			t.Errorf("exit code = %d, want %d", code, 128+int(syscall.SIGTERM))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("signal did not trigger exit")
	}

	if vt.IsRawMode() {
		t.Error("terminal left in raw mode after signal")
	}

	// A later deferred Release must not restore a second time.
	if err := r.Release(); err != nil {
		t.Fatalf("Release() unexpected error: %v", err)
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

// halfEnterTerminal switches to raw mode and then reports failure, like a
// terminal whose settings were applied but whose output is broken.
type halfEnterTerminal struct {
	*VirtualTerminal
}

func (h halfEnterTerminal) EnterRawMode() error {
	if err := h.VirtualTerminal.EnterRawMode(); err != nil {
		return err
	}
	return errors.New("hiding cursor: broken pipe")
}

func TestAcquire_FailedEntryRestores(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	r, err := acquire(halfEnterTerminal{vt}, make(chan os.Signal, 1))
	if err == nil {
		t.Fatal("acquire() expected error")
	}
	if r != nil {
		t.Error("acquire() returned a handle on failure")
	}
	if vt.IsRawMode() {
		t.Error("terminal left in raw mode after failed entry")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}
