// ABOUTME: RawMode is a scoped handle over a Terminal's raw mode with exactly-once release.
// ABOUTME: Release runs on normal return, error, panic, and termination signals.

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// exitFunc is swapped in tests.
var exitFunc = os.Exit

// terminationSignals restore the terminal before the process dies.
// With ISIG cleared these only arrive from outside the terminal.
var terminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// RawMode is an acquired raw-mode session. Release restores the terminal
// exactly once, however many times it is called.
type RawMode struct {
	t Terminal

	once     sync.Once
	stopOnce sync.Once
	err      error

	stopCh chan struct{}
	doneCh chan struct{}
}

// Acquire switches t into raw mode and starts watching termination
// signals. If entering raw mode fails nothing needs releasing.
func Acquire(t Terminal) (*RawMode, error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, terminationSignals...)

	return acquire(t, sigCh)
}

func acquire(t Terminal, sigCh chan os.Signal) (*RawMode, error) {
	if err := t.EnterRawMode(); err != nil {
		signal.Stop(sigCh)
		// A partial entry may have changed settings; ExitRawMode is a
		// no-op when nothing was applied.
		_ = t.ExitRawMode()
		return nil, err
	}
	r := &RawMode{
		t:      t,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go r.watchSignals(sigCh)
	return r, nil
}

func (r *RawMode) watchSignals(sigCh chan os.Signal) {
	defer close(r.doneCh)
	defer signal.Stop(sigCh)

	select {
	case <-r.stopCh:
	case sig := <-sigCh:
		r.restore()
		code := 1
		if s, ok := sig.(syscall.Signal); ok {
			code = 128 + int(s)
		}
		exitFunc(code)
	}
}

// Release restores the terminal. Only the first call does any work;
// later calls return the same result.
func (r *RawMode) Release() error {
	r.restore()
	r.stopOnce.Do(func() { close(r.stopCh) })
	<-r.doneCh
	return r.err
}

func (r *RawMode) restore() {
	r.once.Do(func() {
		r.err = r.t.ExitRawMode()
	})
}

// WithRawMode runs fn with t in raw mode and restores it afterwards,
// including when fn panics. A restore error is returned only if fn
// itself succeeded.
func WithRawMode(t Terminal, fn func() error) (err error) {
	r, err := Acquire(t)
	if err != nil {
		return err
	}
	defer func() {
		p := recover()
		if rerr := r.Release(); rerr != nil && err == nil {
			err = rerr
		}
		if p != nil {
			panic(p)
		}
	}()

	return fn()
}
