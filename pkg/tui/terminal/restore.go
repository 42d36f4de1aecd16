// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: RecoverGoroutine does the same for helper goroutines without exiting the process.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of the goroutine that owns
// the terminal. On panic it leaves raw mode via t, prints the panic value
// and stack trace, then exits with code 2.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: the process is going away either way.
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exitFunc(2)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode (resize listener, input pump).
// Unlike RestoreOnPanic it does not exit; the owner decides how to stop.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
