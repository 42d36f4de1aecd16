// ABOUTME: Pure termios transformation from cooked to raw input settings.
// ABOUTME: Clears echo, canonical input, signal keys, XON/XOFF and CR->NL only.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// makeRaw returns a copy of orig configured for per-keystroke input.
// Output processing is left alone so "\r\n" and "\n" behave as before.
func makeRaw(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG
	raw.Iflag &^= unix.IXON | unix.ICRNL
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	return raw
}
