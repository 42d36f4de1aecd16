// ABOUTME: E2E tests for gridwalk: Ctrl+Q quit, arrow walk, resize redraw, signal restore
// ABOUTME: Drives the real binary through a PTY and inspects the frames it writes

package e2e

import (
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/mauromedda/gridwalk/pkg/tui/grid"
	"github.com/mauromedda/gridwalk/pkg/tui/terminal"
)

func TestGridwalk_CtrlQExitsCleanly(t *testing.T) {
	s := startGridwalk(t, 24, 80)

	s.expectString(t, "\x1b[1;1H", 5*time.Second)
	s.send(t, "\x11")

	if code := s.waitExit(t, 5*time.Second); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	s.expectString(t, terminal.RestoreSequence, time.Second)
}

func TestGridwalk_ArrowWalk(t *testing.T) {
	s := startGridwalk(t, 24, 80)

	s.expectString(t, "\x1b[1;1H", 5*time.Second)
	s.send(t, "\x1b[A\x1b[D")
	s.send(t, strings.Repeat("\x1b[C", 5))
	s.send(t, strings.Repeat("\x1b[B", 30))
	s.expectString(t, "\x1b[24;6H", 5*time.Second)

	if strings.Contains(s.output(), "\x1b[25;6H") {
		t.Error("cursor moved past the bottom row")
	}

	s.send(t, "\x11")
	if code := s.waitExit(t, 5*time.Second); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}

func TestGridwalk_ResizeRedraws(t *testing.T) {
	s := startGridwalk(t, 24, 80)

	s.expectString(t, "\x1b[1;1H", 5*time.Second)
	s.resize(t, 40, 120)

	deadline := time.Now().Add(5 * time.Second)
	for {
		frames := grid.Frames(s.output())
		if n := len(frames); n >= 2 && len(grid.Rows(frames[n-1])) == 40 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("no 40-row frame after resize")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.send(t, "\x11")
	if code := s.waitExit(t, 5*time.Second); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}

func TestGridwalk_TerminateRestores(t *testing.T) {
	s := startGridwalk(t, 24, 80)

	s.expectString(t, "\x1b[1;1H", 5*time.Second)
	if err := s.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		t.Fatal(err)
	}

	if code := s.waitExit(t, 5*time.Second); code != 128+int(syscall.SIGTERM) {
		t.Fatalf("exit code = %d, want %d", code, 128+int(syscall.SIGTERM))
	}
	s.expectString(t, terminal.RestoreSequence, time.Second)
}

func TestGridwalk_Version(t *testing.T) {
	s := startGridwalk(t, 24, 80, "-version")

	s.expectString(t, "gridwalk dev", 5*time.Second)
	if code := s.waitExit(t, 5*time.Second); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}
