// ABOUTME: The grid-walk event loop: redraw, then wait for a key or a resize.
// ABOUTME: An input pump goroutine decodes keys; the loop goroutine owns cursor and rendering.

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/gridwalk/internal/log"
	"github.com/mauromedda/gridwalk/pkg/tui/grid"
	"github.com/mauromedda/gridwalk/pkg/tui/key"
	"github.com/mauromedda/gridwalk/pkg/tui/terminal"
	"github.com/mauromedda/gridwalk/pkg/tui/theme"
)

// ErrInputClosed is returned by Run when the input stream reaches EOF.
var ErrInputClosed = errors.New("input closed")

// Options tune the loop. The zero value is usable but paints nothing
// visible; callers normally start from config.Default.
type Options struct {
	EscapeTimeout time.Duration
	// MaxReadErrors ends the loop after this many consecutive read
	// failures. Zero retries forever.
	MaxReadErrors int
	CellGlyph     string
	Highlight     theme.Highlight
}

// App is one grid-walk session on a terminal already in raw mode.
type App struct {
	term     terminal.Terminal
	geo      *terminal.Geometry
	dec      *key.Decoder
	renderer *grid.Renderer
	cursor   grid.Cursor

	maxReadErrors int
	readErrors    int
}

// New prepares a session reading keys from t and sizing frames from geo.
func New(t terminal.Terminal, geo *terminal.Geometry, opts Options) *App {
	return &App{
		term:          t,
		geo:           geo,
		dec:           key.NewDecoder(t, opts.EscapeTimeout),
		renderer:      grid.NewRenderer(opts.CellGlyph, opts.Highlight),
		cursor:        grid.Home,
		maxReadErrors: opts.MaxReadErrors,
	}
}

// Cursor returns the current cursor. Only meaningful once Run has returned.
func (a *App) Cursor() grid.Cursor {
	return a.cursor
}

// Run draws frames until Ctrl-Q (nil), end of input (ErrInputClosed),
// too many read errors, a failed write, or ctx cancellation.
// The input pump may stay blocked in Read after Run returns; it exits on
// its next key.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.term.OnResize(a.geo.Resize)

	keys := make(chan key.Key)
	go a.pump(ctx, keys)

	dims := a.geo.Load()
	a.cursor = a.cursor.Clamp(dims)
	redraw := true

	for {
		if redraw {
			if err := a.renderer.Draw(a.term, dims, a.cursor); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-a.geo.Changed():
			dims = a.geo.Load()
			a.cursor = a.cursor.Clamp(dims)
			redraw = true
			log.Debug("resize: %s, cursor %d,%d", dims, a.cursor.X, a.cursor.Y)

		case k := <-keys:
			done, err := a.handleKey(k, dims)
			if done || err != nil {
				return err
			}
			redraw = k.Type != key.KeyReadError
		}
	}
}

// handleKey applies one key event. done reports a clean quit.
func (a *App) handleKey(k key.Key, dims terminal.Dimensions) (done bool, err error) {
	if k.Type == key.KeyReadError {
		if errors.Is(k.Err, io.EOF) {
			return false, ErrInputClosed
		}
		a.readErrors++
		log.Warn("reading input (%d consecutive): %v", a.readErrors, k.Err)
		if a.maxReadErrors > 0 && a.readErrors >= a.maxReadErrors {
			return false, fmt.Errorf("reading input: %d consecutive failures: %w", a.readErrors, k.Err)
		}
		return false, nil
	}
	a.readErrors = 0

	if k.IsCtrl('q') {
		return true, nil
	}
	a.cursor = a.cursor.Move(k, dims)
	return false, nil
}

func (a *App) pump(ctx context.Context, keys chan<- key.Key) {
	defer terminal.RecoverGoroutine(a.term)

	for k := range a.dec.All() {
		select {
		case keys <- k:
		case <-ctx.Done():
			return
		}
	}
}
