// ABOUTME: Screen dimensions and the resize-safe Geometry cell shared with the resize listener.
// ABOUTME: A packed atomic word plus a single-slot channel coalesces pending resize notifications.

package terminal

import (
	"fmt"
	"sync/atomic"
)

// Dimensions is a terminal size in character cells.
type Dimensions struct {
	Rows int
	Cols int
}

// Valid reports whether both dimensions are positive.
func (d Dimensions) Valid() bool {
	return d.Rows > 0 && d.Cols > 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

// QuerySize asks t for its current size.
func QuerySize(t Terminal) (Dimensions, error) {
	w, h, err := t.Size()
	if err != nil {
		return Dimensions{}, fmt.Errorf("querying size: %w", err)
	}
	d := Dimensions{Rows: h, Cols: w}
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("%w: reported %s", ErrGeometryUnavailable, d)
	}
	return d, nil
}

// Geometry holds the current screen dimensions. Store may be called from
// the resize listener at any time; Load and Changed are used by the loop.
type Geometry struct {
	packed  atomic.Uint64
	pending chan struct{}
}

// NewGeometry returns a Geometry initialised to d.
func NewGeometry(d Dimensions) *Geometry {
	g := &Geometry{pending: make(chan struct{}, 1)}
	g.packed.Store(pack(d))
	return g
}

// Load returns the latest stored dimensions.
func (g *Geometry) Load() Dimensions {
	return unpack(g.packed.Load())
}

// Store overwrites the dimensions and marks a resize as pending.
// Invalid sizes are dropped.
func (g *Geometry) Store(d Dimensions) {
	if !d.Valid() {
		return
	}
	g.packed.Store(pack(d))
	select {
	case g.pending <- struct{}{}:
	default: // already pending; coalesced
	}
}

// Resize adapts Store to the Terminal.OnResize callback signature.
func (g *Geometry) Resize(width, height int) {
	g.Store(Dimensions{Rows: height, Cols: width})
}

// Changed delivers one value per batch of resizes since the last receive.
func (g *Geometry) Changed() <-chan struct{} {
	return g.pending
}

func pack(d Dimensions) uint64 {
	return uint64(uint32(d.Rows))<<32 | uint64(uint32(d.Cols))
}

func unpack(v uint64) Dimensions {
	return Dimensions{Rows: int(uint32(v >> 32)), Cols: int(uint32(v))}
}
