// ABOUTME: Tests for Dimensions, QuerySize, and the coalescing Geometry cell
// ABOUTME: Covers invalid sizes, packing round-trips, and pending-resize semantics

package terminal

import (
	"errors"
	"testing"
)

func TestQuerySize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		width   int
		height  int
		want    Dimensions
		wantErr error
	}{
		{name: "80x24", width: 80, height: 24, want: Dimensions{Rows: 24, Cols: 80}},
		{name: "120x40", width: 120, height: 40, want: Dimensions{Rows: 40, Cols: 120}},
		{name: "zero", width: 0, height: 0, wantErr: ErrGeometryUnavailable},
		{name: "zero rows", width: 80, height: 0, wantErr: ErrGeometryUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := QuerySize(NewVirtualTerminal(tt.width, tt.height))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("QuerySize() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("QuerySize() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("QuerySize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeometry_PackRoundTrip(t *testing.T) {
	t.Parallel()

	for _, d := range []Dimensions{{1, 1}, {24, 80}, {40, 120}, {65535, 65535}} {
		if got := unpack(pack(d)); got != d {
			t.Errorf("unpack(pack(%v)) = %v", d, got)
		}
	}
}

func TestGeometry_StoreCoalesces(t *testing.T) {
	t.Parallel()
	g := NewGeometry(Dimensions{Rows: 24, Cols: 80})

	select {
	case <-g.Changed():
		t.Fatal("Changed() fired before any Store")
	default:
	}

	g.Store(Dimensions{Rows: 30, Cols: 100})
	g.Resize(120, 40)

	select {
	case <-g.Changed():
	default:
		t.Fatal("Changed() did not fire after Store")
	}
	select {
	case <-g.Changed():
		t.Fatal("Changed() fired twice for a coalesced batch")
	default:
	}

	if got := g.Load(); got != (Dimensions{Rows: 40, Cols: 120}) {
		t.Errorf("Load() = %v, want 40x120", got)
	}
}

func TestGeometry_StoreIgnoresInvalid(t *testing.T) {
	t.Parallel()
	g := NewGeometry(Dimensions{Rows: 24, Cols: 80})

	g.Store(Dimensions{Rows: 0, Cols: 10})

	if got := g.Load(); got != (Dimensions{Rows: 24, Cols: 80}) {
		t.Errorf("Load() = %v, want 24x80", got)
	}
	select {
	case <-g.Changed():
		t.Error("Changed() fired for an invalid size")
	default:
	}
}
