// ABOUTME: Defines the Terminal interface for raw mode, size queries, byte I/O and resize.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, byte-level input and output, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
	Close() error
}
