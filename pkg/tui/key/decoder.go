// ABOUTME: Decoder turns a raw byte stream into Key events, one blocking read at a time.
// ABOUTME: Escape sequences are bounded to three bytes with an optional follow-up timeout.

package key

import (
	"errors"
	"io"
	"iter"
	"time"
)

// DefaultEscapeTimeout bounds the wait for bytes after ESC when the source
// supports polling.
const DefaultEscapeTimeout = 50 * time.Millisecond

// Poller is implemented by sources that can wait for input with a deadline.
type Poller interface {
	ReadyWithin(d time.Duration) (bool, error)
}

// Decoder reads Key events from src. It is not safe for concurrent use.
type Decoder struct {
	src     io.Reader
	timeout time.Duration
	buf     [1]byte
}

// NewDecoder returns a Decoder reading from src. With a positive
// escapeTimeout and a src implementing Poller, a lone ESC is reported
// once no follow-up byte arrives in time; otherwise follow-up reads block.
func NewDecoder(src io.Reader, escapeTimeout time.Duration) *Decoder {
	return &Decoder{src: src, timeout: escapeTimeout}
}

// Next blocks until one Key can be produced.
func (d *Decoder) Next() Key {
	b, err := d.readByte()
	if err != nil {
		return Key{Type: KeyReadError, Err: err}
	}
	if b != esc {
		return FromByte(b)
	}

	first, ok := d.follow()
	if !ok {
		return Key{Type: KeyEscape}
	}
	second, ok := d.follow()
	if !ok {
		return Key{Type: KeyEscape}
	}
	if first == '[' {
		if t, ok := csiArrows[second]; ok {
			return Key{Type: t}
		}
	}
	return Key{Type: KeyEscape}
}

// All yields keys until the source reports end of stream. The final
// KeyReadError carrying io.EOF is yielded before stopping; other read
// errors are yielded and decoding continues.
func (d *Decoder) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for {
			k := d.Next()
			if !yield(k) {
				return
			}
			if k.Type == KeyReadError && errors.Is(k.Err, io.EOF) {
				return
			}
		}
	}
}

// follow reads one byte of an escape sequence.
func (d *Decoder) follow() (byte, bool) {
	if p, ok := d.src.(Poller); ok && d.timeout > 0 {
		ready, err := p.ReadyWithin(d.timeout)
		if err != nil || !ready {
			return 0, false
		}
	}
	b, err := d.readByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// maxEmptyReads bounds (0, nil) results from misbehaving readers.
const maxEmptyReads = 100

func (d *Decoder) readByte() (byte, error) {
	for range maxEmptyReads {
		n, err := d.src.Read(d.buf[:])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}
