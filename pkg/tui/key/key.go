// ABOUTME: Defines the Key type produced by the input decoder.
// ABOUTME: Literal bytes carry their value; arrows, Escape and read failures are typed.

package key

import "fmt"

// Key represents a decoded keyboard input event.
type Key struct {
	Type KeyType
	Rune rune  // Byte value for KeyRune
	Ctrl bool  // Set for control codes (< 0x20 and DEL)
	Err  error // Cause for KeyReadError
}

// KeyType enumerates the kinds of key events the decoder can produce.
type KeyType int

const (
	KeyRune      KeyType = iota // Literal byte, printable or control
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyEscape                   // Bare or unrecognised escape sequence
	KeyReadError                // Input read failed or reached end of stream
)

const (
	esc = 0x1b
	del = 0x7f
)

// CtrlCode returns the control code produced by Ctrl+letter.
func CtrlCode(letter byte) byte {
	return letter & 0x1f
}

// CtrlQ is the quit key.
var CtrlQ = FromByte(CtrlCode('q'))

// FromByte returns the literal Key for b.
func FromByte(b byte) Key {
	return Key{Type: KeyRune, Rune: rune(b), Ctrl: b < 0x20 || b == del}
}

// IsCtrl reports whether k is Ctrl+letter.
func (k Key) IsCtrl(letter byte) bool {
	return k.Type == KeyRune && k.Rune == rune(CtrlCode(letter))
}

// IsArrow reports whether k is one of the four arrow keys.
func (k Key) IsArrow() bool {
	switch k.Type {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyEscape:    "Escape",
	KeyReadError: "ReadError",
}

// String returns a human-readable representation of the Key for debug logs.
func (k Key) String() string {
	if k.Type == KeyRune {
		return formatRuneKey(k)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatRuneKey renders control codes as Ctrl+X and others as themselves.
func formatRuneKey(k Key) string {
	switch {
	case k.Rune == del:
		return "Backspace"
	case k.Ctrl:
		return fmt.Sprintf("Ctrl+%c", k.Rune+'@')
	case k.Rune >= 0x80:
		return fmt.Sprintf("0x%02X", k.Rune)
	}
	return string(k.Rune)
}
