// ABOUTME: CSI arrow-key final bytes recognised after ESC [.
// ABOUTME: Any other final byte collapses the sequence to a bare Escape.

package key

// csiArrows maps the final byte of ESC [ <final> to its arrow key.
var csiArrows = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}
