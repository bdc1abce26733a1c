package atoi

import "unicode/utf8"

// Cursor is a forward-only reader over a string with one rune of lookahead.
// Peek inspects the next rune without moving; Next consumes it.
// The zero value is a cursor over the empty string.
type Cursor struct {
	s   string
	off int
}

// NewCursor returns a Cursor positioned at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{s: s}
}

// Peek returns the next rune without consuming it.
// ok is false at end of input. Invalid UTF-8 reads as utf8.RuneError.
func (c *Cursor) Peek() (r rune, ok bool) {
	r, _, ok = c.decode()

	return r, ok
}

// Next consumes and returns the next rune; ok is false at end of input.
func (c *Cursor) Next() (r rune, ok bool) {
	var width int
	r, width, ok = c.decode()
	c.off += width

	return r, ok
}

// Offset reports how many bytes have been consumed.
func (c *Cursor) Offset() int { return c.off }

// decode reads the rune at the current offset, with an ASCII fast path.
func (c *Cursor) decode() (rune, int, bool) {
	if c.off >= len(c.s) {
		return 0, 0, false
	}
	if b := c.s[c.off]; b < utf8.RuneSelf {
		return rune(b), 1, true
	}
	r, width := utf8.DecodeRuneInString(c.s[c.off:])

	return r, width, true
}
