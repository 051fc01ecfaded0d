// SPDX-License-Identifier: MIT

// Package scan provides the character cursor shared by both evaluators.
package scan

import "unicode"

type (
	// Cursor tracks a forward-only position over an immutable input buffer.
	//
	// A Cursor borrows its input for the duration of one parse; it never
	// moves backward and never reads past the end.
	Cursor struct {
		src string
		pos int
	}
)

// sentinel is returned by Peek at the end of input, distinct from any
// digit or operator character. It is a lookahead value only, never data.
const sentinel byte = 0

// New instantiates a Cursor over src.
func New(src string) Cursor { return Cursor{src: src} }

// Peek returns the byte at the current position without advancing, or the
// zero sentinel at the end of input. Peek never fails.
func (c *Cursor) Peek() byte {
	if c.pos >= len(c.src) {
		return sentinel
	}

	return c.src[c.pos]
}

// Next returns the byte at the current position & advances past it.
//
// The second return is false at the end of input; the caller decides what
// that failure means.
func (c *Cursor) Next() (byte, bool) {
	if c.pos >= len(c.src) {
		return sentinel, false
	}

	b := c.src[c.pos]
	c.pos++

	return b, true
}

// SkipWhitespace advances past a run of whitespace.
//
// Stops at the first non-whitespace byte or the end of input; never fails,
// Peek has already confirmed a real character is present before each advance.
func (c *Cursor) SkipWhitespace() {
	for isWhitespace(c.Peek()) {
		_, _ = c.Next()
	}
}

// Pos returns the length of the consumed prefix in bytes.
func (c *Cursor) Pos() int { return c.pos }

// IsDigit return true for an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// isWhitespace return true for the wide-character space class.
//
// The zero sentinel is not whitespace, so skipping terminates at the end of
// input.
func isWhitespace(b byte) bool { return unicode.IsSpace(rune(b)) }
