package svlex

import (
	"bufio"
	"errors"
	"io"

	"golang.org/x/xerrors"
)

// ErrNotNullTerminated describes a buffer that does not end in a NUL byte.
// No function in this package returns it: NewLexer does not check its
// buffer, and NewSourceBuffer appends the NUL when it is missing.
// SourceBuffer being NUL-terminated is a precondition of the Cursor's
// end-sentinel invariant (spec.md §3 invariant 1), not a condition the lexer
// recovers from at scan time.
var ErrNotNullTerminated = errors.New("svlex: source buffer is not NUL-terminated")

// SourceBuffer is an immutable, NUL-terminated byte sequence. The trailing
// NUL is part of the buffer and serves as an end sentinel distinguishing a
// true embedded NUL from the end of input.
type SourceBuffer []byte

// NewSourceBuffer returns src as a SourceBuffer, appending a terminating NUL
// if src doesn't already end in one. The returned buffer shares no backing
// array with src when an append was necessary.
func NewSourceBuffer(src []byte) SourceBuffer {
	if len(src) > 0 && src[len(src)-1] == 0 {
		return SourceBuffer(src)
	}
	buf := make([]byte, len(src)+1)
	copy(buf, src)
	return SourceBuffer(buf)
}

// Cursor holds a read position into a SourceBuffer, a mark (the start of the
// lexeme currently being scanned), and the end-sentinel boundary used by
// reallyAtEnd.
type Cursor struct {
	buf SourceBuffer
	pos int // current read position
	mrk int // mark: start of current lexeme
	end int // index of the sentinel NUL (len(buf)-1)
}

func newCursor(buf SourceBuffer) Cursor {
	return Cursor{buf: buf, end: len(buf) - 1}
}

// peek returns the byte at offset k from the current position, or 0 (the
// sentinel) if that offset is at or beyond the end of the buffer.
func (c *Cursor) peek(k int) byte {
	i := c.pos + k
	if i < 0 || i >= len(c.buf) {
		return 0
	}
	return c.buf[i]
}

// advance moves the read position forward by n bytes, never past the end of
// the buffer (the sentinel NUL is the last byte it may land on).
func (c *Cursor) advance(n int) {
	c.pos += n
	if c.pos > c.end {
		c.pos = c.end
	}
}

// consume advances past the current byte iff it equals want, returning
// whether it did.
func (c *Cursor) consume(want byte) bool {
	if c.peek(0) != want {
		return false
	}
	c.advance(1)
	return true
}

// mark snapshots the current position as the start of the next lexeme.
func (c *Cursor) mark() {
	c.mrk = c.pos
}

// lexemeBytes returns the raw, un-interned byte range [mark, position).
func (c *Cursor) lexemeBytes() []byte {
	return c.buf[c.mrk:c.pos]
}

// lexemeLength returns the length in bytes of the current lexeme.
func (c *Cursor) lexemeLength() int {
	return c.pos - c.mrk
}

// reallyAtEnd reports whether the cursor has reached the true end of input,
// as opposed to merely resting on the sentinel NUL while more input (an
// embedded NUL) remains beyond it. This is the sole authority for
// termination (spec.md §3 invariant 1).
func (c *Cursor) reallyAtEnd() bool {
	return c.pos >= c.end
}

// skipAheadHorizontalWhitespace returns the number of horizontal-whitespace
// bytes starting at the current position, without consuming them -- used to
// look past "4 'b1010"-style whitespace between a vector size and its
// apostrophe without committing to consuming it if no apostrophe follows.
func (c *Cursor) skipAheadHorizontalWhitespace() int {
	n := 0
	for isHorizontalWhitespaceByte(c.peek(n)) {
		n++
	}
	return n
}

// NamedSource is an optional interface an io.Reader can implement to name
// its data source, mirroring codf's NamedReader convention.
type NamedSource interface {
	io.Reader
	Name() string
}

// readAllNulTerminated reads r to completion and returns it as a
// NUL-terminated SourceBuffer, buffering through bufio the way codf's
// runeReader wraps arbitrary io.Readers.
func readAllNulTerminated(r io.Reader) (SourceBuffer, error) {
	br := bufio.NewReader(r)
	data, err := io.ReadAll(br)
	if err != nil {
		return nil, xerrors.Errorf("svlex: error reading source: %w", err)
	}
	return NewSourceBuffer(data), nil
}
