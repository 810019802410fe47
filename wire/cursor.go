// Package wire implements the byte level primitives shared by the
// dissectors: a bounded read cursor over an immutable buffer, fixed width
// big-endian readers and the BER identifier and length decoder.
package wire

// Cursor is a read position inside an immutable buffer. A cursor is bounded
// to the span [start, end) of the buffer; reads never move it past end.
// Cursors are cheap and are owned by a single decode pass.
type Cursor struct {
	buf   []byte
	start int
	off   int
	end   int
}

// NewCursor returns a cursor spanning all of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, end: len(buf)}
}

// Offset returns the absolute offset of the next byte to read.
func (c *Cursor) Offset() int { return c.off }

// End returns the absolute offset the cursor is bounded to.
func (c *Cursor) End() int { return c.end }

// Len returns the number of unread bytes before End.
func (c *Cursor) Len() int { return c.end - c.off }

// Buffer returns the backing buffer. Callers must not modify it.
func (c *Cursor) Buffer() []byte { return c.buf }

// Seek moves the cursor to the absolute offset off. Offsets outside the
// cursor's span are clamped to it.
func (c *Cursor) Seek(off int) {
	switch {
	case off < c.start:
		c.off = c.start
	case off > c.end:
		c.off = c.end
	default:
		c.off = off
	}
}

func (c *Cursor) check(n int) error {
	if n < 0 {
		return &SyntaxError{Err: errNegativeCount, Offset: c.off}
	}
	if n > c.end-c.off {
		return &SyntaxError{Err: ErrTruncated, Offset: c.off}
	}
	return nil
}

// Uint reads a big-endian unsigned integer of width bytes (1 to 8).
func (c *Cursor) Uint(width int) (uint64, error) {
	if width < 1 || width > 8 {
		return 0, &SyntaxError{Err: errWidth, Offset: c.off}
	}
	if err := c.check(width); err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range c.buf[c.off : c.off+width] {
		v = v<<8 | uint64(b)
	}
	c.off += width
	return v, nil
}

func (c *Cursor) Uint8() (uint8, error) {
	v, err := c.Uint(1)
	return uint8(v), err
}

func (c *Cursor) Uint16() (uint16, error) {
	v, err := c.Uint(2)
	return uint16(v), err
}

func (c *Cursor) Uint24() (uint32, error) {
	v, err := c.Uint(3)
	return uint32(v), err
}

func (c *Cursor) Uint32() (uint32, error) {
	v, err := c.Uint(4)
	return uint32(v), err
}

// Octets returns the next n bytes. The returned slice aliases the buffer.
func (c *Cursor) Octets(n int) ([]byte, error) {
	if err := c.check(n); err != nil {
		return nil, err
	}
	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

// Peek returns the next n bytes without advancing.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if err := c.check(n); err != nil {
		return nil, err
	}
	return c.buf[c.off : c.off+n : c.off+n], nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	if err := c.check(n); err != nil {
		return err
	}
	c.off += n
	return nil
}

// Rest returns all unread bytes and moves the cursor to its end.
func (c *Cursor) Rest() []byte {
	b := c.buf[c.off:c.end:c.end]
	c.off = c.end
	return b
}

// Limit returns a new cursor over the next n bytes, leaving c untouched.
// A span running past c's end yields a *BoundsError.
func (c *Cursor) Limit(n int) (*Cursor, error) {
	if n < 0 || n > c.end-c.off {
		return nil, &BoundsError{Offset: c.off, Length: n, Limit: c.end}
	}
	return &Cursor{buf: c.buf, start: c.off, off: c.off, end: c.off + n}, nil
}
