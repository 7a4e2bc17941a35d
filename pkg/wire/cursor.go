package wire

// Cursor is a sequential, forward-only read position over an immutable
// caller-owned buffer. Decode operations advance it; it is created per
// decode and discarded after. A Cursor must not be shared between
// concurrent decodes.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of buf. The
// buffer is not copied; callers must not mutate it while decoding.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Read returns the next n bytes and advances the cursor. It fails with
// ErrBufferUnderrun when fewer than n bytes remain; short reads are
// never returned. The slice aliases the underlying buffer.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, malformedf("cursor", n, "negative read length")
	}
	if rem := len(c.buf) - c.pos; rem < n {
		return nil, underrunf("cursor", n, rem)
	}
	p := c.buf[c.pos : c.pos+n]
	c.pos += n
	return p, nil
}

// ReadByte returns the next byte and advances the cursor.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, underrunf("cursor", 1, 0)
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}
