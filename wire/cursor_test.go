package wire

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCursorUint(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a})

	v8, err := c.Uint8()
	assert.NilError(t, err)
	assert.Equal(t, v8, uint8(0x01))

	v16, err := c.Uint16()
	assert.NilError(t, err)
	assert.Equal(t, v16, uint16(0x0203))

	v24, err := c.Uint24()
	assert.NilError(t, err)
	assert.Equal(t, v24, uint32(0x040506))

	v32, err := c.Uint32()
	assert.NilError(t, err)
	assert.Equal(t, v32, uint32(0x0708090a))
	assert.Equal(t, c.Len(), 0)
}

func TestCursorUint64(t *testing.T) {
	c := NewCursor([]byte{0, 0, 0, 0, 0, 0, 1, 0})
	v, err := c.Uint(8)
	assert.NilError(t, err)
	assert.Equal(t, v, uint64(256))

	_, err = NewCursor(make([]byte, 16)).Uint(9)
	assert.ErrorContains(t, err, "unsupported integer width")
}

func TestCursorTruncated(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	assert.NilError(t, c.Skip(1))

	_, err := c.Uint24()
	assert.Assert(t, IsTruncated(err))
	assert.Assert(t, !IsFatal(err))
	assert.Equal(t, c.Offset(), 1, "a failed read must not move the cursor")

	_, err = c.Octets(3)
	assert.Assert(t, IsTruncated(err))

	b, err := c.Octets(2)
	assert.NilError(t, err)
	assert.DeepEqual(t, b, []byte{0x02, 0x03})
}

func TestCursorLimit(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})
	assert.NilError(t, c.Skip(1))

	sub, err := c.Limit(2)
	assert.NilError(t, err)
	assert.Equal(t, sub.Offset(), 1)
	assert.Equal(t, sub.End(), 3)
	assert.Equal(t, c.Offset(), 1)

	_, err = sub.Uint24()
	assert.Assert(t, IsTruncated(err), "sub cursor must not read past its bound")

	rest := sub.Rest()
	assert.DeepEqual(t, rest, []byte{0x02, 0x03})

	_, err = c.Limit(4)
	assert.Assert(t, IsFatal(err))
}

func TestCursorSeekClamps(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	c.Seek(10)
	assert.Equal(t, c.Offset(), 3)
	c.Seek(-1)
	assert.Equal(t, c.Offset(), 0)
}

func TestCursorSeekStaysInLimit(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	assert.NilError(t, c.Skip(1))
	sub, err := c.Limit(3)
	assert.NilError(t, err)

	sub.Seek(0)
	assert.Equal(t, sub.Offset(), 1)
	sub.Seek(-1)
	assert.Equal(t, sub.Offset(), 1)
	sub.Seek(9)
	assert.Equal(t, sub.Offset(), 4)

	sub.Seek(2)
	v, err := sub.Uint8()
	assert.NilError(t, err)
	assert.Equal(t, v, uint8(3))
}
