package wire

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"
)

func TestDecodeLengthShortForm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 127).Draw(t, "n")
		buf := append([]byte{byte(n)}, make([]byte, n)...)
		c := NewCursor(buf)
		l, err := DecodeLength(c)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if l != n || c.Offset() != 1 {
			t.Fatalf("got length %d offset %d, want %d and 1", l, c.Offset(), n)
		}
	})
}

func TestDecodeLengthLongForm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 4).Draw(t, "width")
		octets := rapid.SliceOfN(rapid.Byte(), width, width).Draw(t, "octets")
		var want uint64
		for _, b := range octets {
			want = want<<8 | uint64(b)
		}
		if want > 4096 {
			// keep the backing buffer small, only the header matters here
			octets = make([]byte, width)
			octets[width-1] = byte(want)
			want = uint64(byte(want))
		}
		buf := append([]byte{0x80 | byte(width)}, octets...)
		buf = append(buf, make([]byte, want)...)
		c := NewCursor(buf)
		l, err := DecodeLength(c)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if uint64(l) != want || c.Offset() != 1+width {
			t.Fatalf("got length %d offset %d, want %d and %d", l, c.Offset(), want, 1+width)
		}
	})
}

func TestDecodeLengthMalformed(t *testing.T) {
	for b := 0x85; b <= 0xff; b++ {
		buf := make([]byte, 16)
		buf[0] = byte(b)
		c := NewCursor(buf)
		_, err := DecodeLength(c)
		assert.Assert(t, errors.Is(err, ErrMalformedLength), "octet %#x: %v", b, err)
		assert.Assert(t, c.Offset() <= 1+(b&0x7f))
	}
}

func TestDecodeLengthIndefinite(t *testing.T) {
	c := NewCursor([]byte{0x80, 0x01, 0x00, 0x00})
	l, err := DecodeLength(c)
	assert.NilError(t, err)
	assert.Equal(t, l, LengthIndefinite)
	assert.Equal(t, c.Offset(), 1)
}

func TestDecodeLengthBounds(t *testing.T) {
	c := NewCursor([]byte{0x05, 0x01, 0x02})
	_, err := DecodeLength(c)
	assert.Assert(t, IsFatal(err))
	assert.Equal(t, c.Offset(), 0)

	// bounded by the enclosing span, not the buffer
	outer := NewCursor([]byte{0x30, 0x02, 0x81, 0x03, 0xaa, 0xbb, 0xcc})
	assert.NilError(t, outer.Skip(2))
	inner, err := outer.Limit(2)
	assert.NilError(t, err)
	_, err = DecodeLength(inner)
	assert.Assert(t, IsFatal(err))

	// long form with missing continuation octets
	c = NewCursor([]byte{0x83, 0x01})
	_, err = DecodeLength(c)
	assert.Assert(t, IsFatal(err))
}

func TestDecodeTag(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		want Tag
	}{
		{[]byte{0x81}, Tag{Class: ClassContextSpecific, Number: 1, Raw: 0x81, Size: 1}},
		{[]byte{0xe9}, Tag{Class: ClassPrivate, Constructed: true, Number: 9, Raw: 0xe9, Size: 1}},
		{[]byte{0x30}, Tag{Class: ClassUniversal, Constructed: true, Number: 16, Raw: 0x30, Size: 1}},
		{[]byte{0x9f, 0x20}, Tag{Class: ClassContextSpecific, Number: 32, Raw: 0x9f20, Size: 2}},
		{[]byte{0x9f, 0x81, 0x00}, Tag{Class: ClassContextSpecific, Number: 128, Raw: 0x9f8100, Size: 3}},
		{[]byte{0xbf, 0xff, 0x40}, Tag{Class: ClassContextSpecific, Constructed: true, Number: 0x3fc0, Raw: 0xbfff40, Size: 3}},
	} {
		c := NewCursor(tc.in)
		got, err := DecodeTag(c)
		assert.NilError(t, err)
		assert.Check(t, is.DeepEqual(got, tc.want))
		assert.Check(t, is.Equal(c.Offset(), len(tc.in)))
	}
}

func TestDecodeTagMalformed(t *testing.T) {
	c := NewCursor([]byte{0x9f, 0x81, 0x82, 0x83, 0x04})
	_, err := DecodeTag(c)
	assert.Assert(t, errors.Is(err, ErrMalformedTag))
	assert.Equal(t, c.Offset(), 0)

	c = NewCursor([]byte{0x9f, 0x81})
	_, err = DecodeTag(c)
	assert.Assert(t, IsFatal(err))
}

func TestAtEndOfContents(t *testing.T) {
	assert.Assert(t, AtEndOfContents(NewCursor([]byte{0, 0, 1})))
	assert.Assert(t, !AtEndOfContents(NewCursor([]byte{0})))
	assert.Assert(t, !AtEndOfContents(NewCursor([]byte{0, 1})))
}
