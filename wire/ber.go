package wire

import "strconv"

// Class is the class of a BER identifier.
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "Context Specific"
	default:
		return "Private"
	}
}

// LengthIndefinite is returned by DecodeLength for the indefinite form.
// The contents then run up to an end-of-contents marker.
const LengthIndefinite = -1

// maxLengthOctets is the longest long-form length accepted.
const maxLengthOctets = 4

// maxTagOctets is the longest identifier accepted, leading octet included.
const maxTagOctets = 4

// Tag is a decoded BER identifier.
type Tag struct {
	Class       Class
	Constructed bool
	Number      uint32
	Raw         uint32 // identifier octets as a big-endian integer
	Size        int    // number of identifier octets
}

func (t Tag) String() string {
	s := t.Class.String() + " " + strconv.FormatUint(uint64(t.Number), 10)
	if t.Constructed {
		return s + "/c"
	}
	return s + "/p"
}

// DecodeTag reads a BER identifier. Identifiers in high-tag form may span
// up to four octets. On error the cursor is not moved.
func DecodeTag(c *Cursor) (Tag, error) {
	start := c.off
	b, err := c.Uint8()
	if err != nil {
		return Tag{}, &BoundsError{Offset: start, Length: 1, Limit: c.end}
	}
	t := Tag{
		Class:       Class(b >> 6),
		Constructed: b&0x20 != 0,
		Number:      uint32(b & 0x1f),
		Raw:         uint32(b),
		Size:        1,
	}
	if t.Number != 0x1f {
		return t, nil
	}
	t.Number = 0
	for {
		if t.Size == maxTagOctets {
			c.off = start
			return Tag{}, &SyntaxError{Err: ErrMalformedTag, Offset: start}
		}
		b, err = c.Uint8()
		if err != nil {
			c.off = start
			return Tag{}, &BoundsError{Offset: start, Length: t.Size + 1, Limit: c.end}
		}
		t.Size++
		t.Raw = t.Raw<<8 | uint32(b)
		t.Number = t.Number<<7 | uint32(b&0x7f)
		if b&0x80 == 0 {
			return t, nil
		}
	}
}

// DecodeLength reads a BER length. It returns the number of content octets
// or LengthIndefinite. A definite length is checked against the cursor's
// bound; a span past it yields a *BoundsError. On error the cursor is not
// moved.
func DecodeLength(c *Cursor) (int, error) {
	start := c.off
	b, err := c.Uint8()
	if err != nil {
		return 0, &BoundsError{Offset: start, Length: 1, Limit: c.end}
	}
	var n int
	switch {
	case b&0x80 == 0:
		n = int(b)
	case b == 0x80:
		return LengthIndefinite, nil
	case int(b&0x7f) > maxLengthOctets:
		c.off = start
		return 0, &SyntaxError{Err: ErrMalformedLength, Offset: start}
	default:
		v, err := c.Uint(int(b & 0x7f))
		if err != nil {
			c.off = start
			return 0, &BoundsError{Offset: start, Length: 1 + int(b&0x7f), Limit: c.end}
		}
		n = int(v)
	}
	if n > c.end-c.off {
		c.off = start
		return 0, &BoundsError{Offset: start, Length: n, Limit: c.end}
	}
	return n, nil
}

// AtEndOfContents reports whether the next two octets are an
// end-of-contents marker.
func AtEndOfContents(c *Cursor) bool {
	b, err := c.Peek(2)
	return err == nil && b[0] == 0 && b[1] == 0
}
