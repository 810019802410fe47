package ansimap

import (
	"fmt"
	"strings"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// span is handed to a field decoder: the cursor bounded to the parameter
// contents, the node the fields go under and the per-message context.
// The first read error sticks; later reads return zero values.
type span struct {
	ctx *Context
	c   *wire.Cursor
	t   *tree.Node
	err error
}

func (s *span) offset() int    { return s.c.Offset() }
func (s *span) remaining() int { return s.c.Len() }
func (s *span) ok() bool       { return s.err == nil }

func (s *span) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *span) uint(width int) uint64 {
	if s.err != nil {
		return 0
	}
	v, err := s.c.Uint(width)
	s.fail(err)
	return v
}

func (s *span) u8() uint8 { return uint8(s.uint(1)) }

func (s *span) octets(n int) []byte {
	if s.err != nil {
		return nil
	}
	b, err := s.c.Octets(n)
	s.fail(err)
	return b
}

func (s *span) rest() []byte {
	if s.err != nil {
		return nil
	}
	return s.c.Rest()
}

func (s *span) add(offset, length int, format string, args ...any) *tree.Node {
	return s.t.Addf(offset, length, format, args...)
}

// field reads a width byte integer and adds it under label.
func (s *span) field(width int, label string) uint64 {
	off := s.offset()
	v := s.uint(width)
	if s.ok() {
		s.t.AddValue(off, width, fmt.Sprintf("%s: %d", label, v), v)
	}
	return v
}

// octetString reads the rest of the span and adds it as hex under label.
func (s *span) octetString(label string) []byte {
	off := s.offset()
	b := s.rest()
	s.t.AddValue(off, len(b), fmt.Sprintf("%s: %x", label, b), b)
	return b
}

// short adds a Short Data marker and consumes the span when fewer than
// n bytes remain.
func (s *span) short(n int) bool {
	if s.remaining() >= n {
		return false
	}
	off := s.offset()
	s.t.AddMarker(tree.ShortData, off, s.remaining())
	s.c.Rest()
	return true
}

// unexpected adds an Unexpected Data Length marker and consumes the span
// when its length is not exactly n.
func (s *span) unexpected(n int) bool {
	if s.remaining() == n {
		return false
	}
	s.t.AddMarker(tree.UnexpectedDataLength, s.offset(), s.remaining())
	s.c.Rest()
	return true
}

// bits renders the bits of v selected by mask in a width bit field the way
// packet trees show them, for example "..01 .... ".
func bits(v, mask uint64, width int) string {
	var sb strings.Builder
	for i := width - 1; i >= 0; i-- {
		m := uint64(1) << uint(i)
		switch {
		case mask&m == 0:
			sb.WriteByte('.')
		case v&m != 0:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
		if i%4 == 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// bitfield adds a node for the bits of v under mask at offset.
func (s *span) bitfield(offset, length int, v, mask uint64, format string, args ...any) *tree.Node {
	return s.t.Addf(offset, length, "%s: %s", bits(v, mask, 8*length), fmt.Sprintf(format, args...))
}

// lookup returns the name of v in table, or def.
func lookup(table map[uint64]string, v uint64, def string) string {
	if name, ok := table[v]; ok {
		return name
	}
	return def
}
