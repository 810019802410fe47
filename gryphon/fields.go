package gryphon

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// fields reads a frame body into a tree node. The first read error sticks
// and later reads return zero values; the caller turns it into a marker.
type fields struct {
	c   *wire.Cursor
	n   *tree.Node
	st  *state
	err error
}

// state is shared by all readers of one frame.
type state struct {
	channel  uint8
	handoffs []tree.Handoff
}

func (f *fields) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *fields) ok() bool       { return f.err == nil }
func (f *fields) offset() int    { return f.c.Offset() }
func (f *fields) remaining() int { return f.c.Len() }

func (f *fields) uint(width int) uint64 {
	if f.err != nil {
		return 0
	}
	v, err := f.c.Uint(width)
	f.fail(err)
	return v
}

func (f *fields) octets(n int) []byte {
	if f.err != nil {
		return nil
	}
	b, err := f.c.Octets(n)
	f.fail(err)
	return b
}

// under returns a reader adding to child, sharing the cursor.
func (f *fields) under(child *tree.Node) *fields {
	return &fields{c: f.c, n: child, st: f.st, err: f.err}
}

// join folds the sticky error of a nested reader back.
func (f *fields) join(g *fields) { f.fail(g.err) }

// num adds a width octet integer under label.
func (f *fields) num(width int, label string) uint64 {
	off := f.offset()
	v := f.uint(width)
	if f.ok() {
		f.n.AddValue(off, width, fmt.Sprintf("%s: %d", label, v), v)
	}
	return v
}

// named adds a width octet integer shown through names.
func (f *fields) named(width int, label string, names map[uint64]string) uint64 {
	off := f.offset()
	v := f.uint(width)
	if f.ok() {
		name, ok := names[v]
		if !ok {
			name = "Unknown"
		}
		f.n.AddValue(off, width, fmt.Sprintf("%s: %s (%d)", label, name, v), v)
	}
	return v
}

// hex adds n octets shown as hex.
func (f *fields) hex(n int, label string) []byte {
	off := f.offset()
	b := f.octets(n)
	if f.ok() && n > 0 {
		f.n.AddValue(off, n, fmt.Sprintf("%s: %x", label, b), b)
	}
	return b
}

// str adds an n octet NUL padded string.
func (f *fields) str(n int, label string) string {
	off := f.offset()
	b := f.octets(n)
	if !f.ok() {
		return ""
	}
	s := cstring(b)
	f.n.AddValue(off, n, fmt.Sprintf("%s: %s", label, s), s)
	return s
}

// reserved skips n octets shown as reserved.
func (f *fields) reserved(n int) {
	off := f.offset()
	f.octets(n)
	if f.ok() && n > 0 {
		f.n.Add(off, n, "reserved")
	}
}

// pad skips the octets that align a section of n octets.
func (f *fields) pad(n int) {
	p := Padding(n)
	if p == 0 || f.remaining() == 0 {
		return
	}
	if p > f.remaining() {
		p = f.remaining()
	}
	off := f.offset()
	f.octets(p)
	f.n.Add(off, p, "padding")
}

// rest adds what is left as hex.
func (f *fields) rest(label string) {
	if f.err != nil || f.remaining() == 0 {
		return
	}
	off := f.offset()
	b := f.c.Rest()
	f.n.AddValue(off, len(b), fmt.Sprintf("%s: %x", label, b), b)
}

// flag adds one bit of v as an "x... ...." style line.
func (f *fields) flag(off, width int, v, mask uint64, set, clear string) {
	text := clear
	if v&mask != 0 {
		text = set
	}
	f.n.Addf(off, width, "%s = %s", bitString(v, mask, width*8), text)
}

func bitString(v, mask uint64, bits int) string {
	var b bytes.Buffer
	for i := bits - 1; i >= 0; i-- {
		m := uint64(1) << uint(i)
		switch {
		case mask&m == 0:
			b.WriteByte('.')
		case v&m != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
		if i%4 == 0 && i > 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// timestamp adds a 4 octet timestamp counted in 10 microsecond units.
func (f *fields) timestamp(label string) uint32 {
	off := f.offset()
	b := f.octets(4)
	if !f.ok() {
		return 0
	}
	v := binary.BigEndian.Uint32(b)
	us := uint64(v) * 10
	f.n.AddValue(off, 4, fmt.Sprintf("%s: %d.%06d seconds", label, us/1000000, us%1000000), v)
	return v
}
