package ansimap

import (
	"fmt"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// decodeFunc decodes the contents of one parameter. It returns a summary
// appended to the parameter's label, such as " - Dialed Number".
type decodeFunc func(s *span) string

type paramEntry struct {
	name   string
	decode decodeFunc
}

// Names given to identifiers that match no table entry.
const (
	nameProtocolExtension = "Reserved for protocol extension"
	nameNationalUse       = "Reserved for National Network Use"
	nameUnknown           = "Unknown Parameter Data"
)

// Parameter is a resolved parameter identifier.
type Parameter struct {
	ID     uint32
	Width  int // identifier octets
	Name   string
	decode decodeFunc
}

// Known reports whether the identifier matched one of the tables.
func (p Parameter) Known() bool {
	return p.Name != nameProtocolExtension && p.Name != nameNationalUse && p.Name != nameUnknown
}

func reservedName(id uint32) string {
	switch {
	case id >= 0x9fff00 && id <= 0x9fff7f, id >= 0xbfff00 && id <= 0xbfff7f:
		return nameProtocolExtension
	case id >= 0x9ffe76 && id <= 0x9ffe7f, id >= 0xbffe76 && id <= 0xbffe7f:
		return nameNationalUse
	}
	return nameUnknown
}

// ResolveParameter reads a parameter identifier. The same octets are tried
// as a 1, 2 and then 3 octet identifier against the table of that width;
// the narrowest match wins. A 3 octet value that matches nothing falls
// back to the reserved ranges, or to an unknown parameter without decoder.
// The cursor is left after the identifier octets that were used.
func ResolveParameter(c *wire.Cursor) (Parameter, error) {
	start := c.Offset()
	var id uint64
	for width, table := range [...]map[uint32]paramEntry{tier1, tier2, tier3} {
		c.Seek(start)
		v, err := c.Uint(width + 1)
		if err != nil {
			c.Seek(start)
			return Parameter{}, &wire.BoundsError{Offset: start, Length: width + 1, Limit: c.End()}
		}
		id = v
		if e, ok := table[uint32(v)]; ok {
			return Parameter{ID: uint32(v), Width: width + 1, Name: e.name, decode: e.decode}, nil
		}
	}
	return Parameter{ID: uint32(id), Width: 3, Name: reservedName(uint32(id))}, nil
}

// decodeParameter decodes one parameter under parent: identifier, length
// and contents. Problems inside the contents are reported as markers and
// the cursor still moves to the declared end. Only fatal errors are
// returned.
func decodeParameter(ctx *Context, c *wire.Cursor, parent *tree.Node) (Parameter, error) {
	start := c.Offset()
	p, err := ResolveParameter(c)
	if err != nil {
		return p, err
	}
	n := parent.Add(start, 0, p.Name)
	n.AddValue(start, p.Width, fmt.Sprintf("Parameter ID: %#x", p.ID), p.ID)

	lenOff := c.Offset()
	l, err := wire.DecodeLength(c)
	switch {
	case err == nil:
	case wire.IsFatal(err):
		n.Close(c.Offset(), "")
		return p, err
	default:
		n.AddMarker(tree.UnexpectedDataLength, lenOff, c.Len())
		c.Rest()
		n.Close(c.Offset(), "")
		return p, nil
	}
	definite := l != wire.LengthIndefinite
	if definite {
		n.AddValue(lenOff, c.Offset()-lenOff, fmt.Sprintf("Length: %d", l), l)
	} else {
		n.Add(lenOff, 1, "Length: Indefinite")
		l = c.Len()
	}
	if l == 0 {
		n.Close(c.Offset(), "")
		return p, nil
	}

	pc, err := c.Limit(l)
	if err != nil {
		return p, err
	}
	s := &span{ctx: ctx, c: pc, t: n}
	var summary string
	if p.decode == nil {
		s.t.AddMarker(tree.Opaque, pc.Offset(), pc.Len())
		pc.Rest()
	} else {
		summary = p.decode(s)
	}

	switch {
	case s.err == nil:
	case wire.IsFatal(s.err):
		c.Seek(pc.Offset())
		n.Close(c.Offset(), summary)
		return p, s.err
	case wire.IsTruncated(s.err):
		n.AddMarker(tree.ShortData, pc.Offset(), pc.Len())
		pc.Rest()
	default:
		n.AddMarker(tree.UnexpectedDataLength, pc.Offset(), pc.Len())
		pc.Rest()
	}
	if definite && pc.Len() > 0 {
		n.AddMarker(tree.ExtraneousData, pc.Offset(), pc.Len())
		pc.Rest()
	}
	c.Seek(pc.Offset())
	n.Close(c.Offset(), summary)
	return p, nil
}

// decodeParams decodes parameters until the cursor is exhausted or an
// end-of-contents marker closes an indefinite length encoding. It returns
// the identifiers seen.
func decodeParams(ctx *Context, c *wire.Cursor, parent *tree.Node) ([]uint32, error) {
	var seen []uint32
	for c.Len() > 0 {
		if wire.AtEndOfContents(c) {
			parent.Add(c.Offset(), 2, "End of Contents")
			c.Skip(2)
			break
		}
		p, err := decodeParameter(ctx, c, parent)
		if err != nil {
			return seen, err
		}
		seen = append(seen, p.ID)
	}
	return seen, nil
}

// paramList decodes a constructed parameter holding further parameters.
func paramList(s *span) string {
	if _, err := decodeParams(s.ctx, s.c, s.t); err != nil {
		s.fail(err)
	}
	return ""
}
