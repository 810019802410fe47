// Package ansimap dissects ANSI-41 MAP carried in ANSI TCAP. Dissect walks
// the package, its components and their parameters into a tree.Tree. The
// walk is permissive: unknown parameters, operations and component tags
// are shown as opaque data and problems inside a parameter become marker
// nodes. Only a length that runs past the enclosing span aborts a message.
package ansimap

import (
	"fmt"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// PackageType is the ANSI TCAP package type identifier.
type PackageType byte

const (
	PackageUnidirectional                PackageType = 0xe1
	PackageQueryWithPermission           PackageType = 0xe2
	PackageQueryWithoutPermission        PackageType = 0xe3
	PackageResponse                      PackageType = 0xe4
	PackageConversationWithPermission    PackageType = 0xe5
	PackageConversationWithoutPermission PackageType = 0xe6
	PackageAbort                         PackageType = 0xf6
)

var packageNames = map[PackageType]string{
	PackageUnidirectional:                "Unidirectional",
	PackageQueryWithPermission:           "Query With Permission",
	PackageQueryWithoutPermission:        "Query Without Permission",
	PackageResponse:                      "Response",
	PackageConversationWithPermission:    "Conversation With Permission",
	PackageConversationWithoutPermission: "Conversation Without Permission",
	PackageAbort:                         "Abort",
}

func (p PackageType) String() string {
	if name, ok := packageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Package Type (%#02x)", byte(p))
}

// IsANSI reports whether b starts with an ANSI TCAP package type.
func IsANSI(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	_, ok := packageNames[PackageType(b[0])]
	return ok
}

// Transaction portion identifiers.
const (
	tagTransactionID   = 0xc7
	tagDialoguePortion = 0xf9
	tagComponentSeq    = 0xe8
	tagPAbortCause     = 0xd7
	tagUserAbortInfo   = 0xd8
)

var pAbortCauseNames = map[uint64]string{
	1:  "Unrecognized Package Type",
	2:  "Incorrect Transaction Portion",
	3:  "Badly Structured Transaction Portion",
	4:  "Unassigned Responding Transaction ID",
	5:  "Permission to Release Problem",
	6:  "Resource Unavailable",
	7:  "Unrecognized Dialogue Portion ID",
	8:  "Badly Structured Dialogue Portion",
	9:  "Missing Dialogue Portion",
	10: "Inconsistent Dialogue Portion",
}

// Message is the result of dissecting one ANSI TCAP message.
type Message struct {
	Tree    *tree.Tree
	Package PackageType
	// OriginatingID and RespondingID are the transaction IDs carried in the
	// transaction portion. Conversations carry both.
	OriginatingID []byte
	RespondingID  []byte
	Components    []Component
	// Context is the decode state left by the walk.
	Context *Context
}

// Dissect decodes buf. A buffer starting with a package type is decoded
// as a full TCAP message, anything else as a bare component sequence.
//
// A *wire.BoundsError ends the walk: the tree keeps what was decoded,
// gains a Malformed Packet node and the error is returned with it.
// Embedded payloads are offered to opts.SubDissector after the walk.
func Dissect(buf []byte, opts Options) (*Message, error) {
	ctx := newContext(opts)
	t := tree.New("ANSI MAP", 0, len(buf))
	m := &Message{Tree: t, Context: ctx}
	c := wire.NewCursor(buf)

	var err error
	if IsANSI(buf) {
		err = dissectPackage(ctx, c, t.Root, m)
	} else {
		m.Components, err = walkComponents(ctx, c, t.Root)
	}
	if err != nil {
		t.Root.AddMarker(tree.Malformed, c.Offset(), c.Len())
		return m, err
	}

	t.Handoffs = ctx.handoffs()
	if opts.SubDissector != nil {
		for i := range t.Handoffs {
			h := &t.Handoffs[i]
			h.Dissected = opts.SubDissector.TryDissect(h.Protocol, h.Selector, buf[h.Offset:h.Offset+h.Length])
		}
	}
	return m, nil
}

func dissectPackage(ctx *Context, c *wire.Cursor, root *tree.Node, m *Message) error {
	start := c.Offset()
	b, _ := c.Uint8()
	m.Package = PackageType(b)
	n := root.Add(start, 0, m.Package.String())
	n.AddValue(start, 1, fmt.Sprintf("Package Type: %s (%#02x)", m.Package, b), b)

	body, _, err := lengthAndBody(c, n)
	if err != nil {
		n.Close(c.Offset(), "")
		return err
	}
	defer func() {
		c.Seek(body.Offset())
		n.Close(c.Offset(), "")
	}()

	if err := transactionID(ctx, body, n, m); err != nil {
		return err
	}
	if m.Package == PackageAbort {
		return abortCause(body, n)
	}
	if err := dialoguePortion(body, n); err != nil {
		return err
	}

	p, perr := body.Peek(1)
	if perr != nil || p[0] != tagComponentSeq {
		return nil
	}
	cs := body.Offset()
	body.Skip(1)
	seq := n.Add(cs, 0, "Component Sequence")
	comps, _, err := lengthAndBody(body, seq)
	if err != nil {
		seq.Close(body.Offset(), "")
		return err
	}
	m.Components, err = walkComponents(ctx, comps, seq)
	body.Seek(comps.Offset())
	seq.Close(body.Offset(), fmt.Sprintf(" (%d)", len(m.Components)))
	return err
}

// transactionID decodes the Transaction ID. Its length tells which of
// the originating and responding IDs are present.
func transactionID(ctx *Context, c *wire.Cursor, n *tree.Node, m *Message) error {
	_, id, off, ok, err := tlv(c, tagTransactionID)
	if err != nil {
		return fieldError(c, n, err)
	}
	if !ok {
		return nil
	}
	f := n.Add(off, c.Offset()-off, "Transaction ID")
	at := c.Offset() - len(id)
	switch m.Package {
	case PackageConversationWithPermission, PackageConversationWithoutPermission:
		if len(id) == 8 {
			m.OriginatingID, m.RespondingID = id[:4], id[4:]
			f.AddValue(at, 4, fmt.Sprintf("Originating Transaction ID: %x", id[:4]), id[:4])
			f.AddValue(at+4, 4, fmt.Sprintf("Responding Transaction ID: %x", id[4:]), id[4:])
			ctx.transactionID = m.RespondingID
			return nil
		}
	case PackageResponse, PackageAbort:
		m.RespondingID = id
		if len(id) > 0 {
			f.AddValue(at, len(id), fmt.Sprintf("Responding Transaction ID: %x", id), id)
		}
		ctx.transactionID = id
		return nil
	}
	m.OriginatingID = id
	if len(id) > 0 {
		f.AddValue(at, len(id), fmt.Sprintf("Originating Transaction ID: %x", id), id)
	}
	ctx.transactionID = id
	return nil
}

// dialoguePortion is shown undecoded.
func dialoguePortion(c *wire.Cursor, n *tree.Node) error {
	p, err := c.Peek(1)
	if err != nil || p[0] != tagDialoguePortion {
		return nil
	}
	start := c.Offset()
	c.Skip(1)
	d := n.Add(start, 0, "Dialogue Portion")
	body, _, err := lengthAndBody(c, d)
	if err != nil {
		d.Close(c.Offset(), "")
		return err
	}
	if body.Len() > 0 {
		d.AddMarker(tree.Opaque, body.Offset(), body.Len())
		body.Rest()
	}
	c.Seek(body.Offset())
	d.Close(c.Offset(), "")
	return nil
}

func abortCause(c *wire.Cursor, n *tree.Node) error {
	tag, v, off, ok, err := tlv(c, tagPAbortCause, tagUserAbortInfo)
	if err != nil {
		return fieldError(c, n, err)
	}
	if !ok {
		return nil
	}
	if tag == tagUserAbortInfo {
		n.AddValue(off, c.Offset()-off, fmt.Sprintf("User Abort Information: %x", v), v)
		return nil
	}
	f := n.Add(off, c.Offset()-off, "P-Abort Cause")
	if len(v) != 1 {
		f.AddMarker(tree.UnexpectedDataLength, c.Offset()-len(v), len(v))
		return nil
	}
	name := lookup(pAbortCauseNames, uint64(v[0]), "Reserved")
	f.AddValue(c.Offset()-1, 1, fmt.Sprintf("Cause: %s (%d)", name, v[0]), v[0])
	f.Label += " - " + name
	return nil
}
