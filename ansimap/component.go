package ansimap

import (
	"fmt"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// ComponentKind is the kind of a TCAP component.
type ComponentKind int

const (
	KindInvoke ComponentKind = iota + 1
	KindReturnResult
	KindReturnError
	KindReject
)

func (k ComponentKind) String() string {
	switch k {
	case KindInvoke:
		return "Invoke"
	case KindReturnResult:
		return "Return Result"
	case KindReturnError:
		return "Return Error"
	case KindReject:
		return "Reject"
	}
	return "Unknown"
}

type componentType struct {
	kind ComponentKind
	last bool
	name string
}

var componentTypes = map[byte]componentType{
	0xe9: {KindInvoke, true, "Invoke (Last)"},
	0xed: {KindInvoke, false, "Invoke (Not Last)"},
	0xea: {KindReturnResult, true, "Return Result (Last)"},
	0xee: {KindReturnResult, false, "Return Result (Not Last)"},
	0xeb: {KindReturnError, true, "Return Error"},
	0xec: {KindReject, true, "Reject"},
}

// Component level identifiers.
const (
	tagComponentID   = 0xcf
	tagOpNational    = 0xd0
	tagOpPrivate     = 0xd1
	tagErrorNational = 0xd3
	tagErrorPrivate  = 0xd4
	tagProblem       = 0xd5
	tagParamSet      = 0xf2
	tagParamSequence = 0x30
)

// Component is the summary of one decoded component. Identifiers that
// are absent are -1.
type Component struct {
	Kind          ComponentKind
	Last          bool
	InvokeID      int
	CorrelationID int
	OpFamily      int
	OpCode        int
	ErrorCode     int
	Problem       int
}

var errorCodeNames = map[uint64]string{
	0x81: "Unrecognized MIN",
	0x82: "Unrecognized ESN",
	0x83: "MIN/HLR Mismatch",
	0x84: "Operation Sequence Problem",
	0x85: "Resource Shortage",
	0x86: "Operation Not Supported",
	0x87: "Trunk Unavailable",
	0x88: "Parameter Error",
	0x89: "System Failure",
	0x8a: "Unrecognized Parameter Value",
	0x8b: "Feature Inactive",
	0x8c: "Missing Parameter",
}

var problemNames = map[uint64]string{
	0x0101: "General - Unrecognized Component Type",
	0x0102: "General - Incorrect Component Portion",
	0x0103: "General - Badly Structured Component Portion",
	0x0201: "Invoke - Duplicate Invoke ID",
	0x0202: "Invoke - Unrecognized Operation Code",
	0x0203: "Invoke - Incorrect Parameter",
	0x0204: "Invoke - Unrecognized Correlation ID",
	0x0301: "Return Result - Unrecognized Correlation ID",
	0x0302: "Return Result - Unexpected Return Result",
	0x0303: "Return Result - Incorrect Parameter",
	0x0401: "Return Error - Unrecognized Correlation ID",
	0x0402: "Return Error - Unexpected Return Error",
	0x0403: "Return Error - Unrecognized Error",
	0x0404: "Return Error - Unexpected Error",
	0x0405: "Return Error - Incorrect Parameter",
	0x0501: "Transaction Portion - Unrecognized Package Type",
	0x0502: "Transaction Portion - Incorrect Transaction Portion",
	0x0503: "Transaction Portion - Badly Structured Transaction Portion",
	0x0504: "Transaction Portion - Unrecognized Transaction ID",
	0x0505: "Transaction Portion - Permission to Release",
	0x0506: "Transaction Portion - Resource Unavailable",
}

// walkComponents decodes components until the cursor is exhausted or a
// tag that is not a component ends the walk. Only fatal errors are
// returned.
func walkComponents(ctx *Context, c *wire.Cursor, parent *tree.Node) ([]Component, error) {
	var comps []Component
	for c.Len() > 0 {
		if wire.AtEndOfContents(c) {
			parent.Add(c.Offset(), 2, "End of Contents")
			c.Skip(2)
			break
		}
		b, _ := c.Peek(1)
		ct, ok := componentTypes[b[0]]
		if !ok {
			// Not a component. Extensions may put anything here.
			break
		}
		comp, err := decodeComponent(ctx, c, parent, b[0], ct)
		comps = append(comps, comp)
		if err != nil {
			return comps, err
		}
	}
	return comps, nil
}

func decodeComponent(ctx *Context, c *wire.Cursor, parent *tree.Node, tag byte, ct componentType) (Component, error) {
	comp := Component{Kind: ct.kind, Last: ct.last, InvokeID: -1, CorrelationID: -1, OpFamily: -1, OpCode: -1, ErrorCode: -1, Problem: -1}
	start := c.Offset()
	n := parent.Add(start, 0, ct.name)
	c.Skip(1)
	n.AddValue(start, 1, fmt.Sprintf("Component Type Identifier: %s (%#02x)", ct.kind, tag), tag)

	body, definite, err := lengthAndBody(c, n)
	if err != nil {
		n.Close(c.Offset(), "")
		return comp, err
	}

	ctx.Invoke = ct.kind == KindInvoke
	ctx.OpCode = -1

	if err := componentIDs(body, n, &comp); err != nil {
		return comp, closeAt(c, body, n, err)
	}

	var op operation
	var known bool
	switch ct.kind {
	case KindInvoke:
		fam, code, err := opCode(body, n)
		if err != nil {
			return comp, closeAt(c, body, n, err)
		}
		comp.OpFamily, comp.OpCode = fam, code
		if fam == familyTIA41 {
			op, known = operations[code]
		}
	case KindReturnResult:
		if ctx.opts.ResultOp != nil && comp.CorrelationID >= 0 {
			if code, ok := ctx.opts.ResultOp(ctx.transactionID, comp.CorrelationID); ok {
				comp.OpFamily, comp.OpCode = familyTIA41, code
				op, known = operations[code]
				if known {
					n.Addf(body.Offset(), 0, "Operation: %s (%d)", op.name, code)
				}
			}
		}
	case KindReturnError:
		v, err := errorCode(body, n)
		if err != nil {
			return comp, closeAt(c, body, n, err)
		}
		comp.ErrorCode = v
	case KindReject:
		v, err := problemCode(body, n)
		if err != nil {
			return comp, closeAt(c, body, n, err)
		}
		comp.Problem = v
	}
	if known {
		ctx.OpCode = comp.OpCode
		if op.ota {
			ctx.OTA = true
		}
	}

	if body.Len() > 0 && !wire.AtEndOfContents(body) {
		var dir *direction
		if known {
			dir = &op.result
			if ct.kind == KindInvoke {
				dir = &op.invoke
			}
		}
		opaque := ct.kind == KindInvoke && !known
		if err := parameterSet(ctx, body, n, dir, opaque); err != nil {
			return comp, closeAt(c, body, n, err)
		}
	}
	if !definite && wire.AtEndOfContents(body) {
		n.Add(body.Offset(), 2, "End of Contents")
		body.Skip(2)
	}
	if definite && body.Len() > 0 {
		n.AddMarker(tree.ExtraneousData, body.Offset(), body.Len())
		body.Rest()
	}
	c.Seek(body.Offset())

	summary := ""
	if known {
		summary = " - " + op.name
	}
	n.Close(c.Offset(), summary)
	return comp, nil
}

// lengthAndBody reads a component or portion length and returns a cursor
// over the contents. An indefinite length extends to the end of c.
func lengthAndBody(c *wire.Cursor, n *tree.Node) (*wire.Cursor, bool, error) {
	off := c.Offset()
	l, err := wire.DecodeLength(c)
	if err != nil {
		if wire.IsFatal(err) {
			return nil, false, err
		}
		n.AddMarker(tree.UnexpectedDataLength, off, c.Len())
		c.Rest()
		body, _ := c.Limit(0)
		return body, true, nil
	}
	if l == wire.LengthIndefinite {
		n.Add(off, 1, "Length: Indefinite")
		body, _ := c.Limit(c.Len())
		return body, false, nil
	}
	n.AddValue(off, c.Offset()-off, fmt.Sprintf("Length: %d", l), l)
	body, err := c.Limit(l)
	return body, true, err
}

func closeAt(c, body *wire.Cursor, n *tree.Node, err error) error {
	c.Seek(body.Offset())
	n.Close(c.Offset(), "")
	return err
}

// tlv reads the identifier octet and definite length of a primitive
// component field. ok is false when the next octet is not want.
func tlv(c *wire.Cursor, want ...byte) (tag byte, contents []byte, off int, ok bool, err error) {
	b, perr := c.Peek(1)
	if perr != nil {
		return 0, nil, 0, false, nil
	}
	match := false
	for _, w := range want {
		if b[0] == w {
			match = true
		}
	}
	if !match {
		return 0, nil, 0, false, nil
	}
	off = c.Offset()
	c.Skip(1)
	l, err := wire.DecodeLength(c)
	if err != nil {
		return 0, nil, off, false, err
	}
	if l == wire.LengthIndefinite {
		return 0, nil, off, false, &wire.SyntaxError{Err: wire.ErrUnexpectedLength, Offset: off + 1}
	}
	contents, err = c.Octets(l)
	return b[0], contents, off, true, err
}

// componentIDs decodes the Component ID field. An invoke carries its
// invoke ID and optionally a correlation ID; replies carry the
// correlation ID only.
func componentIDs(c *wire.Cursor, n *tree.Node, comp *Component) error {
	_, ids, off, ok, err := tlv(c, tagComponentID)
	if err != nil {
		return fieldError(c, n, err)
	}
	if !ok {
		return nil
	}
	f := n.Add(off, c.Offset()-off, "Component ID")
	switch {
	case len(ids) == 0:
	case len(ids) > 2:
		f.AddMarker(tree.UnexpectedDataLength, c.Offset()-len(ids), len(ids))
	case comp.Kind == KindInvoke:
		comp.InvokeID = int(ids[0])
		f.AddValue(c.Offset()-len(ids), 1, fmt.Sprintf("Invoke ID: %d", ids[0]), ids[0])
		if len(ids) == 2 {
			comp.CorrelationID = int(ids[1])
			f.AddValue(c.Offset()-1, 1, fmt.Sprintf("Correlation ID: %d", ids[1]), ids[1])
		}
	default:
		comp.CorrelationID = int(ids[0])
		f.AddValue(c.Offset()-len(ids), 1, fmt.Sprintf("Correlation ID: %d", ids[0]), ids[0])
	}
	return nil
}

// opCode decodes the Operation Code: family then specifier.
func opCode(c *wire.Cursor, n *tree.Node) (family, code int, err error) {
	tag, v, off, ok, err := tlv(c, tagOpNational, tagOpPrivate)
	if err != nil {
		return -1, -1, fieldError(c, n, err)
	}
	if !ok {
		return -1, -1, nil
	}
	f := n.Add(off, c.Offset()-off, "Operation Code")
	f.Add(off, 1, choose(tag == tagOpNational, "National TCAP", "Private TCAP"))
	if len(v) != 2 {
		f.AddMarker(tree.UnexpectedDataLength, c.Offset()-len(v), len(v))
		return -1, -1, nil
	}
	at := c.Offset() - 2
	family = int(v[0] & 0x7f)
	code = int(v[1])
	fam := "Unknown"
	if family == familyTIA41 {
		fam = "TIA/EIA-41"
	}
	f.Addf(at, 1, "%s: %s", bits(uint64(v[0]), 0x80, 8), choose(v[0]&0x80 != 0, "Reply Required", "Reply Not Required"))
	f.AddValue(at, 1, fmt.Sprintf("%s: Family: %s (%d)", bits(uint64(v[0]), 0x7f, 8), fam, family), family)
	name := OperationName(code)
	if family != familyTIA41 {
		name = fmt.Sprintf("Specifier (%d)", code)
	}
	f.AddValue(at+1, 1, fmt.Sprintf("Specifier: %s", name), code)
	f.Label += " - " + name
	return family, code, nil
}

func errorCode(c *wire.Cursor, n *tree.Node) (int, error) {
	tag, v, off, ok, err := tlv(c, tagErrorNational, tagErrorPrivate)
	if err != nil {
		return -1, fieldError(c, n, err)
	}
	if !ok {
		return -1, nil
	}
	f := n.Add(off, c.Offset()-off, "Error Code")
	f.Add(off, 1, choose(tag == tagErrorNational, "National TCAP", "Private TCAP"))
	if len(v) != 1 {
		f.AddMarker(tree.UnexpectedDataLength, c.Offset()-len(v), len(v))
		return -1, nil
	}
	name := "Reserved"
	if tag == tagErrorPrivate {
		name = lookup(errorCodeNames, uint64(v[0]), "Reserved")
	}
	f.AddValue(c.Offset()-1, 1, fmt.Sprintf("Error Code: %s (%d)", name, v[0]), v[0])
	f.Label += " - " + name
	return int(v[0]), nil
}

func problemCode(c *wire.Cursor, n *tree.Node) (int, error) {
	_, v, off, ok, err := tlv(c, tagProblem)
	if err != nil {
		return -1, fieldError(c, n, err)
	}
	if !ok {
		return -1, nil
	}
	f := n.Add(off, c.Offset()-off, "Problem Code")
	if len(v) != 2 {
		f.AddMarker(tree.UnexpectedDataLength, c.Offset()-len(v), len(v))
		return -1, nil
	}
	p := int(v[0])<<8 | int(v[1])
	name := lookup(problemNames, uint64(p), "Reserved")
	f.AddValue(c.Offset()-2, 2, fmt.Sprintf("Problem: %s (%#04x)", name, p), p)
	f.Label += " - " + name
	return p, nil
}

// fieldError turns a local decode problem into markers. Fatal errors are
// returned to abort the message.
func fieldError(c *wire.Cursor, n *tree.Node, err error) error {
	if wire.IsFatal(err) {
		return err
	}
	m := tree.UnexpectedDataLength
	if wire.IsTruncated(err) {
		m = tree.ShortData
	}
	n.AddMarker(m, c.Offset(), c.Len())
	c.Rest()
	return nil
}

// parameterSet decodes a Parameter Set or Sequence. With dir set, missing
// mandatory parameters are reported; with opaque set the contents are
// shown undecoded.
func parameterSet(ctx *Context, c *wire.Cursor, n *tree.Node, dir *direction, opaque bool) error {
	start := c.Offset()
	b, _ := c.Peek(1)
	var label string
	switch b[0] {
	case tagParamSet:
		label = "Parameter Set"
	case tagParamSequence:
		label = "Parameter Sequence"
	default:
		n.AddMarker(tree.Opaque, start, c.Len())
		c.Rest()
		return nil
	}
	c.Skip(1)
	ps := n.Add(start, 0, label)
	body, definite, err := lengthAndBody(c, ps)
	if err != nil {
		ps.Close(c.Offset(), "")
		return err
	}
	if opaque {
		if body.Len() > 0 {
			ps.AddMarker(tree.Opaque, body.Offset(), body.Len())
			body.Rest()
		}
		c.Seek(body.Offset())
		ps.Close(c.Offset(), "")
		return nil
	}
	seen, err := decodeParams(ctx, body, ps)
	c.Seek(body.Offset())
	if err != nil {
		ps.Close(c.Offset(), "")
		return err
	}
	if definite && body.Len() > 0 {
		ps.AddMarker(tree.ExtraneousData, body.Offset(), body.Len())
		body.Rest()
		c.Seek(body.Offset())
	}
	if dir != nil {
		for _, id := range dir.missing(seen) {
			m := ps.AddMarker(tree.MissingParameter, c.Offset(), 0)
			m.Label = fmt.Sprintf("%s: %s", m.Label, parameterName(id))
			m.Value = id
		}
	}
	ps.Close(c.Offset(), "")
	return nil
}

// parameterName names a parameter identifier from the tier tables.
func parameterName(id uint32) string {
	for _, t := range [...]map[uint32]paramEntry{tier1, tier2, tier3} {
		if e, ok := t[id]; ok {
			return e.name
		}
	}
	return reservedName(id)
}
