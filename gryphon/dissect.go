package gryphon

import (
	"fmt"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// Frame summarizes one dissected frame.
type Frame struct {
	Header Header
	// Command is the command a request or response carries, qualified by
	// its destination or source when it is device specific. It is -1 for
	// other frame types.
	Command int
	// Status is the status of a response, -1 otherwise.
	Status int
}

// Dissect decodes the frame at the start of buf. A buffer too short for
// the header or the declared body yields a *wire.BoundsError together
// with the part of the tree that could be built. Problems inside the body
// become marker nodes.
func Dissect(buf []byte) (*tree.Tree, Frame, error) {
	fr := Frame{Command: -1, Status: -1}
	t := tree.New("Gryphon", 0, len(buf))
	h, err := ReadHeader(buf)
	if err != nil {
		t.Root.AddMarker(tree.Malformed, 0, len(buf))
		return t, fr, err
	}
	fr.Header = h
	t.Root.Length = FrameLength(h)
	if t.Root.Length > len(buf) {
		t.Root.Length = len(buf)
	}
	header(t.Root, h)

	c := wire.NewCursor(buf)
	c.Seek(HeaderLength)
	body, err := c.Limit(int(h.Length))
	if err != nil {
		t.Root.AddMarker(tree.Malformed, HeaderLength, c.Len())
		return t, fr, err
	}

	st := &state{channel: h.DstChan}
	if h.Src == SDCard {
		st.channel = h.SrcChan
	}
	bn := t.Root.Add(HeaderLength, int(h.Length), "Body")
	f := &fields{c: body, n: bn, st: st}

	suffix := ""
	switch h.FrameType() {
	case TypeCommand:
		suffix = commandBody(f, h, &fr, false)
	case TypeResponse:
		suffix = commandBody(f, h, &fr, true)
	case TypeData:
		dataBody(f)
	case TypeEvent:
		eventBody(f)
	case TypeText:
		if f.remaining() > 0 {
			f.str(f.remaining(), "Text")
		}
	default:
		f.rest("Data")
	}

	switch {
	case f.err == nil:
	case wire.IsTruncated(f.err):
		bn.AddMarker(tree.ShortData, body.Offset(), body.Len())
		body.Rest()
	default:
		bn.AddMarker(tree.UnexpectedDataLength, body.Offset(), body.Len())
		body.Rest()
	}
	if body.Len() > 0 {
		bn.AddMarker(tree.ExtraneousData, body.Offset(), body.Len())
		body.Rest()
	}

	c.Seek(body.Offset())
	if p := Padding(int(h.Length)); p > 0 && c.Len() > 0 {
		if p > c.Len() {
			p = c.Len()
		}
		t.Root.Add(c.Offset(), p, "padding")
	}
	t.Root.Label += suffix
	t.Handoffs = st.handoffs
	return t, fr, nil
}

func header(root *tree.Node, h Header) {
	n := root.Add(0, HeaderLength, "Header")
	n.AddValue(0, 1, fmt.Sprintf("Source: %s", SDName(h.Src)), h.Src)
	n.AddValue(1, 1, fmt.Sprintf("Source channel: %d", h.SrcChan), h.SrcChan)
	n.AddValue(2, 1, fmt.Sprintf("Destination: %s", SDName(h.Dst)), h.Dst)
	n.AddValue(3, 1, fmt.Sprintf("Destination channel: %d", h.DstChan), h.DstChan)
	n.AddValue(4, 2, fmt.Sprintf("Data length: %d bytes", h.Length), h.Length)
	ft := n.AddValue(6, 1, fmt.Sprintf("Frame type: %s", h.FrameType()), h.Type)
	ft.Addf(6, 1, "%s = %s", bitString(uint64(h.Type), FlagDontWait, 8),
		choose(h.Type&FlagDontWait != 0, "Don't wait for response", "Wait for response"))
	ft.Addf(6, 1, "%s = %s", bitString(uint64(h.Type), FlagWaitForPrev, 8),
		choose(h.Type&FlagWaitForPrev != 0, "Wait for previous responses", "Don't wait for previous responses"))
	n.Add(7, 1, "reserved")
}

func choose(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// commandBody decodes the command octet, and for responses the status,
// then hands the rest to the command's decoder.
func commandBody(f *fields, h Header, fr *Frame, response bool) string {
	off := f.offset()
	id := uint8(f.uint(1))
	if !f.ok() {
		return ""
	}
	sd := h.Dst
	if response {
		sd = h.Src
	}
	key, cmd, known := lookupCommand(id, sd)
	fr.Command = key
	name := cmd.name
	if !known {
		name = "- unknown -"
	}
	f.n.AddValue(off, 1, fmt.Sprintf("Command: %s (%#02x)", name, id), key)
	f.reserved(3)

	decode := cmd.req
	if response {
		off := f.offset()
		st := f.uint(4)
		if !f.ok() {
			return " - " + name
		}
		fr.Status = int(st)
		status, ok := statusNames[st]
		if !ok {
			status = "Unknown status"
		}
		f.n.AddValue(off, 4, fmt.Sprintf("Status: %s (%d)", status, st), st)
		decode = cmd.resp
	}
	if decode != nil && f.ok() {
		decode(f)
	} else if f.remaining() > 0 {
		f.rest("Data")
	}
	return " - " + name
}
