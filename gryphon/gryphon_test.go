package gryphon

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/gopacket"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// frame builds a frame with the given header fields and body, padding
// included.
func frame(src, srcChan, dst, dstChan uint8, typ FrameType, body ...byte) []byte {
	b := []byte{src, srcChan, dst, dstChan, byte(len(body) >> 8), byte(len(body)), byte(typ), 0}
	b = append(b, body...)
	return append(b, make([]byte, Padding(len(body)))...)
}

func TestPadding(t *testing.T) {
	for n, want := range []int{0, 3, 2, 1, 0, 3, 2, 1} {
		if got := Padding(n); got != want {
			t.Fatalf("Padding(%d) = %d, want %d", n, got, want)
		}
	}
	assert.Equal(t, FrameLength(Header{Length: 5}), 16)
	assert.Equal(t, FrameLength(Header{Length: 0}), 8)
	assert.Equal(t, FrameLength(Header{Length: 8}), 16)
}

func TestPaddingAligns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 0xffff).Draw(t, "n")
		p := Padding(n)
		if p < 0 || p > 3 || (n+p)%4 != 0 {
			t.Fatalf("Padding(%d) = %d", n, p)
		}
	})
}

func TestHeaderFlags(t *testing.T) {
	h, err := ReadHeader([]byte{1, 2, 3, 4, 0, 9, 0xc1, 0})
	assert.NilError(t, err)
	assert.Equal(t, h.FrameType(), TypeCommand)
	assert.Equal(t, h.Flags(), uint8(FlagDontWait|FlagWaitForPrev))
	assert.Equal(t, h.Length, uint16(9))

	_, err = ReadHeader([]byte{1, 2, 3})
	assert.Assert(t, wire.IsFatal(err))
}

func TestSplitPDU(t *testing.T) {
	a := frame(SDClient, 0, SDServer, 0, TypeCommand, cmdInit, 0, 0, 0, 1, 0, 0, 0)
	b := frame(SDServer, 0, SDClient, 0, TypeText, 'h', 'i', '!', '!', '!')
	c := frame(SDServer, 0, SDClient, 0, TypeMisc)
	stream := append(append(append([]byte{}, a...), b...), c...)

	s := bufio.NewScanner(bytes.NewReader(stream))
	s.Split(SplitPDU)
	var got [][]byte
	for s.Scan() {
		got = append(got, append([]byte{}, s.Bytes()...))
	}
	assert.NilError(t, s.Err())
	if diff := cmp.Diff([][]byte{a, b, c}, got); diff != "" {
		t.Fatalf("frames differ (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(b), 16)
}

func TestSplitPDUTruncatedStream(t *testing.T) {
	a := frame(SDClient, 0, SDServer, 0, TypeText, 'a', 'b', 'c')
	s := bufio.NewScanner(bytes.NewReader(append(a, a[:6]...)))
	s.Split(SplitPDU)
	n := 0
	for s.Scan() {
		n++
	}
	assert.Equal(t, n, 1)
	assert.ErrorIs(t, s.Err(), wire.ErrTruncated)
}

func TestInitCommand(t *testing.T) {
	buf := frame(SDClient, 0, SDServer, 0, TypeCommand, cmdInit, 0, 0, 0, 1, 0, 0, 0)
	tr, fr, err := Dissect(buf)
	assert.NilError(t, err)
	assert.Equal(t, tr.Root.Label, "Gryphon - Initialize")
	assert.Equal(t, fr.Command, cmdInit)
	assert.Equal(t, fr.Status, -1)
	assert.Assert(t, tr.Root.Find("Mode: Initialize if not previously initialized") != nil)
	assert.Assert(t, tr.Root.Find("Source: Client") != nil)
	assert.Assert(t, tr.Root.Find("Destination: Server") != nil)
	assert.Equal(t, len(tr.Root.Markers(tree.ShortData)), 0)
}

func TestQualifiedCommands(t *testing.T) {
	cases := []struct {
		dst  uint8
		id   uint8
		want string
		key  int
	}{
		{SDCard, 0x40, "Gryphon - Set speed", cmdCardSetSpeed},
		{SDServer, 0x50, "Gryphon - Register with server", cmdServerReg},
		{SDCard, 0x50, "Gryphon - Get defined speeds", cmdCardGetSpeeds},
		{SDBLM, 0xa2, "Gryphon - Get Bus Load data", cmdBLMGetData},
		// Unknown for the scheduler, retried as a card command.
		{SDSched, 0x44, "Gryphon - Transmit message", cmdCardTx},
		// Below SDKnown there is no retry.
		{SDServer, 0x44, "Gryphon - - unknown -", qualified(SDServer, 0x44)},
		{SDUtil, 0x03, "Gryphon - Get configuration", cmdGetConfig},
	}
	for _, tc := range cases {
		buf := frame(SDClient, 0, tc.dst, 0, TypeCommand, tc.id, 0, 0, 0)
		tr, fr, err := Dissect(buf)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(tr.Root.Label, tc.want))
		assert.Check(t, is.Equal(fr.Command, tc.key), "dst %#x id %#x", tc.dst, tc.id)
	}
}

func TestResponseQualifiedBySource(t *testing.T) {
	buf := frame(SDCard, 1, SDClient, 0, TypeResponse,
		0x41, 0, 0, 0,
		0, 0, 0, 0,
		5, 0, 0, 0)
	tr, fr, err := Dissect(buf)
	assert.NilError(t, err)
	assert.Equal(t, fr.Command, cmdCardGetSpeed)
	assert.Equal(t, fr.Status, 0)
	assert.Assert(t, tr.Root.Find("Status: OK - no error (0)") != nil)
	assert.Assert(t, tr.Root.Find("Speed index: 5") != nil)
}

func TestDataFrameHandoff(t *testing.T) {
	body := []byte{
		4, 29, 0, 3, 0, 0x40, 0, 0,
		0, 0, 0, 100, 0, 0, 0, 0,
		0x12, 0x34, 0x56, 0x78, 0xaa, 0xbb, 0xcc,
	}
	buf := frame(SDCard, 2, SDClient, 0, TypeData, body...)
	assert.Equal(t, len(buf), 32)
	tr, _, err := Dissect(buf)
	assert.NilError(t, err)
	assert.DeepEqual(t, tr.Handoffs, []tree.Handoff{{Protocol: ProtoBus, Selector: 2, Offset: 24, Length: 7}})
	assert.Assert(t, tr.Root.Find("Header: 12345678") != nil)
	assert.Assert(t, tr.Root.Find("Data: aabbcc") != nil)
	assert.Assert(t, tr.Root.Find("Timestamp: 0.001000 seconds") != nil)
	assert.Assert(t, tr.Root.Find("padding") != nil)
	assert.Equal(t, tr.Root.Length, 32)
}

func TestTransmitCommandHandoff(t *testing.T) {
	body := []byte{
		0x44, 0, 0, 0,
		2, 11, 0, 2, 0, 0x80, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x01, 0x02, 0x03, 0x04,
	}
	buf := frame(SDClient, 0, SDCard, 3, TypeCommand, body...)
	tr, fr, err := Dissect(buf)
	assert.NilError(t, err)
	assert.Equal(t, fr.Command, cmdCardTx)
	assert.DeepEqual(t, tr.Handoffs, []tree.Handoff{{Protocol: ProtoBus, Selector: 3, Offset: 28, Length: 4}})
}

func TestEventFrame(t *testing.T) {
	buf := frame(SDCard, 1, SDClient, 0, TypeEvent, 7, 1, 0, 0, 0, 0, 0, 10, 0xde, 0xad)
	tr, _, err := Dissect(buf)
	assert.NilError(t, err)
	assert.Assert(t, tr.Root.Find("Event ID: 7") != nil)
	assert.Assert(t, tr.Root.Find("Data: dead") != nil)
}

func TestTextFrame(t *testing.T) {
	buf := frame(SDServer, 0, SDClient, 0, TypeText, 'o', 'k', 0)
	tr, _, err := Dissect(buf)
	assert.NilError(t, err)
	assert.Assert(t, tr.Root.Find("Text: ok") != nil)
}

func TestShortBody(t *testing.T) {
	// Set speed with the command octet only.
	buf := frame(SDClient, 0, SDCard, 0, TypeCommand, 0x40)
	tr, _, err := Dissect(buf)
	assert.NilError(t, err)
	assert.Equal(t, tr.Root.Label, "Gryphon - Set speed")
	assert.Equal(t, len(tr.Root.Markers(tree.ShortData)), 1)
}

func TestExtraneousBody(t *testing.T) {
	buf := frame(SDClient, 0, SDClient, 0, TypeCommand, 0x61, 0, 0, 0, 7, 0, 0, 0, 9, 9, 9, 9)
	tr, _, err := Dissect(buf)
	assert.NilError(t, err)
	ex := tr.Root.Markers(tree.ExtraneousData)
	assert.Equal(t, len(ex), 1)
	assert.Equal(t, ex[0].Offset, 16)
	assert.Equal(t, ex[0].Length, 4)
}

func TestDeclaredLengthPastBuffer(t *testing.T) {
	buf := []byte{SDClient, 0, SDServer, 0, 0, 20, byte(TypeCommand), 0, 1, 0, 0, 0}
	tr, _, err := Dissect(buf)
	assert.Assert(t, wire.IsFatal(err))
	assert.Equal(t, len(tr.Root.Markers(tree.Malformed)), 1)
	assert.Assert(t, tr.Root.Find("Header") != nil)
}

func TestFilterBlocks(t *testing.T) {
	body := []byte{
		0x48, 0, 0, 0,
		0x03, 1, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 2, 2, 0, 0, 0,
		0x11, 0x22, 0xff, 0x00,
	}
	buf := frame(SDClient, 0, SDCard, 1, TypeCommand, body...)
	tr, fr, err := Dissect(buf)
	assert.NilError(t, err)
	assert.Equal(t, fr.Command, cmdCardAddFilter)
	blk := tr.Root.Find("Filter block 1")
	assert.Assert(t, blk != nil)
	assert.Equal(t, blk.Length, 12)
	assert.Assert(t, blk.Find("Pattern: 1122") != nil)
	assert.Assert(t, blk.Find("Mask: ff00") != nil)
	assert.Assert(t, tr.Root.Find("Type of comparison: Bit-wise check (0)") != nil)
}

func TestEveryCommandTolerates(t *testing.T) {
	// Any body handed to any command decoder stays inside the frame.
	rapid.Check(t, func(t *rapid.T) {
		keys := make([]int, 0, len(commands))
		for k := range commands {
			keys = append(keys, k)
		}
		key := rapid.SampledFrom(keys).Draw(t, "command")
		resp := rapid.Bool().Draw(t, "response")
		tail := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "tail")

		sd := uint8(key >> 8)
		typ := TypeCommand
		src, dst := uint8(SDClient), sd
		body := []byte{byte(key), 0, 0, 0}
		if resp {
			typ = TypeResponse
			src, dst = sd, SDClient
			body = append(body, 0, 0, 0, 0)
		}
		body = append(body, tail...)
		buf := frame(src, 0, dst, 0, typ, body...)
		tr, fr, err := Dissect(buf)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if key > 0xff && fr.Command != key {
			t.Fatalf("command %#x resolved as %#x", key, fr.Command)
		}
		var check func(n *tree.Node)
		check = func(n *tree.Node) {
			if n.Offset < 0 || n.Offset+n.Length > len(buf) {
				t.Fatalf("node %q [%d:%d] outside the frame of %d", n.Label, n.Offset, n.Length, len(buf))
			}
			for _, c := range n.Children {
				check(c)
			}
		}
		check(tr.Root)
	})
}

func TestLayer(t *testing.T) {
	buf := frame(SDClient, 0, SDServer, 0, TypeCommand, cmdGetTime, 0, 0, 0)
	p := gopacket.NewPacket(buf, LayerTypeGryphon, gopacket.Default)
	l := p.Layer(LayerTypeGryphon)
	assert.Assert(t, l != nil)
	g := l.(*Gryphon)
	assert.Equal(t, g.Frame.Command, cmdGetTime)
	assert.Equal(t, len(g.LayerContents()), HeaderLength)
	assert.Equal(t, len(g.LayerPayload()), 4)
	assert.Equal(t, g.Tree.Root.Label, "Gryphon - Get time")
}
