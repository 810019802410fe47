package sigdissect

import (
	"testing"

	"github.com/google/gopacket"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// udt builds an SCCP UDT with the three mandatory variable parts.
func udt(called, calling, data []byte) []byte {
	b := []byte{sccpUDT, 0x80, 3, byte(3 + len(called)), byte(3 + len(called) + len(calling))}
	for _, part := range [][]byte{called, calling, data} {
		b = append(b, byte(len(part)))
		b = append(b, part...)
	}
	return b
}

// gt4 is a GTI 4 address with SSN and the given BCD digits.
func gt4(ssn byte, odd bool, digits ...byte) []byte {
	es := byte(0x12)
	if odd {
		es = 0x11
	}
	return append([]byte{0x12, ssn, 0x00, es, 0x04}, digits...)
}

type recordingHandler struct {
	called, calling []SCCPAddress
	data            [][]byte
	frames          [][]byte
	errors          []interface{}
}

func (r *recordingHandler) OnData(called, calling SCCPAddress, data []uint8, packet gopacket.Packet) {
	r.called = append(r.called, called)
	r.calling = append(r.calling, calling)
	r.data = append(r.data, data)
}

func (r *recordingHandler) OnGryphon(frame []uint8, net, transport gopacket.Flow) {
	r.frames = append(r.frames, frame)
}

func (r *recordingHandler) AfterOnePacket() {}

func (r *recordingHandler) ParseError(data []uint8, recovered interface{}) {
	r.errors = append(r.errors, recovered)
}

func TestParseAddrGlobalTitle(t *testing.T) {
	addr, err := parseAddr(gt4(6, true, 0x94, 0x21, 0xf3))
	assert.NilError(t, err)
	assert.Equal(t, addr.Ssn, uint8(6))
	assert.Equal(t, addr.Npi, uint8(1))
	assert.Equal(t, addr.Ton, uint8(4))
	assert.Equal(t, addr.Number, "49123")

	addr, err = parseAddr(gt4(7, false, 0x94, 0x21))
	assert.NilError(t, err)
	assert.Equal(t, addr.Number, "4912")
}

func TestParseAddrPointCode(t *testing.T) {
	// PC and SSN, no global title.
	addr, err := parseAddr([]byte{0x43, 0x34, 0x12, 0x08})
	assert.NilError(t, err)
	assert.Equal(t, addr.PointCode, uint16(0x1234))
	assert.Equal(t, addr.Ssn, uint8(8))
	assert.Equal(t, addr.Number, "")
}

func TestParseAddrShort(t *testing.T) {
	_, err := parseAddr([]byte{0x12, 0x06, 0x00})
	assert.ErrorContains(t, err, "too short")

	_, err = parseAddr(nil)
	assert.ErrorContains(t, err, "empty")
}

func TestParseSCCP(t *testing.T) {
	msg := udt(gt4(6, false, 0x21, 0x43), gt4(7, true, 0x65, 0xf7), []byte{0xe2, 0x00})
	called, calling, payload, err := parseSCCP(msg)
	assert.NilError(t, err)
	assert.Equal(t, called.Number, "1234")
	assert.Equal(t, calling.Number, "567")
	assert.Equal(t, calling.Ssn, uint8(7))
	assert.Check(t, is.DeepEqual(payload, []byte{0xe2, 0x00}))
	assert.Equal(t, called.FlowAddress().SSN, uint8(6))
}

func TestParseSCCPErrors(t *testing.T) {
	_, _, _, err := parseSCCP([]byte{0x0f, 0x00})
	assert.ErrorContains(t, err, "no unitdata")

	msg := udt(gt4(6, false, 0x21), gt4(7, false, 0x65), []byte{1, 2, 3})
	_, _, _, err = parseSCCP(msg[:len(msg)-1])
	assert.ErrorContains(t, err, "overruns")

	_, _, _, err = parseSCCP([]byte{sccpUDT, 0x80, 0})
	assert.ErrorContains(t, err, "invalid")
}

func TestHandleSCCP(t *testing.T) {
	h := &recordingHandler{}
	err := handleSCCP(h, udt(gt4(6, false, 0x21), gt4(7, false, 0x65), []byte{9}), nil)
	assert.NilError(t, err)
	assert.Equal(t, len(h.data), 1)
	assert.Equal(t, h.called[0].Number, "12")
	assert.Equal(t, h.calling[0].Number, "56")

	err = handleSCCP(h, []byte{sccpUDT}, nil)
	assert.ErrorContains(t, err, "SCCP")
	assert.Equal(t, len(h.data), 1)
}
