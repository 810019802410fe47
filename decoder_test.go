package sigdissect

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/moiji-mobile/sigdissect/flow"
)

// ber builds a definite short form TLV.
func ber(tag byte, parts ...[]byte) []byte {
	var body []byte
	for _, p := range parts {
		body = append(body, p...)
	}
	return append([]byte{tag, byte(len(body))}, body...)
}

var (
	vlrAddr = SCCPAddress{Ssn: 7, Number: "vlr"}
	hlrAddr = SCCPAddress{Ssn: 6, Number: "hlr"}
	tid     = []byte{0, 0, 0, 0x2a}
)

func TestDecodeTCAPBegin(t *testing.T) {
	begin := ber(0x62,
		ber(0x48, tid),
		ber(0x6c, ber(0xa1, []byte{0x02, 0x01, 0x01}, []byte{0x02, 0x01, 0x2d})))

	tag, otid, _, _, comp, err := DecodeTCAP(begin)
	assert.NilError(t, err)
	assert.Equal(t, tag, TCbeginApp)
	assert.DeepEqual(t, otid.Bytes, tid)

	infos, err := DecodeROS(comp.Bytes)
	assert.NilError(t, err)
	assert.DeepEqual(t, infos, []ROSInfo{{Type: ROSInvoke, InvokeId: 1, OpCode: 0x2d}})
}

func TestDecodeITUFlow(t *testing.T) {
	d := NewDecoder(nil)
	begin := ber(0x62,
		ber(0x48, tid),
		ber(0x6c, ber(0xa1, []byte{0x02, 0x01, 0x01}, []byte{0x02, 0x01, 0x2d})))
	end := ber(0x64,
		ber(0x49, tid),
		ber(0x6c, ber(0xa2, []byte{0x02, 0x01, 0x01}, ber(0x30, []byte{0x02, 0x01, 0x2d}))))

	tr, err := d.Decode(hlrAddr, vlrAddr, begin, time.Unix(0, 0))
	assert.NilError(t, err)
	assert.Assert(t, tr.Tracked)
	assert.Assert(t, tr.ANSI == nil)
	assert.Equal(t, tr.State.Tag, flow.Begin)
	assert.Equal(t, len(d.Tracker.Sessions), 1)

	op, ok := d.Tracker.Lookup(vlrAddr.FlowAddress(), tid, 1)
	assert.Assert(t, ok)
	assert.Equal(t, op, 0x2d)

	tr, err = d.Decode(vlrAddr, hlrAddr, end, time.Unix(1, 0))
	assert.NilError(t, err)
	assert.Equal(t, tr.State.Tag, flow.End)
	assert.Equal(t, len(d.Tracker.Sessions), 0)
	assert.Equal(t, len(d.Tracker.EarlyPending), 0)
}

func TestDecodeITUGarbage(t *testing.T) {
	d := NewDecoder(nil)
	_, err := d.Decode(hlrAddr, vlrAddr, []byte{0x62, 0x05, 0x48}, time.Unix(0, 0))
	assert.ErrorContains(t, err, "TCAP")
}

func TestDecodeANSIFlow(t *testing.T) {
	esn := ber(0x89, []byte{1, 2, 3, 4})
	query := ber(0xe2,
		ber(0xc7, tid),
		ber(0xe8, ber(0xe9,
			ber(0xcf, []byte{5}),
			ber(0xd1, []byte{0x09, 13}),
			ber(0xf2, esn))))
	response := ber(0xe4,
		ber(0xc7, tid),
		ber(0xe8, ber(0xea,
			ber(0xcf, []byte{5}),
			ber(0xf2, ber(0x96, []byte{5})))))

	d := NewDecoder(nil)
	tr, err := d.Decode(hlrAddr, vlrAddr, query, time.Unix(0, 0))
	assert.NilError(t, err)
	assert.Assert(t, tr.ANSI != nil)
	assert.Equal(t, tr.State.Tag, flow.Begin)
	assert.Equal(t, len(d.Tracker.Sessions), 1)

	tr, err = d.Decode(vlrAddr, hlrAddr, response, time.Unix(1, 0))
	assert.NilError(t, err)
	assert.Equal(t, tr.ANSI.Components[0].OpCode, 13)
	assert.Equal(t, tr.State.Tag, flow.End)
	assert.Equal(t, len(d.Tracker.Sessions), 0)
}

func TestDecodeANSIMalformed(t *testing.T) {
	d := NewDecoder(nil)
	tr, err := d.Decode(hlrAddr, vlrAddr, []byte{0xe2, 0x10, 0xc7}, time.Unix(0, 0))
	assert.ErrorContains(t, err, "ANSI TCAP")
	assert.Assert(t, tr.ANSI != nil)
	assert.Assert(t, !tr.Tracked)
	assert.Equal(t, len(d.Tracker.Sessions), 0)
}
