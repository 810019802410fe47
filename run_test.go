package sigdissect

import (
	"bytes"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"gotest.tools/v3/assert"
)

func TestHandleSCTPData(t *testing.T) {
	h := &recordingHandler{}
	chunk := &layers.SCTPData{PayloadProtocol: layers.SCTPPayloadM3UA}
	chunk.Payload = m3uaData(siSCCP, sccpMsg)
	handleSCTPData(h, chunk, nil)
	assert.Equal(t, len(h.data), 1)
	assert.Equal(t, len(h.errors), 0)

	chunk = &layers.SCTPData{PayloadProtocol: layers.SCTPPayloadM2PA}
	chunk.Payload = []byte{1, 0, m2paClass}
	handleSCTPData(h, chunk, nil)
	assert.Equal(t, len(h.errors), 1)

	// Not followed.
	chunk = &layers.SCTPData{PayloadProtocol: layers.SCTPPayloadSUA}
	chunk.Payload = []byte{1, 2, 3}
	handleSCTPData(h, chunk, nil)
	assert.Equal(t, len(h.errors), 1)
	assert.Equal(t, len(h.data), 1)
}

type panickingHandler struct {
	recordingHandler
}

func (p *panickingHandler) OnData(called, calling SCCPAddress, data []uint8, packet gopacket.Packet) {
	panic("handler failed")
}

func TestHandleSCTPDataRecovers(t *testing.T) {
	h := &panickingHandler{}
	chunk := &layers.SCTPData{PayloadProtocol: layers.SCTPPayloadM3UA}
	chunk.Payload = m3uaData(siSCCP, sccpMsg)
	handleSCTPData(h, chunk, nil)
	assert.Equal(t, len(h.errors), 1)
	assert.Equal(t, h.errors[0], "handler failed")
}

func TestGryphonStream(t *testing.T) {
	first := []byte{0x20, 0, 0x40, 0, 0, 3, 6, 0, 'o', 'k', 0, 0}
	second := []byte{0x40, 0, 0x01, 0, 0, 4, 1, 0, 0x01, 0, 0, 0}
	stream := append(append([]byte{}, first...), second...)

	h := &recordingHandler{}
	g := &gryphonStreams{handler: h}
	g.wg.Add(1)
	g.run(bytes.NewReader(stream), gopacket.Flow{}, gopacket.Flow{})

	assert.Equal(t, len(h.frames), 2)
	assert.DeepEqual(t, h.frames[0], first)
	assert.DeepEqual(t, h.frames[1], second)
}

func TestGryphonStreamTruncated(t *testing.T) {
	h := &recordingHandler{}
	g := &gryphonStreams{handler: h}
	g.wg.Add(1)
	g.run(bytes.NewReader([]byte{0x20, 0, 0x40, 0, 0, 8, 6, 0, 'o'}), gopacket.Flow{}, gopacket.Flow{})
	assert.Equal(t, len(h.frames), 0)
}
