package sigdissect

import (
	"encoding/binary"
	"testing"

	"gotest.tools/v3/assert"
)

var sccpMsg = udt(gt4(6, false, 0x21), gt4(7, false, 0x65), []byte{0xe2, 0x00, 0x01})

func m3uaData(si byte, user []byte) []byte {
	param := []byte{0x02, 0x10, 0, 0}
	param = append(param, 0, 0, 0, 1, 0, 0, 0, 2, si, 2, 0, 5)
	param = append(param, user...)
	binary.BigEndian.PutUint16(param[2:], uint16(len(param)))
	for len(param)%4 != 0 {
		param = append(param, 0)
	}

	// A routing context in front of the protocol data.
	msg := []byte{1, 0, m3uaClassTransfer, m3uaTypeData, 0, 0, 0, 0,
		0x00, 0x06, 0x00, 0x08, 0, 0, 0, 1}
	msg = append(msg, param...)
	binary.BigEndian.PutUint32(msg[4:], uint32(len(msg)))
	return msg
}

func TestHandleM3UA(t *testing.T) {
	h := &recordingHandler{}
	err := HandleM3UA(h, m3uaData(siSCCP, sccpMsg), nil)
	assert.NilError(t, err)
	assert.Equal(t, len(h.data), 1)
	assert.DeepEqual(t, h.data[0], []byte{0xe2, 0x00, 0x01})
}

func TestHandleM3UAOtherUser(t *testing.T) {
	h := &recordingHandler{}
	err := HandleM3UA(h, m3uaData(0x05, []byte{1, 2, 3, 4}), nil)
	assert.NilError(t, err)
	assert.Equal(t, len(h.data), 0)
}

func TestHandleM3UAManagement(t *testing.T) {
	h := &recordingHandler{}
	// ASP Up.
	err := HandleM3UA(h, []byte{1, 0, 3, 1, 0, 0, 0, 8}, nil)
	assert.NilError(t, err)
	assert.Equal(t, len(h.data), 0)
}

func TestHandleM3UABadParameter(t *testing.T) {
	msg := m3uaData(siSCCP, sccpMsg)
	// Protocol data claims more than is there.
	binary.BigEndian.PutUint16(msg[18:], 0x0400)
	err := HandleM3UA(&recordingHandler{}, msg, nil)
	assert.ErrorContains(t, err, "invalid")

	err = HandleM3UA(&recordingHandler{}, []byte{1, 0}, nil)
	assert.ErrorContains(t, err, "M3UA header")
}

func m2paData(user []byte) []byte {
	msg := []byte{1, 0, m2paClass, m2paUserData, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0, 0, 2, 0}
	msg = append(msg, user...)
	binary.BigEndian.PutUint32(msg[4:], uint32(len(msg)))
	return msg
}

func TestHandleM2PA(t *testing.T) {
	h := &recordingHandler{}
	mtp := append([]byte{0x83, 0x01, 0x40, 0x00, 0x00}, sccpMsg...)
	err := HandleM2PA(h, m2paData(mtp), nil)
	assert.NilError(t, err)
	assert.Equal(t, len(h.data), 1)
	assert.Equal(t, h.called[0].Number, "12")
}

func TestHandleM2PANonSCCP(t *testing.T) {
	h := &recordingHandler{}
	// ISUP.
	mtp := []byte{0x85, 0x01, 0x40, 0x00, 0x00, 0x01}
	assert.NilError(t, HandleM2PA(h, m2paData(mtp), nil))
	assert.Equal(t, len(h.data), 0)

	// Link status.
	assert.NilError(t, HandleM2PA(h, []byte{1, 0, m2paClass, 2, 0, 0, 0, 20, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 1}, nil))
	assert.Equal(t, len(h.data), 0)
}

func TestHandleMTPShort(t *testing.T) {
	err := handleMTP(&recordingHandler{}, []byte{0x83, 0x01}, nil)
	assert.ErrorContains(t, err, "MTP3")
}
