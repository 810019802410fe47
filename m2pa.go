package sigdissect

import (
	"bytes"
	"encoding/binary"

	"github.com/google/gopacket"
	"github.com/pkg/errors"
)

const (
	m2paClass     = 11
	m2paUserData  = 1
	m2paHeaderLen = 16
	// Priority octet in front of the MTP3 message.
	m2paUserDataOffset = m2paHeaderLen + 1
)

type M2PA struct {
	Version      uint8
	Spare        uint8
	MessageClass uint8
	MessageType  uint8
	Length       uint32
	Unused       uint8
	Bsn          [3]uint8
	Unused2      uint8
	Fsn          [3]uint8
}

// HandleM2PA hands the MTP3 message of an M2PA User Data message on.
// Link status messages are ignored.
func HandleM2PA(handler DataHandler, data []uint8, packet gopacket.Packet) error {
	m2pa := M2PA{}
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.BigEndian, &m2pa); err != nil {
		return errors.Wrap(err, "M2PA header")
	}
	if m2pa.MessageClass != m2paClass || m2pa.MessageType != m2paUserData {
		return nil
	}
	if len(data) <= m2paUserDataOffset {
		// Empty user data acknowledges only.
		return nil
	}
	return handleMTP(handler, data[m2paUserDataOffset:], packet)
}
