package sigdissect

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/google/gopacket"
	"github.com/pkg/errors"
)

// M3UA transfer message and its Protocol Data parameter.
const (
	m3uaClassTransfer = 1
	m3uaTypeData      = 1
	m3uaTagProtocol   = 0x0210

	// OPC, DPC, SI, NI, MP and SLS in front of the user data.
	m3uaProtocolHeader = 12
	siSCCP             = 0x03
)

type M3UA struct {
	Version      uint8
	Reserved     uint8
	MessageClass uint8
	MessageType  uint8
	Length       uint32
}

type M3UAHeader struct {
	Tag    uint16
	Length uint16
}

// HandleM3UA passes the SCCP user data of an M3UA DATA message on to the
// handler. Other messages are ignored.
func HandleM3UA(handler DataHandler, data []uint8, packet gopacket.Packet) error {
	m3ua := M3UA{}
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.BigEndian, &m3ua); err != nil {
		return errors.Wrap(err, "M3UA header")
	}

	if m3ua.MessageClass != m3uaClassTransfer || m3ua.MessageType != m3uaTypeData {
		return nil
	}

	for buf.Len() >= 4 {
		hdr := M3UAHeader{}
		if err := binary.Read(buf, binary.BigEndian, &hdr); err != nil {
			return errors.Wrap(err, "M3UA parameter")
		}
		if hdr.Length < 4 || int(hdr.Length)-4 > buf.Len() {
			return errors.Errorf("M3UA parameter %#04x length %d invalid", hdr.Tag, hdr.Length)
		}

		payload := make([]byte, hdr.Length-4)
		if _, err := buf.Read(payload); err != nil {
			return errors.Wrap(err, "M3UA parameter")
		}
		if hdr.Tag == m3uaTagProtocol {
			if len(payload) < m3uaProtocolHeader {
				return errors.New("M3UA protocol data too short")
			}
			if payload[8] != siSCCP {
				return nil
			}
			return handleSCCP(handler, payload[m3uaProtocolHeader:], packet)
		}
		if pad := int(3 - (hdr.Length+3)%4); pad > 0 && pad <= buf.Len() {
			buf.Seek(int64(pad), io.SeekCurrent)
		}
	}
	return nil
}
