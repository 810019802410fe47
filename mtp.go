package sigdissect

import (
	"bytes"
	"encoding/binary"

	"github.com/google/gopacket"
	"github.com/pkg/errors"
)

// MTPL3 is the service information octet and the ITU routing label.
type MTPL3 struct {
	Service uint8
	Routing [4]uint8
}

const mtpL3Len = 5

func handleMTP(handler DataHandler, data []uint8, packet gopacket.Packet) error {
	mtpl3 := MTPL3{}
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.BigEndian, &mtpl3); err != nil {
		return errors.Wrap(err, "MTP3")
	}
	if (mtpl3.Service & 0x0f) != siSCCP {
		return nil
	}
	return handleSCCP(handler, data[mtpL3Len:], packet)
}
