// Package gryphon dissects the Gryphon protocol spoken between a vehicle
// bus gateway and its clients over TCP. Every frame is an 8 byte header
// followed by a body padded to a four byte boundary.
package gryphon

import (
	"encoding/binary"
	"fmt"

	"github.com/moiji-mobile/sigdissect/wire"
)

// Port is the TCP port the gateway listens on.
const Port = 7000

// HeaderLength is the size of the fixed frame header.
const HeaderLength = 8

// FrameType is the type octet of the header without its flag bits.
type FrameType uint8

const (
	TypeCommand  FrameType = 1
	TypeResponse FrameType = 2
	TypeData     FrameType = 3
	TypeEvent    FrameType = 4
	TypeMisc     FrameType = 5
	TypeText     FrameType = 6
)

// Flag bits carried in the type octet.
const (
	FlagDontWait    = 0x80
	FlagWaitForPrev = 0x40
	flagMask        = FlagDontWait | FlagWaitForPrev
)

var frameTypeNames = map[FrameType]string{
	TypeCommand:  "Command request",
	TypeResponse: "Command response",
	TypeData:     "Network (vehicle) data",
	TypeEvent:    "Event",
	TypeMisc:     "Miscellaneous",
	TypeText:     "Text string",
}

func (t FrameType) String() string {
	if name, ok := frameTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown frame type (%d)", uint8(t))
}

// Header is the fixed frame header.
type Header struct {
	Src      uint8
	SrcChan  uint8
	Dst      uint8
	DstChan  uint8
	Length   uint16 // body length without padding
	Type     uint8  // frame type and flags
	Reserved uint8
}

// FrameType returns the type with the flag bits cleared.
func (h Header) FrameType() FrameType { return FrameType(h.Type &^ flagMask) }

// Flags returns the flag bits of the type octet.
func (h Header) Flags() uint8 { return h.Type & flagMask }

// Padding returns the number of octets that pad a body of n octets to a
// four byte boundary.
func Padding(n int) int {
	return 3 - (n+3)%4
}

// FrameLength returns the on-wire size of the frame h starts.
func FrameLength(h Header) int {
	n := int(h.Length)
	return HeaderLength + n + Padding(n)
}

// ReadHeader decodes the header at the start of b.
func ReadHeader(b []byte) (Header, error) {
	if len(b) < HeaderLength {
		return Header{}, &wire.BoundsError{Offset: 0, Length: HeaderLength, Limit: len(b)}
	}
	return Header{
		Src:      b[0],
		SrcChan:  b[1],
		Dst:      b[2],
		DstChan:  b[3],
		Length:   binary.BigEndian.Uint16(b[4:6]),
		Type:     b[6],
		Reserved: b[7],
	}, nil
}

// SplitPDU is a bufio.SplitFunc cutting a TCP byte stream into whole
// frames, padding included.
func SplitPDU(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) < HeaderLength {
		if atEOF && len(data) > 0 {
			return 0, nil, wire.ErrTruncated
		}
		return 0, nil, nil
	}
	h, _ := ReadHeader(data)
	n := FrameLength(h)
	if len(data) < n {
		if atEOF {
			return 0, nil, wire.ErrTruncated
		}
		return 0, nil, nil
	}
	return n, data[:n], nil
}
