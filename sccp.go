package sigdissect

import (
	"github.com/google/gopacket"
	"github.com/pkg/errors"

	"github.com/moiji-mobile/sigdissect/bcd"
	"github.com/moiji-mobile/sigdissect/flow"
)

// SCCP message types carrying user data.
const (
	sccpUDT  = 0x09
	sccpXUDT = 0x11
)

// Address indicator bits of an ITU SCCP party address.
const (
	aiPointCode = 0x01
	aiSSN       = 0x02
	aiGTIShift  = 2
	aiGTIMask   = 0x0f
)

// SCCPAddress is a called or calling party address. Number holds the
// global title digits, if any.
type SCCPAddress struct {
	Indicator uint8
	PointCode uint16
	Ssn       uint8
	Tt        uint8
	Ton       uint8
	Npi       uint8
	Number    string
}

// FlowAddress is the part of the address that identifies a transaction
// end point.
func (a SCCPAddress) FlowAddress() flow.Address {
	return flow.Address{Number: a.Number, SSN: a.Ssn}
}

func parseAddr(data []uint8) (addr SCCPAddress, err error) {
	if len(data) < 1 {
		return addr, errors.New("empty SCCP address")
	}
	addr.Indicator = data[0]
	rest := data[1:]
	need := func(n int) error {
		if len(rest) < n {
			return errors.Errorf("SCCP address too short: %#v", data)
		}
		return nil
	}

	if addr.Indicator&aiPointCode != 0 {
		if err = need(2); err != nil {
			return
		}
		addr.PointCode = uint16(rest[0]) | uint16(rest[1]&0x3f)<<8
		rest = rest[2:]
	}
	if addr.Indicator&aiSSN != 0 {
		if err = need(1); err != nil {
			return
		}
		addr.Ssn = rest[0]
		rest = rest[1:]
	}

	odd := false
	switch (addr.Indicator >> aiGTIShift) & aiGTIMask {
	case 0:
		return
	case 1:
		if err = need(1); err != nil {
			return
		}
		odd = rest[0]&0x80 != 0
		addr.Ton = rest[0] & 0x7f
		rest = rest[1:]
	case 2:
		if err = need(1); err != nil {
			return
		}
		addr.Tt = rest[0]
		rest = rest[1:]
	case 3:
		if err = need(2); err != nil {
			return
		}
		addr.Tt = rest[0]
		addr.Npi = rest[1] >> 4
		odd = rest[1]&0x01 != 0
		rest = rest[2:]
	case 4:
		if err = need(3); err != nil {
			return
		}
		addr.Tt = rest[0]
		addr.Npi = rest[1] >> 4
		odd = rest[1]&0x01 != 0
		addr.Ton = rest[2] & 0x7f
		rest = rest[3:]
	default:
		return addr, errors.Errorf("unknown global title indicator %d", (addr.Indicator>>aiGTIShift)&aiGTIMask)
	}

	n := 2 * len(rest)
	if odd && n > 0 {
		n--
	}
	addr.Number = bcd.Telephony.DecodeN(rest, n)
	return
}

// pointer follows a one octet mandatory variable pointer at data[at] and
// returns the length prefixed part it points to.
func pointer(data []uint8, at int) ([]uint8, error) {
	if at >= len(data) {
		return nil, errors.Errorf("SCCP pointer %d past end", at)
	}
	start := at + int(data[at])
	if data[at] == 0 || start >= len(data) {
		return nil, errors.Errorf("SCCP pointer %d invalid", at)
	}
	end := start + 1 + int(data[start])
	if end > len(data) {
		return nil, errors.Errorf("SCCP parameter at %d overruns message", start)
	}
	return data[start+1 : end], nil
}

// parseSCCP returns the addresses and user data of a UDT or XUDT.
func parseSCCP(data []uint8) (called, calling SCCPAddress, payload []uint8, err error) {
	if len(data) < 1 {
		err = errors.New("empty SCCP message")
		return
	}
	first := 2
	switch data[0] {
	case sccpUDT:
	case sccpXUDT:
		// Hop counter.
		first = 3
	default:
		err = errors.Errorf("SCCP message type %#02x carries no unitdata", data[0])
		return
	}

	calledDat, err := pointer(data, first)
	if err != nil {
		return
	}
	if called, err = parseAddr(calledDat); err != nil {
		err = errors.Wrap(err, "called party")
		return
	}
	callingDat, err := pointer(data, first+1)
	if err != nil {
		return
	}
	if calling, err = parseAddr(callingDat); err != nil {
		err = errors.Wrap(err, "calling party")
		return
	}
	payload, err = pointer(data, first+2)
	return
}

func handleSCCP(handler DataHandler, data []uint8, packet gopacket.Packet) error {
	called, calling, payload, err := parseSCCP(data)
	if err != nil {
		return errors.Wrap(err, "SCCP")
	}
	handler.OnData(called, calling, payload, packet)
	return nil
}
