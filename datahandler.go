package sigdissect

import (
	"sync"

	"github.com/google/gopacket"
)

// DataHandler receives what RunLoop digs out of the capture. The SCCP
// user data is handed over undecoded, Gryphon frames whole and
// unpadded of the stream around them.
type DataHandler interface {
	OnData(called_gt SCCPAddress, calling_gt SCCPAddress, data []uint8, packet gopacket.Packet)
	OnGryphon(frame []uint8, net, transport gopacket.Flow)
	AfterOnePacket()
	ParseError(data []uint8, recovered interface{})
}

// serialHandler lets the stream readers and the packet loop share a
// handler that is not safe for concurrent use.
type serialHandler struct {
	mu sync.Mutex
	h  DataHandler
}

func (s *serialHandler) OnData(called, calling SCCPAddress, data []uint8, packet gopacket.Packet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.OnData(called, calling, data, packet)
}

func (s *serialHandler) OnGryphon(frame []uint8, net, transport gopacket.Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.OnGryphon(frame, net, transport)
}

func (s *serialHandler) AfterOnePacket() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.AfterOnePacket()
}

func (s *serialHandler) ParseError(data []uint8, recovered interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.ParseError(data, recovered)
}
