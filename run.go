// Package sigdissect digs signalling messages out of packet captures.
// SCTP carried M3UA and M2PA traffic is followed down to SCCP unitdata
// whose TCAP payload is decoded as ITU or ANSI TCAP, and TCP streams on
// the Gryphon port are cut into frames.
package sigdissect

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/google/gopacket/tcpassembly"
	"github.com/google/gopacket/tcpassembly/tcpreader"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/moiji-mobile/sigdissect/gryphon"
)

// Capture says where RunLoop reads packets from. File wins over Device.
type Capture struct {
	File   string
	Device string
	Filter string
	// GryphonPort is the TCP port Gryphon streams are reassembled on.
	// Zero disables them.
	GryphonPort int
	// FlushInterval bounds how long a TCP gap is waited for.
	FlushInterval time.Duration
}

func reportParseError(handler DataHandler, data []uint8) {
	if r := recover(); r != nil {
		handler.ParseError(data, r)
	}
}

func handleSCTPData(handler DataHandler, data *layers.SCTPData, packet gopacket.Packet) {
	defer reportParseError(handler, data.Payload)

	var err error
	switch data.PayloadProtocol {
	case layers.SCTPPayloadM3UA:
		err = HandleM3UA(handler, data.Payload, packet)
	case layers.SCTPPayloadM2PA:
		err = HandleM2PA(handler, data.Payload, packet)
	default:
		log.WithField("ppid", data.PayloadProtocol).Debug("SCTP payload not handled")
	}
	if err != nil {
		handler.ParseError(data.Payload, err)
	}
}

func handlePacket(handler DataHandler, packet gopacket.Packet) {
	for _, p := range packet.Layers() {
		if data, ok := p.(*layers.SCTPData); ok {
			handleSCTPData(handler, data, packet)
		}
	}
}

// gryphonStreams cuts reassembled TCP streams into Gryphon frames.
type gryphonStreams struct {
	handler DataHandler
	wg      sync.WaitGroup
}

func (g *gryphonStreams) New(net, transport gopacket.Flow) tcpassembly.Stream {
	r := tcpreader.NewReaderStream()
	g.wg.Add(1)
	go g.run(&r, net, transport)
	return &r
}

func (g *gryphonStreams) run(r io.Reader, net, transport gopacket.Flow) {
	defer g.wg.Done()
	// Whatever is left has to be consumed or the assembler blocks.
	defer tcpreader.DiscardBytesToEOF(r)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), gryphon.HeaderLength+0xffff+3)
	scanner.Split(gryphon.SplitPDU)
	for scanner.Scan() {
		g.frame(scanner.Bytes(), net, transport)
	}
	if err := scanner.Err(); err != nil {
		log.WithFields(log.Fields{
			"net":       net,
			"transport": transport,
		}).WithError(err).Info("Gryphon stream ended")
	}
}

func (g *gryphonStreams) frame(b []byte, net, transport gopacket.Flow) {
	frame := make([]byte, len(b))
	copy(frame, b)
	defer reportParseError(g.handler, frame)
	g.handler.OnGryphon(frame, net, transport)
}

func openHandle(c Capture) (*pcap.Handle, error) {
	if len(c.File) > 0 {
		handle, err := pcap.OpenOffline(c.File)
		return handle, errors.Wrapf(err, "open %s", c.File)
	}
	handle, err := pcap.OpenLive(c.Device, 65535, true, pcap.BlockForever)
	if err != nil {
		return nil, errors.Wrapf(err, "open device %s", c.Device)
	}
	if err = handle.SetBPFFilter(c.Filter); err != nil {
		handle.Close()
		return nil, errors.Wrapf(err, "filter %q", c.Filter)
	}
	return handle, nil
}

// RunLoop reads packets until the capture ends or ctx is done. SCTP DATA
// chunks go through M3UA or M2PA down to SCCP, TCP segments on the
// Gryphon port are reassembled into frames.
func RunLoop(ctx context.Context, c Capture, handler DataHandler) error {
	handle, err := openHandle(c)
	if err != nil {
		return err
	}
	defer handle.Close()

	h := &serialHandler{h: handler}
	streams := &gryphonStreams{handler: h}
	assembler := tcpassembly.NewAssembler(tcpassembly.NewStreamPool(streams))
	defer func() {
		assembler.FlushAll()
		streams.wg.Wait()
	}()

	flushInterval := c.FlushInterval
	if flushInterval <= 0 {
		flushInterval = time.Minute
	}
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	packets := packetSource.Packets()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			assembler.FlushOlderThan(time.Now().Add(-flushInterval))
		case packet, ok := <-packets:
			if !ok {
				return nil
			}
			handlePacket(h, packet)
			if c.GryphonPort > 0 {
				assembleGryphon(assembler, packet, layers.TCPPort(c.GryphonPort))
			}
			h.AfterOnePacket()
		}
	}
}

func assembleGryphon(a *tcpassembly.Assembler, packet gopacket.Packet, port layers.TCPPort) {
	tcp, ok := packet.TransportLayer().(*layers.TCP)
	if !ok || packet.NetworkLayer() == nil {
		return
	}
	if tcp.SrcPort != port && tcp.DstPort != port {
		return
	}
	a.AssembleWithTimestamp(packet.NetworkLayer().NetworkFlow(), tcp, packet.Metadata().Timestamp)
}
