package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/gopacket"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alexcesaro/statsd.v2"

	"github.com/moiji-mobile/sigdissect"
	"github.com/moiji-mobile/sigdissect/gryphon"
	"github.com/moiji-mobile/sigdissect/tree"
)

// record is one line of JSON output.
type record struct {
	Time     time.Time  `json:"time,omitempty"`
	Protocol string     `json:"protocol"`
	Calling  string     `json:"calling,omitempty"`
	Called   string     `json:"called,omitempty"`
	Summary  string     `json:"summary,omitempty"`
	Tree     *tree.Tree `json:"tree,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type flowDataHandler struct {
	out     io.Writer
	json    *json.Encoder
	statsd  *statsd.Client
	decoder *sigdissect.Decoder
}

func newFlowDataHandler(out io.Writer, format string, client *statsd.Client, decoder *sigdissect.Decoder) *flowDataHandler {
	h := &flowDataHandler{out: out, statsd: client, decoder: decoder}
	if format == "json" {
		h.json = json.NewEncoder(out)
	}
	return h
}

func (h *flowDataHandler) emit(r record) {
	var err error
	if h.json != nil {
		err = h.json.Encode(r)
	} else {
		if r.Summary != "" {
			_, err = fmt.Fprintf(h.out, "%s %s\n", r.Protocol, r.Summary)
		}
		if err == nil && r.Tree != nil {
			err = tree.Format(h.out, r.Tree)
		}
		if err == nil && r.Error != "" {
			_, err = fmt.Fprintf(h.out, "error: %s\n", r.Error)
		}
	}
	if err != nil {
		log.WithError(err).Error("Failed to write output")
	}
}

func (h *flowDataHandler) OnData(called_gt sigdissect.SCCPAddress, calling_gt sigdissect.SCCPAddress, data []uint8, packet gopacket.Packet) {
	var capt time.Time
	if packet != nil {
		capt = packet.Metadata().Timestamp
	}
	tr, err := h.decoder.Decode(called_gt, calling_gt, data, capt)

	r := record{Time: capt, Calling: calling_gt.Number, Called: called_gt.Number}
	if tr.ANSI != nil {
		h.statsd.Increment("map.message")
		r.Protocol = "ansi-tcap"
		r.Tree = tr.ANSI.Tree
		r.Summary = fmt.Sprintf("%s %v->%v", tr.ANSI.Package, calling_gt.Number, called_gt.Number)
	} else {
		r.Protocol = "itu-tcap"
		if tr.Tracked {
			r.Summary = fmt.Sprintf("%s OTID(%x) DTID(%x) %v->%v STATES(%v)", tr.State.Tag, tr.State.OTID, tr.State.DTID,
				calling_gt.Number, called_gt.Number, len(h.decoder.Tracker.Sessions))
		}
	}
	if err != nil {
		h.statsd.Increment("malformed")
		r.Error = err.Error()
		log.WithFields(log.Fields{
			"called":  called_gt.Number,
			"calling": calling_gt.Number,
		}).WithError(err).Debug("Malformed TCAP")
	}
	h.emit(r)
}

func (h *flowDataHandler) OnGryphon(frame []uint8, net, transport gopacket.Flow) {
	t, fr, err := gryphon.Dissect(frame)
	h.statsd.Increment("gryphon.frame")

	r := record{Protocol: "gryphon", Tree: t, Summary: fmt.Sprintf("%v %v %s", net, transport, fr.Header.FrameType())}
	if err != nil {
		h.statsd.Increment("malformed")
		r.Error = err.Error()
	}
	h.emit(r)
}

func (h *flowDataHandler) ParseError(data []uint8, r interface{}) {
	log.WithFields(log.Fields{
		"data":  hex.EncodeToString(data),
		"error": r,
	}).Warn("ParseError")
	h.statsd.Increment("parseError")
}

func (h *flowDataHandler) AfterOnePacket() {
	h.statsd.Flush()
}
