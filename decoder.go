package sigdissect

import (
	"time"

	"github.com/pkg/errors"

	"github.com/moiji-mobile/sigdissect/ansimap"
	"github.com/moiji-mobile/sigdissect/flow"
)

// Transaction is what one SCCP payload told about its TCAP transaction.
type Transaction struct {
	// ANSI is the dissected message when the payload was ANSI TCAP.
	ANSI  *ansimap.Message
	State flow.State
	// Tracked is false for messages that open no transaction.
	Tracked bool
}

// Decoder decodes SCCP payloads as ITU or ANSI TCAP and keeps the
// transaction tracker current. ANSI Return Results are resolved against
// the invokes the tracker has seen.
type Decoder struct {
	Tracker *flow.Tracker
	Options ansimap.Options
}

func NewDecoder(tracker *flow.Tracker) *Decoder {
	if tracker == nil {
		tracker = flow.NewTracker(nil)
	}
	return &Decoder{Tracker: tracker}
}

// Decode handles one payload captured at capt.
func (d *Decoder) Decode(called, calling SCCPAddress, data []byte, capt time.Time) (Transaction, error) {
	if ansimap.IsANSI(data) {
		return d.decodeANSI(called, calling, data, capt)
	}
	return d.decodeITU(called, calling, data, capt)
}

func (d *Decoder) decodeANSI(called, calling SCCPAddress, data []byte, capt time.Time) (Transaction, error) {
	opts := d.Options
	// The lookup has to happen before the message updates the tracker.
	opts.ResultOp = d.Tracker.ResultOp(called.FlowAddress())
	m, err := ansimap.Dissect(data, opts)
	tr := Transaction{ANSI: m}
	if err != nil {
		return tr, errors.Wrap(err, "ANSI TCAP")
	}
	tr.State, tr.Tracked = flow.FromANSI(m, capt, calling.FlowAddress(), called.FlowAddress())
	if tr.Tracked {
		d.Tracker.AddState(tr.State)
	}
	return tr, nil
}

func (d *Decoder) decodeITU(called, calling SCCPAddress, data []byte, capt time.Time) (Transaction, error) {
	tag, otid, dtid, _, comp, err := DecodeTCAP(data)
	if err != nil {
		return Transaction{}, err
	}
	infos, err := DecodeROS(comp.Bytes)
	if err != nil {
		return Transaction{}, err
	}

	st := flow.State{
		Time:    capt,
		Calling: calling.FlowAddress(),
		Called:  called.FlowAddress(),
		OTID:    otid.Bytes,
		DTID:    dtid.Bytes,
	}
	switch tag {
	case TCbeginApp:
		st.Tag = flow.Begin
	case TCcontinueApp:
		st.Tag = flow.Continue
	case TCendApp:
		st.Tag = flow.End
	case TCabortApp:
		st.Tag = flow.Abort
	default:
		return Transaction{State: st}, nil
	}
	for _, info := range infos {
		if info.Type == ROSInvoke {
			st.Invokes = append(st.Invokes, flow.Invoke{InvokeID: info.InvokeId, OpCode: info.OpCode})
		}
	}
	d.Tracker.AddState(st)
	return Transaction{State: st, Tracked: true}, nil
}
