package ansimap

import "github.com/moiji-mobile/sigdissect/tree"

// Sub-protocols a parameter can hand its contents to.
const (
	ProtoTeleservice = "ansi_637_tele" // selector: SMS teleservice identifier
	ProtoOTA         = "ansi_683"      // selector: direction
	ProtoPLD         = "ansi_801"      // selector: direction
)

// Handoff directions used as selectors for the OTA and PLD sub-protocols.
const (
	DirectionForward = 0
	DirectionReverse = 1
)

// SubDissector is the host's "try dissector by selector" lookup.
type SubDissector interface {
	TryDissect(protocol string, selector int, data []byte) bool
}

// Options configures Dissect. The zero value is usable.
type Options struct {
	// ResultOp names the operation a Return Result or Return Error answers,
	// given the transaction and the correlation ID of the component. ANSI
	// TCAP does not repeat the operation code in replies, so without it
	// replies are decoded as plain parameter sets.
	ResultOp func(transactionID []byte, correlationID int) (opcode int, ok bool)

	// SubDissector receives embedded payloads after the walk.
	SubDissector SubDissector
}

// Context is the state one decode pass shares between an outer parse step
// and the decoders below it. It lives for a single message.
type Context struct {
	opts Options

	transactionID []byte

	// Invoke is set while an Invoke component is decoded.
	Invoke bool
	// OpCode is the operation of the current component, -1 if unknown.
	OpCode int

	// TeleserviceID is the last SMS Teleservice Identifier seen, -1 if none.
	TeleserviceID int
	// OTA and PLD mark messages carrying IS-683 over-the-air or IS-801
	// position determination payloads in their bearer data.
	OTA bool
	PLD bool

	bearers []bearerSpan
}

func newContext(opts Options) *Context {
	return &Context{opts: opts, OpCode: -1, TeleserviceID: -1}
}

func (ctx *Context) direction() int {
	if ctx.Invoke {
		return DirectionForward
	}
	return DirectionReverse
}

// bearer records an SMS Bearer Data span. The protocol it is handed to
// depends on flags that later parameters of the same message may set, so
// it is resolved by handoffs once the walk is done.
func (ctx *Context) bearer(offset, length int) {
	ctx.bearers = append(ctx.bearers, bearerSpan{offset, length, ctx.direction()})
}

type bearerSpan struct {
	offset, length int
	direction      int
}

// handoffs resolves the recorded bearer data spans. OTA wins over PLD,
// which wins over a known teleservice; without any of them the span is
// left to the host.
func (ctx *Context) handoffs() []tree.Handoff {
	var hs []tree.Handoff
	for _, b := range ctx.bearers {
		h := tree.Handoff{Offset: b.offset, Length: b.length}
		switch {
		case ctx.OTA:
			h.Protocol, h.Selector = ProtoOTA, b.direction
		case ctx.PLD:
			h.Protocol, h.Selector = ProtoPLD, b.direction
		case ctx.TeleserviceID >= 0:
			h.Protocol, h.Selector = ProtoTeleservice, ctx.TeleserviceID
		default:
			continue
		}
		hs = append(hs, h)
	}
	return hs
}
