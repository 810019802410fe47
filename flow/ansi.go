package flow

import (
	"time"

	"github.com/moiji-mobile/sigdissect/ansimap"
)

// FromANSI turns a dissected ANSI TCAP message into tracker input. ok is
// false for packages that open no transaction and answer none.
func FromANSI(m *ansimap.Message, capt time.Time, calling, called Address) (State, bool) {
	s := State{Time: capt, Calling: calling, Called: called}
	switch m.Package {
	case ansimap.PackageQueryWithPermission, ansimap.PackageQueryWithoutPermission:
		s.Tag, s.OTID = Begin, m.OriginatingID
	case ansimap.PackageConversationWithPermission, ansimap.PackageConversationWithoutPermission:
		s.Tag, s.OTID, s.DTID = Continue, m.OriginatingID, m.RespondingID
	case ansimap.PackageResponse:
		s.Tag, s.DTID = End, m.RespondingID
	case ansimap.PackageAbort:
		s.Tag, s.DTID = Abort, m.RespondingID
	default:
		return s, false
	}
	for _, c := range m.Components {
		if c.Kind == ansimap.KindInvoke && c.InvokeID >= 0 && c.OpCode >= 0 {
			s.Invokes = append(s.Invokes, Invoke{InvokeID: c.InvokeID, OpCode: c.OpCode})
		}
	}
	return s, true
}
