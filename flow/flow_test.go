package flow

import (
	"testing"
	"time"

	"github.com/moiji-mobile/sigdissect/ansimap"
)

var (
	vlr = Address{Number: "vlr", SSN: 1}
	hlr = Address{Number: "hlr", SSN: 2}
)

func buildBegin() State {
	return State{
		Time:    time.Unix(0, 0),
		Calling: vlr,
		Called:  hlr,
		Tag:     Begin,
		OTID:    []byte{1, 2, 3, 4},
		Invokes: []Invoke{{InvokeID: 1, OpCode: 13}},
	}
}

func buildEnd() State {
	return State{
		Time:    time.Unix(1, 0),
		Calling: hlr,
		Called:  vlr,
		Tag:     End,
		DTID:    []byte{1, 2, 3, 4},
	}
}

func buildContinue() State {
	return State{
		Time:    time.Unix(1, 0),
		Calling: hlr,
		Called:  vlr,
		Tag:     Continue,
		DTID:    []byte{1, 2, 3, 4},
		OTID:    []byte{4, 3, 2, 1},
	}
}

func checkSizes(t *testing.T, s *Tracker, sessions, pending, old int) {
	t.Helper()
	if len(s.Sessions) != sessions {
		t.Fatalf("Should have %d sessions %v\n", sessions, len(s.Sessions))
	}
	if len(s.EarlyPending) != pending || len(s.Old) != old {
		t.Fatalf("Should have %d pending %d old, got %v %v\n", pending, old, len(s.EarlyPending), len(s.Old))
	}
}

func TestBeginEnd(t *testing.T) {
	s := NewTracker(nil)
	s.AddState(buildBegin())
	checkSizes(t, s, 1, 0, 0)

	s.AddState(buildEnd())
	checkSizes(t, s, 0, 0, 0)
}

func TestBeginContinue(t *testing.T) {
	s := NewTracker(nil)
	s.AddState(buildBegin())
	checkSizes(t, s, 1, 0, 0)

	s.AddState(buildContinue())
	checkSizes(t, s, 0, 0, 1)
}

func TestBeginContinueEnd(t *testing.T) {
	s := NewTracker(nil)
	s.AddState(buildBegin())
	s.AddState(buildContinue())
	checkSizes(t, s, 0, 0, 1)

	s.AddState(buildEnd())
	checkSizes(t, s, 0, 0, 0)

	// A second end from the same side ends up pending.
	s.AddState(buildEnd())
	checkSizes(t, s, 0, 1, 0)
}

func TestBeginContinueContinue(t *testing.T) {
	s := NewTracker(nil)
	s.AddState(buildBegin())
	s.AddState(buildContinue())
	checkSizes(t, s, 0, 0, 1)

	s.AddState(buildContinue())
	checkSizes(t, s, 0, 0, 1)
}

func TestContinueBegin(t *testing.T) {
	s := NewTracker(nil)
	s.AddState(buildContinue())
	checkSizes(t, s, 0, 1, 0)

	s.AddState(buildBegin())
	checkSizes(t, s, 0, 0, 1)
}

func TestEndBegin(t *testing.T) {
	s := NewTracker(nil)
	s.AddState(buildEnd())
	checkSizes(t, s, 0, 1, 0)

	s.AddState(buildBegin())
	checkSizes(t, s, 0, 0, 0)
}

func TestExpiry(t *testing.T) {
	now := time.Unix(100, 0)
	s := NewTracker(nil)
	s.Now = func() time.Time { return now }

	s.AddState(buildBegin())
	s.AddState(State{Tag: End, Called: hlr, DTID: []byte{9}})
	checkSizes(t, s, 1, 1, 0)

	now = now.Add(3 * time.Second)
	s.AddState(State{Tag: Begin, Calling: hlr, OTID: []byte{7}})
	checkSizes(t, s, 2, 0, 0)

	now = now.Add(11 * time.Second)
	s.AddState(State{Tag: Begin, Calling: hlr, OTID: []byte{8}})
	checkSizes(t, s, 1, 0, 0)
}

func TestLookup(t *testing.T) {
	s := NewTracker(nil)
	s.AddState(buildBegin())

	op, ok := s.Lookup(vlr, []byte{1, 2, 3, 4}, 1)
	if !ok || op != 13 {
		t.Fatalf("Lookup = %v %v\n", op, ok)
	}
	if _, ok := s.Lookup(vlr, []byte{1, 2, 3, 4}, 2); ok {
		t.Fatalf("Unknown invoke should not resolve\n")
	}
	if _, ok := s.Lookup(hlr, []byte{1, 2, 3, 4}, 1); ok {
		t.Fatalf("Other party should not resolve\n")
	}

	// Still known after a Continue answered it.
	s.AddState(buildContinue())
	if op, ok := s.Lookup(vlr, []byte{1, 2, 3, 4}, 1); !ok || op != 13 {
		t.Fatalf("Lookup after continue = %v %v\n", op, ok)
	}
}

// enc builds a definite short form TLV.
func enc(tag byte, parts ...[]byte) []byte {
	var body []byte
	for _, p := range parts {
		body = append(body, p...)
	}
	return append([]byte{tag, byte(len(body))}, body...)
}

func TestANSIQueryResponse(t *testing.T) {
	tid := []byte{0, 0, 0, 0x2a}
	esn := enc(0x89, []byte{1, 2, 3, 4})
	query := enc(0xe2,
		enc(0xc7, tid),
		enc(0xe8, enc(0xe9,
			enc(0xcf, []byte{5}),
			enc(0xd1, []byte{0x09, 13}),
			enc(0xf2, esn))))
	response := enc(0xe4,
		enc(0xc7, tid),
		enc(0xe8, enc(0xea,
			enc(0xcf, []byte{5}),
			enc(0xf2, enc(0x96, []byte{5})))))

	s := NewTracker(nil)

	q, err := ansimap.Dissect(query, ansimap.Options{})
	if err != nil {
		t.Fatalf("query: %v\n", err)
	}
	st, ok := FromANSI(q, time.Unix(0, 0), vlr, hlr)
	if !ok || st.Tag != Begin || len(st.Invokes) != 1 {
		t.Fatalf("Unexpected state %+v %v\n", st, ok)
	}
	s.AddState(st)

	r, err := ansimap.Dissect(response, ansimap.Options{ResultOp: s.ResultOp(vlr)})
	if err != nil {
		t.Fatalf("response: %v\n", err)
	}
	if r.Components[0].OpCode != 13 {
		t.Fatalf("Return Result not resolved %+v\n", r.Components[0])
	}
	if r.Tree.Root.Find("Operation: Registration Notification (13)") == nil {
		t.Fatalf("Operation node missing\n")
	}

	st, ok = FromANSI(r, time.Unix(1, 0), hlr, vlr)
	if !ok || st.Tag != End {
		t.Fatalf("Unexpected state %+v %v\n", st, ok)
	}
	s.AddState(st)
	checkSizes(t, s, 0, 0, 0)
}

func TestANSIUnidirectional(t *testing.T) {
	m := &ansimap.Message{Package: ansimap.PackageUnidirectional}
	if _, ok := FromANSI(m, time.Time{}, vlr, hlr); ok {
		t.Fatalf("Unidirectional opens no transaction\n")
	}
}
