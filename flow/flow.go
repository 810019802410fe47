// Package flow follows TCAP transactions across messages. A Begin records
// the invokes a transaction carries; a later Continue or End of the same
// transaction can then learn which operation a Return Result answers.
// Messages of one transaction may arrive out of order as the two
// directions can take different paths to the capture point.
package flow

import (
	"encoding/hex"
	"strconv"
	"time"

	"gopkg.in/alexcesaro/statsd.v2"
)

// Tag is the transaction phase of a message.
type Tag int

const (
	Begin Tag = iota + 1
	Continue
	End
	Abort
)

func (t Tag) String() string {
	switch t {
	case Begin:
		return "BEGIN"
	case Continue:
		return "CONTINUE"
	case End:
		return "END"
	case Abort:
		return "ABORT"
	default:
		return strconv.Itoa(int(t))
	}
}

// Address is the SCCP party a transaction ID belongs to.
type Address struct {
	Number string
	SSN    uint8
}

// Invoke is an invoke component seen in a transaction.
type Invoke struct {
	InvokeID int
	OpCode   int
}

// State is what the tracker needs to know about one message.
type State struct {
	Time    time.Time
	Calling Address
	Called  Address
	Tag     Tag
	OTID    []byte
	DTID    []byte
	Invokes []Invoke
}

// DialogueStart is a Begin waiting for its first answer.
type DialogueStart struct {
	CaptTime  time.Time
	AddedTime time.Time
	Invokes   []Invoke
	OTID      []byte
}

// EarlyState is an answer that arrived before its Begin.
type EarlyState struct {
	State     State
	AddedTime time.Time
	CaptTime  time.Time
}

// Ended is a transaction that was answered with a Continue and may still
// see more messages.
type Ended struct {
	EndedTime time.Time
	Invokes   []Invoke
}

// Tracker holds the transactions in flight. It is not safe for concurrent
// use.
type Tracker struct {
	Sessions     map[string]DialogueStart
	EarlyPending map[string]EarlyState
	Old          map[string]Ended

	Statsd *statsd.Client

	Scale                 time.Duration
	ExpireSessionDuration time.Duration
	ExpirePendingDuration time.Duration
	ExpireEndedDuration   time.Duration

	// Now is the clock used for expiry.
	Now func() time.Time
}

// NewTracker returns a tracker with the default expiry durations. A nil
// client mutes the counters.
func NewTracker(client *statsd.Client) *Tracker {
	if client == nil {
		client, _ = statsd.New(statsd.Mute(true))
	}
	return &Tracker{
		Sessions:              make(map[string]DialogueStart),
		EarlyPending:          make(map[string]EarlyState),
		Old:                   make(map[string]Ended),
		Statsd:                client,
		Scale:                 time.Millisecond,
		ExpireSessionDuration: 10 * time.Second,
		ExpirePendingDuration: 2 * time.Second,
		ExpireEndedDuration:   10 * time.Second,
		Now:                   time.Now,
	}
}

func buildKey(a Address, tid []byte) string {
	return a.Number + "-" + strconv.Itoa(int(a.SSN)) + "-" + hex.EncodeToString(tid)
}

func (t *Tracker) removeOldSessions() {
	now := t.Now()

	for key, value := range t.Sessions {
		if now.Sub(value.AddedTime) > t.ExpireSessionDuration {
			t.Statsd.Increment("flow.expiredState")
			delete(t.Sessions, key)
		}
	}

	for key, value := range t.EarlyPending {
		if now.Sub(value.AddedTime) > t.ExpirePendingDuration {
			t.Statsd.Increment("flow.expiredEarlyPending")
			delete(t.EarlyPending, key)
		}
	}

	for key, value := range t.Old {
		if now.Sub(value.EndedTime) > t.ExpireEndedDuration {
			t.Statsd.Increment("flow.removedOldState")
			delete(t.Old, key)
		}
	}
}

// AddState feeds one message to the tracker.
func (t *Tracker) AddState(s State) {
	switch s.Tag {
	case Begin:
		t.addState(s)
	case Abort:
		t.Statsd.Increment("flow.abort")
		fallthrough
	case End, Continue:
		t.removeState(s)
	}
}

func (t *Tracker) addState(s State) {
	key := buildKey(s.Calling, s.OTID)
	t.Sessions[key] = DialogueStart{
		AddedTime: t.Now(),
		CaptTime:  s.Time,
		Invokes:   s.Invokes,
		OTID:      s.OTID,
	}
	t.Statsd.Increment("flow.newState")

	delete(t.Old, key)

	// A pending answer can be applied now.
	if early, ok := t.EarlyPending[key]; ok {
		delete(t.EarlyPending, key)
		t.removeState(early.State)
	}

	t.removeOldSessions()
}

func (t *Tracker) doRemoveState(key string, s State) bool {
	val, ok := t.Sessions[key]
	if !ok {
		return false
	}

	diff := s.Time.Sub(val.CaptTime)
	delete(t.Sessions, key)
	t.Statsd.Increment("flow.delState")
	t.Statsd.Timing("flow.latency", float64(diff/t.Scale))

	delete(t.EarlyPending, key)

	if s.Tag == Continue {
		// More is to come.
		t.Old[key] = Ended{EndedTime: t.Now(), Invokes: val.Invokes}
	}

	t.removeOldSessions()
	return true
}

func (t *Tracker) removeState(s State) {
	key := buildKey(s.Called, s.DTID)
	if t.doRemoveState(key, s) {
		return
	}

	// Not a session but maybe an answered one that is over now. When
	// both sides send an End the second one ends up pending.
	if _, isOld := t.Old[key]; isOld {
		if s.Tag == End || s.Tag == Abort {
			delete(t.Old, key)
		}
		return
	}
	if _, ok := t.EarlyPending[key]; !ok {
		t.EarlyPending[key] = EarlyState{
			State:     s,
			AddedTime: t.Now(),
			CaptTime:  s.Time,
		}
	}
}

// Lookup returns the operation of the invoke invokeID in the transaction
// the called party knows as tid.
func (t *Tracker) Lookup(called Address, tid []byte, invokeID int) (int, bool) {
	key := buildKey(called, tid)
	var invokes []Invoke
	if s, ok := t.Sessions[key]; ok {
		invokes = s.Invokes
	} else if o, ok := t.Old[key]; ok {
		invokes = o.Invokes
	}
	for _, inv := range invokes {
		if inv.InvokeID == invokeID {
			return inv.OpCode, true
		}
	}
	return 0, false
}

// ResultOp returns a lookup bound to the called party of a message, in
// the shape ansimap.Options.ResultOp takes.
func (t *Tracker) ResultOp(called Address) func(tid []byte, correlationID int) (int, bool) {
	return func(tid []byte, correlationID int) (int, bool) {
		op, ok := t.Lookup(called, tid, correlationID)
		if ok {
			t.Statsd.Increment("flow.resultResolved")
		}
		return op, ok
	}
}
