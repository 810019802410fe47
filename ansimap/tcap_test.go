package ansimap

import (
	"bytes"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/moiji-mobile/sigdissect/tree"
	"github.com/moiji-mobile/sigdissect/wire"
)

// enc builds a definite short form TLV from a tag and its parts.
func enc(tag []byte, parts ...[]byte) []byte {
	var body []byte
	for _, p := range parts {
		body = append(body, p...)
	}
	b := append([]byte{}, tag...)
	b = append(b, byte(len(body)))
	return append(b, body...)
}

func invoke(id byte, op byte, params ...[]byte) []byte {
	return enc([]byte{0xe9},
		enc([]byte{0xcf}, []byte{id}),
		enc([]byte{0xd1}, []byte{familyTIA41, op}),
		enc([]byte{0xf2}, params...))
}

func returnResult(corr byte, params ...[]byte) []byte {
	return enc([]byte{0xea},
		enc([]byte{0xcf}, []byte{corr}),
		enc([]byte{0xf2}, params...))
}

var (
	esn       = enc([]byte{0x89}, []byte{0x01, 0x02, 0x03, 0x04})
	myType    = enc([]byte{0x96}, []byte{0x05})
	localTID  = []byte{0x00, 0x00, 0x00, 0x2a}
	remoteTID = []byte{0x00, 0x00, 0x10, 0x01}
)

type recordingSubDissector struct {
	calls []string
}

func (r *recordingSubDissector) TryDissect(protocol string, selector int, data []byte) bool {
	r.calls = append(r.calls, protocol)
	return protocol != "nothing"
}

func TestInvokeMissingMandatory(t *testing.T) {
	buf := invoke(1, opRegistrationNotification, esn)
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, len(m.Components), 1)
	c := m.Components[0]
	assert.Check(t, is.Equal(c.Kind, KindInvoke))
	assert.Check(t, c.Last)
	assert.Check(t, is.Equal(c.InvokeID, 1))
	assert.Check(t, is.Equal(c.CorrelationID, -1))
	assert.Check(t, is.Equal(c.OpFamily, familyTIA41))
	assert.Check(t, is.Equal(c.OpCode, 13))

	root := m.Tree.Root
	assert.Equal(t, root.Children[0].Label, "Invoke (Last) - Registration Notification")
	assert.Equal(t, root.Children[0].Length, len(buf))
	missing := root.Markers(tree.MissingParameter)
	assert.Equal(t, len(missing), 3)
	var ids []any
	for _, n := range missing {
		ids = append(ids, n.Value)
		assert.Check(t, is.Equal(n.Length, 0))
		assert.Check(t, is.Equal(n.Offset, len(buf)))
	}
	assert.DeepEqual(t, ids, []any{uint32(pMSCID), uint32(pQualificationInfo), uint32(pSystemMyTypeCode)})
	assert.Equal(t, missing[0].Label, "Missing Mandatory Parameter: MSCID")
	assert.Equal(t, len(root.Markers(tree.Malformed)), 0)
}

func TestInvokeUnknownOperationIsOpaque(t *testing.T) {
	buf := invoke(2, 0xfe, esn)
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, m.Components[0].OpCode, 0xfe)
	assert.Equal(t, len(m.Tree.Root.Markers(tree.Opaque)), 1)
	assert.Equal(t, len(m.Tree.Root.Markers(tree.MissingParameter)), 0)
	assert.Assert(t, m.Tree.Root.Find("Electronic Serial Number") == nil)
	assert.Assert(t, m.Tree.Root.Find("Operation Code - Unknown ANSI-41 Operation (254)") != nil)
}

func TestQueryWithPermission(t *testing.T) {
	buf := enc([]byte{byte(PackageQueryWithPermission)},
		enc([]byte{tagTransactionID}, localTID),
		enc([]byte{tagComponentSeq}, invoke(1, opRegistrationNotification, esn)))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, m.Package, PackageQueryWithPermission)
	assert.DeepEqual(t, m.OriginatingID, localTID)
	assert.Assert(t, m.RespondingID == nil)
	assert.Equal(t, len(m.Components), 1)

	pkg := m.Tree.Root.Children[0]
	assert.Equal(t, pkg.Label, "Query With Permission")
	assert.Equal(t, pkg.Length, len(buf))
	assert.Assert(t, pkg.Find("Component Sequence (1)") != nil)
	assert.Assert(t, pkg.Find("Originating Transaction ID: 0000002a") != nil)
}

func TestResponseResolvesOperation(t *testing.T) {
	buf := enc([]byte{byte(PackageResponse)},
		enc([]byte{tagTransactionID}, localTID),
		enc([]byte{tagComponentSeq}, returnResult(1, myType)))

	var gotTID []byte
	var gotCorr int
	opts := Options{ResultOp: func(tid []byte, corr int) (int, bool) {
		gotTID, gotCorr = tid, corr
		return opRegistrationNotification, true
	}}
	m, err := Dissect(buf, opts)
	assert.NilError(t, err)
	assert.DeepEqual(t, gotTID, localTID)
	assert.Equal(t, gotCorr, 1)
	assert.DeepEqual(t, m.RespondingID, localTID)

	c := m.Components[0]
	assert.Equal(t, c.Kind, KindReturnResult)
	assert.Equal(t, c.CorrelationID, 1)
	assert.Equal(t, c.OpCode, 13)
	assert.Assert(t, m.Tree.Root.Find("Operation: Registration Notification (13)") != nil)
	assert.Equal(t, len(m.Tree.Root.Markers(tree.MissingParameter)), 0)
}

func TestResponseWithoutResultOp(t *testing.T) {
	buf := enc([]byte{byte(PackageResponse)},
		enc([]byte{tagTransactionID}, localTID),
		enc([]byte{tagComponentSeq}, returnResult(1)))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, m.Components[0].OpCode, -1)
	assert.Equal(t, len(m.Tree.Root.Markers(tree.MissingParameter)), 0)
}

func TestConversationCarriesBothIDs(t *testing.T) {
	buf := enc([]byte{byte(PackageConversationWithPermission)},
		enc([]byte{tagTransactionID}, remoteTID, localTID),
		enc([]byte{tagComponentSeq}, returnResult(3, myType)))
	var gotTID []byte
	opts := Options{ResultOp: func(tid []byte, corr int) (int, bool) {
		gotTID = tid
		return 0, false
	}}
	m, err := Dissect(buf, opts)
	assert.NilError(t, err)
	assert.DeepEqual(t, m.OriginatingID, remoteTID)
	assert.DeepEqual(t, m.RespondingID, localTID)
	assert.DeepEqual(t, gotTID, localTID)
}

func TestAbortCause(t *testing.T) {
	buf := enc([]byte{byte(PackageAbort)},
		enc([]byte{tagTransactionID}, localTID),
		enc([]byte{tagPAbortCause}, []byte{0x01}))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, m.Package, PackageAbort)
	assert.Assert(t, m.Tree.Root.Find("P-Abort Cause - Unrecognized Package Type") != nil)
}

func TestDialoguePortionIsOpaque(t *testing.T) {
	buf := enc([]byte{byte(PackageUnidirectional)},
		enc([]byte{tagTransactionID}),
		enc([]byte{tagDialoguePortion}, []byte{0xda, 0x01, 0x03}),
		enc([]byte{tagComponentSeq}, invoke(1, opRegistrationNotification, esn)))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	d := m.Tree.Root.Find("Dialogue Portion")
	assert.Assert(t, d != nil)
	assert.Equal(t, len(d.Markers(tree.Opaque)), 1)
	assert.Equal(t, len(m.Components), 1)
}

func TestReturnErrorAndReject(t *testing.T) {
	buf := append(
		enc([]byte{0xeb}, enc([]byte{0xcf}, []byte{5}), enc([]byte{0xd4}, []byte{0x81})),
		enc([]byte{0xec}, enc([]byte{0xcf}, []byte{6}), enc([]byte{0xd5}, []byte{0x01, 0x02}))...)
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, len(m.Components), 2)
	assert.Check(t, is.Equal(m.Components[0].Kind, KindReturnError))
	assert.Check(t, is.Equal(m.Components[0].ErrorCode, 0x81))
	assert.Check(t, is.Equal(m.Components[0].CorrelationID, 5))
	assert.Check(t, is.Equal(m.Components[1].Kind, KindReject))
	assert.Check(t, is.Equal(m.Components[1].Problem, 0x0102))
	assert.Assert(t, m.Tree.Root.Find("Error Code - Unrecognized MIN") != nil)
	assert.Assert(t, m.Tree.Root.Find("Problem Code - General - Incorrect Component Portion") != nil)
}

func TestUnknownComponentTagEndsWalk(t *testing.T) {
	buf := append(invoke(1, opRegistrationNotification, esn), 0x42, 0x01, 0x00)
	buf = append(buf, invoke(2, opRegistrationNotification, esn)...)
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, len(m.Components), 1)
	assert.Equal(t, len(m.Tree.Root.Markers(tree.Malformed)), 0)
}

func TestBoundsErrorIsMalformed(t *testing.T) {
	buf := []byte{0xe9, 0x20, 0xcf, 0x01, 0x01}
	m, err := Dissect(buf, Options{})
	assert.Assert(t, wire.IsFatal(err))
	malformed := m.Tree.Root.Markers(tree.Malformed)
	assert.Equal(t, len(malformed), 1)
	assert.Equal(t, malformed[0].Label, "Malformed Packet")
	assert.Assert(t, m.Tree.Handoffs == nil)
}

func TestParameterOverrunIsMalformed(t *testing.T) {
	// The parameter claims more octets than its parameter set holds.
	bad := []byte{0x89, 0x06, 0x01, 0x02, 0x03, 0x04}
	buf := invoke(1, opRegistrationNotification, bad)
	buf = append(buf, 0x00, 0x00)
	_, err := Dissect(buf, Options{})
	assert.Assert(t, wire.IsFatal(err))
}

func TestIndefiniteComponent(t *testing.T) {
	var buf []byte
	buf = append(buf, 0xe9, 0x80)
	buf = append(buf, enc([]byte{0xcf}, []byte{1})...)
	buf = append(buf, enc([]byte{0xd1}, []byte{familyTIA41, opRegistrationNotification})...)
	buf = append(buf, 0xf2, 0x80)
	buf = append(buf, esn...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00)
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	comp := m.Tree.Root.Children[0]
	assert.Equal(t, comp.Length, len(buf))
	var eoc int
	for _, l := range labels(comp) {
		if l == "End of Contents" {
			eoc++
		}
	}
	assert.Equal(t, eoc, 2)
}

// bearerAt returns the offset of the SMS Bearer Data contents in buf. The
// whole parameter is searched as the contents alone may also match an
// identifier or length octet.
func bearerAt(buf, data []byte) int {
	tlv := append([]byte{0x9f, 0x69, byte(len(data))}, data...)
	return bytes.Index(buf, tlv) + 3
}

func TestTeleserviceHandoff(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0xcc}
	buf := invoke(1, 53,
		enc([]byte{0x9f, 0x74}, []byte{0x10, 0x02}),
		enc([]byte{0x9f, 0x69}, data))
	sub := &recordingSubDissector{}
	m, err := Dissect(buf, Options{SubDissector: sub})
	assert.NilError(t, err)
	assert.DeepEqual(t, m.Tree.Handoffs, []tree.Handoff{{
		Protocol:  ProtoTeleservice,
		Selector:  4098,
		Offset:    bearerAt(buf, data),
		Length:    3,
		Dissected: true,
	}})
	assert.DeepEqual(t, sub.calls, []string{ProtoTeleservice})
}

func TestServiceIndicatorAfterBearerData(t *testing.T) {
	// The flag arrives after the bearer data and still selects IS-683.
	data := []byte{0x01, 0x02}
	buf := invoke(1, 53,
		enc([]byte{0x9f, 0x74}, []byte{0x10, 0x02}),
		enc([]byte{0x9f, 0x69}, data),
		enc([]byte{0x9f, 0x81, 0x41}, []byte{serviceCDMAOTASP}))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, len(m.Tree.Handoffs), 1)
	h := m.Tree.Handoffs[0]
	assert.Equal(t, h.Protocol, ProtoOTA)
	assert.Equal(t, h.Selector, DirectionForward)
	assert.Equal(t, h.Offset, bearerAt(buf, data))
	assert.Check(t, !h.Dissected)
}

func TestOTASPRequestHandoff(t *testing.T) {
	data := []byte{0x07, 0x08}
	buf := invoke(1, opOTASPRequest, enc([]byte{0x9f, 0x69}, data))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, len(m.Tree.Handoffs), 1)
	assert.Equal(t, m.Tree.Handoffs[0].Protocol, ProtoOTA)
	assert.Assert(t, m.Context.OTA)
}

func TestPositionDeterminationReverse(t *testing.T) {
	data := []byte{0x09}
	buf := enc([]byte{byte(PackageResponse)},
		enc([]byte{tagTransactionID}, localTID),
		enc([]byte{tagComponentSeq}, returnResult(1,
			enc([]byte{0x9f, 0x81, 0x41}, []byte{serviceCDMAPDS}),
			enc([]byte{0x9f, 0x69}, data))))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.DeepEqual(t, m.Tree.Handoffs, []tree.Handoff{{
		Protocol: ProtoPLD,
		Selector: DirectionReverse,
		Offset:   bearerAt(buf, data),
		Length:   1,
	}})
}

func TestBearerDataWithoutSelector(t *testing.T) {
	buf := invoke(1, 53, enc([]byte{0x9f, 0x69}, []byte{0x01}))
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	assert.Equal(t, len(m.Tree.Handoffs), 0)
}

func TestFormat(t *testing.T) {
	buf := invoke(1, opRegistrationNotification, esn, myType)
	m, err := Dissect(buf, Options{})
	assert.NilError(t, err)
	var out strings.Builder
	assert.NilError(t, tree.Format(&out, m.Tree))
	assert.Assert(t, is.Contains(out.String(), "Registration Notification"))
	assert.Assert(t, is.Contains(out.String(), "Missing Mandatory Parameter: MSCID"))
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, OperationName(13), "Registration Notification")
	assert.Equal(t, OperationName(56), "OTASP Request")
	assert.Equal(t, OperationName(200), "Unknown ANSI-41 Operation (200)")
}

func TestIsANSI(t *testing.T) {
	assert.Check(t, IsANSI([]byte{0xe2, 0x00}))
	assert.Check(t, IsANSI([]byte{0xf6}))
	assert.Check(t, !IsANSI([]byte{0x62}))
	assert.Check(t, !IsANSI(nil))
}
