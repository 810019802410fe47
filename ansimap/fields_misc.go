package ansimap

import "fmt"

var burstCodes = []string{
	"Transmit normal burst after cell-to-cell handoff",
	"Transmit normal burst after handoff within cell",
	"Transmit shortened burst after cell-to-cell handoff",
	"Reserved, treat with RETURN ERROR",
}

func paramTDMABurstIndicator(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0x80, "Reserved")
	s.bitfield(off, 1, v, 0x7c, "Time Alignment Offset (TA): %d", (v&0x7c)>>2)
	s.bitfield(off, 1, v, 0x03, "Burst Code: %s", burstCodes[v&0x03])
	return ""
}

func paramBorderCellAccess(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := "Reserved"
	switch v {
	case 0:
		name = "Not used"
	case 1:
		name = "Border Cell Access"
	}
	s.t.AddValue(off, 1, "Indication: "+name, v)
	return ""
}

func paramCDMASearchWindow(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xf0, "Reserved")
	s.bitfield(off, 1, v, 0x0f, "Value: %d", v&0x0f)
	return ""
}

// paramDeniedAuthorizationPeriod is a period and a value like
// Authorization Period, with its own period codes.
func paramDeniedAuthorizationPeriod(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := "Reserved"
	switch v {
	case 0:
		name = "Not used"
	case 1:
		name = "Per Call. Re-authorization should be attempted on the next call attempt"
	case 2:
		name = "Hours"
	case 3:
		name = "Days"
	case 4:
		name = "Weeks"
	case 5:
		name = "Per Agreement"
	case 6:
		name = "Reserved"
	case 7:
		name = "Number of calls. Re-authorization should be attempted after this number of (rejected) call attempts"
	case 8:
		name = "Minutes"
	}
	s.t.AddValue(off, 1, "Period: "+name, v)
	s.field(1, "Value")
	return " - " + name
}

func paramConferenceCallingIndicator(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	var name string
	switch v {
	case 0:
		name = "Not specified"
	case 255:
		name = "Unlimited number of conferees"
	default:
		name = fmt.Sprintf("%d Conferees", v)
	}
	s.t.AddValue(off, 1, "Maximum Number of Conferees: "+name, v)
	return ""
}

func paramGroupInformation(s *span) string {
	if s.short(4) {
		return ""
	}
	s.field(4, "Value")
	return ""
}

func paramRandomValidTime(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	if v == 0 {
		s.t.AddValue(off, 1, "RAND shall not be stored", v)
		return ""
	}
	s.t.AddValue(off, 1, fmt.Sprintf("RAND may be used for %d minutes", v), v)
	return ""
}

func paramInterSwitchCount(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.t.AddValue(off, 1, fmt.Sprintf("Count: %d", v), v)
	return fmt.Sprintf(" - %d", v)
}

// paramTriggerCapability lists the WIN triggers the system supports, one
// bit each.
func paramTriggerCapability(s *span) string {
	if s.short(1) {
		return ""
	}
	groups := [][8]string{
		{"O_Answer (OA)", "O_Disconnect (ODISC)", "Called_Routing_Address_Available (CdRAA)", "Calling_Routing_Address_Available (CgRAA)", "All_Calls (ALL)", "Revertive_Call (RvtC)", "Advanced_Termination (AT)", "Initial_Origination (INIT)"},
		{"T_Answer (TA)", "T_No_Answer (TNA)", "T_Disconnect (TDISC)", "T_Busy (TBusy)", "Terminating_Resource_Available (TRA)", "O_Called_Party_Busy (OBSY)", "O_No_Answer (ONA)", "Prior_Agreement (PA)"},
		{"Reserved", "Reserved", "Reserved", "Reserved", "Reserved", "Reserved", "Unknown_Directory_Number (UDN)", "Initial_Termination (IT)"},
	}
	for i := 0; s.remaining() > 0; i++ {
		off := s.offset()
		v := s.uint(1)
		if i >= len(groups) {
			s.add(off, 1, "Reserved")
			continue
		}
		for j, name := range groups[i] {
			m := uint64(0x80) >> uint(j)
			s.bitfield(off, 1, v, m, "%s: %s", name, choose(v&m != 0, "Trigger can be armed", "Trigger cannot be armed"))
		}
	}
	return ""
}

func paramWINOperationsCapability(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xf8, "Reserved")
	s.bitfield(off, 1, v, 0x04, "PositionRequest (POS): %s", choose(v&0x04 != 0, "Sender is capable", "Sender is not capable"))
	s.bitfield(off, 1, v, 0x02, "CallControlDirective (CCDIR): %s", choose(v&0x02 != 0, "Sender is capable", "Sender is not capable"))
	s.bitfield(off, 1, v, 0x01, "ConnectResource (CONN): %s", choose(v&0x01 != 0, "Sender is capable", "Sender is not capable"))
	for s.remaining() > 0 {
		off = s.offset()
		v = s.uint(1)
		s.bitfield(off, 1, v, 0xff, "Reserved")
	}
	return ""
}

func paramTriggerType(s *span) string {
	return decodeEnumWithFallback("Trigger Type", triggerTypeNames, 220)(s)
}

func paramSetupResult(s *span) string {
	return enumParam("Setup Result", setupResultNames)(s)
}

// paramGlobalTitle is an SCCP global title with the translation type
// first; the remaining address octets are shown as they are.
func paramGlobalTitle(s *span) string {
	if s.short(1) {
		return ""
	}
	s.field(1, "Translation Type")
	if s.remaining() > 0 {
		s.octetString("Address Information")
	}
	return ""
}

func paramPrivateSpecializedResource(s *span) string {
	return octetParam("Resource")(s)
}

func paramSpecializedResource(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := "Reserved"
	switch v {
	case 0:
		name = "Not used"
	case 1:
		name = "DTMF tone detector"
	case 2:
		name = "Automatic Speech Recognition - Speaker Independent - Digits"
	case 3:
		name = "Automatic Speech Recognition - Speaker Independent - Speech User Interface Version 1"
	}
	s.t.AddValue(off, 1, "Resource Type: "+name, v)
	return " - " + name
}

func paramAllOrNone(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := []string{"Not used", "All changes must succeed or none should be applied", "Treat each change independently"}
	n := "Reserved"
	if v < uint64(len(name)) {
		n = name[v]
	}
	s.t.AddValue(off, 1, n, v)
	return ""
}

func paramChange(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := []string{"Not used", "Set Data Item to Default Value", "Add Data Item", "Delete Data Item", "Replace Data Item with associated DataValue"}
	n := "Reserved"
	if v < uint64(len(name)) {
		n = name[v]
	}
	s.t.AddValue(off, 1, n, v)
	return " - " + n
}

func paramDataResult(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := []string{"Not used", "Successful", "Unsuccessful, unspecified", "Unsuccessful, no default value available"}
	n := "Reserved"
	if v < uint64(len(name)) {
		n = name[v]
	}
	s.t.AddValue(off, 1, n, v)
	return " - " + n
}

func paramScriptResult(s *span) string {
	return octetParam("Script Result")(s)
}

func paramFailureCause(s *span) string {
	return enumParam("Failure Cause", failureCauseNames)(s)
}

func paramFailureType(s *span) string {
	return enumParam("Failure Type", failureTypeNames)(s)
}

func paramOTASPResultCode(s *span) string {
	return decodeEnumWithFallback("Result Code", otaspResultCodeNames, 7)(s)
}

func paramAKeyProtocolVersion(s *span) string {
	for s.remaining() > 0 {
		off := s.offset()
		v := s.uint(1)
		name := "Reserved"
		switch v {
		case 0:
			name = "Not used"
		case 1:
			name = "A-key Generation not supported"
		case 2:
			name = "Diffie Hellman with 768-bit modulus, 160-bit primitive, and 160-bit exponents"
		case 3:
			name = "Diffie Hellman with 512-bit modulus, 160-bit primitive, and 160-bit exponents"
		case 4:
			name = "Diffie Hellman with 768-bit modulus, 32-bit primitive, and 160-bit exponents"
		}
		s.t.AddValue(off, 1, "A-Key Protocol Version: "+name, v)
	}
	return ""
}

func paramReauthenticationReport(s *span) string {
	return enumParam("Reauthentication Report", updateReportNames)(s)
}

func paramSignalingMessageEncryptionReport(s *span) string {
	return enumParam("Signaling Message Encryption Report", signalingEncryptionNames)(s)
}

func paramVoicePrivacyReport(s *span) string {
	return enumParam("Voice Privacy Report", voicePrivacyReportNames)(s)
}

func paramTemporaryReferenceNumber(s *span) string {
	return paramDigits(s)
}
