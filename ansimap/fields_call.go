package ansimap

import "fmt"

func paramStationClassMark(s *span) string {
	if s.unexpected(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	power := []string{"Class I, 4 dBW (2.5 W)", "Class II, 0 dBW (1 W)", "Class III, -4 dBW (0.4 W)", "Reserved"}[v&0x03]
	s.bitfield(off, 1, v, 0xe0, "Reserved")
	s.bitfield(off, 1, v, 0x10, "%s", choose(v&0x10 != 0, "25 MHz Bandwidth", "20 MHz Bandwidth"))
	s.bitfield(off, 1, v, 0x08, "Extended Address: %s", choose(v&0x08 != 0, "10 or 34 digit", "10 digit"))
	s.bitfield(off, 1, v, 0x04, "%s", choose(v&0x04 != 0, "Discontinuous", "Continuous"))
	s.bitfield(off, 1, v, 0x03, "Power: %s", power)
	return ""
}

func paramCDMAStationClassMark(s *span) string {
	if s.unexpected(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	power := []string{"Class I", "Class II", "Class III", "Reserved"}[v&0x03]
	s.bitfield(off, 1, v, 0x80, "Reserved")
	s.bitfield(off, 1, v, 0x40, "Dual-mode Indicator(DMI): %s", choose(v&0x40 != 0, "Dual-mode CDMA", "CDMA only"))
	s.bitfield(off, 1, v, 0x20, "Slotted Mode Indicator: %s", choose(v&0x20 != 0, "slotted capable", "slotted incapable"))
	s.bitfield(off, 1, v, 0x18, "Reserved")
	s.bitfield(off, 1, v, 0x04, "Analog Transmission: %s", choose(v&0x04 != 0, "discontinuous", "continuous"))
	s.bitfield(off, 1, v, 0x03, "Power Class: %s", power)
	return ""
}

var featureStatus = []string{"Not used", "Not authorized", "Authorized but de-activated", "Authorized and activated"}

// paramCallingFeaturesIndicator decodes pairs of feature activity bits,
// four features per octet.
func paramCallingFeaturesIndicator(s *span) string {
	if s.short(2) {
		return ""
	}
	names := [][4]string{
		{"Call Waiting Feature Activity (CW-FA)", "Call Forwarding No Answer FA (CFNA-FA)", "Call Forwarding Busy FA (CFB-FA)", "Call Forwarding Unconditional FA (CFU-FA)"},
		{"Call Transfer FA (CT-FA)", "Voice Privacy FA (VP-FA)", "Call Delivery FA (CD-FA)", "Three-Way Calling FA (3WC-FA)"},
		{"Calling Number ID Restriction Override FA (CNIROver-FA)", "Calling Number ID Restriction FA (CNIR-FA)", "Two number Calling Number ID Presentation FA (CNIP2-FA)", "One number Calling Number ID Presentation FA (CNIP1-FA)"},
		{"USCF divert to voice mail FA (USCFvm-FA)", "Answer Hold FA (AH-FA)", "Data Privacy Feature Activity DP-FA", "Priority Call Waiting FA (PCW-FA)"},
		{"CDMA-Concurrent Service FA (CCS-FA)", "CDMA-Packet Data Service FA (CPDS-FA)", "USCF divert to network registered DN FA (USCFnr-FA)", "USCF divert to mobile station provided DN FA (USCFms-FA)"},
		{"Reserved", "TDMA Enhanced Privacy and Encryption FA (TDMA EPE-FA)", "Reserved", "Reserved"},
	}
	for i := 0; s.remaining() > 0; i++ {
		off := s.offset()
		v := s.uint(1)
		if i >= len(names) {
			s.add(off, 1, "Reserved")
			continue
		}
		for j, name := range names[i] {
			shift := uint(6 - 2*j)
			s.bitfield(off, 1, v, 0x03<<shift, "%s: %s", name, featureStatus[(v>>shift)&0x03])
		}
	}
	return ""
}

// paramFaultyParameter carries the identifier of the offending parameter.
func paramFaultyParameter(s *span) string {
	off := s.offset()
	c, err := s.c.Limit(s.remaining())
	if err != nil {
		s.fail(err)
		return ""
	}
	p, err := ResolveParameter(c)
	if err != nil {
		s.octetString("Parameter ID")
		return ""
	}
	s.c.Seek(c.Offset())
	s.t.AddValue(off, p.Width, fmt.Sprintf("Parameter ID: %#x (%s)", p.ID, p.Name), p.ID)
	return " - " + p.Name
}

func paramTDMACallMode(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xe0, "Reserved")
	s.bitfield(off, 1, v, 0x10, "Extended modulation and framing: %s", choose(v&0x10 != 0, "acceptable", "not acceptable"))
	s.bitfield(off, 1, v, 0x08, "Other voice coding: %s", choose(v&0x08 != 0, "acceptable", "not acceptable"))
	s.bitfield(off, 1, v, 0x04, "Other DQPSK channel: %s", choose(v&0x04 != 0, "acceptable", "not acceptable"))
	s.bitfield(off, 1, v, 0x02, "Half Rate digital traffic channel: %s", choose(v&0x02 != 0, "acceptable", "not acceptable"))
	s.bitfield(off, 1, v, 0x01, "Full Rate digital traffic channel: %s", choose(v&0x01 != 0, "acceptable", "not acceptable"))
	return ""
}

func paramTDMAChannelData(s *span) string {
	if s.short(5) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xe0, "Reserved")
	s.bitfield(off, 1, v, 0x1f, "Digital Verification Color Code (DVCC) high bits: %d", v&0x1f)
	s.field(1, "DVCC")
	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0xf0, "Time Slot and Rate indicator (TSR): %d", v>>4)
	s.bitfield(off, 1, v, 0x0f, "Reserved")
	s.field(2, "Channel Number (CHNO)")
	return ""
}

func paramChannelData(s *span) string {
	if s.short(3) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xc0, "SAT Color Code (SCC): %d", v>>6)
	s.bitfield(off, 1, v, 0x38, "Reserved")
	s.bitfield(off, 1, v, 0x04, "Discontinuous Transmission Mode (DTX): %s", choose(v&0x04 != 0, "enabled", "disabled"))
	s.bitfield(off, 1, v, 0x03, "Voice Mobile Attenuation Code (VMAC): %d", v&0x03)
	s.field(2, "Channel Number (CHNO)")
	return ""
}

func paramControlChannelData(s *span) string {
	if s.short(4) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xfc, "Digital Color Code (DCC): %d", v>>2)
	s.bitfield(off, 1, v, 0x03, "Reserved")
	s.field(1, "Control Mobile Attenuation Code (CMAC)")
	s.field(2, "Channel Number (CHNO)")
	return ""
}

func paramSystemAccessData(s *span) string {
	if s.short(5) {
		return ""
	}
	s.field(2, "MSCID Market ID")
	s.field(1, "MSCID Switch Number")
	s.field(2, "Serving Cell ID")
	return ""
}

func paramAlertCode(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xc0, "Pitch: %s", pitchNames[v>>6])
	s.bitfield(off, 1, v, 0x3f, "Cadence: %s", lookup(cadenceNames, v&0x3f, "Reserved"))
	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0xf8, "Reserved")
	s.bitfield(off, 1, v, 0x07, "Alert Action: %s", lookup(alertActionNames, v&0x07, "Reserved"))
	return ""
}

func paramAnnouncementCode(s *span) string {
	if s.short(3) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	tone := lookup(toneNames, v, "Reserved")
	s.t.AddValue(off, 1, "Tone: "+tone, v)

	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0xf0, "Reserved")
	class := "Reserved"
	switch v & 0x0f {
	case 0:
		class = "Concurrent"
	case 1:
		class = "Sequential"
	}
	s.bitfield(off, 1, v, 0x0f, "Class: %s", class)

	off = s.offset()
	v = s.uint(1)
	s.t.AddValue(off, 1, "Standard Announcement: "+lookup(standardAnnouncementNames, v, "Reserved"), v)
	if s.remaining() > 0 {
		s.field(1, "Custom Announcement")
	}
	return " - " + tone
}

func paramMessageWaitingNotificationCount(s *span) string {
	if s.short(2) {
		return ""
	}
	for s.remaining() >= 2 {
		off := s.offset()
		v := s.uint(1)
		s.t.AddValue(off, 1, "Type of messages: "+lookup(messageWaitingTypeNames, v, "Reserved"), v)
		off = s.offset()
		n := s.uint(1)
		switch n {
		case 0:
			s.add(off, 1, "No messages are waiting")
		case 254:
			s.add(off, 1, "254 or more messages are waiting")
		case 255:
			s.add(off, 1, "An unknown number of messages are waiting (greater than zero)")
		default:
			s.add(off, 1, "%d messages are waiting", n)
		}
	}
	return ""
}

func paramOriginationTriggers(s *span) string {
	if s.short(4) {
		return ""
	}
	groups := [][8]string{
		{"Revertive Call", "Double Introducing Star", "Single Introducing Star", "Reserved", "Intra-LATA Toll", "Local", "International", "All Origination"},
		{"Reserved", "Reserved", "Reserved", "Double Pound", "Single Pound", "Prior Agreement", "Unrecognized Number", "World Zone"},
		{"7 digits", "6 digits", "5 digits", "4 digits", "3 digits", "2 digits", "1 digit", "No digits"},
		{"15 digits", "14 digits", "13 digits", "12 digits", "11 digits", "10 digits", "9 digits", "8 digits"},
	}
	triggerBits(s, groups)
	return ""
}

func paramTerminationTriggers(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xc0, "Reserved")
	s.bitfield(off, 1, v, 0x30, "No Page Response: %d", (v&0x30)>>4)
	s.bitfield(off, 1, v, 0x0c, "No Answer: %d", (v&0x0c)>>2)
	s.bitfield(off, 1, v, 0x03, "Busy: %d", v&0x03)
	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0xf0, "Reserved")
	s.bitfield(off, 1, v, 0x0c, "None Reachable: %d", (v&0x0c)>>2)
	s.bitfield(off, 1, v, 0x03, "Routing Failure: %d", v&0x03)
	return ""
}

// triggerBits shows one trigger per bit, most significant bit first.
func triggerBits(s *span, groups [][8]string) {
	for i := 0; s.remaining() > 0; i++ {
		off := s.offset()
		v := s.uint(1)
		if i >= len(groups) {
			s.add(off, 1, "Reserved")
			continue
		}
		for j, name := range groups[i] {
			m := uint64(0x80) >> uint(j)
			s.bitfield(off, 1, v, m, "%s: %s", name, choose(v&m != 0, "Launch", "Do not launch"))
		}
	}
}

func paramOneTimeFeatureIndicator(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xfc, "Reserved")
	s.bitfield(off, 1, v, 0x03, "MWN Pip Tone (MWNPT): %s", []string{"Ignore", "No tone", "Pip tone", "Reserved"}[v&0x03])
	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0xfc, "Reserved")
	s.bitfield(off, 1, v, 0x03, "Message Waiting Notification (MWN): %s", []string{"Ignore", "No MWN", "Pip Tone MWN", "Reserved"}[v&0x03])
	return ""
}

// paramDigitCollectionControl decodes the break character flags, digit
// limits and the interdigit timers.
func paramDigitCollectionControl(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0x80, "Break (BRK): %s", choose(v&0x80 != 0, "break in", "no break"))
	s.bitfield(off, 1, v, 0x40, "Type Ahead (TA): %s", choose(v&0x40 != 0, "buffer", "no type ahead"))
	s.bitfield(off, 1, v, 0x20, "Reserved")
	s.bitfield(off, 1, v, 0x1f, "Maximum Collect: %d", v&0x1f)
	if s.remaining() == 0 {
		return ""
	}
	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0xe0, "Reserved")
	s.bitfield(off, 1, v, 0x1f, "Minimum Collect: %d", v&0x1f)
	for _, label := range []string{"Maximum Interaction Time", "Initial Interdigit Time", "Normal Interdigit Time"} {
		if s.remaining() == 0 {
			return ""
		}
		timerField(s, label)
	}
	if s.remaining() > 0 {
		s.octetString("Clear Digits, Enter Digits and Special Digits")
	}
	return ""
}

// timerField shows a one octet timer. The octet is scaled by 10 as it has
// always been shown; whether the unit is 100 ms (divide by 10 instead) is
// not settled.
func timerField(s *span, label string) {
	off := s.offset()
	v := s.uint(1)
	s.t.AddValue(off, 1, fmt.Sprintf("%s: %d seconds", label, v*10), v)
}

func paramNoAnswerTime(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.t.AddValue(off, 1, fmt.Sprintf("No Answer Time: %d seconds", v), v)
	return fmt.Sprintf(" - %d s", v)
}

func paramTerminationAccessType(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := lookup(terminationAccessTypeNames, v, "")
	if name == "" {
		switch {
		case v >= 2 && v <= 127:
			name = "Reserved for controlling system assignment"
		case v >= 128 && v <= 160:
			name = "Reserved for protocol extension"
		default:
			name = "Reserved"
		}
	}
	s.t.AddValue(off, 1, "Termination Access Type: "+name, v)
	return ""
}

// paramTimeDateOffset is the signed offset of local time in minutes.
func paramTimeDateOffset(s *span) string {
	if s.unexpected(2) {
		return ""
	}
	off := s.offset()
	v := int16(s.uint(2))
	s.t.AddValue(off, 2, fmt.Sprintf("Offset: %d minutes", v), v)
	return ""
}

// paramTimeOfDay is the UTC time of day in tenths of seconds.
func paramTimeOfDay(s *span) string {
	if s.unexpected(4) {
		return ""
	}
	off := s.offset()
	v := int32(s.uint(4))
	h, m, sec := v/36000, (v/600)%60, (v/10)%60
	s.t.AddValue(off, 4, fmt.Sprintf("(UTC) (in tenths of seconds - 1): %d (%02d:%02d:%02d)", v, h, m, sec), v)
	return ""
}

func paramLegInformation(s *span) string {
	if s.short(4) {
		return ""
	}
	s.field(4, "Leg Identifier")
	return ""
}

func paramRestrictionDigits(s *span) string {
	return paramDigits(s)
}

// paramPilotBillingID is a Billing ID followed by the pilot's leg number.
func paramPilotBillingID(s *span) string {
	if s.short(7) {
		return ""
	}
	paramBillingID(s)
	if s.remaining() > 0 {
		s.field(1, "Leg Number")
	}
	return ""
}

// paramCallingPartyName decodes the availability and presentation octet
// followed by IA5 text.
func paramCallingPartyName(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xe0, "Fixed: 0 0 1")
	s.bitfield(off, 1, v, 0x10, "Availability: %s", choose(v&0x10 != 0, "Name not available", "Name available/unknown"))
	s.bitfield(off, 1, v, 0x0c, "Reserved")
	s.bitfield(off, 1, v, 0x03, "Presentation Status: %s", []string{"Presentation allowed", "Presentation restricted", "Blocking toggle", "No indication"}[v&0x03])
	if s.remaining() > 0 {
		off = s.offset()
		name := ia5(s.rest())
		s.add(off, s.offset()-off, "IA5 Digits: %s", name)
		return " - " + name
	}
	return ""
}

// paramMSLocation decodes latitude, longitude and resolution.
func paramMSLocation(s *span) string {
	if s.short(7) {
		return ""
	}
	off := s.offset()
	lat := s.uint(3)
	s.add(off, 3, "Latitude in tenths of a second: %d", lat)
	off = s.offset()
	lon := s.uint(3)
	s.add(off, 3, "Longitude in tenths of a second: %d", lon)
	s.field(1, "Resolution in units of 1 foot")
	return ""
}

func paramCDMAOneWayDelay(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(2)
	s.t.AddValue(off, 2, fmt.Sprintf("One Way Delay: %d (in units of 100 nsec)", v), v)
	return ""
}

// paramPACAIndicator decodes the priority access and channel assignment
// level and its flags.
func paramPACAIndicator(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xe0, "Reserved")
	s.bitfield(off, 1, v, 0x1e, "PACA Level: %s", lookup(pacaIndicatorLevelNames, (v&0x1e)>>1, "Reserved"))
	s.bitfield(off, 1, v, 0x01, "PACA %s", choose(v&0x01 != 0, "is permanently activated", "is not permanently activated"))
	return ""
}

// decodeEnumWithFallback resolves names for values whose upper range is
// reserved for extension rather than unused.
func decodeEnumWithFallback(label string, table map[uint64]string, ext uint64) decodeFunc {
	return func(s *span) string {
		if s.short(1) {
			return ""
		}
		off := s.offset()
		v := s.uint(1)
		name, ok := table[v]
		if !ok {
			name = choose(v >= ext, "Reserved for protocol extension", "Reserved")
		}
		s.t.AddValue(off, 1, fmt.Sprintf("%s: %s (%d)", label, name, v), v)
		return " - " + name
	}
}
