package ansimap

import "fmt"

func paramCDMACallMode(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0x80, "Call Mode: %s", choose(v&0x80 != 0, "CDMA 2 GHz channel (CDMA2GHz) acceptable", "CDMA 2 GHz channel (CDMA2GHz) not acceptable"))
	s.bitfield(off, 1, v, 0x40, "Call Mode: %s", choose(v&0x40 != 0, "AMPS 1800 MHz channel (AMPS1800) acceptable", "AMPS 1800 MHz channel (AMPS1800) not acceptable"))
	s.bitfield(off, 1, v, 0x20, "Call Mode: %s", choose(v&0x20 != 0, "CDMA 1800 MHz channel (CDMA1800) acceptable", "CDMA 1800 MHz channel (CDMA1800) not acceptable"))
	s.bitfield(off, 1, v, 0x10, "Call Mode: %s", choose(v&0x10 != 0, "CDMA 900 MHz channel (CDMA900) acceptable", "CDMA 900 MHz channel (CDMA900) not acceptable"))
	s.bitfield(off, 1, v, 0x08, "Call Mode: %s", choose(v&0x08 != 0, "CDMA 800 MHz channel (CDMA800) acceptable", "CDMA 800 MHz channel (CDMA800) not acceptable"))
	s.bitfield(off, 1, v, 0x04, "Call Mode: %s", choose(v&0x04 != 0, "NAMPS 800 MHz channel acceptable", "NAMPS 800 MHz channel not acceptable"))
	s.bitfield(off, 1, v, 0x02, "Call Mode: %s", choose(v&0x02 != 0, "AMPS 800 MHz channel acceptable", "AMPS 800 MHz channel not acceptable"))
	s.bitfield(off, 1, v, 0x01, "Call Mode: %s", choose(v&0x01 != 0, "CDMA 800 MHz channel (Band Class 0) acceptable", "CDMA 800 MHz channel (Band Class 0) not acceptable"))
	for s.remaining() > 0 {
		off = s.offset()
		v = s.uint(1)
		s.bitfield(off, 1, v, 0xff, "Reserved")
	}
	return ""
}

// paramCDMAChannelData decodes the frame offset, long code mask, band
// class and channel number of a CDMA traffic channel.
func paramCDMAChannelData(s *span) string {
	if s.short(8) {
		return ""
	}
	off := s.offset()
	v := s.uint(2)
	s.bitfield(off, 2, v, 0x8000, "Reserved")
	s.bitfield(off, 2, v, 0x7800, "Frame Offset: %d", (v&0x7800)>>11)
	s.bitfield(off, 2, v, 0x07ff, "CDMA Channel Number: %d", v&0x07ff)

	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0x80, "Reserved")
	s.bitfield(off, 1, v, 0x7c, "Band Class: %s", lookup(cdmaBandClassNames, (v&0x7c)>>2, "Reserved"))
	s.bitfield(off, 1, v, 0x03, "Long Code Mask (MSB)")

	off = s.offset()
	mask := s.octets(5)
	s.add(off, 5, "Long Code Mask: %x", mask)

	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0x80, "NP Extension (NPEXT)")
	s.bitfield(off, 1, v, 0x7f, "Nominal Power: %d", v&0x7f)
	if s.remaining() > 0 {
		s.field(1, "Number Preamble (NUM_PREAMBLE)")
	}
	if s.remaining() > 0 {
		s.field(1, "Base Station Protocol Revision")
	}
	return ""
}

func paramCDMACodeChannel(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0x80, "Reserved")
	s.bitfield(off, 1, v, 0x7f, "CDMA Code Channel: %d", v&0x7f)
	return fmt.Sprintf(" - %d", v&0x7f)
}

// paramCDMAPilotStrength and paramCDMASignalQuality both carry a 6 bit
// value in half dB units.
func paramCDMAPilotStrength(s *span) string {
	return cdmaHalfDB(s, "Value")
}

func paramCDMASignalQuality(s *span) string {
	return cdmaHalfDB(s, "Value")
}

func cdmaHalfDB(s *span, label string) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xc0, "Reserved")
	s.bitfield(off, 1, v, 0x3f, "%s: %d", label, v&0x3f)
	return ""
}

func paramCDMAServiceOption(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(2)
	name := lookup(cdmaServiceOptionNames, v, "Reserved")
	s.t.AddValue(off, 2, fmt.Sprintf("%s (%d)", name, v), v)
	return " - " + name
}

func paramCDMABandClass(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xe0, "Reserved")
	s.bitfield(off, 1, v, 0x1f, "Band Class: %s", lookup(cdmaBandClassNames, v&0x1f, "Reserved"))
	return ""
}

func paramCDMASlotCycleIndex(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xf8, "Reserved")
	s.bitfield(off, 1, v, 0x07, "Slot Cycle Index: %d", v&0x07)
	return ""
}

func paramCDMAMobileProtocolRevision(s *span) string {
	return uintParam(1, "MOB_P_REV")(s)
}

func paramSignalQuality(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	var q string
	switch {
	case v == 0:
		q = "Not a usable signal"
	case v <= 8:
		q = "Treat as Not a usable signal"
	case v <= 245:
		q = fmt.Sprintf("Usable signal range %d", v)
	case v == 255:
		q = "Interference"
	default:
		q = "Treat the same as value 245"
	}
	s.t.AddValue(off, 1, "Value: "+q, v)
	return ""
}

func paramNAMPSChannelData(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xfc, "Reserved")
	s.bitfield(off, 1, v, 0x03, "Color Code Indicator (CCIndicator): %s", []string{"ST, Use SCC", "DCC, Use DCC", "SCC, Use SCC", "Reserved"}[v&0x03])
	for s.remaining() > 0 {
		off = s.offset()
		v = s.uint(1)
		s.bitfield(off, 1, v, 0xff, "Reserved")
	}
	return ""
}

func paramHandoffState(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xfe, "Reserved")
	s.bitfield(off, 1, v, 0x01, "Party Involved (PI): %s", choose(v&0x01 != 0, "Terminator is handing off", "Originator is handing off"))
	return ""
}

// paramPreferredLanguageIndicator names the announcement language.
func paramPreferredLanguageIndicator(s *span) string {
	return decodeEnumWithFallback("Preferred Language", preferredLanguageNames, 6)(s)
}

func paramAuthenticationCapability(s *span) string {
	return enumParam("Authentication Capability", authenticationCapabilityNames)(s)
}

func paramCDMAChannelNumber(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(2)
	s.bitfield(off, 2, v, 0xf800, "Reserved")
	s.bitfield(off, 2, v, 0x07ff, "CDMA Channel Number: %d", v&0x07ff)
	return fmt.Sprintf(" - %d", v&0x07ff)
}

func paramCDMAPilotPN(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(2)
	s.bitfield(off, 2, v, 0xfe00, "Reserved")
	s.bitfield(off, 2, v, 0x01ff, "Pilot PN: %d", v&0x01ff)
	return ""
}

func paramTDMABandwidth(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := lookup(tdmaBandwidthNames, v&0x0f, "Reserved")
	s.bitfield(off, 1, v, 0xf0, "Reserved")
	s.bitfield(off, 1, v, 0x0f, "Bandwidth: %s", name)
	return " - " + name
}
