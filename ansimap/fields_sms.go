package ansimap

import (
	"fmt"

	"github.com/moiji-mobile/sigdissect/bcd"
)

// paramSMSTeleserviceIdentifier also selects the decoder of the bearer
// data carried by the same message.
func paramSMSTeleserviceIdentifier(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(2)
	name := lookup(teleserviceNames, v, "")
	if name == "" {
		switch {
		case v >= 2 && v <= 4095:
			name = "Reserved for assignment by TIA-41"
		case v >= 4104 && v <= 32512:
			name = "Reserved for assignment by TIA-41"
		case v >= 32518 && v <= 32575:
			name = "Reserved for assignment by this Standard for TDMA MS-based SMEs"
		case v >= 49152:
			name = "Reserved for carrier specific teleservices"
		default:
			name = "Reserved"
		}
	}
	s.t.AddValue(off, 2, fmt.Sprintf("%s (%d)", name, v), v)
	if s.ok() {
		s.ctx.TeleserviceID = int(v)
	}
	return " - " + name
}

// paramSMSBearerData is handed to a sub-protocol after the walk.
func paramSMSBearerData(s *span) string {
	off := s.offset()
	b := s.rest()
	s.t.AddValue(off, len(b), fmt.Sprintf("Bearer Data: %x", b), b)
	if len(b) > 0 {
		s.ctx.bearer(off, len(b))
	}
	return ""
}

// paramServiceIndicator marks messages whose bearer data carries an
// over-the-air or position determination payload.
func paramServiceIndicator(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := lookup(serviceIndicatorNames, v, "Reserved")
	s.t.AddValue(off, 1, fmt.Sprintf("%s (%d)", name, v), v)
	switch v {
	case serviceCDMAOTASP, serviceCDMAOTAPA:
		s.ctx.OTA = true
	case serviceCDMAPDS:
		s.ctx.PLD = true
	}
	return " - " + name
}

func paramSMSChargeIndicator(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := lookup(smsChargeIndicatorNames, v, "")
	if name == "" {
		name = choose(v >= 64, "Reserved for TIA/EIA-41 protocol extension", "Reserved")
	}
	s.t.AddValue(off, 1, name, v)
	return ""
}

func paramSMSNotificationIndicator(s *span) string {
	return enumParam("Notification", smsNotificationIndicatorNames)(s)
}

func paramSMSAccessDeniedReason(s *span) string {
	return decodeEnumWithFallback("Reason", smsAccessDeniedReasonNames, 5)(s)
}

func paramSMSCauseCode(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := lookup(smsCauseCodeNames, v, "")
	if name == "" {
		switch {
		case v >= 40 && v <= 47, v >= 48 && v <= 63:
			name = "Reserved, treat as Network failure"
		case v >= 110 && v <= 255:
			name = "Reserved for protocol extension, treat as Other general problems"
		default:
			name = "Reserved"
		}
	}
	s.t.AddValue(off, 1, fmt.Sprintf("%s (%d)", name, v), v)
	return " - " + name
}

// paramSMSAddress decodes the SMS destination, originating and original
// addresses. They share the layout of Digits except that an IP address
// or point code replaces the digit count.
func paramSMSAddress(s *span) string {
	if s.short(3) {
		return ""
	}
	off := s.offset()
	typ := s.uint(1)
	name := lookup(digitsTypeNames, typ, "Reserved")
	s.t.AddValue(off, 1, "Type of Digits: "+name, typ)

	off = s.offset()
	nature := s.uint(1)
	s.bitfield(off, 1, nature, 0xf8, "Reserved")
	s.bitfield(off, 1, nature, 0x04, "%s", choose(nature&0x04 != 0, "Number is not available", "Number is available"))
	s.bitfield(off, 1, nature, 0x02, "Reserved")
	s.bitfield(off, 1, nature, 0x01, "%s", choose(nature&0x01 != 0, "International", "National"))

	off = s.offset()
	pe := s.uint(1)
	plan, enc := pe>>4, pe&0x0f
	s.bitfield(off, 1, pe, 0xf0, "Numbering Plan: %s", lookup(numberingPlanNames, plan, "Reserved"))
	s.bitfield(off, 1, pe, 0x0f, "Encoding: %s", lookup(digitsEncodingNames, enc, "Reserved"))

	switch plan {
	case planIP:
		if s.short(4) {
			return ""
		}
		off = s.offset()
		ip := s.octets(4)
		s.add(off, 4, "IP Address: %d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
		return ""
	case planPointCode:
		if s.short(4) {
			return ""
		}
		pointCode(s)
		s.field(1, "Subsystem Number (SSN)")
		return ""
	}
	if s.short(1) {
		return ""
	}
	count := int(s.field(1, "Number of Digits"))
	off = s.offset()
	var digits string
	switch enc {
	case encodingBCD:
		digits = bcd.ANSI.DecodeN(s.rest(), count)
	case encodingIA5:
		digits = ia5(s.rest())
	default:
		s.add(off, s.remaining(), "Digits: %x", s.rest())
		return ""
	}
	s.t.AddValue(off, s.offset()-off, "Digits: "+digits, digits)
	return " - " + digits
}

func paramSMSMessageCount(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	if name, ok := smsMessageCountNames[v]; ok {
		s.t.AddValue(off, 1, name, v)
	} else {
		s.t.AddValue(off, 1, fmt.Sprintf("Count: %d", v), v)
	}
	return fmt.Sprintf(" - %d", v)
}

func paramSMSTerminationRestrictions(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xf8, "Reserved")
	s.bitfield(off, 1, v, 0x04, "Reverse Charges: %s", choose(v&0x04 != 0, "Allow all", "Block all"))
	s.bitfield(off, 1, v, 0x03, "Default: %s", []string{"Block all", "Reserved", "Allow specific", "Allow all"}[v&0x03])
	return ""
}

func paramSMSOriginationRestrictions(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xf0, "Reserved")
	s.bitfield(off, 1, v, 0x08, "Force Message Center: %s", choose(v&0x08 != 0, "Force indirect", "No effect"))
	s.bitfield(off, 1, v, 0x04, "DIRECT: %s", choose(v&0x04 != 0, "Allow Direct", "Block Direct"))
	s.bitfield(off, 1, v, 0x03, "DEFAULT: %s", []string{"Block all", "Reserved", "Allow specific", "Allow all"}[v&0x03])
	return ""
}
