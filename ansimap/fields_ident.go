package ansimap

import (
	"fmt"

	"github.com/moiji-mobile/sigdissect/bcd"
)

func paramBillingID(s *span) string {
	if s.short(7) {
		return ""
	}
	s.field(2, "Originating Market ID")
	s.field(1, "Originating Switch Number")
	s.field(3, "ID Number")
	s.field(1, "Segment Counter")
	return ""
}

func paramMSCID(s *span) string {
	if s.unexpected(3) {
		return ""
	}
	market := s.field(2, "Market ID")
	sw := s.field(1, "Switch Number")
	return fmt.Sprintf(" - %d/%d", market, sw)
}

func paramExtendedMSCID(s *span) string {
	if s.unexpected(4) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.t.AddValue(off, 1, fmt.Sprintf("Type: %s", lookup(systemMyTypeCodeNames, v, "Reserved")), v)
	s.field(2, "Market ID")
	s.field(1, "Switch Number")
	return ""
}

func paramExtendedSystemMyTypeCode(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.t.AddValue(off, 1, fmt.Sprintf("Type: %s", lookup(systemMyTypeCodeNames, v, "Reserved")), v)
	return enumParam("Vendor", systemMyTypeCodeNames)(s)
}

func paramMIN(s *span) string {
	if s.unexpected(5) {
		return ""
	}
	off := s.offset()
	digits := bcd.Decimal.Decode(s.rest())
	s.t.AddValue(off, 5, "MIN: "+digits, digits)
	return " - " + digits
}

func paramESN(s *span) string {
	if s.unexpected(4) {
		return ""
	}
	off := s.offset()
	v := s.uint(4)
	s.bitfield(off, 4, v, 0xff000000, "Manufacturer's Code: %d", v>>24)
	s.bitfield(off, 4, v, 0x00ffffff, "Serial Number: %d", v&0x00ffffff)
	return fmt.Sprintf(" - 0x%08x", v)
}

func paramIMSI(s *span) string {
	off := s.offset()
	imsi := bcd.Telephony.Decode(s.rest())
	s.t.AddValue(off, s.offset()-off, "IMSI: "+imsi, imsi)
	return " - " + imsi
}

// paramDigits decodes the common Digits type: type of digits, nature of
// number, numbering plan and encoding, then the digits or an address.
func paramDigits(s *span) string {
	if s.short(4) {
		return ""
	}
	off := s.offset()
	typ := s.uint(1)
	name := lookup(digitsTypeNames, typ, "Reserved")
	s.t.AddValue(off, 1, "Type of Digits: "+name, typ)

	off = s.offset()
	nature := s.uint(1)
	s.bitfield(off, 1, nature, 0xc0, "Reserved")
	s.bitfield(off, 1, nature, 0x30, "Screening Indication: %s", screeningNames[(nature&0x30)>>4])
	s.bitfield(off, 1, nature, 0x08, "Reserved")
	s.bitfield(off, 1, nature, 0x04, "%s", choose(nature&0x04 != 0, "Number is not available", "Number is available"))
	s.bitfield(off, 1, nature, 0x02, "%s", choose(nature&0x02 != 0, "Presentation Restricted", "Presentation Allowed"))
	s.bitfield(off, 1, nature, 0x01, "%s", choose(nature&0x01 != 0, "International", "National"))

	off = s.offset()
	pe := s.uint(1)
	plan := pe >> 4
	enc := pe & 0x0f
	s.bitfield(off, 1, pe, 0xf0, "Numbering Plan: %s", lookup(numberingPlanNames, plan, "Reserved"))
	s.bitfield(off, 1, pe, 0x0f, "Encoding: %s", lookup(digitsEncodingNames, enc, "Reserved"))

	switch plan {
	case planPointCode:
		if s.short(4) {
			return " - " + name
		}
		pointCode(s)
		s.field(1, "Subsystem Number (SSN)")
		return " - " + name
	case planIP:
		if s.short(4) {
			return " - " + name
		}
		off = s.offset()
		ip := s.octets(4)
		s.add(off, 4, "IP Address: %d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
		return " - " + name
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
		return " - " + name
	}
	s.t.AddValue(off, s.offset()-off, "Digits: "+digits, digits)
	return fmt.Sprintf(" - %s (%s)", name, digits)
}

func pointCode(s *span) {
	off := s.offset()
	member := s.uint(1)
	cluster := s.uint(1)
	network := s.uint(1)
	s.add(off, 3, "Point Code %d-%d-%d", network, cluster, member)
}

func paramPCSSN(s *span) string {
	if s.unexpected(5) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.t.AddValue(off, 1, "Type: "+lookup(systemMyTypeCodeNames, v, "Reserved"), v)
	pointCode(s)
	s.field(1, "Subsystem Number (SSN)")
	return ""
}

func paramServingCellID(s *span) string {
	if s.unexpected(2) {
		return ""
	}
	v := s.field(2, "Value")
	return fmt.Sprintf(" - %d", v)
}

func paramInterMSCCircuitID(s *span) string {
	if s.unexpected(2) {
		return ""
	}
	s.field(1, "Trunk Group Number (G)")
	s.field(1, "Trunk Member Number (M)")
	return ""
}

func paramSenderIdentificationNumber(s *span) string {
	return paramDigits(s)
}

// paramSubaddress decodes the calling/called/redirecting subaddress.
func paramSubaddress(s *span) string {
	if s.short(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	typ := "Reserved"
	switch (v & 0x70) >> 4 {
	case 0:
		typ = "NSAP (CCITT Rec. X.213 or ISO 8348 AD2)"
	case 2:
		typ = "User specified"
	}
	s.bitfield(off, 1, v, 0x80, "Reserved")
	s.bitfield(off, 1, v, 0x70, "Type of Subaddress: %s", typ)
	s.bitfield(off, 1, v, 0x08, "%s", choose(v&0x08 != 0, "Odd number of subaddress signals", "Even number of subaddress signals"))
	s.bitfield(off, 1, v, 0x07, "Reserved")
	s.octetString("Subaddress")
	return ""
}

func paramMobileDirectoryNumber(s *span) string {
	return paramDigits(s)
}

func paramLocationAreaID(s *span) string {
	if s.unexpected(2) {
		return ""
	}
	v := s.field(2, "Value")
	return fmt.Sprintf(" - %d", v)
}

func paramSystemMyTypeCode(s *span) string {
	return enumParam("Vendor", systemMyTypeCodeNames)(s)
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
