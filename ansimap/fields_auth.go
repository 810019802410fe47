package ansimap

import "fmt"

func paramAuthorizationPeriod(s *span) string {
	if s.unexpected(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	name := lookup(periodNames, v, "Reserved")
	s.t.AddValue(off, 1, "Period: "+name, v)
	s.field(1, "Value")
	return " - " + name
}

// paramAuthResponse decodes the 18 bit AUTHR, AUTHBS and AUTHU signatures.
func paramAuthResponse(s *span) string {
	if s.unexpected(3) {
		return ""
	}
	off := s.offset()
	v := s.uint(3)
	s.bitfield(off, 3, v, 0xfc0000, "Reserved")
	s.bitfield(off, 3, v, 0x03ffff, "Response: %d", v&0x03ffff)
	return ""
}

func paramCallHistoryCount(s *span) string {
	if s.unexpected(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xc0, "Reserved")
	s.bitfield(off, 1, v, 0x3f, "Value: %d", v&0x3f)
	return fmt.Sprintf(" - %d", v&0x3f)
}

func paramConfidentialityModes(s *span) string {
	if s.unexpected(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xf8, "Reserved")
	s.bitfield(off, 1, v, 0x04, "Data Privacy (DP): %s", choose(v&0x04 != 0, "ON", "OFF"))
	s.bitfield(off, 1, v, 0x02, "Signaling Message Encryption (SE): %s", choose(v&0x02 != 0, "ON", "OFF"))
	s.bitfield(off, 1, v, 0x01, "Voice Privacy (VP): %s", choose(v&0x01 != 0, "ON", "OFF"))
	return ""
}

func paramRandomVariable(n int, label string) decodeFunc {
	return func(s *span) string {
		if s.unexpected(n) {
			return ""
		}
		off := s.offset()
		v := s.uint(n)
		s.t.AddValue(off, n, fmt.Sprintf("%s: 0x%0*x", label, 2*n, v), v)
		return ""
	}
}

func paramSharedSecretData(s *span) string {
	if s.unexpected(16) {
		return ""
	}
	off := s.offset()
	a := s.octets(8)
	s.add(off, 8, "SSD-A: %x", a)
	b := s.octets(8)
	s.add(off+8, 8, "SSD-B: %x", b)
	return ""
}

func paramVoicePrivacyMask(s *span) string {
	if s.unexpected(66) {
		return ""
	}
	off := s.offset()
	a := s.octets(33)
	s.add(off, 33, "Voice Privacy Mask-A (VPMASK-A): %x", a)
	b := s.octets(33)
	s.add(off+33, 33, "Voice Privacy Mask-B (VPMASK-B): %x", b)
	return ""
}

func paramSystemCapabilities(s *span) string {
	if s.unexpected(1) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0xc0, "Reserved")
	s.bitfield(off, 1, v, 0x20, "DP is %s", choose(v&0x20 != 0, "supported by the system", "not supported by the system"))
	s.bitfield(off, 1, v, 0x10, "SSD is %s", choose(v&0x10 != 0, "shared", "not shared"))
	s.bitfield(off, 1, v, 0x08, "System %s execute CAVE algorithm", choose(v&0x08 != 0, "can", "cannot"))
	s.bitfield(off, 1, v, 0x04, "Voice Privacy is %s", choose(v&0x04 != 0, "supported", "not supported"))
	s.bitfield(off, 1, v, 0x02, "SME is %s", choose(v&0x02 != 0, "supported", "not supported"))
	s.bitfield(off, 1, v, 0x01, "Authentication parameters were %s", choose(v&0x01 != 0, "requested on this system access", "not requested on this system access"))
	return ""
}

func paramTransactionCapability(s *span) string {
	if s.short(2) {
		return ""
	}
	off := s.offset()
	v := s.uint(1)
	s.bitfield(off, 1, v, 0x80, "Remote User Interaction: %s", choose(v&0x80 != 0, "capable", "not capable"))
	s.bitfield(off, 1, v, 0x40, "Announcements: %s", choose(v&0x40 != 0, "capable of honoring the AnnouncementList parameter", "not capable of honoring the AnnouncementList parameter"))
	s.bitfield(off, 1, v, 0x20, "Busy Detection: %s", choose(v&0x20 != 0, "capable of detecting a busy condition", "not capable of detecting a busy condition"))
	s.bitfield(off, 1, v, 0x10, "Subscriber PIN Intercept: %s", choose(v&0x10 != 0, "capable", "not capable"))
	s.bitfield(off, 1, v, 0x08, "Multiple Terminations: %s", choose(v&0x08 != 0, "capable", "not capable"))
	s.bitfield(off, 1, v, 0x04, "Termination List: %s", choose(v&0x04 != 0, "capable", "not capable"))
	s.bitfield(off, 1, v, 0x02, "Profile: %s", choose(v&0x02 != 0, "capable of supporting the IS-41-C profile parameters", "not capable of supporting the IS-41-C profile parameters"))
	s.bitfield(off, 1, v, 0x01, "Registration Notification Response: %s", choose(v&0x01 != 0, "capable", "not capable"))

	off = s.offset()
	v = s.uint(1)
	s.bitfield(off, 1, v, 0xe0, "Reserved")
	s.bitfield(off, 1, v, 0x10, "Waiting Notification: %s", choose(v&0x10 != 0, "capable", "not capable"))
	s.bitfield(off, 1, v, 0x0f, "Multiple Terminations: %d", v&0x0f)
	return ""
}

func paramSignalingMessageEncryptionKey(s *span) string {
	return paramRandomVariable(8, "SMEKEY")(s)
}

func paramCDMAPrivateLongCodeMask(s *span) string {
	if s.unexpected(6) {
		return ""
	}
	off := s.offset()
	v := s.uint(6)
	s.bitfield(off, 6, v, 0xfc0000000000, "Reserved")
	s.bitfield(off, 6, v, 0x03ffffffffff, "CDMA Private Long Code Mask: 0x%011x", v&0x03ffffffffff)
	return ""
}

func paramAuthenticationData(s *span) string {
	if s.unexpected(3) {
		return ""
	}
	s.field(3, "Authentication Data (AUTHDATA)")
	return ""
}
