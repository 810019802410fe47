package ansimap

import (
	"fmt"
	"strings"
)

// enumParam decodes a one octet value named by table.
func enumParam(label string, table map[uint64]string) decodeFunc {
	return func(s *span) string {
		if s.short(1) {
			return ""
		}
		off := s.offset()
		v := s.uint(1)
		name := lookup(table, v, "Reserved")
		s.t.AddValue(off, 1, fmt.Sprintf("%s: %s (%d)", label, name, v), v)
		return " - " + name
	}
}

// uintParam decodes an unsigned integer of width octets.
func uintParam(width int, label string) decodeFunc {
	return func(s *span) string {
		if s.short(width) {
			return ""
		}
		v := s.field(width, label)
		return fmt.Sprintf(" - %d", v)
	}
}

// octetParam shows the contents as an octet string.
func octetParam(label string) decodeFunc {
	return func(s *span) string {
		s.octetString(label)
		return ""
	}
}

// fixedOctetParam is an octet string of exactly n octets.
func fixedOctetParam(n int, label string) decodeFunc {
	return func(s *span) string {
		if s.unexpected(n) {
			return ""
		}
		s.octetString(label)
		return ""
	}
}

// ia5Param shows the contents as IA5 text.
func ia5Param(label string) decodeFunc {
	return func(s *span) string {
		off := s.offset()
		text := ia5(s.rest())
		s.t.AddValue(off, s.offset()-off, fmt.Sprintf("%s: %s", label, text), text)
		return " - " + text
	}
}

// nullParam is a parameter whose presence is its meaning.
func nullParam(s *span) string {
	return ""
}

// ia5 maps b to printable text, replacing everything else by '.'.
func ia5(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// flagParam decodes a one octet bit mask. Each flag names the value shown
// for a set and a cleared bit.
type flag struct {
	mask     uint64
	set, clr string
}

func flagParam(flags ...flag) decodeFunc {
	return func(s *span) string {
		if s.short(1) {
			return ""
		}
		off := s.offset()
		v := s.uint(1)
		for _, f := range flags {
			name := f.clr
			if v&f.mask != 0 {
				name = f.set
			}
			s.bitfield(off, 1, v, f.mask, "%s", name)
		}
		return ""
	}
}
