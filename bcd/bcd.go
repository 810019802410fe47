// Package bcd unpacks and packs digit strings carried as binary coded
// decimal nibbles, two digits per octet with the first digit in the low
// nibble. A 0xF nibble in the high half of the final octet is a filler for
// odd digit counts.
package bcd

import (
	"errors"
	"strings"
)

// Filler is the nibble padding an odd number of digits.
const Filler = 0x0f

// Alphabet maps nibble values to digit characters. A zero entry marks a
// nibble that has no digit assigned; it decodes as '?'.
type Alphabet [16]byte

var (
	// Telephony is the TBCD alphabet used by SCCP global titles.
	Telephony = Alphabet{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '*', '#', 'a', 'b', 'c'}

	// ANSI is the digit alphabet of ANSI-41 BCD digit strings.
	ANSI = Alphabet{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 0, 'B', 'C', '*', '#'}

	// Decimal only knows the digits 0-9.
	Decimal = Alphabet{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}
)

// ErrInvalidDigit is returned by Encode for characters outside an alphabet.
var ErrInvalidDigit = errors.New("bcd: invalid digit")

func (a *Alphabet) digit(n byte) byte {
	if d := a[n&0x0f]; d != 0 {
		return d
	}
	return '?'
}

// Decode unpacks b. A filler in the high nibble of the last octet ends the
// string without producing a character.
func (a *Alphabet) Decode(b []byte) string {
	var sb strings.Builder
	sb.Grow(2 * len(b))
	for i, o := range b {
		sb.WriteByte(a.digit(o & 0x0f))
		hi := o >> 4
		if hi == Filler && i == len(b)-1 {
			break
		}
		sb.WriteByte(a.digit(hi))
	}
	return sb.String()
}

// DecodeN unpacks at most n digits from b, as used where the digit count
// or an odd/even indicator is carried out of band.
func (a *Alphabet) DecodeN(b []byte, n int) string {
	s := a.Decode(b)
	if n >= 0 && n < len(s) {
		return s[:n]
	}
	return s
}

// Encode packs s, appending a filler nibble for an odd number of digits.
func (a *Alphabet) Encode(s string) ([]byte, error) {
	out := make([]byte, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i += 2 {
		lo, ok := a.nibble(s[i])
		if !ok {
			return nil, ErrInvalidDigit
		}
		hi := byte(Filler)
		if i+1 < len(s) {
			if hi, ok = a.nibble(s[i+1]); !ok {
				return nil, ErrInvalidDigit
			}
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

func (a *Alphabet) nibble(d byte) (byte, bool) {
	for i, c := range a {
		if c != 0 && c == d && i != Filler {
			return byte(i), true
		}
	}
	return 0, false
}
