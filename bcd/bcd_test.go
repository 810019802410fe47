package bcd

import (
	"testing"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"
)

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		want string
	}{
		{[]byte{0x21, 0x43}, "1234"},
		{[]byte{0x21, 0xf3}, "123"},
		{[]byte{0xf1, 0x32}, "1?23"},
		{[]byte{}, ""},
	} {
		assert.Equal(t, Decimal.Decode(tc.in), tc.want)
	}
	assert.Equal(t, Telephony.Decode([]byte{0xba, 0xf1}), "*#1")
	assert.Equal(t, ANSI.Decode([]byte{0xed, 0xfa}), "*#?")
}

func TestDecodeN(t *testing.T) {
	assert.Equal(t, Telephony.DecodeN([]byte{0x21, 0x03}, 3), "123")
	assert.Equal(t, Telephony.DecodeN([]byte{0x21, 0x03}, 10), "1230")
}

func TestRoundTrip(t *testing.T) {
	for name, a := range map[string]*Alphabet{"telephony": &Telephony, "ansi": &ANSI, "decimal": &Decimal} {
		var digits []byte
		for i, c := range a {
			if c != 0 && i != Filler {
				digits = append(digits, c)
			}
		}
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				s := string(rapid.SliceOf(rapid.SampledFrom(digits)).Draw(t, "digits"))
				b, err := a.Encode(s)
				if err != nil {
					t.Fatalf("encode %q: %v", s, err)
				}
				if len(b) != (len(s)+1)/2 {
					t.Fatalf("encode %q: %d octets", s, len(b))
				}
				if got := a.Decode(b); got != s {
					t.Fatalf("round trip %q -> % x -> %q", s, b, got)
				}
			})
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	_, err := Decimal.Encode("12a")
	assert.ErrorIs(t, err, ErrInvalidDigit)
}
