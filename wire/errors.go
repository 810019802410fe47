package wire

import (
	"errors"
	"strconv"
)

var (
	// ErrTruncated is returned when a read would run past the end of the
	// span the cursor is bounded to. Decoders recover from it locally.
	ErrTruncated = errors.New("truncated buffer")

	// ErrMalformedLength is returned for length octets that are neither the
	// short form, the indefinite form, nor the long form with 1-4 octets.
	ErrMalformedLength = errors.New("malformed length")

	// ErrMalformedTag is returned for identifier octets in high-tag form that
	// do not terminate within four octets.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrUnexpectedLength is returned when a declared length does not match
	// the fixed length a field decoder requires.
	ErrUnexpectedLength = errors.New("unexpected data length")

	errNegativeCount = errors.New("negative count")
	errWidth         = errors.New("unsupported integer width")
)

// SyntaxError carries the byte offset at which a recoverable decode error
// was detected.
type SyntaxError struct {
	Err    error
	Offset int
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	return "wire: " + e.Err.Error() + " at offset " + strconv.Itoa(e.Offset)
}

// BoundsError reports that a declared length or an identifier/length field
// would move the cursor past the limit of the enclosing span. It is fatal
// for the enclosing message.
type BoundsError struct {
	Offset int // where the offending span starts
	Length int // declared length of the span
	Limit  int // end of the enclosing span
}

func (e *BoundsError) Error() string {
	return "wire: span of " + strconv.Itoa(e.Length) + " bytes at offset " +
		strconv.Itoa(e.Offset) + " exceeds bound " + strconv.Itoa(e.Limit)
}

// IsFatal reports whether err must abort the decoding of the whole message.
func IsFatal(err error) bool {
	var be *BoundsError
	return errors.As(err, &be)
}

// IsTruncated reports whether err is a local truncation.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncated)
}
