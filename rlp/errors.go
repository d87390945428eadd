// Package rlp implements the Ethereum Recursive Length Prefix encoding:
// https://eth.wiki/fundamentals/rlp. It is the wire format the trie
// package's hash builder and node record are defined in terms of.
package rlp

import "github.com/cockroachdb/errors"

// DecodingError is the closed set of ways an RLP (or RLP-derived, such as
// the node-record storage trailer) decode can fail. A single enum is used
// across the codec so callers can switch on one type regardless of which
// decode function produced it.
type DecodingError int

const (
	// ErrInputTooShort means the input ended before the declared
	// header or payload was fully consumed.
	ErrInputTooShort DecodingError = iota + 1
	// ErrInputTooLong means Leftover was Prohibit and bytes remained
	// after the value was decoded.
	ErrInputTooLong
	// ErrLeadingZero means a big-endian compact integer (or a
	// length-of-length field) began with a zero byte.
	ErrLeadingZero
	// ErrOverflow means an integer was too wide for the target type,
	// or a decoded boolean byte was greater than 1.
	ErrOverflow
	// ErrNonCanonicalSize means a short-form header encoded a length
	// that should have used the single-byte form, or a long-form
	// header encoded a length less than 56.
	ErrNonCanonicalSize
	// ErrUnexpectedLength means a fixed-width decode's payload length
	// did not match the expected width.
	ErrUnexpectedLength
	// ErrUnexpectedString means a list was expected but a string was found.
	ErrUnexpectedString
	// ErrUnexpectedList means a string was expected but a list was found.
	ErrUnexpectedList
	// ErrUnexpectedListElements means bytes remained in a list's payload
	// after every field a composite decode expected had been read.
	ErrUnexpectedListElements
	// ErrInvalidFieldset means a composite decode's payload ran out, or a
	// field within it failed to decode, before every expected field was
	// read.
	ErrInvalidFieldset
)

func (e DecodingError) Error() string {
	switch e {
	case ErrInputTooShort:
		return "rlp: input too short"
	case ErrInputTooLong:
		return "rlp: input too long"
	case ErrLeadingZero:
		return "rlp: leading zero byte"
	case ErrOverflow:
		return "rlp: value overflows target type"
	case ErrNonCanonicalSize:
		return "rlp: non-canonical size"
	case ErrUnexpectedLength:
		return "rlp: unexpected payload length"
	case ErrUnexpectedString:
		return "rlp: expected list, got string"
	case ErrUnexpectedList:
		return "rlp: expected string, got list"
	case ErrUnexpectedListElements:
		return "rlp: unexpected trailing list elements"
	case ErrInvalidFieldset:
		return "rlp: invalid fieldset in composite decode"
	default:
		return "rlp: unknown decoding error"
	}
}

// wrap attaches a stack trace and the operation name to a DecodingError
// without losing errors.Is comparability against the sentinel value.
func wrap(op string, err DecodingError) error {
	return errors.Wrapf(err, "rlp: %s", op)
}
