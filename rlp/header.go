package rlp

// Header is the parsed form of one RLP string or list prefix: whether the
// value is a list, and the length of its payload (not counting the header
// bytes themselves).
type Header struct {
	List          bool
	PayloadLength uint64
}

// Stable wire constants, per the RLP spec.
const (
	EmptyStringCode = 0x80
	EmptyListCode   = 0xC0
)

// LengthOfLength returns the number of bytes needed to big-endian-compact
// encode payloadLength, i.e. the "K" in the 0xB7+K / 0xF7+K header forms.
func LengthOfLength(payloadLength uint64) int {
	if payloadLength == 0 {
		return 1
	}
	n := 0
	for v := payloadLength; v > 0; v >>= 8 {
		n++
	}
	return n
}

// EncodeHeader appends the canonical RLP header for a value with the given
// list flag and payload length. Per §4.3.1: strings/lists with payload
// length < 56 use the short form (a single header byte); longer payloads
// use the long form (a header byte carrying the length-of-length, followed
// by the big-endian compact length).
func EncodeHeader(dst []byte, h Header) []byte {
	if h.PayloadLength < 56 {
		base := byte(0x80)
		if h.List {
			base = 0xC0
		}
		return append(dst, base+byte(h.PayloadLength))
	}
	lenBytes := ToBigCompact(h.PayloadLength)
	base := byte(0xB7)
	if h.List {
		base = 0xF7
	}
	dst = append(dst, base+byte(len(lenBytes)))
	return append(dst, lenBytes...)
}

// DecodeHeader reads one RLP header from the front of *from and advances
// the cursor past it.
//
// A single byte b < 0x80 is self-describing: it is left in the cursor (not
// consumed) and reported as a one-byte, non-list payload, so the caller's
// string decoder reads it directly as the payload (§4.3.2).
func DecodeHeader(from *[]byte) (Header, error) {
	buf := *from
	if len(buf) == 0 {
		return Header{}, wrap("decode_header", ErrInputTooShort)
	}
	b := buf[0]
	switch {
	case b < 0x80:
		return Header{List: false, PayloadLength: 1}, nil

	case b <= 0xB7:
		l := uint64(b - 0x80)
		if l == 1 {
			if len(buf) < 2 {
				return Header{}, wrap("decode_header", ErrInputTooShort)
			}
			if buf[1] < 0x80 {
				return Header{}, wrap("decode_header", ErrNonCanonicalSize)
			}
		}
		if uint64(len(buf)-1) < l {
			return Header{}, wrap("decode_header", ErrInputTooShort)
		}
		*from = buf[1:]
		return Header{List: false, PayloadLength: l}, nil

	case b <= 0xBF:
		lenOfLen := int(b - 0xB7)
		if len(buf) < 1+lenOfLen {
			return Header{}, wrap("decode_header", ErrInputTooShort)
		}
		lenBytes := buf[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return Header{}, wrap("decode_header", ErrLeadingZero)
		}
		l, err := FromBigCompact(lenBytes)
		if err != nil {
			return Header{}, wrap("decode_header", err.(DecodingError))
		}
		if l < 56 {
			return Header{}, wrap("decode_header", ErrNonCanonicalSize)
		}
		if uint64(len(buf)-1-lenOfLen) < l {
			return Header{}, wrap("decode_header", ErrInputTooShort)
		}
		*from = buf[1+lenOfLen:]
		return Header{List: false, PayloadLength: l}, nil

	case b <= 0xF7:
		l := uint64(b - 0xC0)
		if uint64(len(buf)-1) < l {
			return Header{}, wrap("decode_header", ErrInputTooShort)
		}
		*from = buf[1:]
		return Header{List: true, PayloadLength: l}, nil

	default:
		lenOfLen := int(b - 0xF7)
		if len(buf) < 1+lenOfLen {
			return Header{}, wrap("decode_header", ErrInputTooShort)
		}
		lenBytes := buf[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return Header{}, wrap("decode_header", ErrLeadingZero)
		}
		l, err := FromBigCompact(lenBytes)
		if err != nil {
			return Header{}, wrap("decode_header", err.(DecodingError))
		}
		if l < 56 {
			return Header{}, wrap("decode_header", ErrNonCanonicalSize)
		}
		if uint64(len(buf)-1-lenOfLen) < l {
			return Header{}, wrap("decode_header", ErrInputTooShort)
		}
		*from = buf[1+lenOfLen:]
		return Header{List: true, PayloadLength: l}, nil
	}
}
