package rlp

// EncodeString appends the canonical RLP encoding of a byte string to dst
// and returns the extended slice (§4.3.1).
func EncodeString(dst, data []byte) []byte {
	if len(data) == 1 && data[0] < 0x80 {
		return append(dst, data[0])
	}
	dst = EncodeHeader(dst, Header{List: false, PayloadLength: uint64(len(data))})
	return append(dst, data...)
}

// EncodeUint64 appends the canonical RLP encoding of an unsigned integer.
// Zero encodes as the empty string code; 0 < n < 0x80 encodes as the raw
// byte; everything else encodes as a string of its big-endian compact form.
func EncodeUint64(dst []byte, n uint64) []byte {
	switch {
	case n == 0:
		return append(dst, EmptyStringCode)
	case n < EmptyStringCode:
		return append(dst, byte(n))
	default:
		return EncodeString(dst, ToBigCompact(n))
	}
}

// EncodeBool appends the canonical RLP encoding of a boolean: the empty
// string code for false, 0x01 for true.
func EncodeBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, 0x01)
	}
	return append(dst, EmptyStringCode)
}

// EncodeHash32 appends the canonical RLP encoding of a fixed 32-byte value
// (a hash). It is always 33 bytes: the one-byte string header 0xA0 plus the
// 32 bytes.
func EncodeHash32(dst []byte, h [32]byte) []byte {
	dst = append(dst, EmptyStringCode+32)
	return append(dst, h[:]...)
}

// WrapList appends the canonical RLP list header for an already-encoded
// payload and then the payload itself.
func WrapList(dst, payload []byte) []byte {
	dst = EncodeHeader(dst, Header{List: true, PayloadLength: uint64(len(payload))})
	return append(dst, payload...)
}

// LengthString returns the exact encoded length of data as an RLP string,
// without allocating. A single byte < 0x80 is self-describing (length 1);
// every other string carries at least a one-byte header.
func LengthString(data []byte) int {
	if len(data) == 1 && data[0] < 0x80 {
		return 1
	}
	if len(data) < 56 {
		return 1 + len(data)
	}
	return 1 + LengthOfLength(uint64(len(data))) + len(data)
}

// LengthUint64 returns the exact encoded length of an unsigned integer.
func LengthUint64(n uint64) int {
	if n < EmptyStringCode {
		return 1
	}
	return LengthString(ToBigCompact(n))
}

// LengthBool returns the exact encoded length of a boolean: always 1.
func LengthBool() int { return 1 }

// LengthHash32 returns the exact encoded length of a 32-byte hash: always 33.
func LengthHash32() int { return 33 }

// LengthList returns the exact encoded length of a list with the given
// total payload length.
func LengthList(payloadLen int) int {
	if payloadLen < 56 {
		return 1 + payloadLen
	}
	return 1 + LengthOfLength(uint64(payloadLen)) + payloadLen
}
