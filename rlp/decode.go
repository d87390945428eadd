package rlp

// Leftover controls whether trailing bytes after a decoded value are
// tolerated (§4.3.2).
type Leftover int

const (
	// Prohibit rejects any bytes remaining after the value is decoded.
	Prohibit Leftover = iota
	// Allow permits (and ignores) trailing bytes.
	Allow
)

// checkLeftover applies the Leftover policy to the cursor remaining after a
// value has been consumed.
func checkLeftover(from []byte, mode Leftover) error {
	if mode == Prohibit && len(from) > 0 {
		return wrap("decode", ErrInputTooLong)
	}
	return nil
}

// DecodeString decodes an RLP string from *from, advancing the cursor past
// it. Lists are rejected with ErrUnexpectedList.
func DecodeString(from *[]byte, mode Leftover) ([]byte, error) {
	buf := *from
	h, err := DecodeHeader(from)
	if err != nil {
		return nil, err
	}
	if h.List {
		return nil, wrap("decode_string", ErrUnexpectedList)
	}
	cur := *from
	if h.PayloadLength == 1 && len(cur) > 0 && len(buf) == len(cur) && buf[0] < 0x80 {
		// Pseudo-header case: DecodeHeader left the single byte in the
		// cursor rather than consuming it.
		value := cur[:1]
		*from = cur[1:]
		if err := checkLeftover(*from, mode); err != nil {
			return nil, err
		}
		return value, nil
	}
	if uint64(len(cur)) < h.PayloadLength {
		return nil, wrap("decode_string", ErrInputTooShort)
	}
	value := cur[:h.PayloadLength]
	*from = cur[h.PayloadLength:]
	if err := checkLeftover(*from, mode); err != nil {
		return nil, err
	}
	return value, nil
}

// DecodeUint64 decodes an RLP-encoded unsigned integer from *from.
func DecodeUint64(from *[]byte, mode Leftover) (uint64, error) {
	b, err := DecodeString(from, mode)
	if err != nil {
		return 0, err
	}
	v, ferr := FromBigCompact(b)
	if ferr != nil {
		return 0, wrap("decode_uint64", ferr.(DecodingError))
	}
	return v, nil
}

// DecodeBool decodes an RLP-encoded boolean from *from. Any decoded integer
// value greater than 1 is rejected with ErrOverflow.
func DecodeBool(from *[]byte, mode Leftover) (bool, error) {
	v, err := DecodeUint64(from, mode)
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, wrap("decode_bool", ErrOverflow)
	}
	return v == 1, nil
}

// DecodeFixed decodes a fixed-width string of exactly n bytes from *from.
// Lists are rejected; a payload length other than n is ErrUnexpectedLength.
func DecodeFixed(from *[]byte, n int, mode Leftover) ([]byte, error) {
	buf := *from
	h, err := DecodeHeader(from)
	if err != nil {
		return nil, err
	}
	if h.List {
		return nil, wrap("decode_fixed", ErrUnexpectedList)
	}
	if h.PayloadLength != uint64(n) {
		return nil, wrap("decode_fixed", ErrUnexpectedLength)
	}
	cur := *from
	if h.PayloadLength == 1 && len(buf) == len(cur) && buf[0] < 0x80 {
		value := cur[:1]
		*from = cur[1:]
		if err := checkLeftover(*from, mode); err != nil {
			return nil, err
		}
		return value, nil
	}
	if uint64(len(cur)) < h.PayloadLength {
		return nil, wrap("decode_fixed", ErrInputTooShort)
	}
	value := cur[:h.PayloadLength]
	*from = cur[h.PayloadLength:]
	if err := checkLeftover(*from, mode); err != nil {
		return nil, err
	}
	return value, nil
}

// DecodeHash32 decodes a fixed 32-byte string into a [32]byte.
func DecodeHash32(from *[]byte, mode Leftover) ([32]byte, error) {
	var out [32]byte
	b, err := DecodeFixed(from, 32, mode)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// EnterList decodes a list header from *from and returns a cursor scoped to
// the list's payload. Once the caller has decoded every field it expects
// from that payload cursor, it must call after with whatever remains of it:
// after reports ErrUnexpectedListElements if the payload was not fully
// drained, and otherwise applies the outer Leftover policy to *from (the
// cursor following the whole list).
func EnterList(from *[]byte, mode Leftover) (payload []byte, after func(remaining []byte) error, err error) {
	buf := *from
	h, err := DecodeHeader(&buf)
	if err != nil {
		return nil, nil, err
	}
	if !h.List {
		return nil, nil, wrap("enter_list", ErrUnexpectedString)
	}
	if uint64(len(buf)) < h.PayloadLength {
		return nil, nil, wrap("enter_list", ErrInputTooShort)
	}
	payload = buf[:h.PayloadLength]
	rest := buf[h.PayloadLength:]
	*from = rest
	after = func(remaining []byte) error {
		if len(remaining) > 0 {
			return wrap("enter_list", ErrUnexpectedListElements)
		}
		return checkLeftover(*from, mode)
	}
	return payload, after, nil
}

// DecodeExactList decodes a list of exactly n string fields. A payload that
// runs out, or a field that fails to decode, before n fields have been read
// is ErrInvalidFieldset; bytes remaining in the payload after the nth field
// is ErrUnexpectedListElements.
func DecodeExactList(from *[]byte, n int, mode Leftover) ([][]byte, error) {
	payload, after, err := EnterList(from, mode)
	if err != nil {
		return nil, err
	}
	fields := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		if len(payload) == 0 {
			return nil, wrap("decode_exact_list", ErrInvalidFieldset)
		}
		f, ferr := DecodeString(&payload, Allow)
		if ferr != nil {
			return nil, wrap("decode_exact_list", ErrInvalidFieldset)
		}
		fields = append(fields, f)
	}
	if err := after(payload); err != nil {
		return nil, err
	}
	return fields, nil
}
