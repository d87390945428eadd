package rlp

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeStringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"empty", []byte{0x80}, []byte{}},
		{"single zero", []byte{0x00}, []byte{0x00}},
		{"single 0x7f", []byte{0x7f}, []byte{0x7f}},
		{"single 0x80", []byte{0x81, 0x80}, []byte{0x80}},
		{"dog", []byte{0x83, 'd', 'o', 'g'}, []byte("dog")},
		{"55 bytes", append([]byte{0xb7}, bytes.Repeat([]byte{'a'}, 55)...), bytes.Repeat([]byte{'a'}, 55)},
		{"56 bytes", append([]byte{0xb8, 56}, bytes.Repeat([]byte{'a'}, 56)...), bytes.Repeat([]byte{'a'}, 56)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := append([]byte(nil), tt.input...)
			got, err := DecodeString(&from, Prohibit)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
			if len(from) != 0 {
				t.Fatalf("cursor not fully consumed: %d bytes left", len(from))
			}
		})
	}
}

func TestDecodeStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty input", []byte{}},
		{"truncated short string", []byte{0x83, 'd', 'o'}},
		{"non-canonical single byte string", []byte{0x81, 0x00}},
		{"non-canonical long length", []byte{0xb8, 10, 'a', 'a', 'a', 'a', 'a', 'a', 'a', 'a', 'a', 'a'}},
		{"leading zero length-of-length", []byte{0xb9, 0x00, 0x38}},
		{"list where string expected", []byte{0xc0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := append([]byte(nil), tt.input...)
			if _, err := DecodeString(&from, Prohibit); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestDecodeUint64RoundTrip(t *testing.T) {
	tests := []struct {
		input []byte
		want  uint64
	}{
		{[]byte{0x80}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x81, 0x80}, 128},
		{[]byte{0x82, 0x04, 0x00}, 1024},
	}
	for _, tt := range tests {
		from := append([]byte(nil), tt.input...)
		got, err := DecodeUint64(&from, Prohibit)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("got %d want %d", got, tt.want)
		}
	}
}

func TestDecodeBool(t *testing.T) {
	from := []byte{0x01}
	got, err := DecodeBool(&from, Prohibit)
	if err != nil || !got {
		t.Fatalf("got %v, %v", got, err)
	}
	from = []byte{0x80}
	got, err = DecodeBool(&from, Prohibit)
	if err != nil || got {
		t.Fatalf("got %v, %v", got, err)
	}
	from = []byte{0x02}
	if _, err := DecodeBool(&from, Prohibit); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestDecodeFixed(t *testing.T) {
	var h [32]byte
	for i := range h {
		h[i] = byte(i + 1)
	}
	enc := EncodeHash32(nil, h)
	from := enc
	got, err := DecodeHash32(&from, Prohibit)
	if err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Fatalf("got %x want %x", got, h)
	}

	short := []byte{0x83, 0x01, 0x02, 0x03}
	if _, err := DecodeFixed(&short, 32, Prohibit); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestLeftoverPolicy(t *testing.T) {
	buf := []byte{0x83, 'd', 'o', 'g', 0xff}
	from := append([]byte(nil), buf...)
	if _, err := DecodeString(&from, Prohibit); err == nil {
		t.Fatalf("expected leftover error")
	}
	from = append([]byte(nil), buf...)
	got, err := DecodeString(&from, Allow)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("dog")) {
		t.Fatalf("got %q", got)
	}
	if len(from) != 1 {
		t.Fatalf("expected 1 leftover byte, got %d", len(from))
	}
}

func TestEnterList(t *testing.T) {
	var payload []byte
	payload = EncodeString(payload, []byte("cat"))
	payload = EncodeString(payload, []byte("dog"))
	enc := WrapList(nil, payload)

	from := enc
	inner, after, err := EnterList(&from, Prohibit)
	if err != nil {
		t.Fatal(err)
	}
	first, err := DecodeString(&inner, Allow)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, []byte("cat")) {
		t.Fatalf("got %q", first)
	}
	second, err := DecodeString(&inner, Prohibit)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(second, []byte("dog")) {
		t.Fatalf("got %q", second)
	}
	if err := after(inner); err != nil {
		t.Fatal(err)
	}
}

func TestEnterListRejectsTrailingElements(t *testing.T) {
	var payload []byte
	payload = EncodeString(payload, []byte("cat"))
	payload = EncodeString(payload, []byte("dog"))
	enc := WrapList(nil, payload)

	from := enc
	inner, after, err := EnterList(&from, Prohibit)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeString(&inner, Allow); err != nil {
		t.Fatal(err)
	}
	// inner still holds "dog"; the caller only consumed the first field.
	if err := after(inner); !errors.Is(err, ErrUnexpectedListElements) {
		t.Fatalf("got %v, want ErrUnexpectedListElements", err)
	}
}

func TestDecodeExactList(t *testing.T) {
	var payload []byte
	payload = EncodeString(payload, []byte("cat"))
	payload = EncodeString(payload, []byte("dog"))
	enc := WrapList(nil, payload)

	from := enc
	fields, err := DecodeExactList(&from, 2, Prohibit)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 2 || !bytes.Equal(fields[0], []byte("cat")) || !bytes.Equal(fields[1], []byte("dog")) {
		t.Fatalf("got %q", fields)
	}
}

func TestDecodeExactListTooFewFields(t *testing.T) {
	var payload []byte
	payload = EncodeString(payload, []byte("cat"))
	enc := WrapList(nil, payload)

	from := enc
	if _, err := DecodeExactList(&from, 2, Prohibit); !errors.Is(err, ErrInvalidFieldset) {
		t.Fatalf("got %v, want ErrInvalidFieldset", err)
	}
}

func TestDecodeExactListTrailingElements(t *testing.T) {
	var payload []byte
	payload = EncodeString(payload, []byte("cat"))
	payload = EncodeString(payload, []byte("dog"))
	enc := WrapList(nil, payload)

	from := enc
	if _, err := DecodeExactList(&from, 1, Prohibit); !errors.Is(err, ErrUnexpectedListElements) {
		t.Fatalf("got %v, want ErrUnexpectedListElements", err)
	}
}

func TestDecodeHeaderPseudoHeaderLeavesCursor(t *testing.T) {
	// b < 0x80 is self-describing; DecodeHeader must not consume it so
	// DecodeString can read it as the payload.
	from := []byte{0x42}
	h, err := DecodeHeader(&from)
	if err != nil {
		t.Fatal(err)
	}
	if h.List || h.PayloadLength != 1 {
		t.Fatalf("got %+v", h)
	}
	if len(from) != 1 {
		t.Fatalf("expected cursor untouched, got %d bytes left", len(from))
	}
}
