package rlp

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, []byte{0x80}},
		{"single below 0x80", []byte{0x00}, []byte{0x00}},
		{"single 0x7f", []byte{0x7f}, []byte{0x7f}},
		{"single 0x80", []byte{0x80}, []byte{0x81, 0x80}},
		{"dog", []byte("dog"), []byte{0x83, 'd', 'o', 'g'}},
		{"55 bytes", bytes.Repeat([]byte{'a'}, 55), append([]byte{0xb7}, bytes.Repeat([]byte{'a'}, 55)...)},
		{"56 bytes", bytes.Repeat([]byte{'a'}, 56), append([]byte{0xb8, 56}, bytes.Repeat([]byte{'a'}, 56)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeString(nil, tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
			if len(got) != LengthString(tt.in) {
				t.Fatalf("LengthString mismatch: got %d, encoded %d", LengthString(tt.in), len(got))
			}
		})
	}
}

func TestEncodeUint64(t *testing.T) {
	tests := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x80}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x81, 0x80}},
		{1024, []byte{0x82, 0x04, 0x00}},
	}
	for _, tt := range tests {
		got := EncodeUint64(nil, tt.n)
		if !bytes.Equal(got, tt.want) {
			t.Fatalf("EncodeUint64(%d): got % x, want % x", tt.n, got, tt.want)
		}
		if len(got) != LengthUint64(tt.n) {
			t.Fatalf("LengthUint64(%d) mismatch: got %d, encoded %d", tt.n, LengthUint64(tt.n), len(got))
		}
	}
}

func TestEncodeBool(t *testing.T) {
	if got := EncodeBool(nil, false); !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("false: got % x", got)
	}
	if got := EncodeBool(nil, true); !bytes.Equal(got, []byte{0x01}) {
		t.Fatalf("true: got % x", got)
	}
}

func TestEncodeHash32(t *testing.T) {
	var h [32]byte
	for i := range h {
		h[i] = byte(i)
	}
	got := EncodeHash32(nil, h)
	if len(got) != 33 || got[0] != 0xa0 {
		t.Fatalf("got % x", got)
	}
	if !bytes.Equal(got[1:], h[:]) {
		t.Fatalf("payload mismatch")
	}
}

func TestWrapList(t *testing.T) {
	var payload []byte
	payload = EncodeString(payload, []byte("cat"))
	payload = EncodeString(payload, []byte("dog"))
	got := WrapList(nil, payload)
	want := []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
	if len(got) != LengthList(len(payload)) {
		t.Fatalf("LengthList mismatch")
	}
}

func TestLengthListLongForm(t *testing.T) {
	payloadLen := 1000
	got := LengthList(payloadLen)
	want := 1 + LengthOfLength(uint64(payloadLen)) + payloadLen
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestEncodeStringLongForm(t *testing.T) {
	data := []byte(strings.Repeat("z", 1024))
	got := EncodeString(nil, data)
	if got[0] != 0xb9 {
		t.Fatalf("expected 2-byte length-of-length header, got 0x%02x", got[0])
	}
	if len(got) != LengthString(data) {
		t.Fatalf("length mismatch")
	}
}
