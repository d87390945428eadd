package keccak

import (
	"encoding/hex"
	"testing"
)

func TestHash256KnownVectors(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{[]byte("abc"), "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	}
	for _, tt := range tests {
		got := Hash256(tt.in)
		if hex.EncodeToString(got[:]) != tt.want {
			t.Fatalf("Hash256(%q) = %x, want %s", tt.in, got, tt.want)
		}
	}
}

func TestHash256ConcatenatesInputs(t *testing.T) {
	joined := Hash256([]byte("ab"), []byte("c"))
	whole := Hash256([]byte("abc"))
	if joined != whole {
		t.Fatalf("split input hashed differently: %x != %x", joined, whole)
	}
}

func TestEmptyRoot(t *testing.T) {
	const want = "56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421"
	if hex.EncodeToString(EmptyRoot[:]) != want {
		t.Fatalf("EmptyRoot = %x, want %s", EmptyRoot, want)
	}
}
