package trie

import (
	"bytes"
	"testing"
)

func TestBufferAppendAndReset(t *testing.T) {
	var b buffer
	b.append(1, 2, 3)
	b.appendBytes([]byte{4, 5})
	if !bytes.Equal(b.bytes(), []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("got % x", b.bytes())
	}
	b.reset()
	if len(b.bytes()) != 0 {
		t.Fatalf("expected empty buffer after reset, got % x", b.bytes())
	}
}

func TestBufferCloneIsIndependent(t *testing.T) {
	var b buffer
	b.append(1, 2, 3)
	clone := b.clone()
	b.reset()
	b.append(9, 9, 9)
	if !bytes.Equal(clone, []byte{1, 2, 3}) {
		t.Fatalf("clone was mutated by a later reuse of the buffer: % x", clone)
	}
}
