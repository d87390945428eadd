// Package keccak binds the Keccak-256 primitive the trie and RLP packages
// treat as an external collaborator.
package keccak

import "golang.org/x/crypto/sha3"

// Hash256 computes the Keccak-256 digest of the concatenation of data.
func Hash256(data ...[]byte) [32]byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	var out [32]byte
	d.Sum(out[:0])
	return out
}

// EmptyRoot is the root hash of a trie with no entries: Keccak-256 of the
// RLP encoding of the empty string, 0x80.
var EmptyRoot = Hash256([]byte{0x80})
