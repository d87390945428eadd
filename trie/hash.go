package trie

import "github.com/triehash/mpt-go/rlp"

// Stable wire lengths of the fixed-width byte types.
const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is a 32-byte trie node or leaf-value commitment: a child reference,
// a NodeRecord's Hashes entries, and the hash builder's own RootHash are
// all this type rather than a bare [32]byte, so the RLP binding below is
// the single place that knows how a hash is written to or read from the
// wire.
type Hash [32]byte

// LeftPadHash left-pads b with zero bytes to a 32-byte Hash. b must not be
// longer than 32 bytes; conforming Keccak-256 digests never are.
func LeftPadHash(b []byte) Hash {
	if len(b) > HashLength {
		panic("trie: hash source longer than 32 bytes")
	}
	var h Hash
	copy(h[HashLength-len(b):], b)
	return h
}

// Bytes returns h as a newly allocated 32-byte slice.
func (h Hash) Bytes() []byte {
	out := make([]byte, HashLength)
	copy(out, h[:])
	return out
}

// EncodeRLP appends h's canonical RLP encoding (a 33-byte string: header
// plus the 32 hash bytes) to dst, matching the node-reference rule's
// non-inlined case.
func (h Hash) EncodeRLP(dst []byte) []byte {
	return rlp.EncodeHash32(dst, [32]byte(h))
}

// DecodeHash decodes a fixed 32-byte RLP string from *from into a Hash,
// advancing the cursor past it. The hash builder uses it to read the root
// hash out of a final node reference that the node-reference rule did not
// inline.
func DecodeHash(from *[]byte, mode rlp.Leftover) (Hash, error) {
	b, err := rlp.DecodeHash32(from, mode)
	return Hash(b), err
}
