package trie

import (
	"math/bits"

	"github.com/triehash/mpt-go/rlp"
)

// NodeRecord is the compact cache representation of one branch node,
// suitable for persisting alongside an incremental recomputation so the
// next pass over the trie does not need to rehash unaffected subtrees.
type NodeRecord struct {
	// StateMask has bit i set iff child i exists in the hashed state.
	StateMask uint16
	// TreeMask has bit i set iff child i is itself a branch node worth
	// caching.
	TreeMask uint16
	// HashMask has bit i set iff child i contributes a 32-byte hash
	// stored in Hashes.
	HashMask uint16
	// Hashes holds one 32-byte value per set bit of HashMask, in
	// ascending bit order.
	Hashes []Hash
	// RootHash is the node's own hash, when known and worth caching.
	RootHash *Hash
}

// Valid reports whether the record satisfies its mask-subset and
// hash-count invariants.
func (n *NodeRecord) Valid() bool {
	if n.TreeMask&n.StateMask != n.TreeMask {
		return false
	}
	if n.HashMask&n.StateMask != n.HashMask {
		return false
	}
	return len(n.Hashes) == bits.OnesCount16(n.HashMask)
}

// EncodeForStorage writes the record's stable on-disk trailer: the three
// masks as big-endian 16-bit words, then (if present) the root hash, then
// the child hashes in order. Total length is 6 + 32*(has_root + len(Hashes)).
// It panics if the record does not satisfy Valid.
func (n *NodeRecord) EncodeForStorage() []byte {
	if !n.Valid() {
		panic("trie: node record violates mask-subset or hash-count invariants")
	}
	size := 6 + 32*len(n.Hashes)
	if n.RootHash != nil {
		size += 32
	}
	out := make([]byte, size)
	rlp.StoreBigU16(out[0:2], n.StateMask)
	rlp.StoreBigU16(out[2:4], n.TreeMask)
	rlp.StoreBigU16(out[4:6], n.HashMask)
	off := 6
	if n.RootHash != nil {
		copy(out[off:off+32], n.RootHash[:])
		off += 32
	}
	for _, h := range n.Hashes {
		copy(out[off:off+32], h[:])
		off += 32
	}
	return out
}

// DecodeNodeRecordFromStorage parses the trailer produced by
// EncodeForStorage.
func DecodeNodeRecordFromStorage(raw []byte) (*NodeRecord, error) {
	if len(raw) < 6 {
		return nil, wrap("decode_from_storage", rlp.ErrInputTooShort)
	}
	rest := len(raw) - 6
	if rest%32 != 0 {
		return nil, wrap("decode_from_storage", ErrInvalidHashesLength)
	}

	n := &NodeRecord{
		StateMask: rlp.LoadBigU16(raw[0:2]),
		TreeMask:  rlp.LoadBigU16(raw[2:4]),
		HashMask:  rlp.LoadBigU16(raw[4:6]),
	}
	if n.TreeMask&n.StateMask != n.TreeMask || n.HashMask&n.StateMask != n.HashMask {
		return nil, wrap("decode_from_storage", ErrInvalidMasksSubsets)
	}

	expected := bits.OnesCount16(n.HashMask)
	effective := rest / 32
	diff := effective - expected
	if diff != 0 && diff != 1 {
		return nil, wrap("decode_from_storage", ErrInvalidHashesLength)
	}

	off := 6
	if diff == 1 {
		var root Hash
		copy(root[:], raw[off:off+32])
		n.RootHash = &root
		off += 32
	}
	n.Hashes = make([]Hash, expected)
	for i := range n.Hashes {
		copy(n.Hashes[i][:], raw[off:off+32])
		off += 32
	}
	return n, nil
}
