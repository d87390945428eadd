package trie

import "github.com/triehash/mpt-go/rlp"

// Encoder renders one element of a vector-root sequence to its RLP-encoded
// leaf value (e.g. a transaction, a receipt).
type Encoder func(i int) []byte

// adjustIndex applies the Yellow-Paper index permutation: RLP encodes 0 as
// 0x80, which sorts after the single-byte encodings of 1..0x7F, so iterating
// i from 0 to n-1 and inserting key adjustIndex(i, n) visits the keys in
// ascending RLP order: 1..min(0x7F, n-1), then 0, then 0x80 onward.
func adjustIndex(i, n int) int {
	switch {
	case i > 0x7F:
		return i
	case i == 0x7F || i == n-1:
		return 0
	default:
		return i + 1
	}
}

// VectorRoot builds the MPT root over n elements, keyed by their
// Yellow-Paper-adjusted RLP-encoded index and valued by encode(adjusted).
func VectorRoot(n int, encode Encoder) Hash {
	var hb HashBuilder
	for j := 0; j < n; j++ {
		adjusted := adjustIndex(j, n)
		key := rlp.EncodeUint64(nil, uint64(adjusted))
		hb.AddLeaf(Unpack(key), encode(adjusted))
	}
	return hb.RootHash()
}
