package trie

import "github.com/cockroachdb/errors"

// StructureError is the closed set of ways a node record can fail to
// decode from its storage trailer, independent of the generic RLP codec
// errors surfaced by the rlp package.
type StructureError int

const (
	// ErrInvalidHashesLength means the trailer following the three mask
	// words is not a whole multiple of 32 bytes, or the number of
	// 32-byte blocks disagrees with hash_mask's popcount by more than
	// the one optional root-hash block.
	ErrInvalidHashesLength StructureError = iota + 1
	// ErrInvalidMasksSubsets means tree_mask or hash_mask is not a
	// subset of state_mask.
	ErrInvalidMasksSubsets
)

func (e StructureError) Error() string {
	switch e {
	case ErrInvalidHashesLength:
		return "trie: invalid hashes length"
	case ErrInvalidMasksSubsets:
		return "trie: mask is not a subset of state_mask"
	default:
		return "trie: unknown structure error"
	}
}

func wrap(op string, err error) error {
	return errors.Wrapf(err, "trie: %s", op)
}
