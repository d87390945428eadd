package trie

import (
	"bytes"
	"math/bits"

	"github.com/triehash/mpt-go/keccak"
	"github.com/triehash/mpt-go/rlp"
)

// NodeCollector receives a NodeRecord each time the hash builder finishes a
// branch node, keyed by that branch's nibble path from the trie root.
type NodeCollector func(nibbledKey []byte, node *NodeRecord)

type itemKind int

const (
	itemLeaf itemKind = iota
	itemAdd
	itemResolved
)

// stackItem is a child reference pending attachment to an ancestor branch.
// itemLeaf and itemAdd entries are deliberately left unresolved (no RLP or
// hash computed yet) until the depth at which they finally need one is
// known, since a long unbranched run of nibbles belongs entirely to the
// leaf's own hex-prefix path rather than to a chain of single-child
// branch/extension nodes.
type stackItem struct {
	kind itemKind

	key   []byte // the entry's nibble key (itemResolved: the branch's path prefix)
	value []byte // itemLeaf: the leaf value

	hash       Hash // itemAdd: the precomputed subtree hash
	isInDBTrie bool // itemAdd, itemResolved: child already cached on disk

	ref           []byte // itemResolved: the finished node reference
	isBranch      bool   // itemResolved: true once a real branch was built
	closedAtDepth int    // itemResolved: depth at which ref was computed
}

// HashBuilder computes a Modified Merkle Patricia Trie root from a stream of
// leaf and pre-hashed subtree insertions, without ever materializing the
// tree. Callers must insert in strictly increasing nibble-key order; no
// leaf key may be a prefix of another. Memory use is proportional to the
// longest key seen, not to the number of entries inserted.
type HashBuilder struct {
	currentKey  []byte
	haveCurrent bool

	groups []uint16
	stack  []stackItem

	collector NodeCollector
	scratch   buffer
}

// SetNodeCollector installs (or clears, with nil) the callback invoked each
// time a branch node is finished.
func (hb *HashBuilder) SetNodeCollector(c NodeCollector) {
	hb.collector = c
}

// Reset restores the builder to its empty state.
func (hb *HashBuilder) Reset() {
	hb.currentKey = nil
	hb.haveCurrent = false
	hb.groups = hb.groups[:0]
	hb.stack = hb.stack[:0]
	hb.scratch.reset()
}

// AddLeaf inserts a leaf at nibbledKey with the given value. nibbledKey
// must sort strictly after every previously inserted key and must not be a
// prefix of, or have as a prefix, any key already inserted.
func (hb *HashBuilder) AddLeaf(nibbledKey, value []byte) {
	hb.checkOrder(nibbledKey)
	if hb.haveCurrent {
		hb.fold(nibbledKey)
	}
	key := cloneBytes(nibbledKey)
	hb.registerCurrent(key)
	hb.pushItem(stackItem{kind: itemLeaf, key: key, value: cloneBytes(value)})
	hb.currentKey = key
	hb.haveCurrent = true
}

// AddBranch inserts an already-hashed subtree at nibbledKey, as produced by
// an earlier, separately cached builder run. isInDBTrie marks whether that
// subtree's own NodeRecord is already durable, which feeds the tree_mask
// of whichever ancestor branch ultimately attaches it.
func (hb *HashBuilder) AddBranch(nibbledKey []byte, hash Hash, isInDBTrie bool) {
	hb.checkOrder(nibbledKey)
	if hb.haveCurrent {
		hb.fold(nibbledKey)
	}
	key := cloneBytes(nibbledKey)
	hb.registerCurrent(key)
	hb.pushItem(stackItem{kind: itemAdd, key: key, hash: hash, isInDBTrie: isInDBTrie})
	hb.currentKey = key
	hb.haveCurrent = true
}

// RootHash finishes folding every pending level and returns the trie root.
// An empty builder returns keccak.EmptyRoot.
func (hb *HashBuilder) RootHash() Hash {
	if !hb.haveCurrent {
		return Hash(keccak.EmptyRoot)
	}
	hb.fold(nil)
	return hb.finalizeRoot()
}

func (hb *HashBuilder) checkOrder(key []byte) {
	if !hb.haveCurrent {
		return
	}
	if bytes.Compare(hb.currentKey, key) >= 0 {
		panic("trie: hash builder keys must be strictly increasing")
	}
}

func (hb *HashBuilder) registerCurrent(key []byte) {
	d := len(key) - 1
	hb.ensureDepth(d)
	hb.groups[d] |= 1 << key[d]
}

func (hb *HashBuilder) ensureDepth(d int) {
	for len(hb.groups) <= d {
		hb.groups = append(hb.groups, 0)
	}
}

func (hb *HashBuilder) pushItem(item stackItem) {
	hb.stack = append(hb.stack, item)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (hb *HashBuilder) popStack(n int) []stackItem {
	items := make([]stackItem, n)
	copy(items, hb.stack[len(hb.stack)-n:])
	hb.stack = hb.stack[:len(hb.stack)-n]
	return items
}

// fold closes every depth strictly deeper than the common prefix of
// currentKey and succeeding, folding each into its parent's pending child
// slot, then (when succeeding is non-empty) registers succeeding's own bit
// at the common-prefix depth so the next insertion's fold sees it.
func (hb *HashBuilder) fold(succeeding []byte) {
	p := prefixLen(hb.currentKey, succeeding)
	d := len(hb.currentKey) - 1

	for d > p {
		mask := hb.groups[d]
		bitcount := bits.OnesCount16(mask)
		if bitcount == 0 {
			panic("trie: hash builder fold found an empty group")
		}
		items := hb.popStack(bitcount)
		hb.groups[d] = 0

		if bitcount == 1 {
			hb.pushItem(items[0])
		} else {
			ref, isBranch, isInDBTrie := hb.closeBranch(d, mask, items)
			// The branch's path prefix is captured now: by the time this
			// item is folded into an ancestor, currentKey may already have
			// diverged below d.
			hb.pushItem(stackItem{
				kind:          itemResolved,
				key:           cloneBytes(hb.currentKey[:d]),
				ref:           ref,
				isBranch:      isBranch,
				isInDBTrie:    isInDBTrie,
				closedAtDepth: d,
			})
		}

		d--
		hb.ensureDepth(d)
		hb.groups[d] |= 1 << hb.currentKey[d]
	}

	if len(succeeding) > 0 {
		hb.ensureDepth(p)
		hb.groups[p] |= 1 << succeeding[p]
	}
}

// finalizeRoot closes depth 0 regardless of how many bits it holds: at the
// root there is no ancestor branch left to defer to.
func (hb *HashBuilder) finalizeRoot() Hash {
	mask := hb.groups[0]
	bitcount := bits.OnesCount16(mask)
	items := hb.popStack(bitcount)
	hb.groups[0] = 0

	if bitcount <= 1 {
		ref, _, _ := hb.finalizeItem(items[0], -1)
		return asHash32(ref)
	}
	ref, _, _ := hb.closeBranch(0, mask, items)
	return asHash32(ref)
}

// finalizeItem resolves a pending stack item into a node reference, given
// the depth d of the ancestor branch it is attaching to (-1 at the trie
// root, where there is no ancestor to consume a selector nibble).
func (hb *HashBuilder) finalizeItem(item stackItem, d int) (ref []byte, isBranch, isInDBTrie bool) {
	switch item.kind {
	case itemLeaf:
		path := item.key[d+1:]
		return hb.leafRef(path, item.value), false, false
	case itemAdd:
		path := item.key[d+1:]
		if len(path) == 0 {
			return hb.hashRef(item.hash), item.isInDBTrie, item.isInDBTrie
		}
		return hb.extensionRef(path, hb.hashRef(item.hash)), item.isInDBTrie, item.isInDBTrie
	default: // itemResolved
		path := item.key[d+1 : item.closedAtDepth]
		if len(path) == 0 {
			return item.ref, item.isBranch, item.isInDBTrie
		}
		return hb.extensionRef(path, item.ref), true, item.isInDBTrie
	}
}

// closeBranch builds the 17-element branch node covering every bit of
// mask, resolving each pending child along the way, and hands the result's
// NodeRecord to the collector if one is installed.
func (hb *HashBuilder) closeBranch(d int, mask uint16, items []stackItem) (ref []byte, isBranch, isInDBTrie bool) {
	var refs [16][]byte
	var treeMask, hashMask uint16
	var hashes []Hash

	idx := 0
	for nibble := 0; nibble < 16; nibble++ {
		if mask&(1<<uint(nibble)) == 0 {
			continue
		}
		childRef, childIsBranch, childIsInDBTrie := hb.finalizeItem(items[idx], d)
		idx++

		refs[nibble] = childRef
		if childIsBranch {
			treeMask |= 1 << uint(nibble)
		}
		if childIsInDBTrie {
			isInDBTrie = true
		}
		if len(childRef) == 33 {
			hashMask |= 1 << uint(nibble)
			var h Hash
			copy(h[:], childRef[1:])
			hashes = append(hashes, h)
		}
	}

	payload := hb.buildBranchRLP(refs)
	ref = hb.hashOrEmbed(payload)

	if hb.collector != nil {
		rec := &NodeRecord{StateMask: mask, TreeMask: treeMask, HashMask: hashMask, Hashes: hashes}
		if len(ref) == 33 {
			var root Hash
			copy(root[:], ref[1:])
			rec.RootHash = &root
		}
		hb.collector(hb.currentKey[:d], rec)
	}
	return ref, true, isInDBTrie
}

func (hb *HashBuilder) leafRef(path, value []byte) []byte {
	hp := hexPrefixEncode(path, true)
	hb.scratch.reset()
	hb.scratch.appendBytes(rlp.EncodeString(nil, hp))
	hb.scratch.appendBytes(rlp.EncodeString(nil, value))
	return hb.hashOrEmbed(rlp.WrapList(nil, hb.scratch.clone()))
}

func (hb *HashBuilder) extensionRef(path, childRef []byte) []byte {
	hp := hexPrefixEncode(path, false)
	hb.scratch.reset()
	hb.scratch.appendBytes(rlp.EncodeString(nil, hp))
	hb.scratch.appendBytes(childRef)
	return hb.hashOrEmbed(rlp.WrapList(nil, hb.scratch.clone()))
}

func (hb *HashBuilder) hashRef(h Hash) []byte {
	return h.EncodeRLP(nil)
}

// buildBranchRLP assembles the 17-slot branch payload: 16 child references
// (0x80 for an absent child) and an always-empty 17th value slot, since no
// leaf key may be a strict prefix of another.
func (hb *HashBuilder) buildBranchRLP(refs [16][]byte) []byte {
	var payload []byte
	for i := 0; i < 16; i++ {
		if refs[i] == nil {
			payload = append(payload, rlp.EmptyStringCode)
		} else {
			payload = append(payload, refs[i]...)
		}
	}
	payload = append(payload, rlp.EmptyStringCode)
	return rlp.WrapList(nil, payload)
}

// hashOrEmbed applies the node-reference rule: RLP shorter than 32 bytes is
// used inline; everything else is replaced by its Keccak-256 digest.
func (hb *HashBuilder) hashOrEmbed(nodeRLP []byte) []byte {
	if len(nodeRLP) < 32 {
		return nodeRLP
	}
	return Hash(keccak.Hash256(nodeRLP)).EncodeRLP(nil)
}

// asHash32 resolves the final stack entry into a root hash. It is almost
// always already a 32-byte hash reference; the rare case of a whole trie
// small enough to stay embedded is hashed once more here, since a root
// must always be returned as a commitment, never inlined.
func asHash32(ref []byte) Hash {
	if len(ref) == 33 && ref[0] == rlp.EmptyStringCode+32 {
		from := ref
		h, err := DecodeHash(&from, rlp.Allow)
		if err != nil {
			panic("trie: malformed embedded hash reference: " + err.Error())
		}
		return h
	}
	return Hash(keccak.Hash256(ref))
}
