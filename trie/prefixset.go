package trie

import (
	"bytes"
	"sort"
)

type prefixEntry struct {
	key    []byte
	marker bool
}

// PrefixSet is an ordered collection of (nibble_key, marker) pairs used by
// incremental-recomputation callers to describe which subtrees must be
// re-walked. Insertion order does not matter; queries are only meaningful
// after the set has been (lazily) sorted.
//
// contains is not concurrency-safe: it advances an internal cursor to
// optimize for prefixes queried in non-decreasing order.
type PrefixSet struct {
	entries []prefixEntry
	sorted  bool
	index   int
}

// Insert appends a (key, marker) pair. The set is marked unsorted; the next
// call to Contains or ContainsAndNextMarked will re-sort and deduplicate.
//
// If key is inserted more than once with different marker values, only one
// survives finalization: marker=false wins over marker=true. Callers that
// rely on distinguishing a freshly-created key from an existing one should
// not insert the same key with both markers.
func (s *PrefixSet) Insert(key []byte, marker bool) {
	k := make([]byte, len(key))
	copy(k, key)
	s.entries = append(s.entries, prefixEntry{key: k, marker: marker})
	s.sorted = false
}

// Len reports the number of distinct keys after the set has been
// finalized. Before the first query it reports the raw insert
// count, duplicates included.
func (s *PrefixSet) Len() int {
	return len(s.entries)
}

// Empty reports whether no entries have been inserted.
func (s *PrefixSet) Empty() bool {
	return len(s.entries) == 0
}

// Clear removes all entries and resets the cursor.
func (s *PrefixSet) Clear() {
	s.entries = s.entries[:0]
	s.sorted = false
	s.index = 0
}

// ensureSorted sorts entries ascending by key, breaking ties with marker
// (false before true), then collapses duplicate keys down to one instance
// each, keeping the first of the run. Since false sorts before true, a key
// inserted with both markers keeps its marker=false entry; see the Insert
// doc comment.
func (s *PrefixSet) ensureSorted() {
	if s.sorted {
		return
	}
	sort.Slice(s.entries, func(i, j int) bool {
		c := bytes.Compare(s.entries[i].key, s.entries[j].key)
		if c != 0 {
			return c < 0
		}
		return !s.entries[i].marker && s.entries[j].marker
	})
	out := s.entries[:0]
	for i, e := range s.entries {
		if i > 0 {
			p := out[len(out)-1]
			if bytes.Equal(p.key, e.key) {
				continue
			}
		}
		out = append(out, e)
	}
	s.entries = out
	s.sorted = true
	s.index = 0
}

// Contains reports whether any stored key has prefix as a prefix. It is the
// caller's responsibility to avoid concurrent queries on the same set.
func (s *PrefixSet) Contains(prefix []byte) bool {
	if len(s.entries) == 0 {
		return false
	}
	s.ensureSorted()

	for s.index > 0 && bytes.Compare(s.entries[s.index].key, prefix) > 0 {
		s.index--
	}

	maxIndex := len(s.entries) - 1
	for {
		key := s.entries[s.index].key
		if bytes.HasPrefix(key, prefix) {
			return true
		}
		if bytes.Compare(key, prefix) > 0 || s.index == maxIndex {
			return false
		}
		s.index++
	}
}

// ContainsAndNextMarked reports Contains(prefix), plus the first
// marker=true key at or after the cursor whose leading
// min(invariantLen, len(prefix)) nibbles match prefix's. It stops scanning
// at the first key that diverges in that invariant region. The returned
// key is nil if no marked key qualifies.
func (s *PrefixSet) ContainsAndNextMarked(prefix []byte, invariantLen int) (bool, []byte) {
	contained := s.Contains(prefix)

	if invariantLen > len(prefix) {
		invariantLen = len(prefix)
	}

	var next []byte
	for i := s.index; i < len(s.entries); i++ {
		e := s.entries[i]
		if invariantLen > 0 {
			if len(e.key) < invariantLen || !bytes.Equal(e.key[:invariantLen], prefix[:invariantLen]) {
				break
			}
		}
		if e.marker {
			next = e.key
			break
		}
	}
	return contained, next
}
