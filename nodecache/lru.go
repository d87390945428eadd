// Package nodecache gives a caller of the hash builder's node_collector a
// concrete place to persist emitted trie.NodeRecord values, so a later
// incremental recomputation can skip rehashing subtrees the PrefixSet does
// not mark as touched. LRUCache is an in-memory, bounded cache keyed by the
// node's nibble path; DiskCache is a byte-addressed cache over the
// storage-format encoding, suitable for processes that want the cache to
// survive a restart.
package nodecache

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/triehash/mpt-go/log"
	"github.com/triehash/mpt-go/metrics"
	"github.com/triehash/mpt-go/trie"
)

var lruLog = log.Default().Module("nodecache")

// LRUCache is a fixed-capacity, in-memory cache of NodeRecords keyed by the
// nibble path of the branch they describe. It is a valid trie.NodeCollector
// via its Collect method.
type LRUCache struct {
	cache  *lru.Cache
	hits   *metrics.Counter
	misses *metrics.Counter
}

// NewLRUCache creates an in-memory node cache holding up to capacity
// entries. A non-positive capacity is rejected by the underlying
// hashicorp/golang-lru constructor, so it is raised to 1 here to keep
// construction infallible.
func NewLRUCache(capacity int) *LRUCache {
	if capacity <= 0 {
		capacity = 1
	}
	c, err := lru.New(capacity)
	if err != nil {
		// lru.New only fails for size <= 0, which is excluded above.
		panic("nodecache: " + err.Error())
	}
	return &LRUCache{
		cache:  c,
		hits:   metrics.NewCounter("nodecache.lru.hits"),
		misses: metrics.NewCounter("nodecache.lru.misses"),
	}
}

// Collect is a trie.NodeCollector: it stores a defensive copy of node under
// the given nibble path, evicting the least-recently-used entry if the
// cache is already at capacity.
func (c *LRUCache) Collect(nibbledKey []byte, node *trie.NodeRecord) {
	key := string(nibbledKey)
	cp := *node
	cp.Hashes = append([]trie.Hash(nil), node.Hashes...)
	c.cache.Add(key, &cp)
}

// Get looks up the cached NodeRecord for a nibble path, promoting it to
// most-recently-used on a hit.
func (c *LRUCache) Get(nibbledKey []byte) (*trie.NodeRecord, bool) {
	v, ok := c.cache.Get(string(nibbledKey))
	if !ok {
		c.misses.Inc()
		lruLog.Debug("miss", "path_len", len(nibbledKey))
		return nil, false
	}
	c.hits.Inc()
	return v.(*trie.NodeRecord), true
}

// Remove evicts the entry for a nibble path, if present. Used when a caller
// observes (via PrefixSet) that a subtree must be re-walked and its cached
// record can no longer be trusted.
func (c *LRUCache) Remove(nibbledKey []byte) {
	c.cache.Remove(string(nibbledKey))
}

// Len reports the number of entries currently cached.
func (c *LRUCache) Len() int { return c.cache.Len() }

// Purge empties the cache.
func (c *LRUCache) Purge() { c.cache.Purge() }

// Hits returns the number of successful Get calls.
func (c *LRUCache) Hits() int64 { return c.hits.Value() }

// Misses returns the number of unsuccessful Get calls.
func (c *LRUCache) Misses() int64 { return c.misses.Value() }
