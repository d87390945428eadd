package nodecache

import (
	"github.com/VictoriaMetrics/fastcache"

	"github.com/triehash/mpt-go/log"
	"github.com/triehash/mpt-go/metrics"
	"github.com/triehash/mpt-go/trie"
)

var diskLog = log.Default().Module("nodecache.disk")

// DiskCache persists NodeRecord.EncodeForStorage output in a fastcache
// byte-addressed store, keyed by the node's nibble path. fastcache bounds
// memory by total byte size rather than entry count and can snapshot to
// and reload from a directory on disk, which is the property a caller
// wanting the node-record cache to survive a process restart needs.
type DiskCache struct {
	cache   *fastcache.Cache
	entries *metrics.Gauge
}

// NewDiskCache creates a DiskCache with the given in-memory budget in
// bytes. This does not read or write any file; use LoadDiskCache /
// SaveToFile to persist across runs.
func NewDiskCache(maxBytes int) *DiskCache {
	return &DiskCache{
		cache:   fastcache.New(maxBytes),
		entries: metrics.NewGauge("nodecache.disk.entries"),
	}
}

// LoadDiskCache reopens a DiskCache previously written with SaveToFile.
func LoadDiskCache(path string) (*DiskCache, error) {
	c, err := fastcache.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return &DiskCache{cache: c, entries: metrics.NewGauge("nodecache.disk.entries")}, nil
}

// Collect is a trie.NodeCollector: it stores node's stable storage encoding
// (§4.4) keyed by the branch's nibble path.
func (c *DiskCache) Collect(nibbledKey []byte, node *trie.NodeRecord) {
	c.cache.Set(nibbledKey, node.EncodeForStorage())
	c.entries.Inc()
}

// Get looks up and decodes the NodeRecord stored at a nibble path.
func (c *DiskCache) Get(nibbledKey []byte) (*trie.NodeRecord, bool) {
	raw := c.cache.Get(nil, nibbledKey)
	if raw == nil {
		return nil, false
	}
	node, err := trie.DecodeNodeRecordFromStorage(raw)
	if err != nil {
		diskLog.Warn("corrupt cache entry", "err", err)
		return nil, false
	}
	return node, true
}

// Has reports whether a nibble path has a cached entry, without decoding it.
func (c *DiskCache) Has(nibbledKey []byte) bool {
	return c.cache.Has(nibbledKey)
}

// Del removes the cached entry for a nibble path.
func (c *DiskCache) Del(nibbledKey []byte) {
	c.cache.Del(nibbledKey)
}

// SaveToFile snapshots the cache to a directory for later reload with
// LoadDiskCache.
func (c *DiskCache) SaveToFile(path string) error {
	return c.cache.SaveToFile(path)
}

// Reset empties the cache.
func (c *DiskCache) Reset() {
	c.cache.Reset()
	c.entries.Set(0)
}
