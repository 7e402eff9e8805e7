// SPDX-License-Identifier: MIT
package analytics

import (
	"sync"

	"github.com/katalvlaran/socnet/bfs"
	"github.com/katalvlaran/socnet/core"
)

// reachCache holds reachable sets computed at one graph version.
//
// Thread Safety: safe for concurrent use.
type reachCache struct {
	mu      sync.Mutex
	version uint64
	sets    map[string]map[string]bool

	hits, misses int
}

func newReachCache() *reachCache {
	return &reachCache{sets: make(map[string]map[string]bool)}
}

// reachable returns the vertices reachable from start in g, computing and
// storing them on a miss. A version change empties the cache first.
func (c *reachCache) reachable(g *core.Graph, start string) (map[string]bool, bool, error) {
	v := g.Version()

	c.mu.Lock()
	if c.version != v {
		c.sets = make(map[string]map[string]bool)
		c.version = v
	}
	if set, ok := c.sets[start]; ok {
		c.hits++
		c.mu.Unlock()

		return set, true, nil
	}
	c.misses++
	c.mu.Unlock()

	set, err := bfs.Reachable(g, start)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	if c.version == v {
		c.sets[start] = set
	}
	c.mu.Unlock()

	return set, false, nil
}

// CacheStats reports reachability cache effectiveness.
type CacheStats struct {
	Version uint64 `json:"version" yaml:"version"`
	Entries int    `json:"entries" yaml:"entries"`
	Hits    int    `json:"hits" yaml:"hits"`
	Misses  int    `json:"misses" yaml:"misses"`
}

func (c *reachCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{Version: c.version, Entries: len(c.sets), Hits: c.hits, Misses: c.misses}
}
