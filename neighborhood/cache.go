package neighborhood

import (
	"sync"
)

// Cache memoizes Tables by (dimensionality, Kind). It is safe for
// concurrent use: built tables are immutable and shared between callers.
// There is deliberately no process-wide default cache; the collaborator that
// needs fast per-cell lookups constructs one and passes it explicitly.
type Cache struct {
	mu     sync.RWMutex
	tables map[cacheKey]*Table
}

type cacheKey struct {
	dims int
	kind Kind
}

// NewCache returns an empty table cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[cacheKey]*Table)}
}

// Get returns the table for (n, kind), building and retaining it on first
// use. Concurrent first calls for the same key may build the table more than
// once, but all callers observe the same retained instance afterwards.
// Construction errors are returned unchanged and cache nothing.
//
// Complexity: O(1) on a hit, cost of New on a miss.
func (c *Cache) Get(n int, kind Kind) (*Table, error) {
	key := cacheKey{dims: n, kind: kind}

	c.mu.RLock()
	t, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	built, err := New(n, kind)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if t, ok = c.tables[key]; !ok {
		c.tables[key] = built
		t = built
	}
	c.mu.Unlock()

	return t, nil
}

// Len reports how many tables the cache currently retains.
// Complexity: O(1).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}
