package mix

import "sync"

// Cache memoizes complete designs by input fingerprint. Entries are never
// mutated or evicted; a session designs few distinct mixes, so unbounded
// growth is acceptable.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Result
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Result)}
}

// GetOrCompute returns the result stored under key, running compute and
// storing its result on first sight. The lock covers the whole get-or-insert
// sequence, so compute runs at most once per key even under concurrent
// callers. Failed computations are not stored.
func (c *Cache) GetOrCompute(key string, compute func() (*Result, error)) (result *Result, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.entries[key]; ok {
		return r, true, nil
	}
	r, err := compute()
	if err != nil {
		return nil, false, err
	}
	c.entries[key] = r
	return r, false, nil
}

// Len reports the number of memoized designs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
