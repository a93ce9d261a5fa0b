package regression

import (
	"sync"
	"sync/atomic"

	"github.com/arloliu/stepreg/internal/hash"
)

// cacheEntry pairs a fitted model with the exact subset key it was fitted on,
// so that an xxHash64 collision is detected instead of returning a wrong model.
type cacheEntry struct {
	key   string
	model *Model
}

// CachedFitter memoizes another Fitter by the ordered list of predictor names.
//
// Stepwise selection restarts its search from an empty set whenever the
// inclusion threshold moves, and then refits exactly the same subsets again.
// CachedFitter returns the stored Model for a subset it has already fitted.
//
// The cache key covers column names only: one CachedFitter must be used with a
// single target and a single feature table. Errors are not cached.
//
// CachedFitter is safe for concurrent use.
type CachedFitter struct {
	fitter  Fitter
	mu      sync.RWMutex
	entries map[uint64]cacheEntry
	hits    atomic.Uint64
	misses  atomic.Uint64
}

var _ Fitter = (*CachedFitter)(nil)

// NewCachedFitter wraps fitter with a subset-keyed cache.
func NewCachedFitter(fitter Fitter) *CachedFitter {
	return &CachedFitter{
		fitter:  fitter,
		entries: make(map[uint64]cacheEntry),
	}
}

// Fit returns the cached model for the column subset or delegates to the wrapped fitter.
func (c *CachedFitter) Fit(target []float64, columns []Column) (*Model, error) {
	names := ColumnNames(columns)
	id := hash.SubsetID(names)
	key := hash.SubsetKey(names)

	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if ok && entry.key == key {
		c.hits.Add(1)
		return entry.model, nil
	}

	c.misses.Add(1)
	model, err := c.fitter.Fit(target, columns)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// On a collision the newer subset wins the slot.
	c.entries[id] = cacheEntry{key: key, model: model}
	c.mu.Unlock()

	return model, nil
}

// Hits returns the number of fits served from the cache.
func (c *CachedFitter) Hits() uint64 {
	return c.hits.Load()
}

// Misses returns the number of fits delegated to the wrapped fitter.
func (c *CachedFitter) Misses() uint64 {
	return c.misses.Load()
}

// Len returns the number of cached subsets.
func (c *CachedFitter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Reset drops all cached models and counters.
func (c *CachedFitter) Reset() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}
