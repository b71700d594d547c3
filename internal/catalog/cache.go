package catalog

import (
	"sync"

	"github.com/okampfer/lifesim/internal/sim"
)

// ResultCache is a thread-safe cache of simulation results keyed by
// scenario ID. Results are deterministic, so entries never expire; they
// are only invalidated when the scenario set is reloaded.
type ResultCache struct {
	mu      sync.RWMutex
	results map[string]*sim.Result
}

// NewResultCache creates an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{
		results: make(map[string]*sim.Result),
	}
}

// Get retrieves a cached result for a scenario.
func (c *ResultCache) Get(id string) (*sim.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, exists := c.results[id]
	return result, exists
}

// Set stores a result for a scenario.
func (c *ResultCache) Set(id string, result *sim.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results[id] = result
}

// Size returns the number of cached results.
func (c *ResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.results)
}

// Clear drops every cached result.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results = make(map[string]*sim.Result)
}
