package catalog

import (
	"fmt"
	"log"
	"sync"

	"github.com/okampfer/lifesim/internal/scenario"
	"github.com/okampfer/lifesim/internal/sim"
)

// Catalog holds the validated scenario set for one server instance and
// serves simulation results on demand. Results are computed lazily and
// cached; a reload replaces the scenario set and clears the cache.
type Catalog struct {
	dir        string
	schemaPath string

	mu        sync.RWMutex
	scenarios []scenario.ScenarioWithFile
	cache     *ResultCache
}

// New creates a catalog for the given scenario directory.
func New(dir, schemaPath string) *Catalog {
	return &Catalog{
		dir:        dir,
		schemaPath: schemaPath,
		cache:      NewResultCache(),
	}
}

// Load reads, validates, and installs the scenario set. On validation
// failure the previously installed set stays in place.
func (c *Catalog) Load() error {
	scenarios, loadErrors := scenario.LoadFromDirectory(c.dir)
	if len(loadErrors) > 0 {
		return fmt.Errorf("failed to load scenarios: %d errors, first: %v", len(loadErrors), loadErrors[0])
	}

	if len(scenarios) == 0 {
		return fmt.Errorf("no scenarios found in %s", c.dir)
	}

	validator, err := scenario.NewValidator(c.schemaPath)
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	validationErrors := validator.ValidateDirectory(c.dir)
	if len(validationErrors) > 0 {
		return fmt.Errorf("scenario validation failed: %d errors, first: %v",
			len(validationErrors), validationErrors[0])
	}

	c.mu.Lock()
	c.scenarios = scenarios
	c.mu.Unlock()
	c.cache.Clear()

	log.Printf("Loaded %d scenarios from %s", len(scenarios), c.dir)
	return nil
}

// Scenarios returns the installed scenario set.
func (c *Catalog) Scenarios() []scenario.ScenarioWithFile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.scenarios
}

// Get returns the scenario with the given ID.
func (c *Catalog) Get(id string) (*scenario.Scenario, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, sf := range c.scenarios {
		if sf.Scenario.Metadata.ID == id {
			return sf.Scenario, true
		}
	}
	return nil, false
}

// Result returns the simulation result for a stored scenario, computing
// and caching it on first use. Simulations are deterministic, so a
// cached result is indistinguishable from a fresh one.
func (c *Catalog) Result(id string) (*sim.Result, error) {
	if result, ok := c.cache.Get(id); ok {
		return result, nil
	}

	sc, ok := c.Get(id)
	if !ok {
		return nil, fmt.Errorf("scenario not found: %s", id)
	}

	result, err := sim.Simulate(sc.Spec)
	if err != nil {
		return nil, fmt.Errorf("simulate %s: %w", id, err)
	}

	c.cache.Set(id, result)
	return result, nil
}

// CacheSize reports how many results are currently cached.
func (c *Catalog) CacheSize() int {
	return c.cache.Size()
}
