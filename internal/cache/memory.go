package cache

import (
	"context"
	"sync"
	"time"

	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/infrastructure/timeutil"
)

// MemoryConfig configures the in-memory cache backend.
type MemoryConfig struct {
	// TTL is the entry lifetime; zero selects DefaultTTL
	TTL time.Duration

	// Capacity bounds the number of live entries; zero selects
	// DefaultCapacity
	Capacity int

	// Clock supplies the current time; nil selects the system clock
	Clock timeutil.Clock
}

// MemoryCache is a mutex-guarded in-process ResponseCache with TTL expiry
// and oldest-first eviction. It is constructed once at process start and
// injected into the orchestrator.
type MemoryCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	clock    timeutil.Clock
	entries  map[string]*memoryEntry
	order    []string // insertion order, oldest first
}

type memoryEntry struct {
	outcome  *domain.SearchOutcome
	storedAt time.Time
}

// NewMemoryCache creates a MemoryCache with the given configuration.
func NewMemoryCache(cfg MemoryConfig) *MemoryCache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}

	return &MemoryCache{
		ttl:      cfg.TTL,
		capacity: cfg.Capacity,
		clock:    cfg.Clock,
		entries:  make(map[string]*memoryEntry),
	}
}

// Get implements ResponseCache. An entry past its TTL is treated as a miss
// and lazily removed. The returned outcome is a deep copy.
func (c *MemoryCache) Get(_ context.Context, key string) (*domain.SearchOutcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(e.storedAt) >= c.ttl {
		c.remove(key)
		return nil, false
	}
	return e.outcome.Clone(), true
}

// Put implements ResponseCache. The stored value is a deep copy, so later
// mutation of the caller's outcome cannot corrupt the cache. Inserting past
// capacity evicts the least-recently-inserted entries.
func (c *MemoryCache) Put(_ context.Context, key string, outcome *domain.SearchOutcome) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.outcome = outcome.Clone()
		existing.storedAt = c.clock.Now()
		return nil
	}

	c.entries[key] = &memoryEntry{
		outcome:  outcome.Clone(),
		storedAt: c.clock.Now(),
	}
	c.order = append(c.order, key)

	for len(c.entries) > c.capacity {
		c.remove(c.order[0])
	}
	return nil
}

// Len returns the number of entries currently held, including any that have
// expired but not yet been lazily removed.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove deletes the entry and its insertion-order slot.
// Caller must hold the mutex.
func (c *MemoryCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Ensure MemoryCache implements ResponseCache at compile time.
var _ ResponseCache = (*MemoryCache)(nil)
