// Package cache provides the response cache for search outcomes, keyed by a
// deterministic fingerprint of the normalized request.
package cache

import (
	"context"
	"time"

	"github.com/georgeerol/business-search-service/internal/domain"
)

// Cache defaults.
const (
	// DefaultTTL is how long a cached outcome stays fresh.
	DefaultTTL = 5 * time.Minute

	// DefaultCapacity bounds the number of live entries in the in-memory
	// backend.
	DefaultCapacity = 1000

	// KeyPrefix namespaces fingerprints in shared backends such as Redis.
	KeyPrefix = "business_search:"
)

// ResponseCache memoizes search outcomes by request fingerprint.
// Implementations must be safe for concurrent use and must never hand out a
// reference that would let one caller corrupt an entry another caller reads.
type ResponseCache interface {
	// Get returns the cached outcome for the key, or false on a miss.
	// Expired entries are treated as absent.
	Get(ctx context.Context, key string) (*domain.SearchOutcome, bool)

	// Put stores the outcome under the key, replacing any live entry.
	Put(ctx context.Context, key string, outcome *domain.SearchOutcome) error
}
