package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/georgeerol/business-search-service/internal/domain"
)

// RedisCache is a ResponseCache backed by a shared Redis instance. Entry
// expiry is delegated to Redis TTLs and capacity to the server's maxmemory
// policy. Redis failures degrade to cache misses: the search still runs,
// it just isn't memoized.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedisCache creates a RedisCache around an existing client.
// A non-positive ttl selects DefaultTTL.
func NewRedisCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get implements ResponseCache.
func (c *RedisCache) Get(ctx context.Context, key string) (*domain.SearchOutcome, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("Redis get failed, treating as miss")
		}
		return nil, false
	}

	var outcome domain.SearchOutcome
	if err := json.Unmarshal(data, &outcome); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Corrupt cache entry, treating as miss")
		return nil, false
	}
	return &outcome, true
}

// Put implements ResponseCache.
func (c *RedisCache) Put(ctx context.Context, key string, outcome *domain.SearchOutcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Ensure RedisCache implements ResponseCache at compile time.
var _ ResponseCache = (*RedisCache)(nil)
