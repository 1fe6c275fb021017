package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/infrastructure/timeutil"
)

func sampleOutcome() *domain.SearchOutcome {
	return &domain.SearchOutcome{
		Results: []domain.BusinessRecord{
			{ID: 1, Name: "Blue Bottle Coffee", City: "San Francisco", State: "CA", Latitude: 37.7763, Longitude: -122.4233},
		},
		Metadata: domain.SearchMetadata{
			TotalCount:     1,
			TotalFound:     1,
			FiltersApplied: []string{domain.FilterKindState},
			Performance: domain.PerformanceInfo{
				ProcessingTimeMs: 1.25,
				SearchID:         "search-1",
			},
		},
	}
}

func TestMemoryCache_GetMissAndHit(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryConfig{})

	_, ok := c.Get(ctx, "absent")
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "key", sampleOutcome()))

	got, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, sampleOutcome(), got)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClockFromString("2026-08-29T10:00:00Z")
	c := NewMemoryCache(MemoryConfig{TTL: 5 * time.Minute, Clock: clock})

	require.NoError(t, c.Put(ctx, "key", sampleOutcome()))

	clock.Advance(4*time.Minute + 59*time.Second)
	_, ok := c.Get(ctx, "key")
	assert.True(t, ok, "entry just inside the TTL should still be live")

	clock.Advance(time.Second)
	_, ok = c.Get(ctx, "key")
	assert.False(t, ok, "entry at exactly the TTL should have expired")

	// The expired entry was lazily removed.
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_PutRefreshesExistingKey(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClockFromString("2026-08-29T10:00:00Z")
	c := NewMemoryCache(MemoryConfig{TTL: 5 * time.Minute, Clock: clock})

	require.NoError(t, c.Put(ctx, "key", sampleOutcome()))
	clock.AdvanceMinutes(4)

	refreshed := sampleOutcome()
	refreshed.Metadata.Performance.SearchID = "search-2"
	require.NoError(t, c.Put(ctx, "key", refreshed))

	clock.AdvanceMinutes(4)
	got, ok := c.Get(ctx, "key")
	require.True(t, ok, "re-put should have reset the TTL")
	assert.Equal(t, "search-2", got.Metadata.Performance.SearchID)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_CapacityEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryConfig{Capacity: 3})

	for i := 0; i < 4; i++ {
		require.NoError(t, c.Put(ctx, fmt.Sprintf("key-%d", i), sampleOutcome()))
	}

	assert.Equal(t, 3, c.Len())

	// Oldest insertion went first.
	_, ok := c.Get(ctx, "key-0")
	assert.False(t, ok)
	for i := 1; i < 4; i++ {
		_, ok := c.Get(ctx, fmt.Sprintf("key-%d", i))
		assert.True(t, ok, "key-%d should have survived eviction", i)
	}
}

func TestMemoryCache_HandsOutCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryConfig{})

	original := sampleOutcome()
	require.NoError(t, c.Put(ctx, "key", original))

	// Mutating what the caller passed in must not touch the cached entry.
	original.Results[0].Name = "mutated after put"
	original.Metadata.FiltersApplied[0] = "mutated"

	first, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "Blue Bottle Coffee", first.Results[0].Name)
	assert.Equal(t, domain.FilterKindState, first.Metadata.FiltersApplied[0])

	// Mutating one reader's copy must not be visible to the next reader.
	first.Results[0].Name = "mutated after get"

	second, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "Blue Bottle Coffee", second.Results[0].Name)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryConfig{Capacity: 8})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%4)
			assert.NoError(t, c.Put(ctx, key, sampleOutcome()))
			if outcome, ok := c.Get(ctx, key); ok {
				assert.Equal(t, 1, outcome.Metadata.TotalCount)
			}
		}(i)
	}
	wg.Wait()
}
