package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/infrastructure/geo"
)

// sliceLookup backs the expansion with an in-memory record slice, applying
// the exact distance check the way the real repository-backed lookup does.
func sliceLookup(records []domain.BusinessRecord) geoLookupFunc {
	return func(_ context.Context, center geo.Point, radiusMiles float64) ([]domain.BusinessRecord, error) {
		return filterWithinRadius(records, center, radiusMiles), nil
	}
}

func TestExpandRadiusSearch_HitAtRequestedRadius(t *testing.T) {
	records := []domain.BusinessRecord{recordAt(1, "Near", 0.05, 0)} // ~3.5 mi
	origin := []geo.Point{{Lat: 0, Lng: 0}}

	result, err := expandRadiusSearch(context.Background(), sliceLookup(records), origin, 5)
	require.NoError(t, err)

	assert.Len(t, result.Records, 1)
	assert.Equal(t, 5.0, result.RadiusUsed)
	assert.False(t, result.Expanded)
	assert.Equal(t, []float64{5}, result.RadiiTried)
}

func TestExpandRadiusSearch_WalksSequenceUntilFirstHit(t *testing.T) {
	records := []domain.BusinessRecord{recordAt(1, "Mid", 0.5, 0)} // ~34.5 mi
	origin := []geo.Point{{Lat: 0, Lng: 0}}

	result, err := expandRadiusSearch(context.Background(), sliceLookup(records), origin, 5)
	require.NoError(t, err)

	assert.Len(t, result.Records, 1)
	assert.Equal(t, 50.0, result.RadiusUsed)
	assert.True(t, result.Expanded)
	assert.Equal(t, []float64{5, 10, 25, 50}, result.RadiiTried)
}

func TestExpandRadiusSearch_SkipsRadiiNotLargerThanRequested(t *testing.T) {
	records := []domain.BusinessRecord{recordAt(1, "Far", 1.25, 0)} // ~86.4 mi
	origin := []geo.Point{{Lat: 0, Lng: 0}}

	// 1, 5, 10 and 25 are all <= 30 and cannot yield anything new.
	result, err := expandRadiusSearch(context.Background(), sliceLookup(records), origin, 30)
	require.NoError(t, err)

	assert.True(t, result.Expanded)
	assert.Equal(t, 100.0, result.RadiusUsed)
	assert.Equal(t, []float64{30, 50, 100}, result.RadiiTried)
}

func TestExpandRadiusSearch_Exhausted(t *testing.T) {
	records := []domain.BusinessRecord{recordAt(1, "Remote", 8, 0)} // ~552 mi
	origin := []geo.Point{{Lat: 0, Lng: 0}}

	result, err := expandRadiusSearch(context.Background(), sliceLookup(records), origin, 5)
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Equal(t, 500.0, result.RadiusUsed)
	assert.True(t, result.Expanded)
	assert.Equal(t, []float64{5, 10, 25, 50, 100, 500}, result.RadiiTried)
}

func TestExpandRadiusSearch_RequestedBeyondSequenceMax(t *testing.T) {
	origin := []geo.Point{{Lat: 0, Lng: 0}}

	// Nothing within 800 miles and no sequence entry exceeds the request,
	// so the search exhausts immediately after the requested attempt.
	result, err := expandRadiusSearch(context.Background(), sliceLookup(nil), origin, 800)
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Equal(t, 500.0, result.RadiusUsed)
	assert.True(t, result.Expanded)
	assert.Equal(t, []float64{800}, result.RadiiTried)
}

func TestExpandRadiusSearch_SharedRadiusAcrossPoints(t *testing.T) {
	// One point has a neighbor at ~3.5 mi, the other's nearest record is
	// ~34.5 mi away. The radius is shared: as soon as any point matches,
	// expansion stops for all of them.
	records := []domain.BusinessRecord{
		recordAt(1, "Near A", 0.05, 0),
		recordAt(2, "Near B", 10.5, 0),
	}
	points := []geo.Point{{Lat: 0, Lng: 0}, {Lat: 10, Lng: 0}}

	result, err := expandRadiusSearch(context.Background(), sliceLookup(records), points, 5)
	require.NoError(t, err)

	assert.Len(t, result.Records, 1)
	assert.Equal(t, "Near A", result.Records[0].Name)
	assert.Equal(t, 5.0, result.RadiusUsed)
	assert.False(t, result.Expanded)
}

func TestExpandRadiusSearch_DeduplicatesAcrossPoints(t *testing.T) {
	// A record between two nearby points matches both.
	records := []domain.BusinessRecord{recordAt(1, "Between", 0.05, 0)}
	points := []geo.Point{{Lat: 0, Lng: 0}, {Lat: 0.1, Lng: 0}}

	result, err := expandRadiusSearch(context.Background(), sliceLookup(records), points, 10)
	require.NoError(t, err)

	assert.Len(t, result.Records, 1)
}

func TestExpandRadiusSearch_PropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("store offline")
	failing := func(context.Context, geo.Point, float64) ([]domain.BusinessRecord, error) {
		return nil, lookupErr
	}

	_, err := expandRadiusSearch(context.Background(), failing, []geo.Point{{Lat: 0, Lng: 0}}, 5)
	assert.ErrorIs(t, err, lookupErr)
}

func TestDedupeByID(t *testing.T) {
	records := []domain.BusinessRecord{
		recordAt(2, "Second", 0, 0),
		recordAt(1, "First", 0, 0),
		recordAt(2, "Second again", 0, 0),
	}

	unique := dedupeByID(records)
	require.Len(t, unique, 2)
	assert.Equal(t, "Second", unique[0].Name, "first occurrence wins")
	assert.Equal(t, "First", unique[1].Name)
}
