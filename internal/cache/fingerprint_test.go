package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/georgeerol/business-search-service/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestFingerprint_EquivalentRequestsCollide(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.SearchRequest
	}{
		{
			name: "location order is irrelevant",
			a: domain.SearchRequest{
				Locations: []domain.LocationFilter{
					domain.StateFilter("CA"),
					domain.GeoFilter(40.7128, -74.0060),
				},
			},
			b: domain.SearchRequest{
				Locations: []domain.LocationFilter{
					domain.GeoFilter(40.7128, -74.0060),
					domain.StateFilter("CA"),
				},
			},
		},
		{
			name: "text case and surrounding whitespace are irrelevant",
			a: domain.SearchRequest{
				Locations: []domain.LocationFilter{domain.StateFilter("NY")},
				Text:      "  Coffee  ",
			},
			b: domain.SearchRequest{
				Locations: []domain.LocationFilter{domain.StateFilter("NY")},
				Text:      "coffee",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Fingerprint(tt.a), Fingerprint(tt.b))
		})
	}
}

func TestFingerprint_DistinctRequestsDiverge(t *testing.T) {
	base := domain.SearchRequest{
		Locations:   []domain.LocationFilter{domain.GeoFilter(34.0522, -118.2437)},
		RadiusMiles: floatPtr(25),
		Text:        "pizza",
	}

	tests := []struct {
		name   string
		mutate func(domain.SearchRequest) domain.SearchRequest
	}{
		{
			name: "different radius",
			mutate: func(r domain.SearchRequest) domain.SearchRequest {
				r.RadiusMiles = floatPtr(50)
				return r
			},
		},
		{
			name: "different text",
			mutate: func(r domain.SearchRequest) domain.SearchRequest {
				r.Text = "tacos"
				return r
			},
		},
		{
			name: "extra location",
			mutate: func(r domain.SearchRequest) domain.SearchRequest {
				r.Locations = append([]domain.LocationFilter{domain.StateFilter("TX")}, r.Locations...)
				return r
			},
		},
		{
			name: "nil versus explicit radius",
			mutate: func(r domain.SearchRequest) domain.SearchRequest {
				r.RadiusMiles = nil
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, Fingerprint(base), Fingerprint(tt.mutate(base)))
		})
	}
}

func TestFingerprint_Shape(t *testing.T) {
	key := Fingerprint(domain.SearchRequest{
		Locations: []domain.LocationFilter{domain.StateFilter("WA")},
	})

	assert.True(t, strings.HasPrefix(key, KeyPrefix))
	// md5 hex digest after the prefix.
	assert.Len(t, strings.TrimPrefix(key, KeyPrefix), 32)
}

func TestFingerprint_Deterministic(t *testing.T) {
	request := domain.SearchRequest{
		Locations: []domain.LocationFilter{
			domain.StateFilter("CA"),
			domain.StateFilter("NY"),
		},
		RadiusMiles: floatPtr(10),
		Text:        "book store",
	}

	first := Fingerprint(request)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Fingerprint(request))
	}
}
