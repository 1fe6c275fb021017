// Package http provides the HTTP handler layer for the business search API.
package http

import (
	"github.com/georgeerol/business-search-service/internal/domain"
)

// ToDomainRequest converts a SearchBusinessesRequest to a domain.SearchRequest.
// Validation and normalization happen in the domain layer.
func ToDomainRequest(req *SearchBusinessesRequest) domain.SearchRequest {
	locations := make([]domain.LocationFilter, len(req.Locations))
	for i, loc := range req.Locations {
		locations[i] = domain.LocationFilter{
			State: loc.State,
			Lat:   loc.Lat,
			Lng:   loc.Lng,
		}
	}

	return domain.SearchRequest{
		Locations:   locations,
		RadiusMiles: req.RadiusMiles,
		Text:        req.Text,
	}
}
