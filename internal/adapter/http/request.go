// Package http provides the HTTP handler layer for the business search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

// SearchBusinessesRequest represents the request body for business search.
type SearchBusinessesRequest struct {
	// Locations is the list of location filters (1-20). Each entry is
	// either a state filter or a lat/lng filter.
	Locations []LocationDTO `json:"locations"`

	// RadiusMiles is the search radius in miles applied to all lat/lng
	// filters (0.1-1000, default 50)
	RadiusMiles *float64 `json:"radius_miles,omitempty"`

	// Text is an optional case-insensitive substring matched against
	// business names
	Text string `json:"text,omitempty"`
}

// LocationDTO represents a single location filter in the request body.
// Example: {"state": "CA"} or {"lat": 37.7749, "lng": -122.4194}
type LocationDTO struct {
	// State is a 2-letter US state code (e.g., "CA")
	State string `json:"state,omitempty" example:"CA"`

	// Lat is the latitude in decimal degrees
	Lat *float64 `json:"lat,omitempty" example:"37.7749"`

	// Lng is the longitude in decimal degrees
	Lng *float64 `json:"lng,omitempty" example:"-122.4194"`
}
