// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Business search results with metadata
type SwaggerSearchResponse struct {
	// Results contains the matching business records
	Results []SwaggerBusiness `json:"results"`

	// SearchMetadata contains information about the search execution
	SearchMetadata SwaggerSearchMetadata `json:"search_metadata"`
}

// SwaggerBusiness represents a single business record.
// @Description Business record from the searchable collection
type SwaggerBusiness struct {
	// ID is the unique identifier of the record
	ID int64 `json:"id" example:"42"`

	// Name is the business name
	Name string `json:"name" example:"Blue Bottle Coffee"`

	// City is the city the business is located in
	City string `json:"city" example:"San Francisco"`

	// State is the 2-letter US state code
	State string `json:"state" example:"CA"`

	// Latitude is the business latitude in decimal degrees
	Latitude float64 `json:"latitude" example:"37.7763"`

	// Longitude is the business longitude in decimal degrees
	Longitude float64 `json:"longitude" example:"-122.4233"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// TotalCount is the number of records returned
	TotalCount int `json:"total_count" example:"3"`

	// TotalFound is the number of distinct matches before truncation
	TotalFound int `json:"total_found" example:"3"`

	// RadiusUsed is the radius in miles that produced the geo results
	RadiusUsed float64 `json:"radius_used" example:"50"`

	// RadiusExpanded indicates whether the fallback sequence was used
	RadiusExpanded bool `json:"radius_expanded" example:"false"`

	// RadiusRequested echoes the requested radius for geo searches
	RadiusRequested *float64 `json:"radius_requested,omitempty" example:"10"`

	// RadiusExpansionSequence is the ordered list of radii attempted
	RadiusExpansionSequence []float64 `json:"radius_expansion_sequence,omitempty" example:"10,25,50"`

	// FiltersApplied lists the filter kinds present in the request
	FiltersApplied []string `json:"filters_applied" example:"text,state"`

	// SearchLocations echoes one summary entry per input location filter
	SearchLocations []SwaggerLocationSummary `json:"search_locations"`

	// Performance carries timing and cache annotations
	Performance SwaggerPerformanceInfo `json:"performance"`

	// CacheKey is the fingerprint the outcome was served under (cache hits only)
	CacheKey string `json:"cache_key,omitempty" example:"business_search:5d41402abc4b2a76b9719d911017c592"`
}

// SwaggerLocationSummary echoes a single input location filter.
// @Description Echoed location filter
type SwaggerLocationSummary struct {
	// Type is the filter kind
	Type string `json:"type" example:"state"`

	// State is the state code for state filters
	State string `json:"state,omitempty" example:"CA"`

	// Lat is the latitude for geo filters
	Lat *float64 `json:"lat,omitempty" example:"37.7749"`

	// Lng is the longitude for geo filters
	Lng *float64 `json:"lng,omitempty" example:"-122.4194"`
}

// SwaggerPerformanceInfo contains per-search timing and cache annotations.
// @Description Search performance information
type SwaggerPerformanceInfo struct {
	// ProcessingTimeMs is the server-side search duration in milliseconds
	ProcessingTimeMs float64 `json:"processing_time_ms" example:"4.21"`

	// SearchID uniquely identifies this search for log correlation
	SearchID string `json:"search_id" example:"550e8400-e29b-41d4-a716-446655440000"`

	// Cached indicates whether the outcome was served from cache
	Cached bool `json:"cached" example:"false"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
