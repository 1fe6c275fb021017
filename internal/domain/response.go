package domain

// SearchOutcome is the result of a business search: the matching records
// plus metadata describing how the search was executed.
type SearchOutcome struct {
	// Results contains the deduplicated, size-capped matching records
	Results []BusinessRecord `json:"results"`

	// Metadata describes filters, radius expansion and performance
	Metadata SearchMetadata `json:"search_metadata"`
}

// SearchMetadata describes how a search was executed.
// Field names are part of the wire compatibility surface.
type SearchMetadata struct {
	// TotalCount is the number of records returned (post-truncation)
	TotalCount int `json:"total_count"`

	// TotalFound is the number of distinct matches before truncation
	TotalFound int `json:"total_found"`

	// RadiusUsed is the radius in miles that produced the geo results
	RadiusUsed float64 `json:"radius_used"`

	// RadiusExpanded indicates whether the fallback sequence was used
	RadiusExpanded bool `json:"radius_expanded"`

	// RadiusRequested echoes the requested radius; only present when the
	// request contained geo filters
	RadiusRequested *float64 `json:"radius_requested,omitempty"`

	// RadiusExpansionSequence is the ordered list of radii actually
	// attempted, starting from the requested radius; only present when
	// the request contained geo filters
	RadiusExpansionSequence []float64 `json:"radius_expansion_sequence,omitempty"`

	// FiltersApplied lists the filter kinds present in the request
	// (subset of "state", "geo", "text")
	FiltersApplied []string `json:"filters_applied"`

	// SearchLocations echoes one summary entry per input location filter
	SearchLocations []LocationSummary `json:"search_locations"`

	// Performance carries timing and cache annotations
	Performance PerformanceInfo `json:"performance"`

	// CacheKey is the fingerprint the outcome was served under; only set
	// on cache hits
	CacheKey string `json:"cache_key,omitempty"`
}

// LocationSummary echoes a single input location filter in the response.
type LocationSummary struct {
	// Type is the filter kind ("state" or "geo")
	Type string `json:"type"`

	// State is the state code for state filters
	State string `json:"state,omitempty"`

	// Lat is the latitude for geo filters
	Lat *float64 `json:"lat,omitempty"`

	// Lng is the longitude for geo filters
	Lng *float64 `json:"lng,omitempty"`
}

// PerformanceInfo carries per-search timing and cache annotations.
type PerformanceInfo struct {
	// ProcessingTimeMs is the server-side search duration in milliseconds
	ProcessingTimeMs float64 `json:"processing_time_ms"`

	// SearchID uniquely identifies this search for log correlation
	SearchID string `json:"search_id"`

	// Cached indicates whether the outcome was served from cache
	Cached bool `json:"cached"`
}

// NewLocationSummaries builds the echoed per-location summaries in input
// order.
func NewLocationSummaries(locations []LocationFilter) []LocationSummary {
	summaries := make([]LocationSummary, 0, len(locations))
	for _, loc := range locations {
		if loc.IsGeo() {
			lat, lng := *loc.Lat, *loc.Lng
			summaries = append(summaries, LocationSummary{
				Type: FilterKindGeo,
				Lat:  &lat,
				Lng:  &lng,
			})
			continue
		}
		summaries = append(summaries, LocationSummary{
			Type:  FilterKindState,
			State: loc.State,
		})
	}
	return summaries
}

// Clone returns a deep copy of the outcome. The cache hands out clones so a
// caller can never corrupt a cached entry.
func (o *SearchOutcome) Clone() *SearchOutcome {
	if o == nil {
		return nil
	}

	clone := &SearchOutcome{
		Results:  make([]BusinessRecord, len(o.Results)),
		Metadata: o.Metadata,
	}
	copy(clone.Results, o.Results)

	if o.Metadata.RadiusRequested != nil {
		radius := *o.Metadata.RadiusRequested
		clone.Metadata.RadiusRequested = &radius
	}
	if o.Metadata.RadiusExpansionSequence != nil {
		clone.Metadata.RadiusExpansionSequence = make([]float64, len(o.Metadata.RadiusExpansionSequence))
		copy(clone.Metadata.RadiusExpansionSequence, o.Metadata.RadiusExpansionSequence)
	}
	if o.Metadata.FiltersApplied != nil {
		clone.Metadata.FiltersApplied = make([]string, len(o.Metadata.FiltersApplied))
		copy(clone.Metadata.FiltersApplied, o.Metadata.FiltersApplied)
	}
	if o.Metadata.SearchLocations != nil {
		clone.Metadata.SearchLocations = make([]LocationSummary, len(o.Metadata.SearchLocations))
		for i, loc := range o.Metadata.SearchLocations {
			clone.Metadata.SearchLocations[i] = loc
			if loc.Lat != nil {
				lat := *loc.Lat
				clone.Metadata.SearchLocations[i].Lat = &lat
			}
			if loc.Lng != nil {
				lng := *loc.Lng
				clone.Metadata.SearchLocations[i].Lng = &lng
			}
		}
	}
	return clone
}
