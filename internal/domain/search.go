package domain

import (
	"fmt"
	"strings"
)

// Search request limits.
const (
	// MaxLocationFilters caps the number of location filters per request
	MaxLocationFilters = 20

	// MinRadiusMiles is the smallest accepted search radius
	MinRadiusMiles = 0.1

	// MaxRadiusMiles is the largest accepted search radius
	MaxRadiusMiles = 1000.0

	// DefaultRadiusMiles is applied when geo filters are present but no
	// radius was requested
	DefaultRadiusMiles = 50.0

	// MaxResults caps the number of records returned by a search
	MaxResults = 100
)

// SearchRequest defines the parameters for a business search.
// Locations combine with OR semantics; the text filter ANDs with whatever
// the location filters admit.
type SearchRequest struct {
	// Locations is the list of location filters (1-20, state or geo)
	Locations []LocationFilter `json:"locations"`

	// RadiusMiles is the search radius applied uniformly to all geo
	// filters (0.1-1000, default 50)
	RadiusMiles *float64 `json:"radius_miles,omitempty"`

	// Text is an optional case-insensitive substring matched against
	// business names
	Text string `json:"text,omitempty"`
}

// Validate checks the request and returns a *ValidationErrors naming every
// offending field, or nil when the request is valid. It never partially
// applies a request: a single violation rejects the whole request.
// State codes are normalized to uppercase as a side effect.
func (r *SearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateLocations(errs)
	r.validateRadius(errs)
	r.validateText(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchRequest) validateLocations(errs *ValidationErrors) {
	if len(r.Locations) == 0 {
		errs.Add("locations", "at least one location filter is required")
		return
	}
	if len(r.Locations) > MaxLocationFilters {
		errs.Add("locations", fmt.Sprintf("too many location filters (max %d)", MaxLocationFilters))
		return
	}

	for i := range r.Locations {
		r.validateLocation(i, errs)
	}
}

func (r *SearchRequest) validateLocation(i int, errs *ValidationErrors) {
	loc := &r.Locations[i]
	field := fmt.Sprintf("locations[%d]", i)

	hasState := loc.State != ""
	hasLat := loc.Lat != nil
	hasLng := loc.Lng != nil

	if hasState && (hasLat || hasLng) {
		errs.Add(field, "location cannot have both state and lat/lng coordinates")
		return
	}
	if !hasState && !(hasLat && hasLng) {
		errs.Add(field, "location must have either state or lat/lng coordinates")
		return
	}

	if hasState {
		code := strings.ToUpper(strings.TrimSpace(loc.State))
		if !IsValidStateCode(code) {
			errs.Add(field+".state", fmt.Sprintf("invalid state code: %s", loc.State))
			return
		}
		loc.State = code
		return
	}

	if *loc.Lat < -90 || *loc.Lat > 90 {
		errs.Add(field+".lat", fmt.Sprintf("latitude must be between -90 and 90, got %v", *loc.Lat))
	}
	if *loc.Lng < -180 || *loc.Lng > 180 {
		errs.Add(field+".lng", fmt.Sprintf("longitude must be between -180 and 180, got %v", *loc.Lng))
	}
}

func (r *SearchRequest) validateRadius(errs *ValidationErrors) {
	if r.RadiusMiles == nil {
		return
	}
	if *r.RadiusMiles < MinRadiusMiles || *r.RadiusMiles > MaxRadiusMiles {
		errs.Add("radius_miles", fmt.Sprintf("radius_miles must be between %v and %v, got %v",
			MinRadiusMiles, MaxRadiusMiles, *r.RadiusMiles))
	}
}

func (r *SearchRequest) validateText(errs *ValidationErrors) {
	if r.Text == "" {
		return
	}
	if strings.TrimSpace(r.Text) == "" {
		errs.Add("text", "text must not be blank")
	}
}

// SetDefaults applies default values to empty optional fields.
// A default radius is only set when the request contains geo filters;
// a radius on a state-only request is harmless unused metadata.
func (r *SearchRequest) SetDefaults() {
	if r.RadiusMiles == nil && r.HasGeoFilters() {
		radius := DefaultRadiusMiles
		r.RadiusMiles = &radius
	}
	r.Text = strings.TrimSpace(r.Text)
}

// StateFilters returns the state-variant location filters in request order.
func (r *SearchRequest) StateFilters() []LocationFilter {
	var out []LocationFilter
	for _, loc := range r.Locations {
		if loc.IsState() {
			out = append(out, loc)
		}
	}
	return out
}

// GeoFilters returns the geo-variant location filters in request order.
func (r *SearchRequest) GeoFilters() []LocationFilter {
	var out []LocationFilter
	for _, loc := range r.Locations {
		if loc.IsGeo() {
			out = append(out, loc)
		}
	}
	return out
}

// HasGeoFilters reports whether any location filter is the geo variant.
func (r *SearchRequest) HasGeoFilters() bool {
	for _, loc := range r.Locations {
		if loc.IsGeo() {
			return true
		}
	}
	return false
}

// Radius returns the effective search radius, falling back to the default
// when none was requested.
func (r *SearchRequest) Radius() float64 {
	if r.RadiusMiles != nil {
		return *r.RadiusMiles
	}
	return DefaultRadiusMiles
}
