package domain

import "github.com/georgeerol/business-search-service/internal/infrastructure/geo"

// Location filter kinds.
const (
	// FilterKindState filters by US state membership
	FilterKindState = "state"

	// FilterKindGeo filters by radius around a coordinate
	FilterKindGeo = "geo"

	// FilterKindText is the free-text name filter, applied request-wide
	FilterKindText = "text"
)

// LocationFilter is a tagged variant: either a state filter or a geo filter,
// never both and never neither. Validation enforces the invariant; code after
// validation may rely on it.
type LocationFilter struct {
	// State is the 2-letter US state code for state filters
	State string `json:"state,omitempty"`

	// Lat is the latitude for geo filters
	Lat *float64 `json:"lat,omitempty"`

	// Lng is the longitude for geo filters
	Lng *float64 `json:"lng,omitempty"`
}

// IsState reports whether the filter is the state variant.
func (l LocationFilter) IsState() bool {
	return l.State != ""
}

// IsGeo reports whether the filter is the geo variant.
func (l LocationFilter) IsGeo() bool {
	return l.Lat != nil && l.Lng != nil
}

// Kind returns the filter kind ("state" or "geo").
func (l LocationFilter) Kind() string {
	if l.IsGeo() {
		return FilterKindGeo
	}
	return FilterKindState
}

// Point returns the geo filter's coordinates.
// Only meaningful for the geo variant.
func (l LocationFilter) Point() geo.Point {
	var p geo.Point
	if l.Lat != nil {
		p.Lat = *l.Lat
	}
	if l.Lng != nil {
		p.Lng = *l.Lng
	}
	return p
}

// StateFilter constructs a state-variant location filter.
func StateFilter(code string) LocationFilter {
	return LocationFilter{State: code}
}

// GeoFilter constructs a geo-variant location filter.
func GeoFilter(lat, lng float64) LocationFilter {
	return LocationFilter{Lat: &lat, Lng: &lng}
}
