package usecase

import (
	"strings"

	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/infrastructure/geo"
)

// MatchesState reports whether the record belongs to the given state.
// The comparison is case-insensitive.
func MatchesState(record domain.BusinessRecord, code string) bool {
	return strings.EqualFold(record.State, code)
}

// MatchesGeo reports whether the record lies within radiusMiles of center.
// A bounding-box pre-filter culls obvious non-candidates before the exact
// Haversine check; the exact check is authoritative and the boundary is
// inclusive, so a record at exactly radiusMiles counts as a match.
func MatchesGeo(record domain.BusinessRecord, center geo.Point, radiusMiles float64) bool {
	inBox := false
	for _, box := range geo.BoundingBoxes(center, radiusMiles) {
		if box.Contains(record.Point()) {
			inBox = true
			break
		}
	}
	if !inBox {
		return false
	}
	return geo.WithinRadius(record.Point(), center, radiusMiles)
}

// MatchesLocation evaluates a single location filter against a record.
// Geo filters are evaluated at the given radius.
func MatchesLocation(record domain.BusinessRecord, filter domain.LocationFilter, radiusMiles float64) bool {
	if filter.IsGeo() {
		return MatchesGeo(record, filter.Point(), radiusMiles)
	}
	return MatchesState(record, filter.State)
}

// MatchesText reports whether the record's name contains text,
// case-insensitively. Empty text matches everything.
func MatchesText(record domain.BusinessRecord, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(record.Name), strings.ToLower(text))
}

// filterWithinRadius returns the subset of records within radiusMiles of
// center, using the exact distance check.
func filterWithinRadius(records []domain.BusinessRecord, center geo.Point, radiusMiles float64) []domain.BusinessRecord {
	var matched []domain.BusinessRecord
	for _, record := range records {
		if geo.WithinRadius(record.Point(), center, radiusMiles) {
			matched = append(matched, record)
		}
	}
	return matched
}
