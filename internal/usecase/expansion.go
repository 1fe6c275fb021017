package usecase

import (
	"context"

	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/infrastructure/geo"
)

// RadiusExpansionSequence is the fixed fallback sequence of radii in miles.
// It is strictly increasing and shared by every search in the process; the
// values are part of the API compatibility surface.
var RadiusExpansionSequence = []float64{1, 5, 10, 25, 50, 100, 500}

// geoLookupFunc fetches the records within radiusMiles of center.
// The orchestrator backs it with a repository bounding-box query refined by
// the exact distance check.
type geoLookupFunc func(ctx context.Context, center geo.Point, radiusMiles float64) ([]domain.BusinessRecord, error)

// expansionResult describes the outcome of a geo search with radius
// expansion.
type expansionResult struct {
	// Records is the deduplicated union of matches across all geo filters
	// at the winning radius
	Records []domain.BusinessRecord

	// RadiusUsed is the radius that produced Records, or the maximum
	// sequence value when the sequence was exhausted
	RadiusUsed float64

	// Expanded is true when the fallback sequence was walked
	Expanded bool

	// RadiiTried is the ordered list of radii attempted, starting with
	// the requested radius
	RadiiTried []float64
}

// expandRadiusSearch evaluates all geo filter points at the requested radius
// and, when the combined result is empty, walks RadiusExpansionSequence in
// ascending order until some radius yields at least one match. Entries less
// than or equal to the requested radius are skipped since they cannot yield
// new matches. All points share one radius at each attempt; expansion is
// never evaluated independently per point.
func expandRadiusSearch(ctx context.Context, lookup geoLookupFunc, points []geo.Point, requestedRadius float64) (expansionResult, error) {
	radiiTried := []float64{requestedRadius}

	records, err := unionAtRadius(ctx, lookup, points, requestedRadius)
	if err != nil {
		return expansionResult{}, err
	}
	if len(records) > 0 {
		return expansionResult{
			Records:    records,
			RadiusUsed: requestedRadius,
			Expanded:   false,
			RadiiTried: radiiTried,
		}, nil
	}

	for _, radius := range RadiusExpansionSequence {
		if radius <= requestedRadius {
			continue
		}

		radiiTried = append(radiiTried, radius)
		records, err = unionAtRadius(ctx, lookup, points, radius)
		if err != nil {
			return expansionResult{}, err
		}
		if len(records) > 0 {
			return expansionResult{
				Records:    records,
				RadiusUsed: radius,
				Expanded:   true,
				RadiiTried: radiiTried,
			}, nil
		}
	}

	// Exhausted: nothing matched even at the largest radius.
	maxRadius := RadiusExpansionSequence[len(RadiusExpansionSequence)-1]
	return expansionResult{
		Records:    nil,
		RadiusUsed: maxRadius,
		Expanded:   true,
		RadiiTried: radiiTried,
	}, nil
}

// unionAtRadius evaluates every point at the given radius and returns the
// union of matches, deduplicated by record ID in first-seen order.
func unionAtRadius(ctx context.Context, lookup geoLookupFunc, points []geo.Point, radiusMiles float64) ([]domain.BusinessRecord, error) {
	var all []domain.BusinessRecord
	for _, point := range points {
		records, err := lookup(ctx, point, radiusMiles)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return dedupeByID(all), nil
}

// dedupeByID removes duplicate records, keeping the first occurrence.
func dedupeByID(records []domain.BusinessRecord) []domain.BusinessRecord {
	if len(records) == 0 {
		return records
	}

	seen := make(map[int64]struct{}, len(records))
	unique := make([]domain.BusinessRecord, 0, len(records))
	for _, record := range records {
		if _, ok := seen[record.ID]; ok {
			continue
		}
		seen[record.ID] = struct{}{}
		unique = append(unique, record)
	}
	return unique
}
