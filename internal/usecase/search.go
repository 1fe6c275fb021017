// Package usecase contains the business logic for the search engine: filter
// matching, radius expansion, and the orchestration pipeline that composes
// state, geo and text filters into one result set.
package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/georgeerol/business-search-service/internal/cache"
	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/infrastructure/geo"
	"github.com/georgeerol/business-search-service/internal/infrastructure/timeutil"
	"github.com/georgeerol/business-search-service/internal/metrics"
)

// BusinessSearchUseCase defines the interface for business search
// operations.
type BusinessSearchUseCase interface {
	// Search validates the request, consults the response cache, and on a
	// miss runs the full filter/expansion pipeline against the record
	// store. Validation failures return a *domain.ValidationErrors; store
	// failures wrap domain.ErrStorageUnavailable and are never cached.
	Search(ctx context.Context, request domain.SearchRequest) (*domain.SearchOutcome, error)
}

// Config contains optional collaborators for the use case.
type Config struct {
	// Clock supplies the current time; nil selects the system clock
	Clock timeutil.Clock

	// Logger receives per-search log events; zero value disables logging
	Logger zerolog.Logger

	// Metrics records Prometheus instrumentation; nil disables it
	Metrics *metrics.Recorder
}

// businessSearchUseCase implements BusinessSearchUseCase.
type businessSearchUseCase struct {
	repo    domain.BusinessRepository
	cache   cache.ResponseCache
	clock   timeutil.Clock
	log     zerolog.Logger
	metrics *metrics.Recorder
}

// NewBusinessSearchUseCase creates the search orchestrator. The repository
// and cache are required; config collaborators are optional.
func NewBusinessSearchUseCase(repo domain.BusinessRepository, responseCache cache.ResponseCache, cfg *Config) BusinessSearchUseCase {
	uc := &businessSearchUseCase{
		repo:  repo,
		cache: responseCache,
		clock: timeutil.NewRealClock(),
		log:   zerolog.Nop(),
	}
	if cfg != nil {
		if cfg.Clock != nil {
			uc.clock = cfg.Clock
		}
		uc.log = cfg.Logger
		uc.metrics = cfg.Metrics
	}
	return uc
}

// Search implements BusinessSearchUseCase.
func (uc *businessSearchUseCase) Search(ctx context.Context, request domain.SearchRequest) (*domain.SearchOutcome, error) {
	start := uc.clock.Now()
	searchID := uuid.NewString()

	// Validation short-circuits before any cache or store access.
	if err := request.Validate(); err != nil {
		uc.metrics.ObserveSearch(metrics.StatusInvalid, 0)
		uc.log.Warn().Str("search_id", searchID).Err(err).Msg("Invalid search request")
		return nil, err
	}
	request.SetDefaults()

	key := cache.Fingerprint(request)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		uc.metrics.CacheHit()
		uc.metrics.ObserveSearch(metrics.StatusSuccess, uc.clock.Now().Sub(start).Seconds())

		cached.Metadata.Performance = domain.PerformanceInfo{
			ProcessingTimeMs: uc.elapsedMs(start),
			SearchID:         searchID,
			Cached:           true,
		}
		cached.Metadata.CacheKey = key

		uc.log.Info().
			Str("search_id", searchID).
			Str("cache_key", key).
			Msg("Cache hit")
		return cached, nil
	}
	uc.metrics.CacheMiss()

	outcome, err := uc.execute(ctx, request)
	if err != nil {
		// Failures are never cached.
		uc.metrics.ObserveSearch(metrics.StatusError, 0)
		uc.log.Error().Str("search_id", searchID).Err(err).Msg("Search failed")
		return nil, err
	}

	outcome.Metadata.Performance = domain.PerformanceInfo{
		ProcessingTimeMs: uc.elapsedMs(start),
		SearchID:         searchID,
		Cached:           false,
	}

	if err := uc.cache.Put(ctx, key, outcome); err != nil {
		uc.log.Warn().Str("search_id", searchID).Err(err).Msg("Failed to cache search outcome")
	}

	uc.metrics.ObserveSearch(metrics.StatusSuccess, uc.clock.Now().Sub(start).Seconds())
	uc.log.Info().
		Str("search_id", searchID).
		Int("total_count", outcome.Metadata.TotalCount).
		Int("total_found", outcome.Metadata.TotalFound).
		Bool("radius_expanded", outcome.Metadata.RadiusExpanded).
		Strs("filters_applied", outcome.Metadata.FiltersApplied).
		Msg("Search completed")

	return outcome, nil
}

// execute runs the filter pipeline: partition locations, union the state
// matches, union the geo matches (with radius expansion), union across the
// two kinds, intersect with the text filter, then deduplicate, order and
// truncate.
func (uc *businessSearchUseCase) execute(ctx context.Context, request domain.SearchRequest) (*domain.SearchOutcome, error) {
	stateFilters := request.StateFilters()
	geoFilters := request.GeoFilters()

	var stateMatches []domain.BusinessRecord
	if len(stateFilters) > 0 {
		codes := make([]string, 0, len(stateFilters))
		for _, f := range stateFilters {
			codes = append(codes, f.State)
		}

		records, err := uc.repo.Find(ctx, domain.RecordQuery{States: codes})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}
		stateMatches = records
	}

	radiusUsed := request.Radius()
	radiusExpanded := false
	var radiiTried []float64
	var geoMatches []domain.BusinessRecord

	if len(geoFilters) > 0 {
		points := make([]geo.Point, 0, len(geoFilters))
		for _, f := range geoFilters {
			points = append(points, f.Point())
		}

		expansion, err := expandRadiusSearch(ctx, uc.lookupWithinRadius, points, request.Radius())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}

		geoMatches = expansion.Records
		radiusUsed = expansion.RadiusUsed
		radiusExpanded = expansion.Expanded
		radiiTried = expansion.RadiiTried
		if radiusExpanded {
			uc.metrics.RadiusExpanded()
		}
	}

	// OR across filter kinds, AND with the text filter.
	combined := dedupeByID(append(stateMatches, geoMatches...))
	if request.Text != "" {
		filtered := make([]domain.BusinessRecord, 0, len(combined))
		for _, record := range combined {
			if MatchesText(record, request.Text) {
				filtered = append(filtered, record)
			}
		}
		combined = filtered
	}

	// Deterministic order keeps cache-hit replays byte-stable.
	sort.Slice(combined, func(i, j int) bool { return combined[i].ID < combined[j].ID })

	totalFound := len(combined)
	results := combined
	if len(results) > domain.MaxResults {
		results = results[:domain.MaxResults]
	}

	metadata := domain.SearchMetadata{
		TotalCount:      len(results),
		TotalFound:      totalFound,
		RadiusUsed:      radiusUsed,
		RadiusExpanded:  radiusExpanded,
		FiltersApplied:  filtersApplied(request),
		SearchLocations: domain.NewLocationSummaries(request.Locations),
	}
	if len(geoFilters) > 0 {
		requested := request.Radius()
		metadata.RadiusRequested = &requested
		metadata.RadiusExpansionSequence = radiiTried
	}

	return &domain.SearchOutcome{
		Results:  results,
		Metadata: metadata,
	}, nil
}

// lookupWithinRadius fetches the records within radiusMiles of center. The
// bounding boxes (two when the envelope wraps the antimeridian) are pushed
// down to the repository as range predicates; the exact Haversine check then
// refines the candidates.
func (uc *businessSearchUseCase) lookupWithinRadius(ctx context.Context, center geo.Point, radiusMiles float64) ([]domain.BusinessRecord, error) {
	boxes := geo.BoundingBoxes(center, radiusMiles)
	candidates, err := uc.repo.Find(ctx, domain.RecordQuery{Boxes: boxes})
	if err != nil {
		return nil, err
	}
	return filterWithinRadius(candidates, center, radiusMiles), nil
}

// filtersApplied lists the filter kinds present in the request. The emission
// order (text, state, geo) matches the original API.
func filtersApplied(request domain.SearchRequest) []string {
	var applied []string
	if request.Text != "" {
		applied = append(applied, domain.FilterKindText)
	}
	if len(request.StateFilters()) > 0 {
		applied = append(applied, domain.FilterKindState)
	}
	if request.HasGeoFilters() {
		applied = append(applied, domain.FilterKindGeo)
	}
	return applied
}

// elapsedMs returns the milliseconds elapsed since start, rounded to two
// decimal places as the original API reported it.
func (uc *businessSearchUseCase) elapsedMs(start time.Time) float64 {
	ms := float64(uc.clock.Now().Sub(start).Microseconds()) / 1000.0
	return math.Round(ms*100) / 100
}

// Ensure businessSearchUseCase implements BusinessSearchUseCase at compile time.
var _ BusinessSearchUseCase = (*businessSearchUseCase)(nil)
