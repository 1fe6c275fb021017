package domain

import (
	"context"

	"github.com/georgeerol/business-search-service/internal/infrastructure/geo"
)

// RecordQuery is the predicate set the engine pushes down to the store:
// state equality and bounding-box containment. A zero query matches every
// record. When both predicates are set a record matches if it satisfies
// either one (the engine composes location filters with OR semantics and
// refines geo candidates with the exact distance check afterwards).
type RecordQuery struct {
	// States restricts matches to records in any of these state codes
	States []string

	// Boxes restricts matches to records inside any of these envelopes
	Boxes []geo.Bounds
}

// IsEmpty reports whether the query has no predicates.
func (q RecordQuery) IsEmpty() bool {
	return len(q.States) == 0 && len(q.Boxes) == 0
}

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=domain

// BusinessRepository is the record-query capability the engine consumes.
// Implementations must be safe for concurrent readers; the engine never
// mutates records through this interface.
type BusinessRepository interface {
	// Find returns all records matching the query predicates.
	// A failure is surfaced to callers wrapped in ErrStorageUnavailable.
	Find(ctx context.Context, query RecordQuery) ([]BusinessRecord, error)

	// All returns every record in the store.
	All(ctx context.Context) ([]BusinessRecord, error)

	// Count returns the number of records in the store.
	Count(ctx context.Context) (int, error)
}

// BusinessWriter is the seeding side of the store, kept separate from the
// read path the engine depends on.
type BusinessWriter interface {
	// Put inserts or replaces records in the store.
	Put(ctx context.Context, records []BusinessRecord) error
}
