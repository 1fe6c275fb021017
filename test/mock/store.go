// Package mock provides test doubles for the business search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/georgeerol/business-search-service/internal/domain"
)

// Store is a configurable mock implementation of domain.BusinessRepository.
// It supports configurable delays, errors, and records for testing various
// scenarios including timeouts and store outages. Query predicates are
// applied the same way the real stores apply them.
type Store struct {
	records   []domain.BusinessRecord
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewStore creates a new mock store.
// The store is configured using the builder pattern methods.
func NewStore() *Store {
	return &Store{}
}

// WithRecords configures the store to hold the given records.
func (s *Store) WithRecords(records []domain.BusinessRecord) *Store {
	s.records = records
	return s
}

// WithError configures the store to fail every read with the given error.
func (s *Store) WithError(err error) *Store {
	s.err = err
	return s
}

// WithDelay configures the store to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (s *Store) WithDelay(d time.Duration) *Store {
	s.delay = d
	return s
}

// Find implements domain.BusinessRepository.Find.
// It respects context cancellation, applies the configured delay, and
// returns the configured error or the records matching the query.
func (s *Store) Find(ctx context.Context, query domain.RecordQuery) ([]domain.BusinessRecord, error) {
	if err := s.begin(ctx); err != nil {
		return nil, err
	}

	var matched []domain.BusinessRecord
	for _, record := range s.records {
		if matchesQuery(record, query) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// All implements domain.BusinessRepository.All.
func (s *Store) All(ctx context.Context) ([]domain.BusinessRecord, error) {
	if err := s.begin(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.BusinessRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Count implements domain.BusinessRepository.Count.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.begin(ctx); err != nil {
		return 0, err
	}
	return len(s.records), nil
}

// CallCount returns the number of reads issued against the store.
// This is useful for verifying cache behavior.
func (s *Store) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// begin records the call, applies the configured delay, and returns the
// configured error if any.
func (s *Store) begin(ctx context.Context) error {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	// Apply delay if configured
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}

	// Check context after delay
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.err
}

// matchesQuery mirrors the store-level predicate semantics: an empty query
// matches everything, otherwise any state or bounding-box match counts.
func matchesQuery(record domain.BusinessRecord, query domain.RecordQuery) bool {
	if query.IsEmpty() {
		return true
	}
	for _, state := range query.States {
		if record.State == state {
			return true
		}
	}
	for _, box := range query.Boxes {
		if box.Contains(record.Point()) {
			return true
		}
	}
	return false
}

// Ensure Store implements domain.BusinessRepository at compile time.
var _ domain.BusinessRepository = (*Store)(nil)

// SampleRecords returns count records in the given state, spread along a
// line of nearby coordinates starting at the given point. IDs start at
// startID and increase sequentially.
func SampleRecords(state string, startID int64, lat, lng float64, count int) []domain.BusinessRecord {
	records := make([]domain.BusinessRecord, count)
	for i := 0; i < count; i++ {
		records[i] = domain.BusinessRecord{
			ID:        startID + int64(i),
			Name:      "Business " + intToString(int(startID)+i),
			City:      "Sampleton",
			State:     state,
			Latitude:  lat + float64(i)*0.01,
			Longitude: lng,
		}
	}
	return records
}

// intToString converts an integer to string without importing strconv.
func intToString(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + intToString(-n)
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
