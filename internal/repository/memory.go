// Package repository provides the business record stores behind the
// engine's record-query capability: an in-process store and an embedded
// Badger store, plus the seed loader both share.
package repository

import (
	"context"
	"sync"

	"github.com/georgeerol/business-search-service/internal/domain"
)

// MemoryRepository is an in-process, read-mostly record store. Reads take a
// shared lock so arbitrarily many concurrent searches can scan it; writes
// only happen during seeding.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []domain.BusinessRecord
	nextID  int64
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Find implements domain.BusinessRepository.
func (r *MemoryRepository) Find(_ context.Context, query domain.RecordQuery) ([]domain.BusinessRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.BusinessRecord, 0)
	for _, record := range r.records {
		if matchesQuery(record, query) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// All implements domain.BusinessRepository.
func (r *MemoryRepository) All(_ context.Context) ([]domain.BusinessRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.BusinessRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Count implements domain.BusinessRepository.
func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}

// Put implements domain.BusinessWriter. Records without an ID are assigned
// the next sequential one; records with an ID replace any existing record
// under that ID.
func (r *MemoryRepository) Put(_ context.Context, records []domain.BusinessRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range records {
		if record.ID == 0 {
			record.ID = r.nextID
			r.nextID++
			r.records = append(r.records, record)
			continue
		}

		if record.ID >= r.nextID {
			r.nextID = record.ID + 1
		}
		replaced := false
		for i := range r.records {
			if r.records[i].ID == record.ID {
				r.records[i] = record
				replaced = true
				break
			}
		}
		if !replaced {
			r.records = append(r.records, record)
		}
	}
	return nil
}

// matchesQuery evaluates the store-level predicate set: an empty query
// matches everything, otherwise a record matches if it satisfies any state
// or any bounding-box predicate.
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

// Ensure interfaces are implemented at compile time.
var (
	_ domain.BusinessRepository = (*MemoryRepository)(nil)
	_ domain.BusinessWriter     = (*MemoryRepository)(nil)
)
