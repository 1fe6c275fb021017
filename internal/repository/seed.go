package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/georgeerol/business-search-service/internal/domain"
)

// seedRecord mirrors the seed file's entry shape. Entries carry no IDs; the
// destination store assigns them on write.
type seedRecord struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LoadSeedFile reads a JSON array of business entries from path and writes
// them through the given writer. It returns the number of records loaded.
// Seeding is skipped (0, nil) when the destination already holds records,
// so restarts against a persistent store do not duplicate data.
func LoadSeedFile(ctx context.Context, path string, store interface {
	domain.BusinessRepository
	domain.BusinessWriter
}) (int, error) {
	existing, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count existing records: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse seed file %q: %w", path, err)
	}

	records := make([]domain.BusinessRecord, len(entries))
	for i, entry := range entries {
		records[i] = domain.BusinessRecord{
			Name:      entry.Name,
			City:      entry.City,
			State:     entry.State,
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
		}
	}

	if err := store.Put(ctx, records); err != nil {
		return 0, fmt.Errorf("write seed records: %w", err)
	}
	return len(records), nil
}
