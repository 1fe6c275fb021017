// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/georgeerol/business-search-service/internal/domain"
)

// ProjectRoot returns the absolute path of the repository root.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	// Get the path relative to this file (testutil is in test/testutil)
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// LoadSeedRecords parses the repository's seed file into business records.
// IDs are left at zero; the store assigns them on write.
func LoadSeedRecords(t *testing.T) []domain.BusinessRecord {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(ProjectRoot(t), "businesses.json"))
	if err != nil {
		t.Fatalf("Failed to load seed file: %v", err)
	}

	var records []domain.BusinessRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("Failed to parse seed file: %v", err)
	}
	for i := range records {
		records[i].ID = 0
	}
	return records
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for radius and coordinate tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// StateSlice returns a slice of state-filter locations for the given codes.
func StateSlice(codes ...string) []domain.LocationFilter {
	filters := make([]domain.LocationFilter, len(codes))
	for i, code := range codes {
		filters[i] = domain.StateFilter(code)
	}
	return filters
}
