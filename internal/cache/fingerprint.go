package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/georgeerol/business-search-service/internal/domain"
)

// normalizedRequest is the canonical form a request is reduced to before
// hashing. Field order is fixed so the JSON encoding is deterministic.
type normalizedRequest struct {
	Locations   []json.RawMessage `json:"locations"`
	RadiusMiles *float64          `json:"radius_miles"`
	Text        string            `json:"text"`
}

// Fingerprint derives the deterministic cache key for a validated request.
// Semantically identical requests collide to the same key: location filters
// are sorted into a canonical order, and the text filter is trimmed and
// case-folded. The md5-of-normalized-JSON scheme and the key prefix match
// the keys the original deployment wrote, so a shared Redis backend stays
// compatible across versions.
func Fingerprint(request domain.SearchRequest) string {
	locations := make([]json.RawMessage, 0, len(request.Locations))
	for _, loc := range request.Locations {
		encoded, _ := json.Marshal(loc)
		locations = append(locations, encoded)
	}
	sort.Slice(locations, func(i, j int) bool {
		return string(locations[i]) < string(locations[j])
	})

	normalized := normalizedRequest{
		Locations:   locations,
		RadiusMiles: request.RadiusMiles,
		Text:        strings.ToLower(strings.TrimSpace(request.Text)),
	}

	encoded, _ := json.Marshal(normalized)
	digest := md5.Sum(encoded)
	return KeyPrefix + hex.EncodeToString(digest[:])
}
