// Package domain contains the core business entities and rules for the
// business search system. These entities are storage-agnostic and form the
// foundation upon which all other components are built.
package domain

import "github.com/georgeerol/business-search-service/internal/infrastructure/geo"

// BusinessRecord represents a single business in the searchable collection.
// Records are immutable from the search engine's perspective; the backing
// store owns their lifecycle.
type BusinessRecord struct {
	// ID is the unique identifier of the record
	ID int64 `json:"id"`

	// Name is the business name, matched case-insensitively by text filters
	Name string `json:"name"`

	// City is the city the business is located in
	City string `json:"city"`

	// State is the 2-letter US state or territory code (e.g., "CA")
	State string `json:"state"`

	// Latitude is the business latitude in decimal degrees (-90 to 90)
	Latitude float64 `json:"latitude"`

	// Longitude is the business longitude in decimal degrees (-180 to 180)
	Longitude float64 `json:"longitude"`
}

// Point returns the record's coordinates as a geo.Point.
func (b BusinessRecord) Point() geo.Point {
	return geo.Point{Lat: b.Latitude, Lng: b.Longitude}
}
