package http

import (
	"github.com/georgeerol/business-search-service/internal/domain"
)

// ExportResponseDTO is the data transfer object for the export endpoint.
// It matches the expected API output format with snake_case fields.
type ExportResponseDTO struct {
	Total      int           `json:"total"`
	Businesses []BusinessDTO `json:"businesses"`
}

// BusinessDTO is the data transfer object for a single business record.
type BusinessDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToExportResponseDTO converts domain records to an ExportResponseDTO.
func ToExportResponseDTO(records []domain.BusinessRecord) *ExportResponseDTO {
	dto := &ExportResponseDTO{
		Total:      len(records),
		Businesses: make([]BusinessDTO, len(records)),
	}
	for i, record := range records {
		dto.Businesses[i] = BusinessDTO{
			ID:        record.ID,
			Name:      record.Name,
			City:      record.City,
			State:     record.State,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		}
	}
	return dto
}
