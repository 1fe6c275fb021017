// Package http provides the HTTP handler layer for the business search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/georgeerol/business-search-service/internal/adapter/http/response"
	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/usecase"
)

// BusinessHandler handles HTTP requests for business-related endpoints.
type BusinessHandler struct {
	useCase usecase.BusinessSearchUseCase
	repo    domain.BusinessRepository
}

// NewBusinessHandler creates a new BusinessHandler with the given use case
// and record repository. The repository backs the export endpoint.
func NewBusinessHandler(uc usecase.BusinessSearchUseCase, repo domain.BusinessRepository) *BusinessHandler {
	return &BusinessHandler{
		useCase: uc,
		repo:    repo,
	}
}

// SearchBusinesses handles POST /api/v1/businesses/search
//
// @Summary Search for businesses
// @Description Search businesses by state, geographic radius and name text
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body SearchBusinessesRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Store unavailable"
// @Failure 504 {object} response.ErrorDetail "Request timeout"
// @Router /api/v1/businesses/search [post]
func (h *BusinessHandler) SearchBusinesses(c echo.Context) error {
	var req SearchBusinessesRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	// Call use case with request context; validation happens inside
	outcome, err := h.useCase.Search(c.Request().Context(), ToDomainRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	// Return successful response
	return response.SearchResults(c, outcome)
}

// ExportBusinesses handles GET /api/v1/businesses/export
//
// @Summary Export all businesses
// @Description Return the full business collection, ordered by ID
// @Tags businesses
// @Produce json
// @Success 200 {object} ExportResponseDTO
// @Failure 503 {object} response.ErrorDetail "Store unavailable"
// @Router /api/v1/businesses/export [get]
func (h *BusinessHandler) ExportBusinesses(c echo.Context) error {
	records, err := h.repo.All(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return response.OK(c, ToExportResponseDTO(records))
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *BusinessHandler) handleError(c echo.Context, err error) error {
	// Check for structured validation errors first
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Check for invalid request without field details
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Check for record store failure
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return response.ServiceUnavailable(c)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *BusinessHandler) Health(c echo.Context) error {
	return response.Health(c)
}
