package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeerol/business-search-service/internal/adapter/http/response"
	"github.com/georgeerol/business-search-service/internal/domain"
)

// mockUseCase is a mock implementation of BusinessSearchUseCase for testing.
type mockUseCase struct {
	searchFunc func(ctx context.Context, request domain.SearchRequest) (*domain.SearchOutcome, error)
	gotRequest domain.SearchRequest
}

func (m *mockUseCase) Search(ctx context.Context, request domain.SearchRequest) (*domain.SearchOutcome, error) {
	m.gotRequest = request
	if m.searchFunc != nil {
		return m.searchFunc(ctx, request)
	}
	return &domain.SearchOutcome{
		Results: []domain.BusinessRecord{},
		Metadata: domain.SearchMetadata{
			FiltersApplied:  []string{domain.FilterKindState},
			SearchLocations: domain.NewLocationSummaries(request.Locations),
		},
	}, nil
}

// mockRepository is a stub repository for the export endpoint.
type mockRepository struct {
	records []domain.BusinessRecord
	err     error
}

func (m *mockRepository) Find(context.Context, domain.RecordQuery) ([]domain.BusinessRecord, error) {
	return m.records, m.err
}

func (m *mockRepository) All(context.Context) ([]domain.BusinessRecord, error) {
	return m.records, m.err
}

func (m *mockRepository) Count(context.Context) (int, error) {
	return len(m.records), m.err
}

// setupTestHandler creates a test Echo instance and BusinessHandler.
func setupTestHandler(uc *mockUseCase, repo domain.BusinessRepository) *echo.Echo {
	e := echo.New()
	h := NewBusinessHandler(uc, repo)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchBusinesses_Success(t *testing.T) {
	uc := &mockUseCase{
		searchFunc: func(_ context.Context, request domain.SearchRequest) (*domain.SearchOutcome, error) {
			return &domain.SearchOutcome{
				Results: []domain.BusinessRecord{
					{ID: 1, Name: "Blue Bottle Coffee", City: "San Francisco", State: "CA", Latitude: 37.7763, Longitude: -122.4233},
				},
				Metadata: domain.SearchMetadata{
					TotalCount:      1,
					TotalFound:      1,
					FiltersApplied:  []string{domain.FilterKindState},
					SearchLocations: domain.NewLocationSummaries(request.Locations),
				},
			}, nil
		},
	}
	e := setupTestHandler(uc, &mockRepository{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/businesses/search",
		`{"locations": [{"state": "CA"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results  []BusinessDTO `json:"results"`
		Metadata struct {
			TotalCount int `json:"total_count"`
		} `json:"search_metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Blue Bottle Coffee", resp.Results[0].Name)
	assert.Equal(t, 1, resp.Metadata.TotalCount)
}

func TestSearchBusinesses_PassesRequestThrough(t *testing.T) {
	uc := &mockUseCase{}
	e := setupTestHandler(uc, &mockRepository{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/businesses/search",
		`{"locations": [{"state": "NY"}, {"lat": 40.7128, "lng": -74.006}], "radius_miles": 25, "text": "pizza"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.gotRequest.Locations, 2)
	assert.Equal(t, "NY", uc.gotRequest.Locations[0].State)
	require.NotNil(t, uc.gotRequest.Locations[1].Lat)
	assert.Equal(t, 40.7128, *uc.gotRequest.Locations[1].Lat)
	require.NotNil(t, uc.gotRequest.RadiusMiles)
	assert.Equal(t, 25.0, *uc.gotRequest.RadiusMiles)
	assert.Equal(t, "pizza", uc.gotRequest.Text)
}

func TestSearchBusinesses_MalformedBody(t *testing.T) {
	e := setupTestHandler(&mockUseCase{}, &mockRepository{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/businesses/search", `{"locations": [`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestSearchBusinesses_ValidationError(t *testing.T) {
	uc := &mockUseCase{
		searchFunc: func(context.Context, domain.SearchRequest) (*domain.SearchOutcome, error) {
			verrs := &domain.ValidationErrors{}
			verrs.Add("locations[0].state", "invalid state code: ZZ")
			return nil, verrs
		},
	}
	e := setupTestHandler(uc, &mockRepository{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/businesses/search",
		`{"locations": [{"state": "ZZ"}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "locations[0].state")
}

func TestSearchBusinesses_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "store unavailable maps to 503",
			err:        fmt.Errorf("%w: connection refused", domain.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancellation maps to 504",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				searchFunc: func(context.Context, domain.SearchRequest) (*domain.SearchOutcome, error) {
					return nil, tt.err
				},
			}
			e := setupTestHandler(uc, &mockRepository{})

			rec := makeRequest(e, http.MethodPost, "/api/v1/businesses/search",
				`{"locations": [{"state": "CA"}]}`)

			require.Equal(t, tt.wantStatus, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestExportBusinesses(t *testing.T) {
	repo := &mockRepository{
		records: []domain.BusinessRecord{
			{ID: 3, Name: "Charlie", State: "WA"},
			{ID: 1, Name: "Alpha", State: "CA"},
			{ID: 2, Name: "Bravo", State: "NY"},
		},
	}
	e := setupTestHandler(&mockUseCase{}, repo)

	rec := makeRequest(e, http.MethodGet, "/api/v1/businesses/export", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExportResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Businesses, 3)
	assert.Equal(t, "Alpha", resp.Businesses[0].Name, "export is ordered by ID")
	assert.Equal(t, "Bravo", resp.Businesses[1].Name)
	assert.Equal(t, "Charlie", resp.Businesses[2].Name)
}

func TestExportBusinesses_StoreFailure(t *testing.T) {
	repo := &mockRepository{err: fmt.Errorf("%w: disk error", domain.ErrStorageUnavailable)}
	e := setupTestHandler(&mockUseCase{}, repo)

	rec := makeRequest(e, http.MethodGet, "/api/v1/businesses/export", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealth(t *testing.T) {
	e := setupTestHandler(&mockUseCase{}, &mockRepository{})

	rec := makeRequest(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"status":"ok"`))
}

func TestToDomainRequest(t *testing.T) {
	lat, lng := 34.0522, -118.2437
	radius := 10.0
	req := &SearchBusinessesRequest{
		Locations: []LocationDTO{
			{State: "ca"},
			{Lat: &lat, Lng: &lng},
		},
		RadiusMiles: &radius,
		Text:        "coffee",
	}

	dom := ToDomainRequest(req)

	require.Len(t, dom.Locations, 2)
	assert.Equal(t, "ca", dom.Locations[0].State, "normalization is the domain layer's job")
	require.NotNil(t, dom.Locations[1].Lat)
	assert.Equal(t, lat, *dom.Locations[1].Lat)
	assert.Equal(t, &radius, dom.RadiusMiles)
	assert.Equal(t, "coffee", dom.Text)
}
