// Package integration provides helpers and integration tests for the business
// search system. Integration tests verify that components work together
// correctly, including HTTP handlers, the search use case, the record stores
// and the response cache.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/georgeerol/business-search-service/internal/adapter/http"
	"github.com/georgeerol/business-search-service/internal/cache"
	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/repository"
	"github.com/georgeerol/business-search-service/internal/usecase"
	"github.com/georgeerol/business-search-service/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.BusinessHandler
	Cache   *cache.MemoryCache
}

// NewTestServerWithStore creates a test server over the given record store
// and a fresh in-memory response cache.
func NewTestServerWithStore(t *testing.T, store domain.BusinessRepository) *TestServer {
	t.Helper()

	responseCache := cache.NewMemoryCache(cache.MemoryConfig{})
	uc := usecase.NewBusinessSearchUseCase(store, responseCache, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewBusinessHandler(uc, store)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Cache:   responseCache,
	}
}

// NewTestServer creates a test server over an in-memory store seeded with
// the given records.
func NewTestServer(t *testing.T, records []domain.BusinessRecord) *TestServer {
	t.Helper()

	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.Put(context.Background(), records))
	return NewTestServerWithStore(t, repo)
}

// NewSeededTestServer creates a test server loaded with the repository's
// seed data set.
func NewSeededTestServer(t *testing.T) *TestServer {
	t.Helper()
	return NewTestServer(t, testutil.LoadSeedRecords(t))
}

// CreateUseCase builds a search use case over the given store with a fresh
// in-memory response cache, for tests that bypass the HTTP layer.
func CreateUseCase(store domain.BusinessRepository) (usecase.BusinessSearchUseCase, *cache.MemoryCache) {
	responseCache := cache.NewMemoryCache(cache.MemoryConfig{})
	return usecase.NewBusinessSearchUseCase(store, responseCache, nil), responseCache
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts the given body to the search endpoint.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/businesses/search",
		Body:   body,
	})
}

// ExportRequest fetches the export endpoint.
func (ts *TestServer) ExportRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/businesses/export",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchOutcome parses the response body as a SearchOutcome.
func (r *Response) ParseSearchOutcome() (*domain.SearchOutcome, error) {
	var outcome domain.SearchOutcome
	if err := json.Unmarshal(r.Body, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Locations   []map[string]interface{} `json:"locations"`
	RadiusMiles *float64                 `json:"radius_miles,omitempty"`
	Text        string                   `json:"text,omitempty"`
}

// StateLocation builds a state filter entry for a request body.
func StateLocation(code string) map[string]interface{} {
	return map[string]interface{}{"state": code}
}

// GeoLocation builds a lat/lng filter entry for a request body.
func GeoLocation(lat, lng float64) map[string]interface{} {
	return map[string]interface{}{"lat": lat, "lng": lng}
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Locations: []map[string]interface{}{StateLocation("CA")},
	}
}
