// Package integration provides helpers and integration tests for the date search system.
// Integration tests run the real use case, handler, middleware and store
// against a scripted flight lookup.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/KananVyas/flyGPT/internal/adapter/http"
	"github.com/KananVyas/flyGPT/internal/adapter/http/middleware"
	"github.com/KananVyas/flyGPT/internal/adapter/storage/memory"
	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/infrastructure/metrics"
	"github.com/KananVyas/flyGPT/internal/infrastructure/timeutil"
	"github.com/KananVyas/flyGPT/internal/usecase"
)

// Today is the date the test server's clock reports.
const Today = "2025-04-01"

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
	Metrics *metrics.Metrics
	Pool    *usecase.WorkerPool
	Store   *memory.Store
}

// NewTestServer creates a test server searching lookup with the given config.
// A nil config uses short timeouts suited to tests.
func NewTestServer(lookup domain.FlightLookup, config *usecase.Config) *TestServer {
	if config == nil {
		config = &usecase.Config{
			MaxConcurrency: 4,
			GlobalTimeout:  2 * time.Second,
			PerDateTimeout: time.Second,
		}
	}

	m := metrics.New()
	pool := usecase.NewWorkerPool(config.MaxConcurrency, logger.Nop())
	uc := CreateUseCase(lookup, config, usecase.WithPool(pool), usecase.WithRecorder(m))
	store := memory.NewStore(time.Hour)

	handler := httpAdapter.NewFlightHandler(uc, usecase.NewPriceSelector("INR"), store,
		httpAdapter.WithClock(timeutil.NewMockClockFromDate(Today)),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, logger.Nop().Logger, m)
	httpAdapter.RegisterRoutes(e, handler, m.Handler())

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Metrics: m,
		Pool:    pool,
		Store:   store,
	}
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

// Search posts body as search searchID.
func (ts *TestServer) Search(searchID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/searchFlights/" + searchID,
		Body:   body,
	})
}

// GetSearch fetches the stored snapshot of searchID.
func (ts *TestServer) GetSearch(searchID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/searchFlights/" + searchID,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultSearchRequest returns a valid request body over dates.
func DefaultSearchRequest(dates ...string) httpAdapter.SearchFlightsRequest {
	return httpAdapter.SearchFlightsRequest{
		FromAirport: "BLR",
		ToAirport:   "DEL",
		DateList:    dates,
	}
}

// CreateUseCase creates a use case over lookup.
func CreateUseCase(lookup domain.FlightLookup, config *usecase.Config, opts ...usecase.Option) usecase.DateSearchUseCase {
	return usecase.NewDateSearchUseCase(usecase.NewPerDateFetcher(lookup, "INR"), config, opts...)
}

// DefaultSearchRequestDomain returns a valid domain request over dates.
func DefaultSearchRequestDomain(dates ...string) domain.SearchRequest {
	req := domain.SearchRequest{
		Origin:      "BLR",
		Destination: "DEL",
		Dates:       dates,
		MaxStops:    1,
	}
	req.SetDefaults()
	return req
}
