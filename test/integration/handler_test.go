package integration

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KananVyas/flyGPT/internal/adapter/lookup"
	"github.com/KananVyas/flyGPT/test/mock"
	"github.com/KananVyas/flyGPT/test/testutil"
)

// TestHandler_SearchFlights_Success tests a search over explicit dates via HTTP.
func TestHandler_SearchFlights_Success(t *testing.T) {
	// Arrange
	l := mock.NewLookup("scripted").WithDefaultFlights(mock.SampleFlights("IndiGo", 2))
	ts := NewTestServer(l, nil)
	dates := testutil.Dates(t, "2025-05-01", 3)

	// Act
	resp := ts.Search("trip-1", DefaultSearchRequest(dates...))

	// Assert
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, "trip-1", body.SearchID)
	assert.Len(t, body.Aggregate.FlightInfo, 6)
	assert.Len(t, body.Result.FlightSearchResults, 3)

	meta := body.Aggregate.Metadata
	assert.Equal(t, 3, meta.DatesQueried)
	assert.Equal(t, 3, meta.DatesSucceeded)
	assert.Empty(t, meta.FailedDates)
	assert.Equal(t, []string{"indigo"}, meta.EffectiveProviders)
	assert.Equal(t, dates, body.Aggregate.UserInputs.DateList)

	for _, d := range dates {
		assert.Equal(t, 1, l.CallCount(d))
	}
}

// TestHandler_SearchFlights_OrderedByDate tests that the aggregate is date ordered
// even when later dates answer first.
func TestHandler_SearchFlights_OrderedByDate(t *testing.T) {
	dates := testutil.Dates(t, "2025-05-01", 3)
	l := mock.NewLookup("scripted").
		WithDefaultFlights(mock.SampleFlights("IndiGo", 1)).
		WithDateDelay(dates[0], 150*time.Millisecond).
		WithDateDelay(dates[1], 75*time.Millisecond)
	ts := NewTestServer(l, nil)

	resp := ts.Search("ordered", DefaultSearchRequest(dates...))
	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	require.Len(t, body.Aggregate.FlightInfo, 3)
	for i, f := range body.Aggregate.FlightInfo {
		assert.Equal(t, dates[i], f.Date)
		assert.NotEmpty(t, f.ID)
	}
}

// TestHandler_SearchFlights_PartialFailure tests that failed dates are reported
// while the remaining dates still answer.
func TestHandler_SearchFlights_PartialFailure(t *testing.T) {
	dates := testutil.Dates(t, "2025-05-01", 3)
	l := mock.NewLookup("scripted").
		WithDefaultFlights(mock.SampleFlights("IndiGo", 1)).
		WithError(dates[1], lookup.NewError("scripted", errors.New("upstream 502"), true))
	ts := NewTestServer(l, nil)

	resp := ts.Search("partial", DefaultSearchRequest(dates...))
	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, 2, body.Aggregate.Metadata.DatesSucceeded)
	assert.Equal(t, 1, body.Aggregate.Metadata.DatesFailed)
	assert.Equal(t, []string{dates[1]}, body.Aggregate.Metadata.FailedDates)
	assert.Len(t, body.Aggregate.FlightInfo, 2)
}

// TestHandler_SearchFlights_AllFailed tests the 503 when no date answers.
func TestHandler_SearchFlights_AllFailed(t *testing.T) {
	dates := testutil.Dates(t, "2025-05-01", 2)
	l := mock.NewLookup("scripted")
	ts := NewTestServer(l, nil)

	resp := ts.Search("none", DefaultSearchRequest(dates...))
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "service_unavailable", errResp["code"])

	// Nothing is stored for a failed search.
	assert.Equal(t, http.StatusNotFound, ts.GetSearch("none").Code)
}

// TestHandler_SearchFlights_RoundTripRejected tests that round trips are refused
// before any lookup happens.
func TestHandler_SearchFlights_RoundTripRejected(t *testing.T) {
	l := mock.NewLookup("scripted").WithDefaultFlights(mock.SampleFlights("IndiGo", 1))
	ts := NewTestServer(l, nil)

	req := DefaultSearchRequest("2025-05-01")
	req.TripType = "round-trip"

	resp := ts.Search("rt", req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "unsupported_trip_type", errResp["code"])
	assert.Zero(t, l.TotalCalls())
}

// TestHandler_SearchFlights_Month tests that a month window searches every day of it.
func TestHandler_SearchFlights_Month(t *testing.T) {
	l := mock.NewLookup("scripted").WithDefaultFlights(mock.SampleFlights("Vistara", 1))
	ts := NewTestServer(l, nil)

	req := DefaultSearchRequest()
	req.Month = "February"
	req.Year = 2024

	resp := ts.Search("feb", req)
	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, 29, body.Aggregate.Metadata.DatesQueried)
	assert.Equal(t, "2024-02-01", body.Aggregate.UserInputs.DateList[0])
	assert.Equal(t, "2024-02-29", body.Aggregate.UserInputs.DateList[28])
	assert.Equal(t, 29, l.TotalCalls())
}

// TestHandler_SearchFlights_MonthWithYear tests a month that carries its own year
// alongside the year field.
func TestHandler_SearchFlights_MonthWithYear(t *testing.T) {
	l := mock.NewLookup("scripted").WithDefaultFlights(mock.SampleFlights("Vistara", 1))
	ts := NewTestServer(l, nil)

	req := DefaultSearchRequest()
	req.Month = "May 2025"
	req.Year = 2025

	resp := ts.Search("may", req)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, 31, body.Aggregate.Metadata.DatesQueried)
	assert.Equal(t, "2025-05-01", body.Aggregate.UserInputs.DateList[0])
}

// TestHandler_SearchFlights_InvalidDates tests a malformed date list.
func TestHandler_SearchFlights_InvalidDates(t *testing.T) {
	l := mock.NewLookup("scripted")
	ts := NewTestServer(l, nil)

	resp := ts.Search("bad-dates", DefaultSearchRequest("2025-02-30"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "invalid_dates", errResp["code"])
	assert.Zero(t, l.TotalCalls())
}

// TestHandler_SearchFlights_MaxStops tests that stop limits are applied to every date.
func TestHandler_SearchFlights_MaxStops(t *testing.T) {
	l := mock.NewLookup("scripted").WithDefaultFlights(mock.SampleFlights("IndiGo", 4))
	ts := NewTestServer(l, nil)

	req := DefaultSearchRequest("2025-05-01", "2025-05-02")
	req.MaxStops = testutil.IntPtr(0)

	resp := ts.Search("direct", req)
	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	require.NotEmpty(t, body.Aggregate.FlightInfo)
	for _, f := range body.Aggregate.FlightInfo {
		assert.Zero(t, f.Stops)
	}
}

// TestHandler_GetSearch tests that a finished search can be read back.
func TestHandler_GetSearch(t *testing.T) {
	l := mock.NewLookup("scripted").WithDefaultFlights(mock.SampleFlights("IndiGo", 2))
	ts := NewTestServer(l, nil)

	posted := ts.Search("saved", DefaultSearchRequest("2025-05-01"))
	require.Equal(t, http.StatusOK, posted.Code)

	got := ts.GetSearch("saved")
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, string(posted.Body), string(got.Body))

	assert.Equal(t, http.StatusNotFound, ts.GetSearch("missing").Code)
}

// TestHandler_HealthAndMetrics tests the operational endpoints.
func TestHandler_HealthAndMetrics(t *testing.T) {
	l := mock.NewLookup("scripted").WithDefaultFlights(mock.SampleFlights("IndiGo", 1))
	ts := NewTestServer(l, nil)

	health := ts.HealthRequest()
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, string(health.Body), `"status":"ok"`)

	require.Equal(t, http.StatusOK, ts.Search("m1", DefaultSearchRequest("2025-05-01")).Code)

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/metrics"})
	require.Equal(t, http.StatusOK, resp.Code)
	text := string(resp.Body)
	assert.True(t, strings.Contains(text, `flygpt_searches_total{result="ok"} 1`), text)
	assert.Contains(t, text, `flygpt_date_fetches_total{outcome="success"} 1`)
	assert.Contains(t, text, `flygpt_http_requests_total`)
}

// TestHandler_RequestIDHeader tests that every response carries a request id.
func TestHandler_RequestIDHeader(t *testing.T) {
	ts := NewTestServer(mock.NewLookup("scripted"), nil)

	resp := ts.HealthRequest()
	assert.NotEmpty(t, resp.Headers.Get("X-Request-ID"))
}

