package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KananVyas/flyGPT/internal/adapter/lookup/scrape"
	"github.com/KananVyas/flyGPT/test/testutil"
)

const pageWithoutFlights = `<html><body><span class="gOatQ">typical</span><p>No results</p></body></html>`

func newEmptyResultsServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(pageWithoutFlights))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// TestScrape_RouteWithoutFlights tests that pages with no listings on every
// date produce an empty successful aggregate.
func TestScrape_RouteWithoutFlights(t *testing.T) {
	srv, hits := newEmptyResultsServer(t)
	dates := testutil.Dates(t, "2025-06-01", 2)

	uc := CreateUseCase(scrape.NewAdapter(scrape.Config{BaseURL: srv.URL}, srv.Client()), nil)

	agg, err := uc.Search(context.Background(), DefaultSearchRequestDomain(dates...))
	require.NoError(t, err)

	assert.Equal(t, 0, agg.Len())
	assert.Equal(t, 2, agg.Metadata().DatesSucceeded)
	assert.Empty(t, agg.Metadata().FailedDates)
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
}

// TestScrape_RouteWithoutFlights_HTTP tests the same case through the API.
func TestScrape_RouteWithoutFlights_HTTP(t *testing.T) {
	srv, _ := newEmptyResultsServer(t)
	dates := testutil.Dates(t, "2025-06-01", 2)

	ts := NewTestServer(scrape.NewAdapter(scrape.Config{BaseURL: srv.URL}, srv.Client()), nil)

	resp := ts.Search("empty-route", DefaultSearchRequest(dates...))
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Empty(t, body.Aggregate.FlightInfo)
	assert.Empty(t, body.Result.FlightSearchResults)
	assert.Equal(t, 2, body.Aggregate.Metadata.DatesSucceeded)
	assert.Empty(t, body.Aggregate.Metadata.FailedDates)
}
