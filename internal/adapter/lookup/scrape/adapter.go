// Package scrape looks flights up by fetching and parsing a results page.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/KananVyas/flyGPT/internal/adapter/lookup"
	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/PuerkitoBio/goquery"
)

// Name identifies this lookup in logs and metrics.
const Name = "scrape"

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Config configures the scrape adapter.
type Config struct {
	// BaseURL is the results page queried for every date
	BaseURL string

	// Language and Currency are passed as hl and curr
	Language string
	Currency string

	// Timeout bounds one HTTP exchange
	Timeout time.Duration

	UserAgent string

	Selectors Selectors
}

// Adapter implements domain.FlightLookup by scraping BaseURL.
type Adapter struct {
	cfg    Config
	client *http.Client
}

// NewAdapter creates an Adapter. A nil client gets one with cfg.Timeout.
func NewAdapter(cfg Config, client *http.Client) *Adapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.Selectors = cfg.Selectors.withDefaults()
	return &Adapter{cfg: cfg, client: client}
}

// Name implements domain.FlightLookup.
func (a *Adapter) Name() string {
	return Name
}

// Lookup implements domain.FlightLookup.
func (a *Adapter) Lookup(ctx context.Context, q domain.LookupQuery) (*domain.LookupResult, error) {
	pageURL, err := a.BuildURL(q)
	if err != nil {
		return nil, lookup.NewError(Name, err, false)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, lookup.NewError(Name, err, false)
	}
	req.Header.Set("User-Agent", a.cfg.UserAgent)
	if a.cfg.Language != "" {
		req.Header.Set("Accept-Language", a.cfg.Language)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, lookup.NewError(Name, ctxErr, false)
		}
		return nil, lookup.NewError(Name, fmt.Errorf("get %s: %w", pageURL, err), true)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, lookup.NewError(Name, fmt.Errorf("get %s: status %d", pageURL, resp.StatusCode), retryable)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, lookup.NewError(Name, fmt.Errorf("parse page: %w", err), false)
	}

	// A page without listings is an answer: the date has no flights.
	return Parse(doc, a.cfg.Selectors), nil
}

// BuildURL returns the page URL for q.
func (a *Adapter) BuildURL(q domain.LookupQuery) (string, error) {
	if a.cfg.BaseURL == "" {
		return "", errors.New("scrape base url is not configured")
	}
	u, err := url.Parse(a.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	v := u.Query()
	v.Set("from", q.Origin)
	v.Set("to", q.Destination)
	v.Set("date", q.Date)
	v.Set("trip", domain.TripOneWay.String())
	v.Set("seat", string(q.SeatClass))
	v.Set("adults", strconv.Itoa(q.Passengers.Adults))
	v.Set("children", strconv.Itoa(q.Passengers.Children))
	v.Set("infants_in_seat", strconv.Itoa(q.Passengers.InfantsInSeat))
	v.Set("infants_on_lap", strconv.Itoa(q.Passengers.InfantsOnLap))
	v.Set("max_stops", strconv.Itoa(q.MaxStops))
	if a.cfg.Language != "" {
		v.Set("hl", a.cfg.Language)
	}
	if a.cfg.Currency != "" {
		v.Set("curr", a.cfg.Currency)
	}
	u.RawQuery = v.Encode()
	return u.String(), nil
}

var _ domain.FlightLookup = (*Adapter)(nil)
