// Package fixture serves flight listings from a JSON file. It backs local
// development and demos where no live source is reachable.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KananVyas/flyGPT/internal/adapter/lookup"
	"github.com/KananVyas/flyGPT/internal/domain"
)

// Name identifies this lookup in logs and metrics.
const Name = "fixture"

// anyValue matches every origin, destination or date.
const anyValue = "*"

// File is the on-disk layout.
type File struct {
	Routes []Route `json:"routes"`
}

// Route holds the canned answer for one origin, destination and date.
// Any of the three may be "*" or empty to match everything.
type Route struct {
	From         string             `json:"from"`
	To           string             `json:"to"`
	Date         string             `json:"date"`
	CurrentPrice string             `json:"current_price"`
	Flights      []domain.RawFlight `json:"flights"`

	// DelayMs simulates source latency
	DelayMs int `json:"delay_ms,omitempty"`

	// Error makes the lookup fail with this message
	Error string `json:"error,omitempty"`
}

// Adapter implements domain.FlightLookup over a fixture file.
type Adapter struct {
	path string
}

// NewAdapter creates an Adapter reading path on every lookup, so the file
// can be edited while the server runs.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// Name implements domain.FlightLookup.
func (a *Adapter) Name() string {
	return Name
}

// Lookup implements domain.FlightLookup. The first matching route wins.
func (a *Adapter) Lookup(ctx context.Context, q domain.LookupQuery) (*domain.LookupResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, lookup.NewError(Name, err, false)
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, lookup.NewError(Name, fmt.Errorf("read fixture: %w", err), true)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, lookup.NewError(Name, fmt.Errorf("parse fixture: %w", err), false)
	}

	route, ok := file.find(q)
	if !ok {
		return nil, lookup.NewError(Name, fmt.Errorf("%w: %s-%s on %s", lookup.ErrNoFlights, q.Origin, q.Destination, q.Date), false)
	}

	if route.DelayMs > 0 {
		timer := time.NewTimer(time.Duration(route.DelayMs) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, lookup.NewError(Name, ctx.Err(), false)
		case <-timer.C:
		}
	}

	if route.Error != "" {
		return nil, lookup.NewError(Name, fmt.Errorf("%s", route.Error), true)
	}

	flights := make([]domain.RawFlight, 0, len(route.Flights))
	for _, f := range route.Flights {
		if f.Stops <= q.MaxStops {
			flights = append(flights, f)
		}
	}

	return &domain.LookupResult{
		CurrentPrice: route.CurrentPrice,
		Flights:      flights,
	}, nil
}

func (f File) find(q domain.LookupQuery) (Route, bool) {
	for _, r := range f.Routes {
		if matches(r.From, q.Origin) && matches(r.To, q.Destination) && matches(r.Date, q.Date) {
			return r, true
		}
	}
	return Route{}, false
}

func matches(pattern, value string) bool {
	return pattern == "" || pattern == anyValue || strings.EqualFold(pattern, value)
}

var _ domain.FlightLookup = (*Adapter)(nil)
