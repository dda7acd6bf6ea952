// Package mock provides test doubles for the date search system.
// The Lookup double is configured per date so integration tests can mix
// slow, failing and successful dates in one search.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KananVyas/flyGPT/internal/adapter/lookup"
	"github.com/KananVyas/flyGPT/internal/domain"
)

// Lookup is a configurable implementation of domain.FlightLookup.
// Dates without an explicit answer fall back to the default flights.
type Lookup struct {
	name string

	mu        sync.Mutex
	fallback  []domain.RawFlight
	flights   map[string][]domain.RawFlight
	errs      map[string]error
	delays    map[string]time.Duration
	delay     time.Duration
	calls     map[string]int
	inFlight  int
	maxActive int
}

// NewLookup creates a Lookup with the given name.
func NewLookup(name string) *Lookup {
	return &Lookup{
		name:    name,
		flights: make(map[string][]domain.RawFlight),
		errs:    make(map[string]error),
		delays:  make(map[string]time.Duration),
		calls:   make(map[string]int),
	}
}

// WithDefaultFlights answers every unconfigured date with flights.
func (l *Lookup) WithDefaultFlights(flights []domain.RawFlight) *Lookup {
	l.fallback = flights
	return l
}

// WithFlights answers date with flights.
func (l *Lookup) WithFlights(date string, flights []domain.RawFlight) *Lookup {
	l.flights[date] = flights
	return l
}

// WithError makes date fail with err.
func (l *Lookup) WithError(date string, err error) *Lookup {
	l.errs[date] = err
	return l
}

// WithDateDelay delays the answer for date.
func (l *Lookup) WithDateDelay(date string, d time.Duration) *Lookup {
	l.delays[date] = d
	return l
}

// WithDelay delays every answer that has no date-specific delay.
func (l *Lookup) WithDelay(d time.Duration) *Lookup {
	l.delay = d
	return l
}

// Name implements domain.FlightLookup.
func (l *Lookup) Name() string {
	return l.name
}

// Lookup implements domain.FlightLookup. It honors ctx while delayed.
func (l *Lookup) Lookup(ctx context.Context, q domain.LookupQuery) (*domain.LookupResult, error) {
	l.mu.Lock()
	l.calls[q.Date]++
	l.inFlight++
	if l.inFlight > l.maxActive {
		l.maxActive = l.inFlight
	}
	delay, ok := l.delays[q.Date]
	if !ok {
		delay = l.delay
	}
	err := l.errs[q.Date]
	flights, found := l.flights[q.Date]
	if !found {
		flights = l.fallback
	}
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.inFlight--
		l.mu.Unlock()
	}()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, lookup.NewError(l.name, ctx.Err(), false)
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, lookup.NewError(l.name, err, false)
	}
	if err != nil {
		return nil, err
	}
	if flights == nil {
		return nil, lookup.NewError(l.name, fmt.Errorf("%w: %s", lookup.ErrNoFlights, q.Date), false)
	}

	out := make([]domain.RawFlight, len(flights))
	copy(out, flights)
	return &domain.LookupResult{CurrentPrice: "typical", Flights: out}, nil
}

// CallCount returns how often date was looked up.
func (l *Lookup) CallCount(date string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[date]
}

// TotalCalls returns the number of lookups across all dates.
func (l *Lookup) TotalCalls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, n := range l.calls {
		total += n
	}
	return total
}

// MaxConcurrent returns the highest number of lookups seen running at once.
func (l *Lookup) MaxConcurrent() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxActive
}

// Reset clears the call statistics.
func (l *Lookup) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = make(map[string]int)
	l.maxActive = 0
}

var _ domain.FlightLookup = (*Lookup)(nil)

// SampleFlights returns count best-of-day listings for provider. Prices rise
// with the index and every second flight has one stop.
func SampleFlights(provider string, count int) []domain.RawFlight {
	flights := make([]domain.RawFlight, count)
	for i := range flights {
		dep := 6 + i*2
		flights[i] = domain.RawFlight{
			Name:      provider,
			Departure: fmt.Sprintf("%02d:00", dep),
			Arrival:   fmt.Sprintf("%02d:45", dep+2),
			Duration:  fmt.Sprintf("2 hr %d min", 45+i*5),
			Stops:     i % 2,
			Price:     fmt.Sprintf("₹%d,%03d", 4+i, 500),
			IsBest:    true,
		}
	}
	return flights
}
