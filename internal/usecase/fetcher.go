package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/KananVyas/flyGPT/internal/domain"
)

var errEmptyLookupResult = errors.New("lookup returned no result")

// PerDateFetcher retrieves and normalizes the listings for a single date.
type PerDateFetcher interface {
	// Fetch returns the normalized listings for date. Every failure is a
	// *domain.FetchError carrying the date and the underlying cause.
	Fetch(ctx context.Context, req domain.SearchRequest, date string) (*domain.PerDateResult, error)
}

type perDateFetcher struct {
	lookup   domain.FlightLookup
	currency string
}

// NewPerDateFetcher creates a fetcher backed by lookup. Prices that carry no
// recognizable currency symbol are tagged with defaultCurrency.
func NewPerDateFetcher(lookup domain.FlightLookup, defaultCurrency string) PerDateFetcher {
	return &perDateFetcher{
		lookup:   lookup,
		currency: defaultCurrency,
	}
}

// Fetch implements PerDateFetcher.
func (f *perDateFetcher) Fetch(ctx context.Context, req domain.SearchRequest, date string) (*domain.PerDateResult, error) {
	query, err := buildLookupQuery(req, date)
	if err != nil {
		return nil, domain.NewFetchError(date, err)
	}

	res, err := f.lookup.Lookup(ctx, query)
	if err != nil {
		return nil, domain.NewFetchError(date, err)
	}
	if res == nil {
		return nil, domain.NewFetchError(date, errEmptyLookupResult)
	}

	candidates := make([]domain.FlightCandidate, 0, len(res.Flights))
	for _, raw := range res.Flights {
		candidates = append(candidates, normalizeFlight(raw, date, f.currency))
	}

	return &domain.PerDateResult{
		Date:         date,
		CurrentPrice: res.CurrentPrice,
		Candidates:   candidates,
	}, nil
}

// buildLookupQuery builds the single-leg query for date. Trip types that
// cannot be executed yet are rejected instead of producing an empty query.
func buildLookupQuery(req domain.SearchRequest, date string) (domain.LookupQuery, error) {
	switch req.TripType {
	case domain.TripOneWay:
		return domain.LookupQuery{
			Origin:      req.Origin,
			Destination: req.Destination,
			Date:        date,
			Passengers:  req.Passengers,
			SeatClass:   req.SeatClass,
			MaxStops:    req.MaxStops,
		}, nil
	case domain.TripRoundTrip:
		return domain.LookupQuery{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedTripType, req.TripType)
	default:
		return domain.LookupQuery{}, fmt.Errorf("%w: %d", domain.ErrUnsupportedTripType, int(req.TripType))
	}
}
