package usecase

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/KananVyas/flyGPT/internal/domain"
)

// DefaultSelectionLimit is how many flights a selection returns by default.
const DefaultSelectionLimit = 3

// Selection weights. They sum to 1.0; lower scores rank higher.
const (
	weightPrice    = 0.5
	weightDuration = 0.3
	weightStops    = 0.2
)

const redirectBaseURL = "https://www.google.com/travel/flights"

// PriceSelector ranks an aggregate by the request's price preference,
// duration and stops, and picks the top few.
//
//	Score = 0.5 × PriceFit + 0.3 × NormalizedDuration + 0.2 × NormalizedStops
//
// PriceFit is 0 for the flight that best matches the preference: the
// cheapest for minimum, the dearest for maximum and the one nearest the
// mean for average.
type PriceSelector struct {
	currency string
}

// NewPriceSelector creates a selector whose redirect links display prices in currency.
func NewPriceSelector(currency string) *PriceSelector {
	return &PriceSelector{currency: currency}
}

// Rank implements domain.Ranker.
func (s *PriceSelector) Rank(agg *domain.ResultAggregate, limit int) domain.Selection {
	if limit <= 0 {
		limit = DefaultSelectionLimit
	}

	flights := agg.Candidates()
	if len(flights) == 0 {
		return domain.Selection{Results: []domain.SelectedFlight{}}
	}
	req := agg.Request()

	scores := scoreCandidates(flights, req.PriceType)
	idx := make([]int, len(flights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	if limit > len(idx) {
		limit = len(idx)
	}

	results := make([]domain.SelectedFlight, 0, limit)
	for _, i := range idx[:limit] {
		f := flights[i]
		results = append(results, domain.SelectedFlight{
			FlightVendor:       f.ProviderName,
			Departure:          f.DepartureTime,
			Arrival:            f.ArrivalTime,
			OriginAirport:      req.Origin,
			DestinationAirport: req.Destination,
			Date:               f.Date,
			Stops:              f.Stops,
			Price:              displayPrice(f.Price),
			Score:              math.Round(scores[i]*1000) / 1000,
			RedirectURL:        s.RedirectURL(req, f.Date),
		})
	}

	return domain.Selection{Results: results}
}

// RedirectURL builds a Google Flights search link for one date of req.
func (s *PriceSelector) RedirectURL(req domain.SearchRequest, date string) string {
	q := fmt.Sprintf("Flights to %s from %s on %s %s %s class",
		req.Destination, req.Origin, date,
		strings.ReplaceAll(req.TripType.String(), "-", " "),
		strings.ReplaceAll(string(req.SeatClass), "-", " "))

	values := url.Values{}
	values.Set("q", q)
	if s.currency != "" {
		values.Set("curr", s.currency)
	}
	return redirectBaseURL + "?" + values.Encode()
}

func scoreCandidates(flights []domain.FlightCandidate, pt domain.PriceType) []float64 {
	minPrice, maxPrice := math.MaxFloat64, -math.MaxFloat64
	minDur, maxDur := math.MaxFloat64, -math.MaxFloat64
	minStops, maxStops := math.MaxFloat64, -math.MaxFloat64
	sum := 0.0

	for _, f := range flights {
		p, d, st := f.Price.Amount, float64(f.Duration.TotalMinutes), float64(f.Stops)
		minPrice, maxPrice = math.Min(minPrice, p), math.Max(maxPrice, p)
		minDur, maxDur = math.Min(minDur, d), math.Max(maxDur, d)
		minStops, maxStops = math.Min(minStops, st), math.Max(maxStops, st)
		sum += p
	}
	mean := sum / float64(len(flights))
	maxDeviation := math.Max(mean-minPrice, maxPrice-mean)

	scores := make([]float64, len(flights))
	for i, f := range flights {
		var priceFit float64
		switch pt {
		case domain.PriceMaximum:
			priceFit = 1 - normalizeValue(f.Price.Amount, minPrice, maxPrice)
		case domain.PriceAverage:
			priceFit = normalizeValue(math.Abs(f.Price.Amount-mean), 0, maxDeviation)
		default:
			priceFit = normalizeValue(f.Price.Amount, minPrice, maxPrice)
		}

		scores[i] = weightPrice*priceFit +
			weightDuration*normalizeValue(float64(f.Duration.TotalMinutes), minDur, maxDur) +
			weightStops*normalizeValue(float64(f.Stops), minStops, maxStops)
	}
	return scores
}

// normalizeValue maps value into [0, 1]. Equal bounds map to 0.
func normalizeValue(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

func displayPrice(p domain.PriceInfo) string {
	if p.Formatted != "" {
		return p.Formatted
	}
	if p.Currency == "" {
		return fmt.Sprintf("%.0f", p.Amount)
	}
	return fmt.Sprintf("%s %.0f", p.Currency, p.Amount)
}

var _ domain.Ranker = (*PriceSelector)(nil)
