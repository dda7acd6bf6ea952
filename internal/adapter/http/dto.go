package http

import (
	"time"

	"github.com/KananVyas/flyGPT/internal/domain"
)

// SearchResponseDTO is the body returned for a search and for a stored snapshot.
type SearchResponseDTO struct {
	SearchID  string       `json:"search_id"`
	Result    SelectionDTO `json:"result"`
	Aggregate AggregateDTO `json:"aggregate"`
	CreatedAt string       `json:"created_at"`
}

// SelectionDTO holds the ranked flights shown to the user.
type SelectionDTO struct {
	FlightSearchResults []SelectedFlightDTO `json:"flight_search_results"`
}

// SelectedFlightDTO is one recommended flight.
type SelectedFlightDTO struct {
	FlightVendor       string  `json:"flight_vendor"`
	Departure          string  `json:"departure"`
	Arrival            string  `json:"arrival"`
	OriginAirport      string  `json:"origin_airport"`
	DestinationAirport string  `json:"destination_airport"`
	Date               string  `json:"Date"`
	Stops              int     `json:"stops"`
	Price              string  `json:"price"`
	Score              float64 `json:"score"`
	RedirectURL        string  `json:"redirect_url"`
}

// AggregateDTO is the full merged search output.
type AggregateDTO struct {
	FlightInfo []FlightDTO   `json:"flight_info"`
	UserInputs UserInputsDTO `json:"user_inputs"`
	Metadata   MetadataDTO   `json:"metadata"`
}

// FlightDTO is one accepted candidate.
type FlightDTO struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Departure        string      `json:"departure"`
	Arrival          string      `json:"arrival"`
	ArrivalTimeAhead int         `json:"arrival_time_ahead"`
	Duration         DurationDTO `json:"duration"`
	Stops            int         `json:"stops"`
	Delay            string      `json:"delay,omitempty"`
	Price            PriceDTO    `json:"price"`
	IsBest           bool        `json:"is_best"`
	Date             string      `json:"date"`
}

// DurationDTO represents flight duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted,omitempty"`
}

// UserInputsDTO echoes the structured request that was searched.
type UserInputsDTO struct {
	FromAirport            string        `json:"from_airport"`
	ToAirport              string        `json:"to_airport"`
	Passengers             PassengersDTO `json:"passengers"`
	TripType               string        `json:"trip_type"`
	Seat                   string        `json:"seat"`
	DateList               []string      `json:"date_list"`
	SpecificFlightProvider []string      `json:"specific_flight_provider"`
	MaxStops               int           `json:"max_stops"`
	PriceType              string        `json:"price_type"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults       int      `json:"total_results"`
	DatesQueried       int      `json:"dates_queried"`
	DatesSucceeded     int      `json:"dates_succeeded"`
	DatesFailed        int      `json:"dates_failed"`
	FailedDates        []string `json:"failed_dates"`
	CandidatesSeen     int      `json:"candidates_seen"`
	EffectiveProviders []string `json:"effective_providers"`
	SearchTimeMs       int64    `json:"search_time_ms"`
}

// ExpandDatesResponseDTO lists the dates a window expands to.
type ExpandDatesResponseDTO struct {
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

// ToSearchResponseDTO converts a stored snapshot to its response body.
func ToSearchResponseDTO(snap *domain.Snapshot) *SearchResponseDTO {
	if snap == nil {
		return nil
	}

	return &SearchResponseDTO{
		SearchID:  snap.SearchID,
		Result:    ToSelectionDTO(snap.Selection),
		Aggregate: ToAggregateDTO(snap.Aggregate),
		CreatedAt: snap.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToSelectionDTO converts a ranked selection.
func ToSelectionDTO(sel domain.Selection) SelectionDTO {
	dto := SelectionDTO{
		FlightSearchResults: make([]SelectedFlightDTO, len(sel.Results)),
	}
	for i, f := range sel.Results {
		dto.FlightSearchResults[i] = SelectedFlightDTO{
			FlightVendor:       f.FlightVendor,
			Departure:          f.Departure,
			Arrival:            f.Arrival,
			OriginAirport:      f.OriginAirport,
			DestinationAirport: f.DestinationAirport,
			Date:               f.Date,
			Stops:              f.Stops,
			Price:              f.Price,
			Score:              f.Score,
			RedirectURL:        f.RedirectURL,
		}
	}
	return dto
}

// ToAggregateDTO converts a merged aggregate. A nil aggregate yields empty lists.
func ToAggregateDTO(agg *domain.ResultAggregate) AggregateDTO {
	if agg == nil {
		return AggregateDTO{
			FlightInfo: []FlightDTO{},
			UserInputs: UserInputsDTO{DateList: []string{}, SpecificFlightProvider: []string{}},
			Metadata:   MetadataDTO{FailedDates: []string{}, EffectiveProviders: []string{}},
		}
	}

	candidates := agg.Candidates()
	flights := make([]FlightDTO, len(candidates))
	for i := range candidates {
		flights[i] = ToFlightDTO(&candidates[i])
	}

	req := agg.Request()
	meta := agg.Metadata()

	return AggregateDTO{
		FlightInfo: flights,
		UserInputs: UserInputsDTO{
			FromAirport: req.Origin,
			ToAirport:   req.Destination,
			Passengers: PassengersDTO{
				Adults:        req.Passengers.Adults,
				Children:      req.Passengers.Children,
				InfantsInSeat: req.Passengers.InfantsInSeat,
				InfantsOnLap:  req.Passengers.InfantsOnLap,
			},
			TripType:               req.TripType.String(),
			Seat:                   string(req.SeatClass),
			DateList:               nonNil(req.Dates),
			SpecificFlightProvider: nonNil(req.SpecificProviders),
			MaxStops:               req.MaxStops,
			PriceType:              string(req.PriceType),
		},
		Metadata: MetadataDTO{
			TotalResults:       len(candidates),
			DatesQueried:       meta.DatesQueried,
			DatesSucceeded:     meta.DatesSucceeded,
			DatesFailed:        len(meta.FailedDates),
			FailedDates:        nonNil(meta.FailedDates),
			CandidatesSeen:     meta.CandidatesSeen,
			EffectiveProviders: nonNil(meta.EffectiveProviders),
			SearchTimeMs:       meta.SearchTimeMs,
		},
	}
}

// ToFlightDTO converts one accepted candidate.
func ToFlightDTO(f *domain.FlightCandidate) FlightDTO {
	return FlightDTO{
		ID:               f.ID,
		Name:             f.ProviderName,
		Departure:        f.DepartureTime,
		Arrival:          f.ArrivalTime,
		ArrivalTimeAhead: f.ArrivalOffsetDays,
		Duration: DurationDTO{
			TotalMinutes: f.Duration.TotalMinutes,
			Formatted:    f.Duration.Formatted,
		},
		Stops: f.Stops,
		Delay: f.Delay,
		Price: PriceDTO{
			Amount:    f.Price.Amount,
			Currency:  f.Price.Currency,
			Formatted: f.Price.Formatted,
		},
		IsBest: f.IsBestForDate,
		Date:   f.Date,
	}
}

// nonNil keeps empty lists as [] rather than null in responses.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
