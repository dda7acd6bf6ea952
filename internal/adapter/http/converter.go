package http

import (
	"strings"

	"github.com/KananVyas/flyGPT/internal/domain"
)

// ToDomainRequest converts a validated SearchFlightsRequest into a
// domain.SearchRequest. A bare month name without a year resolves
// against defaultYear.
func ToDomainRequest(req *SearchFlightsRequest, defaultYear int) (domain.SearchRequest, error) {
	dates, err := ToDateWindow(req.DateList, req.Month, req.Year, defaultYear).Expand()
	if err != nil {
		return domain.SearchRequest{}, err
	}

	tripType, err := domain.ParseTripType(req.TripType)
	if err != nil {
		return domain.SearchRequest{}, err
	}
	seat, err := domain.ParseSeatClass(req.Seat)
	if err != nil {
		return domain.SearchRequest{}, err
	}
	priceType, err := domain.ParsePriceType(req.PriceType)
	if err != nil {
		return domain.SearchRequest{}, err
	}

	maxStops := DefaultMaxStops
	if req.MaxStops != nil {
		maxStops = *req.MaxStops
	}

	out := domain.SearchRequest{
		Origin:            req.FromAirport,
		Destination:       req.ToAirport,
		Passengers:        toDomainPassengers(req.Passengers),
		TripType:          tripType,
		SeatClass:         seat,
		Dates:             dates,
		SpecificProviders: trimProviders(req.SpecificFlightProvider),
		MaxStops:          maxStops,
		PriceType:         priceType,
	}
	out.SetDefaults()
	return out, nil
}

// ToDateWindow builds a domain.DateWindow from request fields.
func ToDateWindow(dates []string, month string, year, defaultYear int) domain.DateWindow {
	month = strings.TrimSpace(month)
	if len(dates) == 0 && month != "" && year == 0 && len(strings.Fields(month)) == 1 {
		year = defaultYear
	}
	return domain.DateWindow{
		Dates: dates,
		Month: month,
		Year:  year,
	}
}

func toDomainPassengers(dto *PassengersDTO) domain.Passengers {
	if dto == nil {
		return domain.Passengers{Adults: 1}
	}
	return domain.Passengers{
		Adults:        dto.Adults,
		Children:      dto.Children,
		InfantsInSeat: dto.InfantsInSeat,
		InfantsOnLap:  dto.InfantsOnLap,
	}
}

func trimProviders(providers []string) []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
