package domain

import "context"

//go:generate mockgen -source=lookup.go -destination=mock_lookup.go -package=domain

// FlightLookup is the external per-date flight data source.
// Implementations must be safe for concurrent use and should honor ctx cancellation.
type FlightLookup interface {
	// Name returns a short identifier for logs and metrics.
	Name() string

	// Lookup returns the listings for exactly one origin, destination and date.
	Lookup(ctx context.Context, query LookupQuery) (*LookupResult, error)
}

// LookupQuery is a single-date, single-leg query.
type LookupQuery struct {
	Origin      string     `json:"from_airport"`
	Destination string     `json:"to_airport"`
	Date        string     `json:"date"`
	Passengers  Passengers `json:"passengers"`
	SeatClass   SeatClass  `json:"seat"`
	MaxStops    int        `json:"max_stops"`
}

// LookupResult is the raw response of the lookup collaborator for one date.
type LookupResult struct {
	CurrentPrice string      `json:"current_price"`
	Flights      []RawFlight `json:"flights"`
}

// RawFlight is one listing as the source reports it, before normalization.
type RawFlight struct {
	Name             string `json:"name"`
	Departure        string `json:"departure"`
	Arrival          string `json:"arrival"`
	ArrivalTimeAhead string `json:"arrival_time_ahead"`
	Duration         string `json:"duration"`
	Stops            int    `json:"stops"`
	Delay            string `json:"delay"`
	Price            string `json:"price"`
	IsBest           bool   `json:"is_best"`
}
