package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// TripType is the itinerary shape of a search.
type TripType int

// Known trip types. Only TripOneWay can be executed against the lookup.
const (
	TripOneWay TripType = iota + 1
	TripRoundTrip
)

// ParseTripType converts the wire form ("one-way", "round-trip") to a TripType.
func ParseTripType(s string) (TripType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "one-way", "oneway", "one_way":
		return TripOneWay, nil
	case "round-trip", "roundtrip", "round_trip":
		return TripRoundTrip, nil
	default:
		return 0, fmt.Errorf("%w: trip type %q", ErrInvalidRequest, s)
	}
}

// String returns the wire form of the trip type.
func (t TripType) String() string {
	switch t {
	case TripOneWay:
		return "one-way"
	case TripRoundTrip:
		return "round-trip"
	default:
		return "unknown"
	}
}

// Executable reports whether searches of this trip type can be run today.
func (t TripType) Executable() bool {
	return t == TripOneWay
}

// MarshalJSON encodes the trip type as its wire string.
func (t TripType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the wire string form.
func (t *TripType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTripType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SeatClass is the cabin requested for the search.
type SeatClass string

// Supported seat classes.
const (
	SeatEconomy        SeatClass = "economy"
	SeatPremiumEconomy SeatClass = "premium-economy"
	SeatBusiness       SeatClass = "business"
	SeatFirst          SeatClass = "first"
)

// ParseSeatClass normalizes free-form class names ("Premium Economy", "biz").
// An empty string defaults to economy.
func ParseSeatClass(s string) (SeatClass, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "-", "_", "-").Replace(normalized)

	switch normalized {
	case "", "economy", "eco", "y":
		return SeatEconomy, nil
	case "premium-economy", "premium", "w":
		return SeatPremiumEconomy, nil
	case "business", "biz", "j", "c":
		return SeatBusiness, nil
	case "first", "f":
		return SeatFirst, nil
	default:
		return "", fmt.Errorf("%w: seat class %q", ErrInvalidRequest, s)
	}
}

// PriceType is the downstream price preference. The orchestrator only echoes it.
type PriceType string

// Supported price preferences.
const (
	PriceMinimum PriceType = "minimum"
	PriceMaximum PriceType = "maximum"
	PriceAverage PriceType = "average"
)

// ParsePriceType normalizes a price preference; empty defaults to minimum.
func ParsePriceType(s string) (PriceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "minimum", "min", "cheapest":
		return PriceMinimum, nil
	case "maximum", "max":
		return PriceMaximum, nil
	case "average", "avg":
		return PriceAverage, nil
	default:
		return "", fmt.Errorf("%w: price type %q", ErrInvalidRequest, s)
	}
}

// Passengers holds the traveller counts of a search.
type Passengers struct {
	Adults        int `json:"adults"`
	Children      int `json:"children"`
	InfantsInSeat int `json:"infants_in_seat"`
	InfantsOnLap  int `json:"infants_on_lap"`
}

// Total returns the number of travellers.
func (p Passengers) Total() int {
	return p.Adults + p.Children + p.InfantsInSeat + p.InfantsOnLap
}

// MaxPassengers is the largest party a single lookup accepts.
const MaxPassengers = 9

// SearchRequest is the structured input of one multi-date search.
// It is built once per search and never mutated afterwards.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "BLR")
	Origin string `json:"from_airport"`

	// Destination is the IATA code of the arrival airport (e.g., "BDQ")
	Destination string `json:"to_airport"`

	Passengers Passengers `json:"passengers"`
	TripType   TripType   `json:"trip_type"`
	SeatClass  SeatClass  `json:"seat"`

	// Dates are the candidate travel dates in YYYY-MM-DD format, unique
	Dates []string `json:"date_list"`

	// SpecificProviders restricts results to these airlines (case-insensitive).
	// Empty means providers are discovered from the results.
	SpecificProviders []string `json:"specific_flight_provider"`

	// MaxStops is the inclusive upper bound on stops
	MaxStops int `json:"max_stops"`

	PriceType PriceType `json:"price_type"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks the request shape once at the boundary.
// Malformed dates are reported as ErrInvalidDateSpec, everything else as ErrInvalidRequest.
func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: from_airport is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(r.Origin) {
		return fmt.Errorf("%w: from_airport must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Origin)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: to_airport is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(r.Destination) {
		return fmt.Errorf("%w: to_airport must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Destination)
	}
	if r.Origin == r.Destination {
		return fmt.Errorf("%w: from_airport and to_airport must be different", ErrInvalidRequest)
	}

	if err := r.Passengers.validate(); err != nil {
		return err
	}

	if r.TripType != TripOneWay && r.TripType != TripRoundTrip {
		return fmt.Errorf("%w: trip_type is required", ErrInvalidRequest)
	}

	if _, err := ParseSeatClass(string(r.SeatClass)); err != nil {
		return err
	}
	if _, err := ParsePriceType(string(r.PriceType)); err != nil {
		return err
	}

	if r.MaxStops < 0 {
		return fmt.Errorf("%w: max_stops cannot be negative", ErrInvalidRequest)
	}

	if len(r.Dates) == 0 {
		return fmt.Errorf("%w: date_list must not be empty", ErrInvalidRequest)
	}
	seen := make(map[string]struct{}, len(r.Dates))
	for _, d := range r.Dates {
		if !IsISODate(d) {
			return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateSpec, d)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: date %s appears more than once", ErrInvalidRequest, d)
		}
		seen[d] = struct{}{}
	}

	return nil
}

func (p Passengers) validate() error {
	if p.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidRequest)
	}
	if p.Children < 0 || p.InfantsInSeat < 0 || p.InfantsOnLap < 0 {
		return fmt.Errorf("%w: passenger counts cannot be negative", ErrInvalidRequest)
	}
	if p.InfantsOnLap > p.Adults {
		return fmt.Errorf("%w: each lap infant needs an adult", ErrInvalidRequest)
	}
	if p.Total() > MaxPassengers {
		return fmt.Errorf("%w: passengers cannot exceed %d", ErrInvalidRequest, MaxPassengers)
	}
	return nil
}

// SetDefaults fills optional fields the way the query interpreter does:
// one adult, one-way, economy, minimum price.
func (r *SearchRequest) SetDefaults() {
	if r.Passengers.Adults == 0 {
		r.Passengers.Adults = 1
	}
	if r.TripType == 0 {
		r.TripType = TripOneWay
	}
	if r.SeatClass == "" {
		r.SeatClass = SeatEconomy
	}
	if r.PriceType == "" {
		r.PriceType = PriceMinimum
	}
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
}

// Clone returns a deep copy so callers cannot alias the request's slices.
func (r SearchRequest) Clone() SearchRequest {
	c := r
	c.Dates = append([]string(nil), r.Dates...)
	c.SpecificProviders = append([]string(nil), r.SpecificProviders...)
	return c
}
