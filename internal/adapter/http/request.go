// Package http provides the HTTP handler layer for the date search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KananVyas/flyGPT/internal/domain"
)

// DefaultMaxStops applies when a request leaves max_stops out.
const DefaultMaxStops = 1

// MaxSelectionLimit caps the limit a client may ask for.
const MaxSelectionLimit = 20

// SearchFlightsRequest represents the request body for a multi-date search.
// Either date_list or month must be given.
type SearchFlightsRequest struct {
	// FromAirport is the IATA code of the departure airport (e.g., "BLR")
	FromAirport string `json:"from_airport" example:"BLR"`

	// ToAirport is the IATA code of the arrival airport (e.g., "BDQ")
	ToAirport string `json:"to_airport" example:"BDQ"`

	Passengers *PassengersDTO `json:"passengers,omitempty"`

	// TripType is "one-way" or "round-trip"; defaults to one-way
	TripType string `json:"trip_type,omitempty" example:"one-way"`

	// Seat is economy, premium-economy, business or first; defaults to economy
	Seat string `json:"seat,omitempty" example:"economy"`

	// DateList holds explicit YYYY-MM-DD dates
	DateList []string `json:"date_list,omitempty" example:"2025-05-01,2025-05-02"`

	// Month is a month name ("May") or a month and year ("May 2025")
	Month string `json:"month,omitempty" example:"May"`

	// Year goes with a bare month name; a year inside Month wins
	Year int `json:"year,omitempty" example:"2025"`

	// SpecificFlightProvider restricts results to these airlines
	SpecificFlightProvider []string `json:"specific_flight_provider,omitempty" example:"IndiGo,Air India"`

	// MaxStops is the inclusive stop limit; defaults to 1
	MaxStops *int `json:"max_stops,omitempty" example:"1"`

	// PriceType is minimum, maximum or average; defaults to minimum
	PriceType string `json:"price_type,omitempty" example:"minimum"`

	// Limit is how many flights the selection returns; 0 uses the server default
	Limit int `json:"limit,omitempty" example:"3"`
}

// PassengersDTO carries traveller counts.
type PassengersDTO struct {
	Adults        int `json:"adults" example:"1"`
	Children      int `json:"children" example:"0"`
	InfantsInSeat int `json:"infants_in_seat" example:"0"`
	InfantsOnLap  int `json:"infants_on_lap" example:"0"`
}

// ExpandDatesRequest represents the request body for date expansion.
type ExpandDatesRequest struct {
	DateList []string `json:"date_list,omitempty" example:"2025-05-01"`
	Month    string   `json:"month,omitempty" example:"February"`
	Year     int      `json:"year,omitempty" example:"2024"`

	// NextDays lists this many dates starting today instead
	NextDays int `json:"next_days,omitempty" example:"7"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	searchIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks field shapes and normalizes airport codes. Calendar
// checks on the dates happen when the window is expanded.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.FromAirport = validateAirport(errs, "from_airport", r.FromAirport)
	r.ToAirport = validateAirport(errs, "to_airport", r.ToAirport)
	if r.FromAirport != "" && r.FromAirport == r.ToAirport {
		errs.Add("to_airport", "from_airport and to_airport must be different")
	}

	r.validatePassengers(errs)

	if _, err := domain.ParseTripType(r.TripType); err != nil {
		errs.Add("trip_type", "trip_type must be one of: one-way, round-trip")
	}
	if _, err := domain.ParseSeatClass(r.Seat); err != nil {
		errs.Add("seat", "seat must be one of: economy, premium-economy, business, first")
	}
	if _, err := domain.ParsePriceType(r.PriceType); err != nil {
		errs.Add("price_type", "price_type must be one of: minimum, maximum, average")
	}

	if len(r.DateList) == 0 && strings.TrimSpace(r.Month) == "" {
		errs.Add("date_list", "either date_list or month is required")
	}

	if r.MaxStops != nil && *r.MaxStops < 0 {
		errs.Add("max_stops", "max_stops must be a non-negative number")
	}

	if r.Limit < 0 || r.Limit > MaxSelectionLimit {
		errs.Add("limit", fmt.Sprintf("limit must be between 0 and %d", MaxSelectionLimit))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateAirport(errs *ValidationErrors, field, value string) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	if code == "" {
		errs.Add(field, field+" is required")
		return ""
	}
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return code
	}
	return code
}

func (r *SearchFlightsRequest) validatePassengers(errs *ValidationErrors) {
	if r.Passengers == nil {
		return
	}
	p := r.Passengers
	if p.Adults < 0 || p.Children < 0 || p.InfantsInSeat < 0 || p.InfantsOnLap < 0 {
		errs.Add("passengers", "passenger counts cannot be negative")
		return
	}
	if total := p.Adults + p.Children + p.InfantsInSeat + p.InfantsOnLap; total > domain.MaxPassengers {
		errs.Add("passengers", fmt.Sprintf("passengers cannot exceed %d", domain.MaxPassengers))
	}
}

// Validate checks that exactly one way of naming dates is used.
func (r *ExpandDatesRequest) Validate() error {
	errs := &ValidationErrors{}

	forms := 0
	if len(r.DateList) > 0 {
		forms++
	}
	if strings.TrimSpace(r.Month) != "" {
		forms++
	}
	if r.NextDays != 0 {
		forms++
		if r.NextDays < 1 || r.NextDays > 366 {
			errs.Add("next_days", "next_days must be between 1 and 366")
		}
	}

	switch forms {
	case 0:
		errs.Add("date_list", "one of date_list, month or next_days is required")
	case 1:
	default:
		errs.Add("date_list", "use only one of date_list, month or next_days")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validSearchID reports whether id can be used as a snapshot key.
func validSearchID(id string) bool {
	return searchIDPattern.MatchString(id)
}
