// Package domain contains the core entities and rules of the multi-date flight search.
// These types are lookup-agnostic and are shared by the use case and every adapter.
package domain

import "strconv"

// FlightCandidate is one itinerary option returned for a given date.
type FlightCandidate struct {
	// ID is unique within one aggregate. It is assigned at merge time, never by the source.
	ID string `json:"id"`

	// ProviderName is the operating airline as reported by the source (e.g., "IndiGo")
	ProviderName string `json:"name"`

	// DepartureTime and ArrivalTime are the source's display times (e.g., "6:05 AM on Thu, May 1")
	DepartureTime string `json:"departure"`
	ArrivalTime   string `json:"arrival"`

	// ArrivalOffsetDays is how many days after departure the flight lands
	ArrivalOffsetDays int `json:"arrival_time_ahead"`

	Duration DurationInfo `json:"duration"`

	// Stops is the number of stops (0 = non-stop)
	Stops int `json:"stops"`

	// Delay is the source's delay note, if any
	Delay string `json:"delay,omitempty"`

	Price PriceInfo `json:"price"`

	// IsBestForDate is the source's own "best" pick for the date
	IsBestForDate bool `json:"is_best"`

	// Date is the searched date, stamped by the orchestrator
	Date string `json:"date"`
}

// PerDateResult is the normalized outcome of one date's lookup.
type PerDateResult struct {
	Date string `json:"date"`

	// CurrentPrice is the source's reference price level for the date (e.g., "low", "typical")
	CurrentPrice string `json:"current_price"`

	Candidates []FlightCandidate `json:"flights"`
}

// DurationInfo contains flight duration information.
type DurationInfo struct {
	// TotalMinutes is the total flight duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// PriceInfo contains pricing information for a flight.
type PriceInfo struct {
	// Amount is the numeric price value; 0 when the source gave no price
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "INR", "USD")
	Currency string `json:"currency,omitempty"`

	// Formatted is the price as the source displayed it (e.g., "₹5,120")
	Formatted string `json:"formatted,omitempty"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		formatted = strconv.Itoa(hours) + "h"
	default:
		formatted = strconv.Itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}
