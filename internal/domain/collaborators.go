package domain

import (
	"context"
	"time"
)

// QueryInterpreter turns free text into a structured search request.
// It lives upstream of the search and is usually backed by an LLM.
type QueryInterpreter interface {
	Interpret(ctx context.Context, text string) (SearchRequest, error)
}

// Ranker picks a small ranked subset out of an aggregate.
type Ranker interface {
	Rank(agg *ResultAggregate, limit int) Selection
}

// Selection is the ranked subset returned to the user.
type Selection struct {
	Results []SelectedFlight `json:"flight_search_results"`
}

// SelectedFlight is one recommended flight.
type SelectedFlight struct {
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

// Snapshot is a stored search outcome.
type Snapshot struct {
	SearchID  string           `json:"search_id"`
	Aggregate *ResultAggregate `json:"aggregate"`
	Selection Selection        `json:"result"`
	CreatedAt time.Time        `json:"created_at"`
}

// SnapshotStore persists search outcomes by search id.
type SnapshotStore interface {
	Save(ctx context.Context, snap Snapshot) error

	// Get returns ErrSnapshotNotFound when no snapshot exists for searchID.
	Get(ctx context.Context, searchID string) (*Snapshot, error)
}
