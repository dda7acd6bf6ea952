package domain

import "encoding/json"

// SearchMetadata contains information about one search execution.
type SearchMetadata struct {
	// DatesQueried is the number of dates a fetch was scheduled for
	DatesQueried int `json:"dates_queried"`

	// DatesSucceeded is the number of dates whose lookup returned results
	DatesSucceeded int `json:"dates_succeeded"`

	// FailedDates lists dates that failed or timed out, ascending
	FailedDates []string `json:"failed_dates"`

	// CandidatesSeen is how many listings were examined by the merge
	CandidatesSeen int `json:"candidates_seen"`

	// EffectiveProviders is the lower-cased provider set used for filtering,
	// in the order providers were first admitted
	EffectiveProviders []string `json:"effective_providers"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// ResultAggregate is the frozen, date-ordered output of one search.
// All accessors return copies; the aggregate cannot be changed after construction.
type ResultAggregate struct {
	candidates []FlightCandidate
	request    SearchRequest
	metadata   SearchMetadata
}

// NewResultAggregate freezes the given candidates (already ordered) together
// with the request that produced them.
func NewResultAggregate(candidates []FlightCandidate, request SearchRequest, metadata SearchMetadata) *ResultAggregate {
	frozen := make([]FlightCandidate, len(candidates))
	copy(frozen, candidates)

	metadata.FailedDates = append([]string{}, metadata.FailedDates...)
	metadata.EffectiveProviders = append([]string{}, metadata.EffectiveProviders...)

	return &ResultAggregate{
		candidates: frozen,
		request:    request.Clone(),
		metadata:   metadata,
	}
}

// Candidates returns the accepted flights ordered by date.
func (a *ResultAggregate) Candidates() []FlightCandidate {
	out := make([]FlightCandidate, len(a.candidates))
	copy(out, a.candidates)
	return out
}

// Len returns the number of accepted flights.
func (a *ResultAggregate) Len() int {
	return len(a.candidates)
}

// Request echoes the original search request.
func (a *ResultAggregate) Request() SearchRequest {
	return a.request.Clone()
}

// Metadata returns the execution details of the search.
func (a *ResultAggregate) Metadata() SearchMetadata {
	m := a.metadata
	m.FailedDates = append([]string{}, a.metadata.FailedDates...)
	m.EffectiveProviders = append([]string{}, a.metadata.EffectiveProviders...)
	return m
}

// aggregateJSON is the wire form of a ResultAggregate.
type aggregateJSON struct {
	FlightInfo []FlightCandidate `json:"flight_info"`
	UserInputs SearchRequest     `json:"user_inputs"`
	Metadata   SearchMetadata    `json:"metadata"`
}

// MarshalJSON implements json.Marshaler.
func (a *ResultAggregate) MarshalJSON() ([]byte, error) {
	return json.Marshal(aggregateJSON{
		FlightInfo: a.candidates,
		UserInputs: a.request,
		Metadata:   a.metadata,
	})
}

// UnmarshalJSON implements json.Unmarshaler so stored snapshots can be restored.
func (a *ResultAggregate) UnmarshalJSON(data []byte) error {
	var raw aggregateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = *NewResultAggregate(raw.FlightInfo, raw.UserInputs, raw.Metadata)
	return nil
}
