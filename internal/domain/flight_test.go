package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDurationInfo(t *testing.T) {
	tests := []struct {
		name          string
		totalMinutes  int
		wantMinutes   int
		wantFormatted string
	}{
		{name: "hours and minutes", totalMinutes: 155, wantMinutes: 155, wantFormatted: "2h 35m"},
		{name: "only hours", totalMinutes: 120, wantMinutes: 120, wantFormatted: "2h"},
		{name: "only minutes", totalMinutes: 45, wantMinutes: 45, wantFormatted: "45m"},
		{name: "zero minutes", totalMinutes: 0, wantMinutes: 0, wantFormatted: "0m"},
		{name: "single digit minutes", totalMinutes: 65, wantMinutes: 65, wantFormatted: "1h 5m"},
		{name: "overnight connection", totalMinutes: 1445, wantMinutes: 1445, wantFormatted: "24h 5m"},
		{name: "negative clamps to zero", totalMinutes: -10, wantMinutes: 0, wantFormatted: "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewDurationInfo(tt.totalMinutes)
			assert.Equal(t, tt.wantMinutes, result.TotalMinutes)
			assert.Equal(t, tt.wantFormatted, result.Formatted)
		})
	}
}

func TestFlightCandidate_JSONKeys(t *testing.T) {
	c := FlightCandidate{
		ID:            "abc",
		ProviderName:  "IndiGo",
		Stops:         1,
		IsBestForDate: true,
		Date:          "2025-05-01",
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "IndiGo", raw["name"])
	assert.Equal(t, true, raw["is_best"])
	assert.Equal(t, "2025-05-01", raw["date"])
	assert.NotContains(t, raw, "delay", "empty delay is omitted")
}
