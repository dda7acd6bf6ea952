package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KananVyas/flyGPT/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestSearchFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        SearchFlightsRequest
		wantFields []string
	}{
		{
			name: "valid with date list",
			req:  SearchFlightsRequest{FromAirport: "BLR", ToAirport: "BDQ", DateList: []string{"2025-05-01"}},
		},
		{
			name: "valid with month",
			req:  SearchFlightsRequest{FromAirport: "blr", ToAirport: "bdq", Month: "May 2025", Seat: "Premium Economy", PriceType: "max"},
		},
		{
			name:       "missing airports",
			req:        SearchFlightsRequest{DateList: []string{"2025-05-01"}},
			wantFields: []string{"from_airport", "to_airport"},
		},
		{
			name:       "same airports",
			req:        SearchFlightsRequest{FromAirport: "BLR", ToAirport: "blr", DateList: []string{"2025-05-01"}},
			wantFields: []string{"to_airport"},
		},
		{
			name:       "bad airport code",
			req:        SearchFlightsRequest{FromAirport: "BL1", ToAirport: "BDQ", DateList: []string{"2025-05-01"}},
			wantFields: []string{"from_airport"},
		},
		{
			name:       "no dates",
			req:        SearchFlightsRequest{FromAirport: "BLR", ToAirport: "BDQ"},
			wantFields: []string{"date_list"},
		},
		{
			name:       "bad enums",
			req:        SearchFlightsRequest{FromAirport: "BLR", ToAirport: "BDQ", Month: "May", TripType: "multi-city", Seat: "cargo", PriceType: "free"},
			wantFields: []string{"trip_type", "seat", "price_type"},
		},
		{
			name:       "negative stops",
			req:        SearchFlightsRequest{FromAirport: "BLR", ToAirport: "BDQ", Month: "May", MaxStops: intPtr(-1)},
			wantFields: []string{"max_stops"},
		},
		{
			name:       "limit too large",
			req:        SearchFlightsRequest{FromAirport: "BLR", ToAirport: "BDQ", Month: "May", Limit: MaxSelectionLimit + 1},
			wantFields: []string{"limit"},
		},
		{
			name:       "negative passengers",
			req:        SearchFlightsRequest{FromAirport: "BLR", ToAirport: "BDQ", Month: "May", Passengers: &PassengersDTO{Adults: 1, Children: -1}},
			wantFields: []string{"passengers"},
		},
		{
			name:       "too many passengers",
			req:        SearchFlightsRequest{FromAirport: "BLR", ToAirport: "BDQ", Month: "May", Passengers: &PassengersDTO{Adults: 6, Children: 4}},
			wantFields: []string{"passengers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.True(t, errors.As(err, &verrs))
			fields := verrs.ToMap()
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestSearchFlightsRequest_ValidateNormalizesAirports(t *testing.T) {
	req := SearchFlightsRequest{FromAirport: " blr ", ToAirport: "bdq", DateList: []string{"2025-05-01"}}

	require.NoError(t, req.Validate())
	assert.Equal(t, "BLR", req.FromAirport)
	assert.Equal(t, "BDQ", req.ToAirport)
}

func TestExpandDatesRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ExpandDatesRequest
		wantErr bool
	}{
		{"dates", ExpandDatesRequest{DateList: []string{"2025-05-01"}}, false},
		{"month", ExpandDatesRequest{Month: "May", Year: 2025}, false},
		{"next days", ExpandDatesRequest{NextDays: 7}, false},
		{"nothing", ExpandDatesRequest{}, true},
		{"too many days", ExpandDatesRequest{NextDays: 400}, true},
		{"negative days", ExpandDatesRequest{NextDays: -1}, true},
		{"mixed forms", ExpandDatesRequest{DateList: []string{"2025-05-01"}, Month: "May"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("from_airport", "from_airport is required")
	errs.Add("date_list", "either date_list or month is required")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "from_airport is required", errs.Error())
	assert.Equal(t, map[string]string{
		"from_airport": "from_airport is required",
		"date_list":    "either date_list or month is required",
	}, errs.ToMap())
}

func TestValidSearchID(t *testing.T) {
	assert.True(t, validSearchID("42"))
	assert.True(t, validSearchID("0b6f2a7e-8c1d-4f55-9d3e-7a1c2b3d4e5f"))
	assert.False(t, validSearchID(""))
	assert.False(t, validSearchID("has space"))
	assert.False(t, validSearchID("../etc"))
}

func TestToDomainRequest(t *testing.T) {
	req := &SearchFlightsRequest{
		FromAirport: "BLR",
		ToAirport:   "BDQ",
		DateList:    []string{"2025-05-02", "2025-05-01"},
		TripType:    "round-trip",
	}

	got, err := ToDomainRequest(req, 2025)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-05-02", "2025-05-01"}, got.Dates)
	assert.Equal(t, domain.TripRoundTrip, got.TripType)
	assert.Equal(t, domain.Passengers{Adults: 1}, got.Passengers)
	assert.Equal(t, domain.SeatEconomy, got.SeatClass)
	assert.Equal(t, domain.PriceMinimum, got.PriceType)
	assert.Equal(t, DefaultMaxStops, got.MaxStops)
	assert.Empty(t, got.SpecificProviders)
}

func TestToDateWindow(t *testing.T) {
	tests := []struct {
		name      string
		dates     []string
		month     string
		year      int
		want      domain.DateWindow
		wantFirst string
		wantCount int
	}{
		{
			name: "bare month gets default year", month: " May ",
			want: domain.DateWindow{Month: "May", Year: 2026}, wantFirst: "2026-05-01", wantCount: 31,
		},
		{
			name: "month with year", month: "May 2025",
			want: domain.DateWindow{Month: "May 2025"}, wantFirst: "2025-05-01", wantCount: 31,
		},
		{
			name: "month with year and matching year field", month: "May 2025", year: 2025,
			want: domain.DateWindow{Month: "May 2025", Year: 2025}, wantFirst: "2025-05-01", wantCount: 31,
		},
		{
			name: "explicit year", month: "May", year: 2024,
			want: domain.DateWindow{Month: "May", Year: 2024}, wantFirst: "2024-05-01", wantCount: 31,
		},
		{
			name: "explicit dates", dates: []string{"2025-05-01"},
			want: domain.DateWindow{Dates: []string{"2025-05-01"}}, wantFirst: "2025-05-01", wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDateWindow(tt.dates, tt.month, tt.year, 2026)
			assert.Equal(t, tt.want, got)

			dates, err := got.Expand()
			require.NoError(t, err)
			require.Len(t, dates, tt.wantCount)
			assert.Equal(t, tt.wantFirst, dates[0])
		})
	}
}
