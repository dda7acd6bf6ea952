// Package export writes search aggregates to files for offline use.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/jszwec/csvutil"
)

// Row is one candidate flattened for CSV output.
type Row struct {
	ID               string  `csv:"id"`
	Date             string  `csv:"date"`
	Provider         string  `csv:"provider"`
	Departure        string  `csv:"departure"`
	Arrival          string  `csv:"arrival"`
	ArrivalDaysAhead int     `csv:"arrival_days_ahead"`
	DurationMinutes  int     `csv:"duration_minutes"`
	Duration         string  `csv:"duration"`
	Stops            int     `csv:"stops"`
	Delay            string  `csv:"delay,omitempty"`
	PriceAmount      float64 `csv:"price_amount"`
	PriceCurrency    string  `csv:"price_currency"`
	Price            string  `csv:"price"`
	Best             bool    `csv:"is_best"`
}

// Rows flattens the aggregate in its date order.
func Rows(agg *domain.ResultAggregate) []Row {
	candidates := agg.Candidates()
	rows := make([]Row, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, Row{
			ID:               c.ID,
			Date:             c.Date,
			Provider:         c.ProviderName,
			Departure:        c.DepartureTime,
			Arrival:          c.ArrivalTime,
			ArrivalDaysAhead: c.ArrivalOffsetDays,
			DurationMinutes:  c.Duration.TotalMinutes,
			Duration:         c.Duration.Formatted,
			Stops:            c.Stops,
			Delay:            c.Delay,
			PriceAmount:      c.Price.Amount,
			PriceCurrency:    c.Price.Currency,
			Price:            c.Price.Formatted,
			Best:             c.IsBestForDate,
		})
	}
	return rows
}

// WriteCSV writes a header line and one line per accepted candidate.
// An empty aggregate produces only the header.
func WriteCSV(w io.Writer, agg *domain.ResultAggregate) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(Row{}); err != nil {
		return fmt.Errorf("failed to encode CSV header: %w", err)
	}
	if rows := Rows(agg); len(rows) > 0 {
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to encode CSV rows: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the aggregate as indented JSON with the
// flight_info, user_inputs and metadata keys.
func WriteJSON(w io.Writer, agg *domain.ResultAggregate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(agg); err != nil {
		return fmt.Errorf("failed to encode aggregate: %w", err)
	}
	return nil
}
