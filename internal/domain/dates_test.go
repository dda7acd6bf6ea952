package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMonth(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		year      int
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{name: "may 2025", month: "May", year: 2025, wantCount: 31, wantFirst: "2025-05-01", wantLast: "2025-05-31"},
		{name: "february leap year", month: "February", year: 2024, wantCount: 29, wantFirst: "2024-02-01", wantLast: "2024-02-29"},
		{name: "february common year", month: "february", year: 2025, wantCount: 28, wantLast: "2025-02-28"},
		{name: "february century non-leap", month: "Feb", year: 1900, wantCount: 28},
		{name: "february 400-year leap", month: "FEB", year: 2000, wantCount: 29},
		{name: "april short name", month: "apr", year: 2025, wantCount: 30},
		{name: "december", month: "December", year: 2025, wantCount: 31, wantLast: "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := ExpandMonth(tt.month, tt.year)
			require.NoError(t, err)
			assert.Len(t, dates, tt.wantCount)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, dates[0])
			}
			if tt.wantLast != "" {
				assert.Equal(t, tt.wantLast, dates[len(dates)-1])
			}
			for i := 1; i < len(dates); i++ {
				assert.Less(t, dates[i-1], dates[i], "dates must be strictly ascending")
			}
		})
	}
}

func TestExpandMonth_InvalidSpec(t *testing.T) {
	_, err := ExpandMonth("Smarch", 2025)
	assert.ErrorIs(t, err, ErrInvalidDateSpec)

	_, err = ExpandMonth("May", 0)
	assert.ErrorIs(t, err, ErrInvalidDateSpec)
}

func TestParseMonthYear(t *testing.T) {
	dates, err := ParseMonthYear("May 2025")
	require.NoError(t, err)
	assert.Len(t, dates, 31)

	dates, err = ParseMonthYear("June, 2025")
	require.NoError(t, err)
	assert.Len(t, dates, 30)

	for _, bad := range []string{"", "May", "May twenty", "Maybe 2025", "May 2025 extra"} {
		_, err := ParseMonthYear(bad)
		assert.ErrorIs(t, err, ErrInvalidDateSpec, "input %q", bad)
	}
}

func TestExpandDates(t *testing.T) {
	dates, err := ExpandDates([]string{"2025-05-03", " 2025-05-01", "2025-05-03", "2025-05-02"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-05-03", "2025-05-01", "2025-05-02"}, dates)

	_, err = ExpandDates([]string{"2025-05-01", "05/02/2025"})
	assert.ErrorIs(t, err, ErrInvalidDateSpec)

	_, err = ExpandDates([]string{"2025-02-30"})
	assert.ErrorIs(t, err, ErrInvalidDateSpec)
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-02-29"))
	assert.False(t, IsISODate("2025-02-29"))
	assert.False(t, IsISODate("2025-5-1"))
	assert.False(t, IsISODate(""))
}

func TestNextDays(t *testing.T) {
	today := time.Date(2025, 12, 30, 22, 15, 0, 0, time.UTC)

	dates, err := NextDays(today, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}, dates)

	_, err = NextDays(today, 0)
	assert.ErrorIs(t, err, ErrInvalidDateSpec)
}

func TestDateWindow_Expand(t *testing.T) {
	tests := []struct {
		name      string
		window    DateWindow
		wantCount int
		wantFirst string
		wantErr   bool
	}{
		{name: "explicit dates", window: DateWindow{Dates: []string{"2025-05-01", "2025-05-01"}}, wantCount: 1},
		{name: "month and year", window: DateWindow{Month: "February", Year: 2024}, wantCount: 29},
		{name: "month year string", window: DateWindow{Month: "May 2025"}, wantCount: 31},
		{name: "month year string with matching year", window: DateWindow{Month: "May 2025", Year: 2025}, wantCount: 31, wantFirst: "2025-05-01"},
		{name: "year inside month wins", window: DateWindow{Month: "February 2024", Year: 2025}, wantCount: 29, wantFirst: "2024-02-01"},
		{name: "comma separated month year", window: DateWindow{Month: "May, 2025", Year: 2025}, wantCount: 31},
		{name: "bad year inside month", window: DateWindow{Month: "May twenty", Year: 2025}, wantErr: true},
		{name: "explicit dates take precedence", window: DateWindow{Dates: []string{"2025-05-01"}, Month: "May", Year: 2025}, wantCount: 1},
		{name: "empty window", window: DateWindow{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := tt.window.Expand()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateSpec)
				return
			}
			require.NoError(t, err)
			assert.Len(t, dates, tt.wantCount)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, dates[0])
			}
		})
	}
}
