package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used across the search.
const DateLayout = "2006-01-02"

// months maps lower-cased full and short month names to time.Month.
var months = func() map[string]time.Month {
	m := make(map[string]time.Month, 24)
	for mo := time.January; mo <= time.December; mo++ {
		name := strings.ToLower(mo.String())
		m[name] = mo
		m[name[:3]] = mo
	}
	m["sept"] = time.September
	return m
}()

// IsISODate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseMonth resolves a month name ("May", "sep", "SEPTEMBER").
func ParseMonth(name string) (time.Month, error) {
	mo, ok := months[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidDateSpec, name)
	}
	return mo, nil
}

// DaysIn returns the number of days of month in year, leap years included.
func DaysIn(month time.Month, year int) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ExpandMonth lists every day of the named month as YYYY-MM-DD.
func ExpandMonth(month string, year int) ([]string, error) {
	mo, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidDateSpec, year)
	}

	n := DaysIn(mo, year)
	dates := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		dates = append(dates, time.Date(year, mo, day, 0, 0, 0, 0, time.UTC).Format(DateLayout))
	}
	return dates, nil
}

// ParseMonthYear expands a "May 2025" style window.
func ParseMonthYear(s string) ([]string, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: expected \"<month> <year>\", got %q", ErrInvalidDateSpec, s)
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid year %q", ErrInvalidDateSpec, fields[1])
	}
	return ExpandMonth(fields[0], year)
}

// ExpandDates validates an explicit date list and removes duplicates,
// keeping the first occurrence order.
func ExpandDates(list []string) ([]string, error) {
	seen := make(map[string]struct{}, len(list))
	dates := make([]string, 0, len(list))
	for _, raw := range list {
		d := strings.TrimSpace(raw)
		if !IsISODate(d) {
			return nil, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateSpec, raw)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	return dates, nil
}

// NextDays lists n consecutive dates starting at today's calendar date.
func NextDays(today time.Time, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", ErrInvalidDateSpec, n)
	}
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	dates := make([]string, n)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates, nil
}

// DateWindow is a logical travel window: either explicit dates or a month.
type DateWindow struct {
	Dates []string `json:"date_list,omitempty"`
	Month string   `json:"month,omitempty"`
	Year  int      `json:"year,omitempty"`
}

// Expand resolves the window to an ordered, de-duplicated date list.
// Explicit dates win when both forms are given. A year written inside
// Month ("May 2025") takes precedence over Year.
func (w DateWindow) Expand() ([]string, error) {
	switch {
	case len(w.Dates) > 0:
		return ExpandDates(w.Dates)
	case len(strings.Fields(strings.ReplaceAll(w.Month, ",", " "))) > 1:
		return ParseMonthYear(w.Month)
	case w.Month != "" && w.Year != 0:
		return ExpandMonth(w.Month, w.Year)
	case w.Month != "":
		return ParseMonthYear(w.Month)
	default:
		return nil, fmt.Errorf("%w: either date_list or month is required", ErrInvalidDateSpec)
	}
}
