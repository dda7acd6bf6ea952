package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KananVyas/flyGPT/internal/domain"
)

var (
	// Units may be glued to the next number, as in "1h30m".
	hoursRegex   = regexp.MustCompile(`(\d+)\s*(?:hours?|hrs?|h)`)
	minutesRegex = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|m)`)
	offsetRegex  = regexp.MustCompile(`[+-]?\d+`)
	amountRegex  = regexp.MustCompile(`\d[\d.,]*\d|\d`)
)

// currencySymbols maps price prefixes reported by the lookup to ISO codes.
// Longer symbols come first so "R$" is not read as "$".
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"R$", "BRL"},
	{"Rp", "IDR"},
	{"₹", "INR"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"$", "USD"},
}

// parseDuration reads text such as "2 hr 35 min" into minutes.
// Unrecognized text yields 0.
func parseDuration(text string) int {
	text = strings.ToLower(text)
	total := 0
	if m := hoursRegex.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m := minutesRegex.FindStringSubmatch(text); m != nil {
		mins, _ := strconv.Atoi(m[1])
		total += mins
	}
	return total
}

// parseArrivalOffset reads "+1" style day offsets. Empty text means same day.
func parseArrivalOffset(text string) int {
	m := offsetRegex.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// parsePrice turns a display price like "₹5,123" into a PriceInfo.
// Unparseable prices keep their text with a zero amount.
func parsePrice(text, defaultCurrency string) domain.PriceInfo {
	text = strings.TrimSpace(text)
	info := domain.PriceInfo{Currency: defaultCurrency, Formatted: text}

	for _, cs := range currencySymbols {
		if strings.Contains(text, cs.symbol) {
			info.Currency = cs.code
			break
		}
	}

	raw := amountRegex.FindString(text)
	if raw == "" {
		return info
	}
	if dotGroupsThousands(raw, info.Currency) {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	} else {
		raw = strings.ReplaceAll(raw, ",", "")
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return info
	}
	info.Amount = amount
	return info
}

// dotGroupsThousands reports whether dots in raw separate thousands, as in
// "1.500.000" or "Rp 1.500", rather than marking decimals as in "1,234.50".
func dotGroupsThousands(raw, currency string) bool {
	dot := strings.IndexByte(raw, '.')
	switch {
	case dot < 0:
		return false
	case strings.Count(raw, ".") > 1, currency == "IDR":
		return true
	}
	return !strings.Contains(raw, ",") && len(raw)-dot-1 == 3
}

// normalizeFlight converts one raw listing into a candidate stamped with date.
// The id is left empty; it is assigned when the candidate is merged.
func normalizeFlight(raw domain.RawFlight, date, defaultCurrency string) domain.FlightCandidate {
	return domain.FlightCandidate{
		ProviderName:      strings.TrimSpace(raw.Name),
		DepartureTime:     strings.TrimSpace(raw.Departure),
		ArrivalTime:       strings.TrimSpace(raw.Arrival),
		ArrivalOffsetDays: parseArrivalOffset(raw.ArrivalTimeAhead),
		Duration:          domain.NewDurationInfo(parseDuration(raw.Duration)),
		Stops:             raw.Stops,
		Delay:             strings.TrimSpace(raw.Delay),
		Price:             parsePrice(raw.Price, defaultCurrency),
		IsBestForDate:     raw.IsBest,
		Date:              date,
	}
}
