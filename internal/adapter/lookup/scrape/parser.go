package scrape

import (
	"strconv"
	"strings"

	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/PuerkitoBio/goquery"
)

// unknownStops is recorded when the stop count cannot be read. It is high
// enough to fail any realistic max-stops filter.
const unknownStops = 99

// Selectors locate the parts of a results page. Item-level selectors are
// evaluated relative to the item.
type Selectors struct {
	// Section selects result groups; items in the first group are the
	// source's best picks for the date
	Section string

	Item         string
	Name         string
	Times        string
	ArrivalAhead string
	Duration     string
	Stops        string
	Delay        string
	Price        string

	// CurrentPrice selects the page-level price indicator ("low", "typical", "high")
	CurrentPrice string
}

// DefaultSelectors match the Google Flights results layout.
func DefaultSelectors() Selectors {
	return Selectors{
		Section:      `div[jsname="IWWDBc"], div[jsname="YdtKid"]`,
		Item:         "ul.Rk10dc li",
		Name:         "div.sSHqwe.tPgKwe.ogfYpf span",
		Times:        "span.mv1WYe div",
		ArrivalAhead: "span.bOzv6",
		Duration:     "div.Ak5kof div",
		Stops:        ".BbR8Ec .ogfYpf",
		Delay:        ".GsCCve",
		Price:        ".YMlIz.FpEdX",
		CurrentPrice: "span.gOatQ",
	}
}

// withDefaults fills empty selectors from DefaultSelectors.
func (s Selectors) withDefaults() Selectors {
	d := DefaultSelectors()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&s.Section, d.Section)
	fill(&s.Item, d.Item)
	fill(&s.Name, d.Name)
	fill(&s.Times, d.Times)
	fill(&s.ArrivalAhead, d.ArrivalAhead)
	fill(&s.Duration, d.Duration)
	fill(&s.Stops, d.Stops)
	fill(&s.Delay, d.Delay)
	fill(&s.Price, d.Price)
	fill(&s.CurrentPrice, d.CurrentPrice)
	return s
}

// Parse extracts listings from a results page. Items without a carrier
// name (such as "more flights" rows) are skipped.
func Parse(doc *goquery.Document, sel Selectors) *domain.LookupResult {
	sel = sel.withDefaults()

	res := &domain.LookupResult{
		CurrentPrice: text(doc.Find(sel.CurrentPrice).First()),
		Flights:      []domain.RawFlight{},
	}

	doc.Find(sel.Section).Each(func(section int, s *goquery.Selection) {
		s.Find(sel.Item).Each(func(_ int, item *goquery.Selection) {
			name := text(item.Find(sel.Name).First())
			if name == "" {
				return
			}
			times := item.Find(sel.Times)

			res.Flights = append(res.Flights, domain.RawFlight{
				Name:             name,
				Departure:        text(times.Eq(0)),
				Arrival:          text(times.Eq(1)),
				ArrivalTimeAhead: text(item.Find(sel.ArrivalAhead).First()),
				Duration:         text(item.Find(sel.Duration).First()),
				Stops:            parseStops(text(item.Find(sel.Stops).First())),
				Delay:            text(item.Find(sel.Delay).First()),
				Price:            text(item.Find(sel.Price).First()),
				IsBest:           section == 0,
			})
		})
	})

	return res
}

// parseStops reads "Nonstop", "1 stop" or "2 stops".
func parseStops(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "nonstop" || s == "direct":
		return 0
	case s == "":
		return unknownStops
	}
	fields := strings.Fields(s)
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return unknownStops
	}
	return n
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
