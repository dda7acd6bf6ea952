// Command datesearch runs one multi-date search from the command line and
// writes the merged aggregate to disk.
//
//	datesearch -from BLR -to BDQ -month May -year 2025 -out flights.json -csv flights.csv
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KananVyas/flyGPT/internal/adapter/export"
	"github.com/KananVyas/flyGPT/internal/app"
	"github.com/KananVyas/flyGPT/internal/config"
	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/usecase"
)

type options struct {
	from, to  string
	dates     string
	month     string
	year      int
	nextDays  int
	maxStops  int
	providers string
	seat      string
	priceType string
	adults    int
	limit     int
	out       string
	csvOut    string
}

func main() {
	var opts options
	flag.StringVar(&opts.from, "from", "", "origin IATA code")
	flag.StringVar(&opts.to, "to", "", "destination IATA code")
	flag.StringVar(&opts.dates, "dates", "", "comma-separated YYYY-MM-DD dates")
	flag.StringVar(&opts.month, "month", "", `month name, or "Month YYYY"`)
	flag.IntVar(&opts.year, "year", 0, "year for -month; defaults to the current year")
	flag.IntVar(&opts.nextDays, "next-days", 0, "search this many days starting today")
	flag.IntVar(&opts.maxStops, "max-stops", 1, "inclusive stop limit")
	flag.StringVar(&opts.providers, "providers", "", "comma-separated airlines to keep")
	flag.StringVar(&opts.seat, "seat", "economy", "economy, premium-economy, business or first")
	flag.StringVar(&opts.priceType, "price", "minimum", "minimum, maximum or average")
	flag.IntVar(&opts.adults, "adults", 1, "adult passengers")
	flag.IntVar(&opts.limit, "limit", 0, "flights to recommend; 0 uses SEARCH_SELECTION_LIMIT")
	flag.StringVar(&opts.out, "out", "flights.json", "aggregate JSON output path")
	flag.StringVar(&opts.csvOut, "csv", "", "optional CSV output path")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "datesearch:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg)
	logger.SetGlobal(log)

	req, err := buildRequest(opts, time.Now())
	if err != nil {
		return err
	}

	lookup, err := app.NewLookup(cfg.Lookup, log, nil)
	if err != nil {
		return err
	}
	search, pool := app.NewSearch(cfg, lookup, log, nil)
	defer pool.Shutdown(context.Background())

	agg, err := search.Search(context.Background(), req)
	if err != nil {
		return err
	}

	if err := writeFile(opts.out, func(f *os.File) error { return export.WriteJSON(f, agg) }); err != nil {
		return err
	}
	if opts.csvOut != "" {
		if err := writeFile(opts.csvOut, func(f *os.File) error { return export.WriteCSV(f, agg) }); err != nil {
			return err
		}
	}

	limit := opts.limit
	if limit <= 0 {
		limit = cfg.Search.SelectionLimit
	}
	selection := usecase.NewPriceSelector(cfg.Lookup.Currency).Rank(agg, limit)

	meta := agg.Metadata()
	log.Info().
		Int("dates", meta.DatesQueried).
		Strs("failed_dates", meta.FailedDates).
		Int("flights", agg.Len()).
		Str("out", opts.out).
		Msg("Search written")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(selection)
}

// buildRequest turns the flags into a validated search request.
func buildRequest(opts options, now time.Time) (domain.SearchRequest, error) {
	var dates []string
	var err error
	switch {
	case opts.nextDays > 0:
		dates, err = domain.NextDays(now, opts.nextDays)
	default:
		w := domain.DateWindow{Dates: splitList(opts.dates), Month: opts.month, Year: opts.year}
		if w.Month != "" && w.Year == 0 && len(strings.Fields(w.Month)) == 1 {
			w.Year = now.Year()
		}
		dates, err = w.Expand()
	}
	if err != nil {
		return domain.SearchRequest{}, err
	}

	seat, err := domain.ParseSeatClass(opts.seat)
	if err != nil {
		return domain.SearchRequest{}, err
	}
	price, err := domain.ParsePriceType(opts.priceType)
	if err != nil {
		return domain.SearchRequest{}, err
	}

	req := domain.SearchRequest{
		Origin:            opts.from,
		Destination:       opts.to,
		Passengers:        domain.Passengers{Adults: opts.adults},
		TripType:          domain.TripOneWay,
		SeatClass:         seat,
		Dates:             dates,
		SpecificProviders: splitList(opts.providers),
		MaxStops:          opts.maxStops,
		PriceType:         price,
	}
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return domain.SearchRequest{}, err
	}
	return req, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
