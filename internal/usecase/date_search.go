package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/infrastructure/timeutil"
	"github.com/google/uuid"
)

// Default timeout values.
const (
	DefaultGlobalTimeout  = 30 * time.Second
	DefaultPerDateTimeout = 10 * time.Second
)

// DateSearchUseCase searches every date of a request and merges the results.
type DateSearchUseCase interface {
	// Search runs one fetch per date and returns the merged, date-ordered
	// aggregate. Dates that fail or miss the deadline contribute nothing.
	// It fails with domain.ErrUnsupportedTripType before any fetch for trip
	// types that cannot be executed, and with domain.ErrAllFetchesFailed
	// when no date succeeds.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.ResultAggregate, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// MaxConcurrency caps in-flight fetches when no shared pool is injected.
	MaxConcurrency int

	// GlobalTimeout bounds a whole search.
	GlobalTimeout time.Duration

	// PerDateTimeout bounds a single date fetch.
	PerDateTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: DefaultMaxConcurrency,
		GlobalTimeout:  DefaultGlobalTimeout,
		PerDateTimeout: DefaultPerDateTimeout,
	}
}

type dateSearchUseCase struct {
	fetcher        PerDateFetcher
	pool           *WorkerPool
	globalTimeout  time.Duration
	perDateTimeout time.Duration
	newID          func() string
	recorder       Recorder
	log            *logger.Logger
	clock          timeutil.Clock
}

// NewDateSearchUseCase creates a DateSearchUseCase. If config is nil or has
// zero fields, defaults are used. Without WithPool a private pool sized by
// MaxConcurrency is created.
func NewDateSearchUseCase(fetcher PerDateFetcher, config *Config, opts ...Option) DateSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.MaxConcurrency > 0 {
			cfg.MaxConcurrency = config.MaxConcurrency
		}
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.PerDateTimeout > 0 {
			cfg.PerDateTimeout = config.PerDateTimeout
		}
	}

	uc := &dateSearchUseCase{
		fetcher:        fetcher,
		globalTimeout:  cfg.GlobalTimeout,
		perDateTimeout: cfg.PerDateTimeout,
		newID:          defaultIDGenerator,
		recorder:       nopRecorder{},
		log:            logger.Nop(),
		clock:          timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.pool == nil {
		uc.pool = NewWorkerPool(cfg.MaxConcurrency, uc.log)
	}
	return uc
}

// dateOutcome is the message a fetch task sends back to the merge loop.
type dateOutcome struct {
	date    string
	result  *domain.PerDateResult
	err     error
	elapsed time.Duration
}

// Search implements DateSearchUseCase.Search.
func (uc *dateSearchUseCase) Search(ctx context.Context, req domain.SearchRequest) (*domain.ResultAggregate, error) {
	start := uc.clock.Now()

	if err := req.Validate(); err != nil {
		uc.recorder.ObserveSearch(ResultRejected)
		return nil, err
	}
	if !req.TripType.Executable() {
		uc.recorder.ObserveSearch(ResultRejected)
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedTripType, req.TripType)
	}

	req = req.Clone()
	log := uc.log.WithSearchID(uuid.NewString())

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	// Buffered so a task finishing after the deadline never blocks.
	results := make(chan dateOutcome, len(req.Dates))
	go uc.schedule(ctx, req, results, log)

	m := newMerger(req, uc.newID)
	pending := make(map[string]struct{}, len(req.Dates))
	for _, d := range req.Dates {
		pending[d] = struct{}{}
	}
	var failed []string
	var causes []error

	handle := func(out dateOutcome) {
		delete(pending, out.date)
		if out.err != nil {
			failed = append(failed, out.date)
			causes = append(causes, out.err)
			uc.recorder.ObserveDateFetch(fetchOutcome(out.err), out.elapsed)
			log.Warn().Err(out.err).Str("date", out.date).Msg("Date fetch failed")
			return
		}
		uc.recorder.ObserveDateFetch(OutcomeSuccess, out.elapsed)
		accepted := m.merge(out.result)
		log.Debug().
			Str("date", out.date).
			Int("listings", len(out.result.Candidates)).
			Int("accepted", accepted).
			Msg("Merged date results")
	}

gather:
	for len(pending) > 0 {
		select {
		case out := <-results:
			handle(out)
		case <-ctx.Done():
			break gather
		}
	}

	// Outcomes already delivered when the deadline fired still count.
	for len(pending) > 0 {
		select {
		case out := <-results:
			handle(out)
			continue
		default:
		}
		break
	}

	for d := range pending {
		failed = append(failed, d)
		causes = append(causes, domain.NewFetchError(d, ctx.Err()))
		uc.recorder.ObserveDateFetch(OutcomeTimeout, uc.clock.Now().Sub(start))
	}
	if len(pending) > 0 {
		log.Warn().Int("dates", len(pending)).Msg("Search deadline reached before all dates completed")
	}
	sort.Strings(failed)

	for d, n := range m.decisions {
		uc.recorder.ObserveCandidates(string(d), n)
	}

	succeeded := len(req.Dates) - len(failed)
	if succeeded == 0 {
		uc.recorder.ObserveSearch(ResultFailed)
		log.Error().Int("dates", len(req.Dates)).Msg("All date fetches failed")
		return nil, fmt.Errorf("%w: %d dates: %w", domain.ErrAllFetchesFailed, len(req.Dates), errors.Join(causes...))
	}

	if len(failed) > 0 {
		uc.recorder.ObserveSearch(ResultPartial)
	} else {
		uc.recorder.ObserveSearch(ResultOK)
	}

	candidates := m.result()
	meta := domain.SearchMetadata{
		DatesQueried:       len(req.Dates),
		DatesSucceeded:     succeeded,
		FailedDates:        failed,
		CandidatesSeen:     m.seen,
		EffectiveProviders: m.effectiveProviders(),
		SearchTimeMs:       uc.clock.Now().Sub(start).Milliseconds(),
	}

	log.Info().
		Int("dates", len(req.Dates)).
		Int("failed", len(failed)).
		Int("accepted", len(candidates)).
		Int64("duration_ms", meta.SearchTimeMs).
		Msg("Search completed")

	return domain.NewResultAggregate(candidates, req, meta), nil
}

// schedule submits one task per date. Each date yields exactly one outcome,
// including dates the pool refused.
func (uc *dateSearchUseCase) schedule(ctx context.Context, req domain.SearchRequest, results chan<- dateOutcome, log *logger.Logger) {
	for _, date := range req.Dates {
		err := uc.pool.Submit(ctx, func() {
			results <- uc.fetchDate(ctx, req, date)
		})
		if err != nil {
			log.Debug().Err(err).Str("date", date).Msg("Date fetch not scheduled")
			results <- dateOutcome{date: date, err: domain.NewFetchError(date, err)}
		}
	}
}

// fetchDate runs one fetch with its own timeout and panic recovery.
func (uc *dateSearchUseCase) fetchDate(ctx context.Context, req domain.SearchRequest, date string) (out dateOutcome) {
	ctx, cancel := context.WithTimeout(ctx, uc.perDateTimeout)
	defer cancel()

	start := uc.clock.Now()
	out.date = date

	defer func() {
		if r := recover(); r != nil {
			out.result = nil
			out.err = domain.NewFetchError(date, fmt.Errorf("fetch panic: %v", r))
		}
		out.elapsed = uc.clock.Now().Sub(start)
	}()

	out.result, out.err = uc.fetcher.Fetch(ctx, req, date)
	switch {
	case out.err != nil:
		out.result = nil
	case out.result == nil:
		out.err = domain.NewFetchError(date, errEmptyLookupResult)
	default:
		out.result.Date = date
	}
	return out
}

func fetchOutcome(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return OutcomeTimeout
	}
	return OutcomeFailure
}

// Ensure dateSearchUseCase implements DateSearchUseCase at compile time.
var _ DateSearchUseCase = (*dateSearchUseCase)(nil)
