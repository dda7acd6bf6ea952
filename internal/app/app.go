// Package app builds the runtime components both binaries share from config.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/KananVyas/flyGPT/internal/adapter/lookup/fixture"
	"github.com/KananVyas/flyGPT/internal/adapter/lookup/resilience"
	"github.com/KananVyas/flyGPT/internal/adapter/lookup/scrape"
	"github.com/KananVyas/flyGPT/internal/adapter/storage/memory"
	"github.com/KananVyas/flyGPT/internal/adapter/storage/mysql"
	"github.com/KananVyas/flyGPT/internal/config"
	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/infrastructure/retry"
	"github.com/KananVyas/flyGPT/internal/usecase"
)

// NewLogger creates the process logger from the logging settings.
func NewLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  "flygpt",
	})
}

// NewLookup creates the configured flight source wrapped with rate limiting,
// the circuit breaker and retries.
func NewLookup(cfg config.LookupConfig, log *logger.Logger, obs resilience.Observer) (*resilience.Lookup, error) {
	var source domain.FlightLookup
	switch cfg.Mode {
	case config.LookupFixture:
		source = fixture.NewAdapter(cfg.FixturePath)
	case config.LookupScrape:
		source = scrape.NewAdapter(scrape.Config{
			BaseURL:   cfg.BaseURL,
			Language:  cfg.Language,
			Currency:  cfg.Currency,
			Timeout:   cfg.HTTPTimeout,
			UserAgent: cfg.UserAgent,
		}, nil)
	default:
		return nil, fmt.Errorf("unknown lookup mode %q", cfg.Mode)
	}

	policy := retry.DefaultPolicy().WithAttempts(cfg.RetryAttempts)
	if cfg.RetryBaseDelay > 0 {
		policy.BaseDelay = cfg.RetryBaseDelay
	}
	if cfg.RetryMaxDelay > 0 {
		policy.MaxDelay = cfg.RetryMaxDelay
	}
	lookupLog := log.WithLookup(source.Name())
	policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		lookupLog.Debug().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Retrying lookup")
	}

	opts := []resilience.Option{resilience.WithLogger(log)}
	if obs != nil {
		opts = append(opts, resilience.WithObserver(obs))
	}

	return resilience.Wrap(source, resilience.Config{
		RatePerSecond:      cfg.RatePerSecond,
		Burst:              cfg.Burst,
		Retry:              policy,
		BreakerMaxFailures: cfg.BreakerMaxFailures,
		BreakerTimeout:     cfg.BreakerTimeout,
	}, opts...), nil
}

// NewSearch creates the date search use case over lookup. The returned pool
// is shared by every search and must be shut down by the caller.
func NewSearch(cfg *config.Config, lookup domain.FlightLookup, log *logger.Logger, rec usecase.Recorder) (usecase.DateSearchUseCase, *usecase.WorkerPool) {
	pool := usecase.NewWorkerPool(cfg.Search.MaxConcurrency, log)
	fetcher := usecase.NewPerDateFetcher(lookup, cfg.Lookup.Currency)

	opts := []usecase.Option{
		usecase.WithPool(pool),
		usecase.WithLogger(log),
	}
	if rec != nil {
		opts = append(opts, usecase.WithRecorder(rec))
	}

	uc := usecase.NewDateSearchUseCase(fetcher, &usecase.Config{
		MaxConcurrency: cfg.Search.MaxConcurrency,
		GlobalTimeout:  cfg.Search.GlobalTimeout,
		PerDateTimeout: cfg.Search.PerDateTimeout,
	}, opts...)
	return uc, pool
}

// Store is a snapshot store that may hold resources.
type Store interface {
	domain.SnapshotStore
	Close() error
}

// NewStore opens the configured snapshot store.
func NewStore(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		return memoryStore{memory.NewStore(cfg.MemoryTTL)}, nil
	case config.StorageMySQL:
		s, err := mysql.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("open mysql store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

type memoryStore struct {
	*memory.Store
}

func (memoryStore) Close() error { return nil }
