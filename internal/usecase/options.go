// Package usecase contains the multi-date search orchestration.
// It fans one lookup per date out over a shared worker pool and merges the
// results on a single goroutine.
package usecase

import (
	"time"

	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/infrastructure/timeutil"
	"github.com/google/uuid"
)

// Recorder receives search telemetry. The metrics package provides the
// Prometheus-backed implementation.
type Recorder interface {
	ObserveDateFetch(outcome string, elapsed time.Duration)
	ObserveCandidates(decision string, count int)
	ObserveSearch(result string)
}

// Fetch outcomes reported to Recorder.ObserveDateFetch.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeTimeout = "timeout"
)

// Search results reported to Recorder.ObserveSearch.
const (
	ResultOK       = "ok"
	ResultPartial  = "partial"
	ResultFailed   = "failed"
	ResultRejected = "rejected"
)

type nopRecorder struct{}

func (nopRecorder) ObserveDateFetch(string, time.Duration) {}
func (nopRecorder) ObserveCandidates(string, int)         {}
func (nopRecorder) ObserveSearch(string)                  {}

// Option customizes a DateSearchUseCase.
type Option func(*dateSearchUseCase)

// WithPool runs fetches on a shared pool instead of a private one.
func WithPool(pool *WorkerPool) Option {
	return func(uc *dateSearchUseCase) {
		if pool != nil {
			uc.pool = pool
		}
	}
}

// WithIDGenerator replaces the candidate id generator. Tests use it to get
// predictable or colliding ids.
func WithIDGenerator(fn func() string) Option {
	return func(uc *dateSearchUseCase) {
		if fn != nil {
			uc.newID = fn
		}
	}
}

// WithRecorder reports fetch and merge telemetry to r.
func WithRecorder(r Recorder) Option {
	return func(uc *dateSearchUseCase) {
		if r != nil {
			uc.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(uc *dateSearchUseCase) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock sets the clock used to time searches.
func WithClock(c timeutil.Clock) Option {
	return func(uc *dateSearchUseCase) {
		if c != nil {
			uc.clock = c
		}
	}
}

func defaultIDGenerator() string {
	return uuid.NewString()
}
