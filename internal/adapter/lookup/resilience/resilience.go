// Package resilience decorates a flight lookup with rate limiting, a
// circuit breaker and retries.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/KananVyas/flyGPT/internal/adapter/lookup"
	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/infrastructure/retry"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Call outcomes reported to the Observer.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

// ErrCircuitOpen is returned while the breaker refuses calls.
var ErrCircuitOpen = errors.New("lookup circuit is open")

// Observer is told about every call that reaches the wrapped lookup.
type Observer interface {
	ObserveLookup(lookup, outcome string)
}

// Config configures the decorator. Zero values disable the matching feature
// where that makes sense.
type Config struct {
	// RatePerSecond caps calls to the source; 0 means unlimited
	RatePerSecond float64

	// Burst is how many calls may go out back to back
	Burst int

	// Retry is the policy applied to retryable failures
	Retry retry.Policy

	// BreakerMaxFailures consecutive transient failures open the breaker; 0 disables it
	BreakerMaxFailures uint32

	// BreakerTimeout is how long the breaker stays open before probing
	BreakerTimeout time.Duration
}

// Lookup wraps a domain.FlightLookup.
type Lookup struct {
	next     domain.FlightLookup
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
	policy   retry.Policy
	observer Observer
	log      *logger.Logger
}

// Option customizes a Lookup.
type Option func(*Lookup)

// WithObserver reports call outcomes to o.
func WithObserver(o Observer) Option {
	return func(l *Lookup) { l.observer = o }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Lookup) {
		if log != nil {
			l.log = log
		}
	}
}

// Wrap decorates next according to cfg.
func Wrap(next domain.FlightLookup, cfg Config, opts ...Option) *Lookup {
	l := &Lookup{
		next:   next,
		policy: cfg.Retry.WithRetryable(lookup.IsRetryable),
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.limiter = rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		l.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	if cfg.BreakerMaxFailures > 0 {
		log := l.log.WithLookup(next.Name())
		l.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    next.Name(),
			Timeout: cfg.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("from", from.String()).Str("to", to.String()).Msg("Lookup circuit breaker changed state")
			},
		})
	}

	return l
}

// Name implements domain.FlightLookup.
func (l *Lookup) Name() string {
	return l.next.Name()
}

// Lookup implements domain.FlightLookup.
func (l *Lookup) Lookup(ctx context.Context, q domain.LookupQuery) (*domain.LookupResult, error) {
	return retry.Do(ctx, l.policy, func(ctx context.Context) (*domain.LookupResult, error) {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, retry.Permanent(lookup.NewError(l.Name(), err, false))
		}
		return l.call(ctx, q)
	})
}

// call runs one attempt through the breaker. Only transient failures count
// against the breaker; "no flights" and cancellations pass through it as
// successes.
func (l *Lookup) call(ctx context.Context, q domain.LookupQuery) (*domain.LookupResult, error) {
	if l.breaker == nil {
		res, err := l.next.Lookup(ctx, q)
		l.observe(err)
		return res, err
	}

	var passthrough error
	out, err := l.breaker.Execute(func() (interface{}, error) {
		res, err := l.next.Lookup(ctx, q)
		if err != nil && !lookup.IsRetryable(err) {
			passthrough = err
			return nil, nil
		}
		return res, err
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		l.observeOutcome(OutcomeRejected)
		return nil, retry.Permanent(lookup.NewError(l.Name(), ErrCircuitOpen, false))
	case err != nil:
		l.observe(err)
		return nil, err
	case passthrough != nil:
		l.observe(passthrough)
		return nil, passthrough
	}

	l.observe(nil)
	res, _ := out.(*domain.LookupResult)
	return res, nil
}

// State reports the breaker state, or "disabled".
func (l *Lookup) State() string {
	if l.breaker == nil {
		return "disabled"
	}
	return l.breaker.State().String()
}

func (l *Lookup) observe(err error) {
	if err != nil {
		l.observeOutcome(OutcomeFailure)
		return
	}
	l.observeOutcome(OutcomeSuccess)
}

func (l *Lookup) observeOutcome(outcome string) {
	if l.observer != nil {
		l.observer.ObserveLookup(l.Name(), outcome)
	}
}

var _ domain.FlightLookup = (*Lookup)(nil)
