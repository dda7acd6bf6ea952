package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrency is the number of date fetches allowed in flight at once.
const DefaultMaxConcurrency = 10

// ErrPoolClosed is returned by Submit after Shutdown has been called.
var ErrPoolClosed = errors.New("worker pool is shut down")

// WorkerPool runs tasks on goroutines while capping how many run at once.
// A single pool is meant to be shared by every search of a process and shut
// down once when the process exits.
type WorkerPool struct {
	sem      *semaphore.Weighted
	size     int
	wg       sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
	inFlight atomic.Int64
	log      *logger.Logger
}

// NewWorkerPool creates a pool running at most size tasks concurrently.
// A non-positive size falls back to DefaultMaxConcurrency.
func NewWorkerPool(size int, log *logger.Logger) *WorkerPool {
	if size <= 0 {
		size = DefaultMaxConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &WorkerPool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
		log:  log,
	}
}

// Size returns the concurrency cap.
func (p *WorkerPool) Size() int {
	return p.size
}

// InFlight returns the number of tasks currently running.
func (p *WorkerPool) InFlight() int {
	return int(p.inFlight.Load())
}

// Submit blocks until a slot is free, then runs task on its own goroutine.
// It returns ctx.Err() if ctx ends first and ErrPoolClosed after Shutdown.
// A task that panics is recovered and logged; it never takes the pool down.
func (p *WorkerPool) Submit(ctx context.Context, task func()) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	p.wg.Add(1)
	p.mu.RUnlock()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.wg.Done()
		return err
	}

	p.inFlight.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		defer p.inFlight.Add(-1)
		defer func() {
			if r := recover(); r != nil {
				p.log.Error().Str("panic", fmt.Sprint(r)).Msg("Worker task panicked")
			}
		}()
		task()
	}()

	return nil
}

// Shutdown stops accepting tasks and waits for running ones to finish.
// It returns ctx.Err() if ctx ends before they do. Calling it twice is safe.
func (p *WorkerPool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
