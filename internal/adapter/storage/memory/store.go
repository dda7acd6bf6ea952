// Package memory keeps search snapshots in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/KananVyas/flyGPT/internal/infrastructure/timeutil"
)

type entry struct {
	snap   domain.Snapshot
	expiry time.Time
}

// Store is an in-memory domain.SnapshotStore. Entries expire after the
// configured TTL; a zero TTL keeps them until the process exits.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   timeutil.Clock
}

// NewStore creates an empty Store.
func NewStore(ttl time.Duration) *Store {
	return NewStoreWithClock(ttl, timeutil.NewRealClock())
}

// NewStoreWithClock creates an empty Store that reads time from clock.
func NewStoreWithClock(ttl time.Duration, clock timeutil.Clock) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Save implements domain.SnapshotStore. Saving an existing id replaces it.
func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snap.SearchID == "" {
		return fmt.Errorf("%w: search_id is required", domain.ErrInvalidRequest)
	}

	e := entry{snap: cloneSnapshot(snap)}
	if s.ttl > 0 {
		e.expiry = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[snap.SearchID] = e
	s.mu.Unlock()
	return nil
}

// Get implements domain.SnapshotStore.
func (s *Store) Get(ctx context.Context, searchID string) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	e, ok := s.entries[searchID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, searchID)
	}

	if !e.expiry.IsZero() && s.clock.Now().After(e.expiry) {
		s.mu.Lock()
		delete(s.entries, searchID)
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, searchID)
	}

	snap := cloneSnapshot(e.snap)
	return &snap, nil
}

// Len returns the number of stored snapshots, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// cloneSnapshot copies the selection slice. The aggregate is immutable and
// can be shared.
func cloneSnapshot(snap domain.Snapshot) domain.Snapshot {
	out := snap
	out.Selection.Results = append([]domain.SelectedFlight(nil), snap.Selection.Results...)
	return out
}

var _ domain.SnapshotStore = (*Store)(nil)
