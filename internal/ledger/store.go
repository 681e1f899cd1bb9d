// Package ledger owns the single mutable AppData snapshot. Every read
// goes through a deep copy and every committed mutation is persisted to
// the snapshot store before it becomes visible, then fanned out to
// subscribers.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// Store is the ledger store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	data    *domain.AppData
	repo    domain.SnapshotStore
	subMu   sync.Mutex
	subs    map[int]func(*domain.AppData)
	nextSub int
}

// Open loads the persisted snapshot, seeding and persisting the initial
// data on first run.
func Open(repo domain.SnapshotStore) (*Store, error) {
	data, err := repo.Load()
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		data = Seed()
		if err := repo.Save(data); err != nil {
			return nil, fmt.Errorf("seed snapshot: %w", err)
		}
		log.Info().Msg("Seeded initial ledger snapshot")
	} else if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return &Store{
		data: data,
		repo: repo,
		subs: make(map[int]func(*domain.AppData)),
	}, nil
}

// Snapshot returns a deep copy of the current aggregate.
func (s *Store) Snapshot() *domain.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Update applies mutate to a copy of the current snapshot and commits the
// result. The in-memory state is only replaced after the snapshot store
// write succeeds, so a persistence failure never leaves memory ahead of
// disk. Subscribers are notified after the lock is released.
func (s *Store) Update(mutate func(*domain.AppData) error) error {
	s.mu.Lock()
	next := s.data.Clone()
	if err := mutate(next); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.repo.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.data = next
	s.mu.Unlock()

	s.notify()
	return nil
}

// Reset discards all state and reseeds the initial snapshot.
func (s *Store) Reset() (*domain.AppData, error) {
	s.mu.Lock()
	seed := Seed()
	if err := s.repo.Clear(); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("clear snapshot: %w", err)
	}
	if err := s.repo.Save(seed); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("reseed snapshot: %w", err)
	}
	s.data = seed
	s.mu.Unlock()

	s.notify()
	return seed.Clone(), nil
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners receive a fresh deep copy per notification.
func (s *Store) Subscribe(fn func(*domain.AppData)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	listeners := make([]func(*domain.AppData), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(s.Snapshot())
	}
}
