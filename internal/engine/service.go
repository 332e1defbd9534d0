package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"levelup/internal/storage"
)

// Service orchestrates progression transactions against the aggregate store.
//
// Every operation is a read-modify-write of the whole aggregate; the mutex is
// the single-writer boundary that keeps those transactions serialized. There
// is no locking below it.
type Service struct {
	store *storage.Store
	log   *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

func NewService(store *storage.Store) *Service {
	return &Service{
		store: store,
		log:   slog.Default(),
		now:   time.Now,
	}
}

// Snapshot returns the current aggregate for read-only presentation.
func (s *Service) Snapshot(ctx context.Context) *storage.Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// persist saves best-effort: a write failure is logged and the operation is
// otherwise treated as if it succeeded. No retry.
func (s *Service) persist(ctx context.Context, agg *storage.Aggregate) {
	if err := s.store.Save(ctx, agg); err != nil {
		s.log.Warn("save aggregate failed", "err", err)
	}
}
