package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"social-vault/pkg/logger"
	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/repo"
)

// Seeder makes sure the demonstration corpus exists. The store's SeedOnce
// is atomic across processes; inside one process concurrent callers are
// serialized and, after one success, later calls return without touching
// the store. A failed attempt can be retried.
type Seeder struct {
	store   repo.Store
	logger  *logger.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.Mutex
	seeded atomic.Bool
}

func NewSeeder(store repo.Store, logger *logger.Logger, timeout time.Duration) *Seeder {
	return &Seeder{
		store:   store,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded.Load() {
		return nil
	}

	creators, content := SampleRoster(s.now())
	if err := validateRoster(creators, content); err != nil {
		return err
	}

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	wrote, err := s.store.SeedOnce(ctx, creators, content)
	if err != nil {
		return classifyStoreError(err)
	}

	if wrote {
		s.logger.Info("Seeded %d creators and %d content items", len(creators), len(content))
	} else {
		s.logger.Debug("Store already seeded, skipping sample data")
	}
	s.seeded.Store(true)
	return nil
}

// validateRoster checks what the stores do not enforce: a known content
// type, a price only on paid items, and an owner that is in the roster.
func validateRoster(creators []*entity.Creator, content []*entity.Content) error {
	owners := make(map[string]bool, len(creators))
	for _, c := range creators {
		owners[c.ID] = true
	}

	for _, item := range content {
		if !item.ContentType.Valid() {
			return fmt.Errorf("%w: content %s has unknown type %q", entity.ErrValidation, item.ID, item.ContentType)
		}
		if item.IsFree && item.Price != nil {
			return fmt.Errorf("%w: free content %s has a price", entity.ErrValidation, item.ID)
		}
		if !owners[item.CreatorID] {
			return fmt.Errorf("%w: content %s references unknown creator %s", entity.ErrValidation, item.ID, item.CreatorID)
		}
	}
	return nil
}
