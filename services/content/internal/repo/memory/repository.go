package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/repo"
)

// Store is an in-memory entity store. Records are copied on the way in and
// out so callers can never alter what is stored.
type Store struct {
	mu       sync.RWMutex
	creators map[string]*entity.Creator
	content  map[string]*entity.Content
	markers  map[string]struct{}
	err      error
}

func NewStore() *Store {
	return &Store{
		creators: make(map[string]*entity.Creator),
		content:  make(map[string]*entity.Content),
		markers:  make(map[string]struct{}),
	}
}

var _ repo.Store = (*Store)(nil)

// FailWith makes every subsequent call return err wrapped as a store
// outage. Passing nil restores normal behaviour.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Insert adds content directly, bypassing the seed marker.
func (s *Store) Insert(items ...*entity.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range items {
		s.content[c.ID] = copyContent(c)
	}
}

func (s *Store) unavailable() error {
	if s.err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, s.err)
	}
	return nil
}

func (s *Store) ListContent(ctx context.Context, filter entity.ContentFilter, page entity.Page) ([]*entity.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.unavailable(); err != nil {
		return nil, err
	}

	matched := make([]*entity.Content, 0, len(s.content))
	for _, c := range s.content {
		if filter.CreatorID != "" && c.CreatorID != filter.CreatorID {
			continue
		}
		matched = append(matched, c)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.CreatedAt.After(b.CreatedAt) {
			return true
		}
		if b.CreatedAt.After(a.CreatedAt) {
			return false
		}
		return a.ID < b.ID
	})

	if page.Skip >= len(matched) {
		return []*entity.Content{}, nil
	}
	end := len(matched)
	if page.Limit > 0 && page.Skip+page.Limit < end {
		end = page.Skip + page.Limit
	}

	out := make([]*entity.Content, 0, end-page.Skip)
	for _, c := range matched[page.Skip:end] {
		out = append(out, copyContent(c))
	}
	return out, nil
}

func (s *Store) GetContent(ctx context.Context, id string) (*entity.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.unavailable(); err != nil {
		return nil, err
	}

	c, ok := s.content[id]
	if !ok {
		return nil, fmt.Errorf("content %s: %w", id, entity.ErrNotFound)
	}
	return copyContent(c), nil
}

func (s *Store) ListCreators(ctx context.Context) ([]*entity.Creator, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.unavailable(); err != nil {
		return nil, err
	}

	out := make([]*entity.Creator, 0, len(s.creators))
	for _, c := range s.creators {
		if !c.IsCreator {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Username != out[j].Username {
			return out[i].Username < out[j].Username
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) SeedOnce(ctx context.Context, creators []*entity.Creator, content []*entity.Content) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.unavailable(); err != nil {
		return false, err
	}

	if _, seeded := s.markers[repo.SeedMarkerName]; seeded {
		return false, nil
	}
	s.markers[repo.SeedMarkerName] = struct{}{}
	if len(s.content) > 0 {
		return false, nil
	}

	for _, c := range creators {
		cp := *c
		s.creators[c.ID] = &cp
	}
	for _, c := range content {
		s.content[c.ID] = copyContent(c)
	}
	return true, nil
}

func (s *Store) Counts(ctx context.Context) (int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.unavailable(); err != nil {
		return 0, 0, err
	}
	return int64(len(s.creators)), int64(len(s.content)), nil
}

func copyContent(c *entity.Content) *entity.Content {
	cp := *c
	cp.MediaURLs = copyStrings(c.MediaURLs)
	cp.Tags = copyStrings(c.Tags)
	return &cp
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
