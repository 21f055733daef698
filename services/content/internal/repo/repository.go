package repo

import (
	"context"

	"social-vault/services/content/internal/entity"
)

// SeedMarkerName identifies the sample roster in every backend's marker
// collection.
const SeedMarkerName = "sample-data-v1"

// Store is the entity store the feed reads from. Implementations map a
// missing record to entity.ErrNotFound and any driver or transport failure
// to entity.ErrStoreUnavailable.
type Store interface {
	// ListContent returns items matching filter ordered by created_at
	// descending, ties broken by id ascending, then windowed by page.
	ListContent(ctx context.Context, filter entity.ContentFilter, page entity.Page) ([]*entity.Content, error)
	GetContent(ctx context.Context, id string) (*entity.Content, error)
	// ListCreators returns users with is_creator set, ordered by username.
	ListCreators(ctx context.Context) ([]*entity.Creator, error)
	// SeedOnce inserts creators then content if and only if the store has
	// never been seeded and holds no content. It reports whether it wrote.
	// Concurrent callers must not both write.
	SeedOnce(ctx context.Context, creators []*entity.Creator, content []*entity.Content) (bool, error)
	Counts(ctx context.Context) (creators int64, content int64, err error)
}
