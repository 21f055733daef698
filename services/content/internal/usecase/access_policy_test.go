package usecase

import (
	"testing"

	"social-vault/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestFreeTierPolicy_LocksPaidContent(t *testing.T) {
	price := 9.99
	candidate := entity.ContentProjection{
		ID:               "c-1",
		IsFree:           false,
		Price:            &price,
		SubscriptionOnly: true,
		MediaURLs:        []string{"https://cdn.test/a.jpg", "https://cdn.test/b.jpg"},
	}

	got := FreeTierPolicy{}.Evaluate(entity.Viewer{ID: "viewer-1"}, candidate)

	assert.True(t, got.IsLocked)
	assert.NotNil(t, got.MediaURLs)
	assert.Empty(t, got.MediaURLs)
	assert.Equal(t, &price, got.Price)
	assert.True(t, got.SubscriptionOnly)
	assert.Len(t, candidate.MediaURLs, 2)
}

func TestFreeTierPolicy_FreeContentPassesThrough(t *testing.T) {
	candidate := entity.ContentProjection{
		ID:        "c-2",
		IsFree:    true,
		MediaURLs: []string{"https://cdn.test/a.jpg"},
	}

	got := FreeTierPolicy{}.Evaluate(entity.Viewer{}, candidate)

	assert.False(t, got.IsLocked)
	assert.Equal(t, []string{"https://cdn.test/a.jpg"}, got.MediaURLs)

	got.MediaURLs[0] = "changed"
	assert.Equal(t, "https://cdn.test/a.jpg", candidate.MediaURLs[0])
}

func TestFreeTierPolicy_IgnoresViewer(t *testing.T) {
	candidate := entity.ContentProjection{IsFree: false, MediaURLs: []string{"x"}}

	anonymous := FreeTierPolicy{}.Evaluate(entity.Viewer{}, candidate)
	known := FreeTierPolicy{}.Evaluate(entity.Viewer{ID: "v", Role: "viewer"}, candidate)

	assert.Equal(t, anonymous, known)
}

func TestProject_CopiesFieldsAndLeavesStoredRecordAlone(t *testing.T) {
	description := "desc"
	stored := &entity.Content{
		ID:                 "c-3",
		CreatorID:          "u-1",
		CreatorUsername:    "alex_photo",
		CreatorDisplayName: "Alex Thompson",
		Title:              "Title",
		Description:        &description,
		ContentType:        entity.ContentTypeImage,
		MediaURLs:          []string{"https://cdn.test/a.jpg"},
		Tags:               []string{"free"},
		LikeCount:          1,
		CommentCount:       2,
		ViewCount:          3,
		CreatedAt:          entity.RawTimestamp("2024-05-01 10:00:00+02:00"),
	}

	projection := Project(stored)
	projection.MediaURLs[0] = "redacted"
	projection.Tags[0] = "changed"

	assert.Equal(t, "c-3", projection.ID)
	assert.Equal(t, "alex_photo", projection.CreatorUsername)
	assert.Equal(t, 3, projection.ViewCount)
	assert.Equal(t, "2024-05-01T08:00:00Z", projection.CreatedAt.String())
	assert.Equal(t, "https://cdn.test/a.jpg", stored.MediaURLs[0])
	assert.Equal(t, "free", stored.Tags[0])
}

func TestProject_NilSlicesBecomeEmpty(t *testing.T) {
	projection := Project(&entity.Content{ID: "c-4"})

	assert.NotNil(t, projection.MediaURLs)
	assert.NotNil(t, projection.Tags)
}
