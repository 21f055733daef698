package persistent

import (
	"testing"
	"time"

	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentMapping(t *testing.T) {
	price := 9.99
	desc := "desc"
	created := time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)
	m := &model.ContentModel{
		ID:                 "content-1",
		CreatorID:          "creator-1",
		CreatorUsername:    "alex_photo",
		CreatorDisplayName: "Alex Thompson",
		Title:              "Professional Lighting Tips",
		Description:        &desc,
		ContentType:        "image",
		MediaURLs:          pq.StringArray{"https://cdn.test/1.jpg"},
		IsFree:             false,
		Price:              &price,
		SubscriptionOnly:   true,
		Tags:               pq.StringArray{"creative", "exclusive"},
		LikeCount:          35,
		CommentCount:       6,
		ViewCount:          226,
		CreatedAt:          created,
	}

	e := ToContentEntity(m)
	require.NotNil(t, e)
	assert.Equal(t, entity.ContentTypeImage, e.ContentType)
	assert.Equal(t, []string{"https://cdn.test/1.jpg"}, e.MediaURLs)
	assert.Equal(t, &price, e.Price)
	assert.True(t, e.SubscriptionOnly)
	got, ok := e.CreatedAt.Time()
	require.True(t, ok)
	assert.True(t, created.Equal(got))

	back := ToContentModel(e)
	assert.Equal(t, m, back)
}

func TestContentMapping_EmptyArraysStayEmpty(t *testing.T) {
	e := ToContentEntity(&model.ContentModel{ID: "x", CreatedAt: time.Now()})
	assert.NotNil(t, e.MediaURLs)
	assert.Empty(t, e.MediaURLs)

	m := ToContentModel(&entity.Content{ID: "x", CreatedAt: entity.At(time.Now())})
	assert.NotNil(t, m.Tags)
}

func TestToContentModel_UnparseableTimestampFallsBackToNow(t *testing.T) {
	before := time.Now().UTC()
	m := ToContentModel(&entity.Content{ID: "x", CreatedAt: entity.RawTimestamp("garbage")})
	assert.False(t, m.CreatedAt.Before(before))
}

func TestCreatorMapping(t *testing.T) {
	bio := "Fitness coach"
	m := &model.UserModel{
		ID:              "u1",
		Username:        "maya_fitness",
		Email:           "maya@example.com",
		DisplayName:     "Maya Johnson",
		Bio:             &bio,
		IsCreator:       true,
		SubscriberCount: 2156,
		CreatedAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	e := ToCreatorEntity(m)
	assert.Equal(t, "maya_fitness", e.Username)
	assert.Equal(t, 2156, e.SubscriberCount)
	assert.Equal(t, m, ToUserModel(e))

	assert.Nil(t, ToCreatorEntity(nil))
	assert.Nil(t, ToContentEntity(nil))
}
