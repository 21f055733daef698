package persistent

import (
	"time"

	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/model"

	"github.com/lib/pq"
)

func ToContentEntity(m *model.ContentModel) *entity.Content {
	if m == nil {
		return nil
	}

	return &entity.Content{
		ID:                  m.ID,
		CreatorID:           m.CreatorID,
		CreatorUsername:     m.CreatorUsername,
		CreatorDisplayName:  m.CreatorDisplayName,
		CreatorProfileImage: m.CreatorProfileImage,
		Title:               m.Title,
		Description:         m.Description,
		ContentType:         entity.ContentType(m.ContentType),
		MediaURLs:           toStrings(m.MediaURLs),
		IsFree:              m.IsFree,
		Price:               m.Price,
		SubscriptionOnly:    m.SubscriptionOnly,
		Tags:                toStrings(m.Tags),
		LikeCount:           m.LikeCount,
		CommentCount:        m.CommentCount,
		ViewCount:           m.ViewCount,
		CreatedAt:           entity.At(m.CreatedAt),
	}
}

func ToContentModel(e *entity.Content) *model.ContentModel {
	if e == nil {
		return nil
	}

	return &model.ContentModel{
		ID:                  e.ID,
		CreatorID:           e.CreatorID,
		CreatorUsername:     e.CreatorUsername,
		CreatorDisplayName:  e.CreatorDisplayName,
		CreatorProfileImage: e.CreatorProfileImage,
		Title:               e.Title,
		Description:         e.Description,
		ContentType:         string(e.ContentType),
		MediaURLs:           pq.StringArray(toStrings(e.MediaURLs)),
		IsFree:              e.IsFree,
		Price:               e.Price,
		SubscriptionOnly:    e.SubscriptionOnly,
		Tags:                pq.StringArray(toStrings(e.Tags)),
		LikeCount:           e.LikeCount,
		CommentCount:        e.CommentCount,
		ViewCount:           e.ViewCount,
		CreatedAt:           timeOf(e.CreatedAt),
	}
}

func ToCreatorEntity(m *model.UserModel) *entity.Creator {
	if m == nil {
		return nil
	}

	return &entity.Creator{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		DisplayName:     m.DisplayName,
		Bio:             m.Bio,
		ProfileImage:    m.ProfileImage,
		IsCreator:       m.IsCreator,
		SubscriberCount: m.SubscriberCount,
		CreatedAt:       entity.At(m.CreatedAt),
	}
}

func ToUserModel(e *entity.Creator) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:              e.ID,
		Username:        e.Username,
		Email:           e.Email,
		DisplayName:     e.DisplayName,
		Bio:             e.Bio,
		ProfileImage:    e.ProfileImage,
		IsCreator:       e.IsCreator,
		SubscriberCount: e.SubscriberCount,
		CreatedAt:       timeOf(e.CreatedAt),
	}
}

// timeOf falls back to now for timestamps that never parsed; the column is
// a real timestamp and cannot hold raw text.
func timeOf(ts entity.Timestamp) time.Time {
	if t, ok := ts.Normalize().Time(); ok {
		return t
	}
	return time.Now().UTC()
}

func toStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
