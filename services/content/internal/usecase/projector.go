package usecase

import "social-vault/services/content/internal/entity"

// Project copies a stored item into its public shape. Slices are copied so
// later redaction cannot reach the stored record, and created_at is
// normalized to UTC when it parses. IsLocked is left for the policy.
func Project(c *entity.Content) entity.ContentProjection {
	return entity.ContentProjection{
		ID:                  c.ID,
		CreatorID:           c.CreatorID,
		CreatorUsername:     c.CreatorUsername,
		CreatorDisplayName:  c.CreatorDisplayName,
		CreatorProfileImage: c.CreatorProfileImage,
		Title:               c.Title,
		Description:         c.Description,
		ContentType:         c.ContentType,
		MediaURLs:           cloneStrings(c.MediaURLs),
		IsFree:              c.IsFree,
		Price:               c.Price,
		SubscriptionOnly:    c.SubscriptionOnly,
		Tags:                cloneStrings(c.Tags),
		LikeCount:           c.LikeCount,
		CommentCount:        c.CommentCount,
		ViewCount:           c.ViewCount,
		CreatedAt:           c.CreatedAt.Normalize(),
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
