package document

import (
	"fmt"
	"time"

	"social-vault/services/content/internal/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// isoLayout is fixed width so string timestamps sort chronologically.
const isoLayout = "2006-01-02T15:04:05.000000Z07:00"

// Documents are addressed by the application-level id field; _id is left to
// the driver.
type userDocument struct {
	ID              string      `bson:"id"`
	Username        string      `bson:"username"`
	Email           string      `bson:"email"`
	DisplayName     string      `bson:"display_name"`
	Bio             *string     `bson:"bio"`
	ProfileImage    *string     `bson:"profile_image"`
	IsCreator       bool        `bson:"is_creator"`
	SubscriberCount int         `bson:"subscriber_count"`
	CreatedAt       interface{} `bson:"created_at"`
	SeedBatch       string      `bson:"seed_batch,omitempty"`
}

type contentDocument struct {
	ID                  string      `bson:"id"`
	CreatorID           string      `bson:"creator_id"`
	CreatorUsername     string      `bson:"creator_username"`
	CreatorDisplayName  string      `bson:"creator_display_name"`
	CreatorProfileImage *string     `bson:"creator_profile_image"`
	Title               string      `bson:"title"`
	Description         *string     `bson:"description"`
	ContentType         string      `bson:"content_type"`
	MediaURLs           []string    `bson:"media_urls"`
	IsFree              bool        `bson:"is_free"`
	Price               *float64    `bson:"price"`
	SubscriptionOnly    bool        `bson:"subscription_only"`
	Tags                []string    `bson:"tags"`
	LikeCount           int         `bson:"like_count"`
	CommentCount        int         `bson:"comment_count"`
	ViewCount           int         `bson:"view_count"`
	CreatedAt           interface{} `bson:"created_at"`
	SeedBatch           string      `bson:"seed_batch,omitempty"`
}

// seedMarkerDocument records who is seeding. Batch tags every document the
// claimant writes so an abandoned attempt can be removed by whoever takes
// the marker over.
type seedMarkerDocument struct {
	Name      string    `bson:"_id"`
	Batch     string    `bson:"batch"`
	Complete  bool      `bson:"complete"`
	ClaimedAt time.Time `bson:"claimed_at"`
	CreatedAt string    `bson:"created_at"`
}

type markerState int

const (
	markerComplete markerState = iota
	markerInProgress
	markerAbandoned
)

// state classifies an existing marker. A claim older than lease that never
// completed belongs to a seeder that died part way.
func (m seedMarkerDocument) state(now time.Time, lease time.Duration) markerState {
	if m.Complete {
		return markerComplete
	}
	if now.Sub(m.ClaimedAt) > lease {
		return markerAbandoned
	}
	return markerInProgress
}

func toContentDocument(e *entity.Content) *contentDocument {
	return &contentDocument{
		ID:                  e.ID,
		CreatorID:           e.CreatorID,
		CreatorUsername:     e.CreatorUsername,
		CreatorDisplayName:  e.CreatorDisplayName,
		CreatorProfileImage: e.CreatorProfileImage,
		Title:               e.Title,
		Description:         e.Description,
		ContentType:         string(e.ContentType),
		MediaURLs:           nonNil(e.MediaURLs),
		IsFree:              e.IsFree,
		Price:               e.Price,
		SubscriptionOnly:    e.SubscriptionOnly,
		Tags:                nonNil(e.Tags),
		LikeCount:           e.LikeCount,
		CommentCount:        e.CommentCount,
		ViewCount:           e.ViewCount,
		CreatedAt:           encodeTimestamp(e.CreatedAt),
	}
}

func fromContentDocument(d *contentDocument) *entity.Content {
	return &entity.Content{
		ID:                  d.ID,
		CreatorID:           d.CreatorID,
		CreatorUsername:     d.CreatorUsername,
		CreatorDisplayName:  d.CreatorDisplayName,
		CreatorProfileImage: d.CreatorProfileImage,
		Title:               d.Title,
		Description:         d.Description,
		ContentType:         entity.ContentType(d.ContentType),
		MediaURLs:           nonNil(d.MediaURLs),
		IsFree:              d.IsFree,
		Price:               d.Price,
		SubscriptionOnly:    d.SubscriptionOnly,
		Tags:                nonNil(d.Tags),
		LikeCount:           d.LikeCount,
		CommentCount:        d.CommentCount,
		ViewCount:           d.ViewCount,
		CreatedAt:           decodeTimestamp(d.CreatedAt),
	}
}

func toUserDocument(e *entity.Creator) *userDocument {
	return &userDocument{
		ID:              e.ID,
		Username:        e.Username,
		Email:           e.Email,
		DisplayName:     e.DisplayName,
		Bio:             e.Bio,
		ProfileImage:    e.ProfileImage,
		IsCreator:       e.IsCreator,
		SubscriberCount: e.SubscriberCount,
		CreatedAt:       encodeTimestamp(e.CreatedAt),
	}
}

func fromUserDocument(d *userDocument) *entity.Creator {
	return &entity.Creator{
		ID:              d.ID,
		Username:        d.Username,
		Email:           d.Email,
		DisplayName:     d.DisplayName,
		Bio:             d.Bio,
		ProfileImage:    d.ProfileImage,
		IsCreator:       d.IsCreator,
		SubscriberCount: d.SubscriberCount,
		CreatedAt:       decodeTimestamp(d.CreatedAt),
	}
}

// encodeTimestamp writes ISO strings, matching documents written by earlier
// versions of the service.
func encodeTimestamp(ts entity.Timestamp) string {
	if t, ok := ts.Normalize().Time(); ok {
		return t.UTC().Format(isoLayout)
	}
	return ts.Raw()
}

// decodeTimestamp accepts both ISO strings and native BSON dates. Anything
// else is kept as its printed form so a bad document never fails the
// whole query.
func decodeTimestamp(v interface{}) entity.Timestamp {
	switch t := v.(type) {
	case string:
		return entity.RawTimestamp(t)
	case bson.DateTime:
		return entity.At(t.Time())
	case time.Time:
		return entity.At(t)
	case nil:
		return entity.Timestamp{}
	default:
		return entity.RawTimestamp(fmt.Sprint(t))
	}
}

func nonNil(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
