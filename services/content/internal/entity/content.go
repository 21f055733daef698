package entity

type ContentType string

const (
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
	ContentTypeText  ContentType = "text"
	ContentTypeMixed ContentType = "mixed"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeImage, ContentTypeVideo, ContentTypeText, ContentTypeMixed:
		return true
	}
	return false
}

// Content is the stored record. The creator_* fields are a snapshot taken
// when the item was created and are not re-synced.
//
// Price and SubscriptionOnly are stored as-is; only IsFree takes part in the
// current access decision.
type Content struct {
	ID                  string
	CreatorID           string
	CreatorUsername     string
	CreatorDisplayName  string
	CreatorProfileImage *string
	Title               string
	Description         *string
	ContentType         ContentType
	MediaURLs           []string
	IsFree              bool
	Price               *float64
	SubscriptionOnly    bool
	Tags                []string
	LikeCount           int
	CommentCount        int
	ViewCount           int
	CreatedAt           Timestamp
}

// ContentProjection is the public view of a Content item. It is built per
// request and never persisted.
type ContentProjection struct {
	ID                  string      `json:"id"`
	CreatorID           string      `json:"creator_id"`
	CreatorUsername     string      `json:"creator_username"`
	CreatorDisplayName  string      `json:"creator_display_name"`
	CreatorProfileImage *string     `json:"creator_profile_image"`
	Title               string      `json:"title"`
	Description         *string     `json:"description"`
	ContentType         ContentType `json:"content_type"`
	MediaURLs           []string    `json:"media_urls"`
	IsFree              bool        `json:"is_free"`
	Price               *float64    `json:"price"`
	SubscriptionOnly    bool        `json:"subscription_only"`
	Tags                []string    `json:"tags"`
	LikeCount           int         `json:"like_count"`
	CommentCount        int         `json:"comment_count"`
	ViewCount           int         `json:"view_count"`
	CreatedAt           Timestamp   `json:"created_at"`
	IsLocked            bool        `json:"is_locked"`
}

// Viewer identifies who is asking. The zero value is an anonymous viewer.
type Viewer struct {
	ID   string
	Role string
}

// ContentFilter narrows a feed query. An empty CreatorID means no filter.
type ContentFilter struct {
	CreatorID string
}

// Page is an offset pagination window.
type Page struct {
	Skip  int
	Limit int
}
