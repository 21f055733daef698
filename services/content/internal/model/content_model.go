package model

import (
	"time"

	"github.com/lib/pq"
)

type ContentModel struct {
	ID                  string         `gorm:"type:varchar(64);primary_key"`
	CreatorID           string         `gorm:"type:varchar(64);not null"`
	CreatorUsername     string         `gorm:"type:varchar(100);not null"`
	CreatorDisplayName  string         `gorm:"type:varchar(255);not null"`
	CreatorProfileImage *string        `gorm:"type:varchar(1000)"`
	Title               string         `gorm:"type:varchar(255);not null"`
	Description         *string        `gorm:"type:text"`
	ContentType         string         `gorm:"type:varchar(10);not null"`
	MediaURLs           pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	IsFree              bool           `gorm:"not null"`
	Price               *float64       `gorm:"type:numeric(10,2)"`
	SubscriptionOnly    bool           `gorm:"not null;default:false"`
	Tags                pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	LikeCount           int            `gorm:"not null;default:0"`
	CommentCount        int            `gorm:"not null;default:0"`
	ViewCount           int            `gorm:"not null;default:0"`
	CreatedAt           time.Time      `gorm:"not null"`
}

func (ContentModel) TableName() string {
	return "content"
}
