package model

import "time"

type UserModel struct {
	ID              string    `gorm:"type:varchar(64);primary_key"`
	Username        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayName     string    `gorm:"type:varchar(255);not null"`
	Bio             *string   `gorm:"type:text"`
	ProfileImage    *string   `gorm:"type:varchar(1000)"`
	IsCreator       bool      `gorm:"not null;default:false;index"`
	SubscriberCount int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type SeedMarkerModel struct {
	Name      string    `gorm:"type:varchar(100);primary_key"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SeedMarkerModel) TableName() string {
	return "seed_markers"
}
