package models

import (
	"time"
)

// DefaultAvatarURL is the placeholder shown until the user uploads an avatar.
const DefaultAvatarURL = "/static/images/blank-profile-picture.png"

// Profile holds the per-user mutable metadata, one row per user.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"column:user_id;uniqueIndex"`
	AvatarURL string    `json:"avatarUrl" gorm:"column:avatar_url"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
