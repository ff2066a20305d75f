package models

import (
	"time"
)

// Post is immutable after creation except for the like counter, which is
// only touched through the toggle transaction.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserName  string    `json:"username" gorm:"column:user_name"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url"`
	Caption   string    `json:"caption"`
	LikeCount int       `json:"likeCount" gorm:"column:like_count;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Post) TableName() string {
	return "posts"
}
