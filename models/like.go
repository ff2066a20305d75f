package models

import (
	"time"
)

// Like marks that a user currently likes a post. The composite unique index
// guarantees at most one row per (post, user) pair even under concurrent
// toggles.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id;uniqueIndex:idx_like_post_user"`
	UserName  string    `json:"username" gorm:"column:user_name;uniqueIndex:idx_like_post_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
