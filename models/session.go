package models

import (
	"time"
)

// Session is the server-side record behind the session cookie. The cookie
// value itself is a signed token wrapping the session id.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"column:user_id;index"`
	UserName  string    `json:"username" gorm:"column:user_name"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}
