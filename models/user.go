package models

import (
	"time"
)

// User is the identity record. The password column holds a bcrypt hash and
// is never serialized.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserName  string    `json:"username" gorm:"column:user_name;uniqueIndex"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignupInput struct {
	UserName  string `form:"username" binding:"required"`
	Email     string `form:"email" binding:"required"`
	Password  string `form:"password" binding:"required"`
	Password2 string `form:"password2" binding:"required"`
}

type SigninInput struct {
	UserName string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (User) TableName() string {
	return "users"
}
