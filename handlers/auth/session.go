package auth

import (
	"os"
	"strconv"
	"time"

	"github.com/AhadGhee/socialbook/db"
	"github.com/AhadGhee/socialbook/middleware"
	"github.com/AhadGhee/socialbook/models"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultSessionHours = 72

func sessionLifetime() time.Duration {
	if raw := os.Getenv("SESSION_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultSessionHours * time.Hour
}

// establishSession creates a session row for the user and sets the signed
// session cookie on the response.
func establishSession(c *gin.Context, user models.User) error {
	lifetime := sessionLifetime()

	session := models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserName:  user.UserName,
		ExpiresAt: time.Now().Add(lifetime),
	}

	if err := db.DB.Create(&session).Error; err != nil {
		return err
	}

	token, err := utils.GenerateSessionToken(session)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookie, token, int(lifetime.Seconds()), "/", "", false, true)
	return nil
}
