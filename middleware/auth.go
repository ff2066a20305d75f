package middleware

import (
	"net/http"
	"time"

	"github.com/AhadGhee/socialbook/db"
	"github.com/AhadGhee/socialbook/models"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "socialbook_session"

func rejectUnauthenticated(c *gin.Context) {
	// API clients announce themselves with an Authorization header and do
	// not follow HTML redirects; browsers get sent back to the signin form.
	if c.GetHeader("Authorization") != "" {
		utils.SendError(c, http.StatusUnauthorized, "Invalid or missing session")
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, "/signin")
	c.Abort()
}

// SessionAuth verifies the session cookie against the sessions table and
// injects user_id and username into the request context. Unauthenticated
// requests never reach the handler.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			rejectUnauthenticated(c)
			return
		}

		claims, err := utils.DecodeSessionToken(tokenString)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		sessionID, ok := claims["session_id"].(string)
		if !ok || sessionID == "" {
			rejectUnauthenticated(c)
			return
		}

		var session models.Session
		if err := db.DB.First(&session, "id = ?", sessionID).Error; err != nil {
			rejectUnauthenticated(c)
			return
		}

		if session.ExpiresAt.Before(time.Now()) {
			rejectUnauthenticated(c)
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("username", session.UserName)
		c.Next()
	}
}
