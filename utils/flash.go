package utils

import (
	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// SetFlash stores a one-shot user-visible message, shown on the next page
// load of the form the browser is redirected back to.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, false)
}

// ConsumeFlash returns the pending flash message, if any, and clears it.
func ConsumeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, false)
	return message
}
