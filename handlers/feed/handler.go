package feed

import (
	"net/http"

	"github.com/AhadGhee/socialbook/db"
	"github.com/AhadGhee/socialbook/handlers/profile"
	"github.com/AhadGhee/socialbook/models"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Home feed
// @Description Current user's profile plus every post, newest first
// @Tags feed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router / [get]
func Home(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in session")
		return
	}

	userProfile, err := profile.FindOrCreateProfile(userID.(string))
	if err != nil {
		utils.LogError(err, "Error loading profile")
		utils.SendError(c, http.StatusInternalServerError, "Error loading profile: "+err.Error())
		return
	}

	var posts []models.Post
	if err := db.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.LogError(err, "Error retrieving posts")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving posts: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userProfile": userProfile,
		"posts":       posts,
	})
}
