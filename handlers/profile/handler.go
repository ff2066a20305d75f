package profile

import (
	"net/http"

	"github.com/AhadGhee/socialbook/db"
	"github.com/AhadGhee/socialbook/models"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
)

// FindOrCreateProfile returns the user's profile, provisioning it with a
// single conditional insert if it is missing. Signup normally creates the
// profile, so the create branch only fires for accounts that predate it.
func FindOrCreateProfile(userID string) (models.Profile, error) {
	var profile models.Profile
	err := db.DB.
		Where(models.Profile{UserID: userID}).
		Attrs(models.Profile{AvatarURL: models.DefaultAvatarURL}).
		FirstOrCreate(&profile).Error
	return profile, err
}

// @Summary Profile page
// @Description Static page model for the profile view
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]string
// @Router /profile [get]
func ProfilePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": utils.ConsumeFlash(c)})
}

// @Summary Get profile settings
// @Description Current user's profile, created on the fly if missing
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /settings [get]
func GetSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in session")
		return
	}

	userProfile, err := FindOrCreateProfile(userID.(string))
	if err != nil {
		utils.LogError(err, "Error loading profile")
		utils.SendError(c, http.StatusInternalServerError, "Error loading profile: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userProfile": userProfile,
		"flash":       utils.ConsumeFlash(c),
	})
}

// @Summary Update profile settings
// @Description Update avatar, bio and location for the current user
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param profileimg formData file false "Avatar image"
// @Param bio formData string false "Bio"
// @Param location formData string false "Location"
// @Success 302 {string} string "Redirect to /settings"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /settings [post]
func UpdateSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in session")
		return
	}

	userProfile, err := FindOrCreateProfile(userID.(string))
	if err != nil {
		utils.LogError(err, "Error loading profile")
		utils.SendError(c, http.StatusInternalServerError, "Error loading profile: "+err.Error())
		return
	}

	userProfile.Bio = c.Request.FormValue("bio")
	userProfile.Location = c.Request.FormValue("location")

	file, err := c.FormFile("profileimg")
	if err == nil && file != nil {
		avatarURL, err := utils.UploadImage(file, "avatars", "avatar")
		if err != nil {
			// Field-level validation failure: back to the form with the reason
			utils.SetFlash(c, "Avatar upload failed: "+err.Error())
			c.Redirect(http.StatusFound, "/settings")
			return
		}
		userProfile.AvatarURL = avatarURL
	}

	if err := db.DB.Save(&userProfile).Error; err != nil {
		utils.LogError(err, "Error saving profile")
		utils.SendError(c, http.StatusInternalServerError, "Error saving profile: "+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/settings")
}
