package posts

import (
	"net/http"

	"github.com/AhadGhee/socialbook/db"
	"github.com/AhadGhee/socialbook/models"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Upload page
// @Description Visiting the upload entry point with GET simply returns to the feed
// @Tags posts
// @Success 302 {string} string "Redirect to /"
// @Router /upload [get]
func UploadPage(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// @Summary Create a new post
// @Description Create a post with the uploaded image and caption
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param image_upload formData file true "Post image"
// @Param caption formData string false "Caption"
// @Success 302 {string} string "Redirect to /"
// @Failure 400 {object} map[string]string "error: Image is required"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /upload [post]
func CreatePost(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in session")
		return
	}

	caption := c.Request.FormValue("caption")

	file, err := c.FormFile("image_upload")
	if err != nil || file == nil {
		utils.SendError(c, http.StatusBadRequest, "Image is required")
		return
	}

	imageURL, err := utils.UploadImage(file, "post_pictures", "post")
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error uploading image: "+err.Error())
		return
	}

	post := models.Post{
		UserName: username.(string),
		ImageURL: imageURL,
		Caption:  caption,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogErrorWithUser(username, err, "Error creating post")
		utils.SendError(c, http.StatusInternalServerError, "Error creating post: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(username, "Post created")
	c.Redirect(http.StatusFound, "/")
}
