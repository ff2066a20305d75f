package likes

import (
	"errors"
	"net/http"

	"github.com/AhadGhee/socialbook/db"
	"github.com/AhadGhee/socialbook/models"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Toggle like on a post
// @Description Like the post if not yet liked, unlike it otherwise
// @Tags posts
// @Produce json
// @Param post_id query string true "Post ID"
// @Success 302 {string} string "Redirect to /"
// @Failure 400 {object} map[string]string "error: post_id is required"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /like [get]
func ToggleLike(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in session")
		return
	}

	postID := c.Query("post_id")
	if postID == "" {
		utils.SendError(c, http.StatusBadRequest, "post_id is required")
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	// The like row and the counter move together or not at all. The unique
	// index on (post_id, user_name) makes a concurrent double-like fail one
	// of the two transactions instead of double-counting.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		result := tx.Where("post_id = ? AND user_name = ?", postID, username).First(&like)

		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}

			like = models.Like{
				PostID:   postID,
				UserName: username.(string),
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			return tx.Model(&models.Post{}).
				Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
		}

		if err := tx.Delete(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})

	if err != nil {
		utils.LogErrorWithUser(username, err, "Error toggling like")
		utils.SendError(c, http.StatusInternalServerError, "Error toggling like: "+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}
