package routes

import (
	"github.com/AhadGhee/socialbook/handlers/posts"
	"github.com/AhadGhee/socialbook/handlers/posts/likes"
	"github.com/AhadGhee/socialbook/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	postsRoutes := r.Group("")
	postsRoutes.Use(middleware.SessionAuth())
	{
		postsRoutes.GET("/upload", posts.UploadPage)
		postsRoutes.POST("/upload", posts.CreatePost)

		// The toggle is a GET with a query parameter, matching the feed links
		postsRoutes.GET("/like", likes.ToggleLike)
	}
}
