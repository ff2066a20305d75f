package routes

import (
	"github.com/AhadGhee/socialbook/handlers/feed"
	"github.com/AhadGhee/socialbook/middleware"

	"github.com/gin-gonic/gin"
)

func FeedRoutes(r *gin.Engine) {
	feedRoutes := r.Group("")
	feedRoutes.Use(middleware.SessionAuth())
	{
		feedRoutes.GET("/", feed.Home)
	}
}
