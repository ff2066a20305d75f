package routes

import (
	"github.com/AhadGhee/socialbook/handlers/profile"
	"github.com/AhadGhee/socialbook/middleware"

	"github.com/gin-gonic/gin"
)

func ProfileRoutes(r *gin.Engine) {
	// The profile page is public, matching the rest of the form pages
	r.GET("/profile", profile.ProfilePage)

	profileRoutes := r.Group("/settings")
	profileRoutes.Use(middleware.SessionAuth())
	{
		profileRoutes.GET("", profile.GetSettings)
		profileRoutes.POST("", profile.UpdateSettings)
	}
}
