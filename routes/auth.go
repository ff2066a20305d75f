package routes

import (
	"github.com/AhadGhee/socialbook/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.GET("/signup", auth.SignupPage)
	r.POST("/signup", auth.Signup)
	r.GET("/signin", auth.SigninPage)
	r.POST("/signin", auth.Signin)
	r.GET("/logout", auth.Logout)
}
