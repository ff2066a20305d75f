package routes

import (
	"time"

	"github.com/AhadGhee/socialbook/handlers/ping"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.New()
	// Access log goes through the shared JSON logger
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ping", ping.Ping)

	AuthRoutes(r)
	FeedRoutes(r)
	PostsRoutes(r)
	ProfileRoutes(r)

	return r
}
