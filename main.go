package main

import (
	"log"
	"os"

	"github.com/AhadGhee/socialbook/db"
	_ "github.com/AhadGhee/socialbook/docs"
	"github.com/AhadGhee/socialbook/routes"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
)

// @title Socialbook API
// @version 1.0
// @description Backend for the socialbook social-media application
// @host localhost:8080
// @BasePath /
func main() {
	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Image uploads will not work until Cloudinary is configured.")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
