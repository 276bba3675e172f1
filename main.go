package main

import (
	"log"
	"net/http"
	"os"

	"estate/config"
	"estate/controllers"
	"estate/models"
	"estate/routes"
	"estate/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := models.Migrate(config.DB); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	controllers.SetLogger(logger.NewDefaultLogger(logger.InfoLevel))

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
