package main

import (
	"context"
	"log"
	"time"

	"apparel-shop/config"
	_ "apparel-shop/docs"
	"apparel-shop/middleware"
	"apparel-shop/repositories"
	"apparel-shop/routes"

	"github.com/gin-gonic/gin"
)

// @title RAREWEAR API
// @version 1.0
// @description Storefront backend: products, cart, wishlist, checkout and orders.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repositories.NewMongoOrderRepository(config.MongoDB).EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create order indexes: %v", err)
	}
	cancel()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
