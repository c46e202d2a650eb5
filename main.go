package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dapizza/storefront/data"
	"github.com/dapizza/storefront/middlewares"
	"github.com/dapizza/storefront/router"
	"github.com/dapizza/storefront/store"
	"github.com/dapizza/storefront/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Both stores live for the life of the process. Nothing is
	// persisted; a restart comes back to the seed catalog and an
	// empty cart.
	catalog := store.NewCatalogStore(data.MenuItems())
	cart := store.NewCartAggregator()

	utils.InfoLogger.Printf("Catalog seeded with %d items", catalog.Len())

	r := router.SetupRouter(catalog, cart, data.Categories())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
