// @title FamVans Parts Catalog API
// @version 1.0
// @description FamVans commercial van parts catalog and storefront API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/controllers/storefront/wishlist_controller"
	"github.com/abduulthecoder/fam-vans-parts-store/middleware"
	"github.com/abduulthecoder/fam-vans-parts-store/routes/storefront_routes"
	"github.com/abduulthecoder/fam-vans-parts-store/wishlist"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Load the catalog documents — fatal on failure, the storefront never
	// runs against a partial catalog
	config.LoadCatalog()

	// Redis connection (wishlist persistence + rate limiting)
	var wishlistStore wishlist.Store
	if err := config.ConnectRedis(); err != nil {
		log.Printf("⚠️  %v — wishlist will not survive restarts", err)
		wishlistStore = wishlist.NewMemoryStore()
	} else {
		wishlistStore = wishlist.NewRedisStore(config.RedisClient, os.Getenv("WISHLIST_KEY"))
	}
	wishlist_controller.Init(wishlistStore)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))

	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
