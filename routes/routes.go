package routes

import (
	"net/http"
	"time"

	"github.com/maksim-leskin/api-chik-chik/config"
	"github.com/maksim-leskin/api-chik-chik/handlers"
	"github.com/maksim-leskin/api-chik-chik/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability query endpoint.
// All five query shapes (catalog, service filter, months, days, slots)
// share the one GET route and are dispatched on their parameters.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("", hb.ResolveAvailability)
	}
}

// RegisterOrderRoutes registers the order submission endpoint.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/order", hb.CreateOrder)
	}
}

// RegisterImageRoutes serves specialist images from the configured directory.
func RegisterImageRoutes(r *gin.Engine) {
	r.Static("/img", config.AppConfig.ImageDir)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Location"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterImageRoutes(r)
	RegisterHealthRoute(r)
}
