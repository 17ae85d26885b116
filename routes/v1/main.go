package v1

import (
	"api/config"
	"api/handlers/auth"
	"api/handlers/contestants"
	"api/handlers/draft"
	"api/handlers/episodes"
	"api/handlers/leagues"
	"api/handlers/scoring"
	"api/handlers/standings"
	"api/handlers/teams"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.DefaultRateLimitConfig.Rate, config.DefaultRateLimitConfig.Burst)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	leagues.RegisterRoutes(v1)
	teams.RegisterRoutes(v1)
	contestants.RegisterRoutes(v1)
	episodes.RegisterRoutes(v1)
	draft.RegisterRoutes(v1)
	scoring.RegisterRoutes(v1)
	standings.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
