package leagues

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to leagues
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	leagues := r.Group("/leagues")
	leagues.Use(middleware.AuthMiddleware())
	{
		// League management routes
		leagues.GET("/", GetUserLeagues)
		leagues.GET("/:id", GetLeague)
		leagues.POST("/", CreateLeague)
		leagues.PUT("/:id", UpdateLeague)
		leagues.PUT("/:id/settings", UpdateLeagueSettings)
		leagues.PUT("/:id/status", UpdateLeagueStatus)
		leagues.DELETE("/:id", DeleteLeague)
		leagues.POST("/join", JoinLeague)

		// Notification relay routes
		leagues.GET("/:id/notifications", GetLeagueNotifications)
		leagues.GET("/:id/live", LeagueWebSocket)
	}
}
