package teams

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to teams
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	teams := r.Group("/leagues/:id/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("/", GetLeagueTeams)
		teams.GET("/:team_id", GetTeam)
		teams.POST("/", CreateTeam)
		teams.PUT("/:team_id", UpdateTeam)
		teams.DELETE("/:team_id", DeleteTeam)
	}
}
