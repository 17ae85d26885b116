package standings

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to standings
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	standings := r.Group("/leagues/:id/standings")
	standings.Use(middleware.AuthMiddleware())
	{
		standings.GET("/teams", GetTeamStandings)
		standings.GET("/contestants", GetContestantStandings)
		standings.GET("/top", GetTopPerformers)
		standings.GET("/export", ExportStandings)
	}
}
