package scoring

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to scoring
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	scoring := r.Group("/leagues/:id")
	scoring.Use(middleware.AuthMiddleware())
	{
		scoring.GET("/episodes/:episode_id/events", GetEpisodeEvents)
		scoring.POST("/episodes/:episode_id/events", ScoreAction)
		scoring.DELETE("/episodes/:episode_id/events/:event_id", UndoScoringEvent)
		scoring.POST("/contestants/:contestant_id/eliminate", EliminateContestant)
		scoring.POST("/contestants/:contestant_id/restore", RestoreContestant)
		scoring.POST("/recompute", RecomputeTotals)
	}
}
