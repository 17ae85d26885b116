package episodes

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to episodes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	episodes := r.Group("/leagues/:id/episodes")
	episodes.Use(middleware.AuthMiddleware())
	{
		episodes.GET("/", GetLeagueEpisodes)
		episodes.GET("/:episode_id", GetEpisode)
		episodes.POST("/", CreateEpisode)
		episodes.PUT("/:episode_id", UpdateEpisode)
		episodes.PUT("/:episode_id/activate", ActivateEpisode)
		episodes.PUT("/:episode_id/deactivate", DeactivateEpisode)
		episodes.DELETE("/:episode_id", DeleteEpisode)
	}
}
