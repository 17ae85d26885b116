package contestants

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to contestants
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	contestants := r.Group("/leagues/:id/contestants")
	contestants.Use(middleware.AuthMiddleware())
	{
		contestants.GET("/", GetLeagueContestants)
		contestants.GET("/:contestant_id", GetContestant)
		contestants.POST("/", CreateContestant)
		contestants.PUT("/:contestant_id", UpdateContestant)
		contestants.POST("/:contestant_id/photo", UploadContestantPhoto)
		contestants.DELETE("/:contestant_id", DeleteContestant)
	}
}
