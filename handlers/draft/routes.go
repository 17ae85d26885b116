package draft

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the draft
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	draft := r.Group("/leagues/:id/draft")
	draft.Use(middleware.AuthMiddleware())
	{
		draft.GET("/", GetDraft)
		draft.POST("/start", StartDraft)
		draft.POST("/pick", MakePick)
		draft.POST("/pause", PauseDraft)
		draft.POST("/resume", ResumeDraft)
	}
}
