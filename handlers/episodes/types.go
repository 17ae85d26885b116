package episodes

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrLeagueNotFound        = "League not found"
	ErrEpisodeNotFound       = "Episode not found"
	ErrNoPermissionView      = "User does not have permission to view this league"
	ErrNotCommissioner       = "Only the commissioner may manage episodes"
	ErrInvalidRequest        = "Invalid request data"
	ErrEpisodeHasEvents      = "Episode has scoring events and cannot be deleted"
	ErrFailedFetchEpisodes   = "Failed to fetch episodes"
	ErrFailedCreateEpisode   = "Failed to create episode"
	ErrFailedUpdateEpisode   = "Failed to update episode"
	ErrFailedDeleteEpisode   = "Failed to delete episode"
	ErrFailedActivateEpisode = "Failed to change the active episode"
)

// CreateEpisodeRequest model for creating an episode. The number is assigned
// automatically when omitted.
type CreateEpisodeRequest struct {
	Title  string `json:"title"`
	Number *int   `json:"number"`
}

// UpdateEpisodeRequest model for updating an episode's title
type UpdateEpisodeRequest struct {
	Title string `json:"title" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
