package scoring

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrLeagueNotFound    = "League not found"
	ErrEpisodeNotFound   = "Episode not found"
	ErrNoPermissionView  = "User does not have permission to view this league"
	ErrNotCommissioner   = "Only the commissioner may record scores"
	ErrInvalidRequest    = "Invalid request data"
	ErrFailedFetchEvents = "Failed to fetch scoring events"
	ErrFailedScoreAction = "Failed to record scoring event"
	ErrFailedUndoEvent   = "Failed to undo scoring event"
	ErrFailedEliminate   = "Failed to update contestant elimination"
	ErrFailedRecompute   = "Failed to recompute league totals"
)

// ScoreActionRequest model for recording a scoring event
type ScoreActionRequest struct {
	ContestantID string `json:"contestant_id" binding:"required"`
	ActionType   string `json:"action_type" binding:"required"`
	Points       *int   `json:"points"`
	Description  string `json:"description"`
}

// EliminateRequest model for eliminating a contestant. The episode number
// defaults to the active episode's number when omitted.
type EliminateRequest struct {
	EpisodeNumber *int `json:"episode_number"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
