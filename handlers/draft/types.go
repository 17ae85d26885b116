package draft

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrLeagueNotFound    = "League not found"
	ErrNoPermissionView  = "User does not have permission to view this league"
	ErrNotCommissioner   = "Only the commissioner may manage the draft"
	ErrNoPermissionPick  = "User does not have permission to pick for this team"
	ErrInvalidRequest    = "Invalid request data"
	ErrTeamNotFound      = "Team not found"
	ErrFailedStartDraft  = "Failed to start draft"
	ErrFailedUpdateDraft = "Failed to update draft"
)

// StartDraftRequest model for starting a draft
type StartDraftRequest struct {
	RandomizeOrder bool `json:"randomize_order"`
}

// MakePickRequest model for submitting a draft pick
type MakePickRequest struct {
	TeamID       string `json:"team_id" binding:"required"`
	ContestantID string `json:"contestant_id" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
