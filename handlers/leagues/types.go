package leagues

import (
	"api/models"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrLeagueNotFound          = "League not found"
	ErrNoPermissionView        = "User does not have permission to view this league"
	ErrNotCommissioner         = "Only the commissioner may perform this operation"
	ErrFailedFetchLeagues      = "Failed to fetch leagues"
	ErrFailedCreateLeague      = "Failed to create league"
	ErrFailedUpdateLeague      = "Failed to update league"
	ErrFailedDeleteLeague      = "Failed to delete league"
	ErrInvalidRequest          = "Invalid request data"
	ErrInvalidJoinCode         = "Invalid join code"
	ErrInvalidStatusTransition = "Invalid league status transition"
	ErrSettingsLockedByDraft   = "Draft settings cannot change once the draft has started"
)

// CreateLeagueRequest model for creating a league
type CreateLeagueRequest struct {
	Name   string `json:"name" binding:"required"`
	Season string `json:"season" binding:"required"`
}

// UpdateLeagueRequest model for updating a league
type UpdateLeagueRequest struct {
	Name   string `json:"name"`
	Season string `json:"season"`
}

// UpdateSettingsRequest wraps the full typed settings blob
type UpdateSettingsRequest struct {
	Settings models.LeagueSettings `json:"settings" binding:"required"`
}

// UpdateStatusRequest model for explicit league status transitions
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// JoinLeagueRequest model for joining a league by code
type JoinLeagueRequest struct {
	Code string `json:"code" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
