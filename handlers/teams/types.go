package teams

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrLeagueNotFound     = "League not found"
	ErrTeamNotFound       = "Team not found"
	ErrNoPermissionView   = "User does not have permission to view this league"
	ErrNoPermissionManage = "User does not have permission to manage this team"
	ErrInvalidRequest     = "Invalid request data"
	ErrLeagueFull         = "League already has the maximum number of teams"
	ErrAlreadyHasTeam     = "User already owns a team in this league"
	ErrLeagueNotJoinable  = "Teams can only be created before the draft starts"
	ErrTeamLockedByDraft  = "Teams cannot be deleted once the draft has started"
	ErrFailedFetchTeams   = "Failed to fetch teams"
	ErrFailedCreateTeam   = "Failed to create team"
	ErrFailedUpdateTeam   = "Failed to update team"
	ErrFailedDeleteTeam   = "Failed to delete team"
)

// CreateTeamRequest model for creating a team
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateTeamRequest model for renaming a team
type UpdateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
