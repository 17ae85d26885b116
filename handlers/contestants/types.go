package contestants

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrLeagueNotFound          = "League not found"
	ErrContestantNotFound      = "Contestant not found"
	ErrNoPermissionView        = "User does not have permission to view this league"
	ErrNotCommissioner         = "Only the commissioner may manage contestants"
	ErrInvalidRequest          = "Invalid request data"
	ErrContestantDrafted       = "Contestant has been drafted and cannot be deleted"
	ErrFailedFetchContestants  = "Failed to fetch contestants"
	ErrFailedCreateContestant  = "Failed to create contestant"
	ErrFailedUpdateContestant  = "Failed to update contestant"
	ErrFailedDeleteContestant  = "Failed to delete contestant"
	ErrMissingPhotoFile        = "No photo file provided"
	ErrPhotoStorageUnavailable = "Photo storage is not available"
	ErrFailedUploadPhoto       = "Failed to upload photo"
)

// CreateContestantRequest model for creating a contestant
type CreateContestantRequest struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age"`
	Hometown   string `json:"hometown"`
	Occupation string `json:"occupation"`
	PhotoURL   string `json:"photo_url"`
}

// UpdateContestantRequest model for updating a contestant's bio fields
type UpdateContestantRequest struct {
	Name       string `json:"name"`
	Age        *int   `json:"age"`
	Hometown   string `json:"hometown"`
	Occupation string `json:"occupation"`
	PhotoURL   string `json:"photo_url"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
