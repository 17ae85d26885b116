package standings

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrNoPermissionView     = "User does not have permission to view this league"
	ErrFailedFetchStandings = "Failed to compute standings"
	ErrFailedExport         = "Failed to export standings"
)

// DefaultTopLimit caps the top performers list when no limit is given
const DefaultTopLimit = 5

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
