package leagues

import (
	"net/http"

	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

// GetLeagueNotifications lists the league's unexpired notifications
// @Summary Get league notifications
// @Description Get recent notifications for the league, including ones targeted at the caller
// @Tags Leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} models.Notification
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/notifications [get]
// @Security Bearer
func GetLeagueNotifications(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	leagueID := c.Param("id")
	var league models.League
	if err := services.GetAccessibleLeague(user.ID, leagueID, &league); err != nil {
		respondWithError(c, http.StatusForbidden, ErrNoPermissionView)
		return
	}

	notifications, err := services.ListNotifications(leagueID, user.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchLeagues)
		return
	}

	c.JSON(http.StatusOK, notifications)
}
