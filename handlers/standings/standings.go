package standings

import (
	"net/http"
	"strconv"

	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

// GetTeamStandings retrieves the ranked team standings of a league
// @Summary Get team standings
// @Description Get the league's teams ranked by total points
// @Tags Standings
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} services.TeamStanding
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/standings/teams [get]
// @Security Bearer
func GetTeamStandings(c *gin.Context) {
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

	standings, err := services.GetTeamStandings(leagueID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchStandings)
		return
	}

	c.JSON(http.StatusOK, standings)
}

// GetContestantStandings retrieves the ranked contestant standings of a league
// @Summary Get contestant standings
// @Description Get the league's contestants ranked by total points
// @Tags Standings
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} services.ContestantStanding
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/standings/contestants [get]
// @Security Bearer
func GetContestantStandings(c *gin.Context) {
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

	standings, err := services.GetContestantStandings(leagueID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchStandings)
		return
	}

	c.JSON(http.StatusOK, standings)
}

// GetTopPerformers retrieves the top scorers of the most recent episode
// @Summary Get top performers
// @Description Get the contestants with the most points in the most recent scored episode
// @Tags Standings
// @Produce json
// @Param id path string true "League ID"
// @Param limit query int false "Maximum number of rows (default 5)"
// @Success 200 {array} services.ContestantStanding
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/standings/top [get]
// @Security Bearer
func GetTopPerformers(c *gin.Context) {
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

	limit := DefaultTopLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	top, err := services.GetCurrentEpisodeTopPerformers(leagueID, limit)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchStandings)
		return
	}

	c.JSON(http.StatusOK, top)
}
