package teams

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetLeagueTeams lists the teams of a league
// @Summary Get league teams
// @Description Get all teams of the specified league
// @Tags Teams
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} models.Team
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/teams [get]
// @Security Bearer
func GetLeagueTeams(c *gin.Context) {
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

	var teams []models.Team
	if err := database.DB.Preload("Owner").
		Where("league_id = ?", leagueID).
		Order("created_at asc, id asc").
		Find(&teams).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchTeams)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam retrieves a single team with its drafted contestants resolved
// @Summary Get a team
// @Description Get the specified team of the league
// @Tags Teams
// @Produce json
// @Param id path string true "League ID"
// @Param team_id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/teams/{team_id} [get]
// @Security Bearer
func GetTeam(c *gin.Context) {
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

	var team models.Team
	if err := database.DB.Preload("Owner").
		First(&team, "id = ? AND league_id = ?", c.Param("team_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam creates the caller's team in a league
// @Summary Create a team
// @Description Create the caller's team in the league. One team per user, only before the draft starts.
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body CreateTeamRequest true "Team details"
// @Success 201 {object} models.Team
// @Failure 400,401,404,409 {object} map[string]string
// @Router /leagues/{id}/teams [post]
// @Security Bearer
func CreateTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	leagueID := c.Param("id")
	var league models.League
	if err := database.DB.First(&league, "id = ?", leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}

	if league.Status != models.LeagueStatusCreated {
		respondWithError(c, http.StatusConflict, ErrLeagueNotJoinable)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var ownedCount int64
	database.DB.Model(&models.Team{}).
		Where("league_id = ? AND owner_id = ?", leagueID, user.ID).
		Count(&ownedCount)
	if ownedCount > 0 {
		respondWithError(c, http.StatusConflict, ErrAlreadyHasTeam)
		return
	}

	var teamCount int64
	database.DB.Model(&models.Team{}).Where("league_id = ?", leagueID).Count(&teamCount)
	if teamCount >= int64(league.Settings.MaxTeams) {
		respondWithError(c, http.StatusConflict, ErrLeagueFull)
		return
	}

	team := models.Team{
		LeagueID: leagueID,
		OwnerID:  user.ID,
		Name:     req.Name,
	}
	if err := database.DB.Create(&team).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateTeam)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam renames a team
// @Summary Rename a team
// @Description Rename the specified team (owner or commissioner)
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param team_id path string true "Team ID"
// @Param request body UpdateTeamRequest true "Team details"
// @Success 200 {object} models.Team
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/teams/{team_id} [put]
// @Security Bearer
func UpdateTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	leagueID := c.Param("id")
	var league models.League
	if err := database.DB.First(&league, "id = ?", leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ? AND league_id = ?", c.Param("team_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	if team.OwnerID != user.ID && !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := database.DB.Model(&team).Update("name", req.Name).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateTeam)
		return
	}
	team.Name = req.Name

	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team from a league before the draft starts
// @Summary Delete a team
// @Description Delete the specified team (owner or commissioner). Blocked once the draft has started.
// @Tags Teams
// @Produce json
// @Param id path string true "League ID"
// @Param team_id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/teams/{team_id} [delete]
// @Security Bearer
func DeleteTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	leagueID := c.Param("id")
	var league models.League
	if err := database.DB.First(&league, "id = ?", leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ? AND league_id = ?", c.Param("team_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	if team.OwnerID != user.ID && !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	if league.Status != models.LeagueStatusCreated {
		respondWithError(c, http.StatusConflict, ErrTeamLockedByDraft)
		return
	}

	if err := database.DB.Delete(&team).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteTeam)
		return
	}

	services.InvalidateStandingsCache(leagueID)
	response.Message(c, http.StatusOK, "Team deleted")
}
