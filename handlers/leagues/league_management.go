package leagues

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUserLeagues retrieves the leagues the user commissions or plays in
// @Summary Get user leagues
// @Description Get all leagues the authenticated user is a member of
// @Tags Leagues
// @Produce json
// @Success 200 {array} models.League
// @Failure 401 {object} map[string]string
// @Router /leagues [get]
// @Security Bearer
func GetUserLeagues(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var leagues []models.League
	if err := database.DB.Distinct("leagues.*").
		Joins("LEFT JOIN teams ON teams.league_id = leagues.id").
		Where("leagues.commissioner_id = ? OR teams.owner_id = ?", user.ID, user.ID).
		Order("leagues.created_at desc").
		Find(&leagues).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchLeagues)
		return
	}

	c.JSON(http.StatusOK, leagues)
}

// GetLeague retrieves one league with its teams, contestants and episodes
// @Summary Get a league
// @Description Get the specified league with teams, contestants and episodes
// @Tags Leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} models.League
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id} [get]
// @Security Bearer
func GetLeague(c *gin.Context) {
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

	if err := database.DB.
		Preload("Teams").
		Preload("Contestants").
		Preload("Episodes").
		First(&league, "id = ?", leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}

	c.JSON(http.StatusOK, league)
}

// CreateLeague creates a league commissioned by the caller
// @Summary Create a league
// @Description Create a new league with default settings and a fresh join code
// @Tags Leagues
// @Accept json
// @Produce json
// @Param request body CreateLeagueRequest true "League details"
// @Success 201 {object} models.League
// @Failure 400,401 {object} map[string]string
// @Router /leagues [post]
// @Security Bearer
func CreateLeague(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	joinCode, err := utils.GenerateJoinCode()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateLeague)
		return
	}

	league := models.League{
		Name:           req.Name,
		Season:         req.Season,
		JoinCode:       joinCode,
		CommissionerID: user.ID,
		Status:         models.LeagueStatusCreated,
		Settings:       models.DefaultLeagueSettings(),
	}
	if err := database.DB.Create(&league).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateLeague)
		return
	}

	c.JSON(http.StatusCreated, league)
}

// UpdateLeague updates a league's name and season
// @Summary Update a league
// @Description Update the specified league (commissioner only)
// @Tags Leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body UpdateLeagueRequest true "League details"
// @Success 200 {object} models.League
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id} [put]
// @Security Bearer
func UpdateLeague(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var league models.League
	if err := database.DB.First(&league, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}
	if !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNotCommissioner)
		return
	}

	var req UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		league.Name = req.Name
	}
	if req.Season != "" {
		league.Season = req.Season
	}
	if err := database.DB.Save(&league).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateLeague)
		return
	}

	c.JSON(http.StatusOK, league)
}

// UpdateLeagueSettings validates and replaces the league settings
// @Summary Update league settings
// @Description Replace the league's typed settings (commissioner only). Settings are validated field by field.
// @Tags Leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body UpdateSettingsRequest true "League settings"
// @Success 200 {object} models.League
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/settings [put]
// @Security Bearer
func UpdateLeagueSettings(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var league models.League
	if err := database.DB.First(&league, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}
	if !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNotCommissioner)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if fieldErrors := req.Settings.Validate(); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	// Draft-affecting settings are frozen once the draft exists
	if league.Status != models.LeagueStatusCreated {
		old := league.Settings
		if old.DraftFormat != req.Settings.DraftFormat ||
			old.ContestantDraftLimit != req.Settings.ContestantDraftLimit ||
			old.MaxTeams != req.Settings.MaxTeams {
			respondWithError(c, http.StatusBadRequest, ErrSettingsLockedByDraft)
			return
		}
	}

	league.Settings = req.Settings
	if err := database.DB.Save(&league).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateLeague)
		return
	}

	c.JSON(http.StatusOK, league)
}

// UpdateLeagueStatus applies an explicit lifecycle transition
// @Summary Update league status
// @Description Move the league through its lifecycle (commissioner only). Draft transitions are driven by the draft itself.
// @Tags Leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} models.League
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/status [put]
// @Security Bearer
func UpdateLeagueStatus(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var league models.League
	if err := database.DB.First(&league, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}
	if !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNotCommissioner)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if !models.ValidStatusTransition(league.Status, req.Status) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidStatusTransition)
		return
	}

	if err := database.DB.Model(&league).Update("status", req.Status).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateLeague)
		return
	}
	league.Status = req.Status

	c.JSON(http.StatusOK, league)
}

// DeleteLeague deletes a league and all its dependent records
// @Summary Delete a league
// @Description Delete the specified league (commissioner only)
// @Tags Leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id} [delete]
// @Security Bearer
func DeleteLeague(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var league models.League
	if err := database.DB.First(&league, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrLeagueNotFound)
		return
	}
	if !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNotCommissioner)
		return
	}

	leagueID := league.ID
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.ScoringEvent{},
			&models.Notification{},
			&models.Draft{},
			&models.Episode{},
			&models.Contestant{},
			&models.Team{},
		} {
			if err := tx.Where("league_id = ?", leagueID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&league).Error
	})
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteLeague)
		return
	}

	services.InvalidateStandingsCache(leagueID)
	response.Message(c, http.StatusOK, "League deleted")
}

// JoinLeague resolves a join code to its league
// @Summary Join a league
// @Description Resolve a join code; the caller can then create their team in the league
// @Tags Leagues
// @Accept json
// @Produce json
// @Param request body JoinLeagueRequest true "Join code"
// @Success 200 {object} models.League
// @Failure 400,401,404 {object} map[string]string
// @Router /leagues/join [post]
// @Security Bearer
func JoinLeague(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var req JoinLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var league models.League
	if err := database.DB.Where("join_code = ?", req.Code).First(&league).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrInvalidJoinCode)
		return
	}

	c.JSON(http.StatusOK, league)
}
