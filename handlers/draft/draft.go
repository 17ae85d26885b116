package draft

import (
	"errors"
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

// GetDraft retrieves the league's draft state
// @Summary Get the draft
// @Description Get the league's draft with its order, pick log and current turn
// @Tags Draft
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} models.Draft
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/draft [get]
// @Security Bearer
func GetDraft(c *gin.Context) {
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

	draft, err := services.GetDraft(leagueID)
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			respondWithError(c, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateDraft)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// StartDraft starts the league's draft
// @Summary Start the draft
// @Description Start the draft (commissioner only). The order is the teams in creation order, optionally shuffled.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body StartDraftRequest false "Draft options"
// @Success 201 {object} models.Draft
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/draft/start [post]
// @Security Bearer
func StartDraft(c *gin.Context) {
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
	if !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNotCommissioner)
		return
	}

	var req StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	draft, err := services.StartDraft(leagueID, req.RandomizeOrder)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDraftExists):
			respondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrNotEnoughTeams):
			respondWithError(c, http.StatusBadRequest, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, ErrFailedStartDraft)
		}
		return
	}

	c.JSON(http.StatusCreated, draft)
}

// MakePick submits a draft pick for a team
// @Summary Make a pick
// @Description Submit a pick for the team currently on the clock (team owner or commissioner). A pick out of turn or for a taken contestant is rejected whole.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body MakePickRequest true "Pick details"
// @Success 200 {object} models.Draft
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/draft/pick [post]
// @Security Bearer
func MakePick(c *gin.Context) {
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

	var req MakePickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ? AND league_id = ?", req.TeamID, leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	if team.OwnerID != user.ID && !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNoPermissionPick)
		return
	}

	draft, err := services.MakePick(leagueID, req.TeamID, req.ContestantID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDraftNotFound):
			respondWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrDraftNotInProgress),
			errors.Is(err, services.ErrNotYourTurn),
			errors.Is(err, services.ErrAlreadyDrafted),
			errors.Is(err, services.ErrTeamAtDraftLimit):
			respondWithError(c, http.StatusConflict, err.Error())
		default:
			respondWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, draft)
}

// PauseDraft pauses the league's draft
// @Summary Pause the draft
// @Description Pause the in-progress draft (commissioner only)
// @Tags Draft
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} models.Draft
// @Failure 401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/draft/pause [post]
// @Security Bearer
func PauseDraft(c *gin.Context) {
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
	if !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNotCommissioner)
		return
	}

	draft, err := services.PauseDraft(leagueID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDraftNotFound):
			respondWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrDraftNotInProgress):
			respondWithError(c, http.StatusConflict, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateDraft)
		}
		return
	}

	c.JSON(http.StatusOK, draft)
}

// ResumeDraft resumes the league's paused draft
// @Summary Resume the draft
// @Description Resume a paused draft (commissioner only). The turn countdown restarts.
// @Tags Draft
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} models.Draft
// @Failure 401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/draft/resume [post]
// @Security Bearer
func ResumeDraft(c *gin.Context) {
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
	if !services.IsCommissioner(user.ID, &league) {
		respondWithError(c, http.StatusForbidden, ErrNotCommissioner)
		return
	}

	draft, err := services.ResumeDraft(leagueID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDraftNotFound):
			respondWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrDraftNotPaused):
			respondWithError(c, http.StatusConflict, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateDraft)
		}
		return
	}

	c.JSON(http.StatusOK, draft)
}
