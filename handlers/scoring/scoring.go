package scoring

import (
	"errors"
	"net/http"
	"strconv"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetEpisodeEvents lists the scoring events of an episode
// @Summary Get episode scoring events
// @Description Get the scoring events recorded against the episode, newest first
// @Tags Scoring
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} models.ScoringEvent
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id}/events [get]
// @Security Bearer
func GetEpisodeEvents(c *gin.Context) {
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

	var episode models.Episode
	if err := database.DB.First(&episode, "id = ? AND league_id = ?", c.Param("episode_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrEpisodeNotFound)
		return
	}

	query := database.DB.Preload("Contestant").
		Where("episode_id = ?", episode.ID).
		Order("created_at desc")
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}

	var events []models.ScoringEvent
	if err := query.Find(&events).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchEvents)
		return
	}

	c.JSON(http.StatusOK, events)
}

// ScoreAction records a scoring event against a contestant
// @Summary Record a scoring event
// @Description Record a point-affecting action for a contestant in the active episode (commissioner only)
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Param request body ScoreActionRequest true "Scoring action"
// @Success 201 {object} models.ScoringEvent
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id}/events [post]
// @Security Bearer
func ScoreAction(c *gin.Context) {
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

	var episode models.Episode
	if err := database.DB.First(&episode, "id = ? AND league_id = ?", c.Param("episode_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrEpisodeNotFound)
		return
	}

	var req ScoreActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	event, err := services.ScoreAction(episode.ID, services.ScoreActionRequest{
		ContestantID: req.ContestantID,
		ActionType:   req.ActionType,
		Points:       req.Points,
		Description:  req.Description,
	}, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEpisodeNotActive):
			respondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrUnknownActionType),
			errors.Is(err, services.ErrContestantNotFound):
			respondWithError(c, http.StatusBadRequest, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, ErrFailedScoreAction)
		}
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UndoScoringEvent reverses and deletes a scoring event
// @Summary Undo a scoring event
// @Description Reverse the event's exact point delta and delete it (commissioner only)
// @Tags Scoring
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Param event_id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id}/events/{event_id} [delete]
// @Security Bearer
func UndoScoringEvent(c *gin.Context) {
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

	var episode models.Episode
	if err := database.DB.First(&episode, "id = ? AND league_id = ?", c.Param("episode_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrEpisodeNotFound)
		return
	}

	if err := services.UndoScoringEvent(episode.ID, c.Param("event_id")); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			respondWithError(c, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedUndoEvent)
		return
	}

	response.Message(c, http.StatusOK, "Scoring event undone")
}

// EliminateContestant marks a contestant as eliminated
// @Summary Eliminate a contestant
// @Description Mark the contestant eliminated (commissioner only). Accumulated points are kept.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param contestant_id path string true "Contestant ID"
// @Param request body EliminateRequest false "Elimination details"
// @Success 200 {object} models.Contestant
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/contestants/{contestant_id}/eliminate [post]
// @Security Bearer
func EliminateContestant(c *gin.Context) {
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

	var req EliminateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var existing models.Contestant
	if err := database.DB.First(&existing, "id = ? AND league_id = ?", c.Param("contestant_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, services.ErrContestantNotFound.Error())
		return
	}

	contestant, err := services.EliminateContestant(existing.ID, req.EpisodeNumber)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedEliminate)
		return
	}

	c.JSON(http.StatusOK, contestant)
}

// RestoreContestant clears a contestant's elimination
// @Summary Restore a contestant
// @Description Clear the contestant's elimination flag (commissioner only)
// @Tags Scoring
// @Produce json
// @Param id path string true "League ID"
// @Param contestant_id path string true "Contestant ID"
// @Success 200 {object} models.Contestant
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/contestants/{contestant_id}/restore [post]
// @Security Bearer
func RestoreContestant(c *gin.Context) {
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

	var existing models.Contestant
	if err := database.DB.First(&existing, "id = ? AND league_id = ?", c.Param("contestant_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, services.ErrContestantNotFound.Error())
		return
	}

	contestant, err := services.RestoreContestant(existing.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedEliminate)
		return
	}

	c.JSON(http.StatusOK, contestant)
}

// RecomputeTotals rebuilds every total of the league from the event history
// @Summary Recompute league totals
// @Description Rebuild all contestant and team totals from the full scoring event history (commissioner only)
// @Tags Scoring
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} services.RecomputeResult
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/recompute [post]
// @Security Bearer
func RecomputeTotals(c *gin.Context) {
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

	result, err := services.RecomputeLeagueTotals(leagueID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedRecompute)
		return
	}

	c.JSON(http.StatusOK, result)
}
