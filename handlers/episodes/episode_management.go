package episodes

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetLeagueEpisodes lists the episodes of a league in airing order
// @Summary Get league episodes
// @Description Get all episodes of the specified league ordered by number
// @Tags Episodes
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} models.Episode
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/episodes [get]
// @Security Bearer
func GetLeagueEpisodes(c *gin.Context) {
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

	var episodes []models.Episode
	if err := database.DB.Where("league_id = ?", leagueID).
		Order("number asc").Find(&episodes).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchEpisodes)
		return
	}

	c.JSON(http.StatusOK, episodes)
}

// GetEpisode retrieves a single episode
// @Summary Get an episode
// @Description Get the specified episode of the league
// @Tags Episodes
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Success 200 {object} models.Episode
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id} [get]
// @Security Bearer
func GetEpisode(c *gin.Context) {
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

	c.JSON(http.StatusOK, episode)
}

// CreateEpisode adds an episode to the league
// @Summary Create an episode
// @Description Create an episode (commissioner only). The episode number defaults to the next in sequence.
// @Tags Episodes
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body CreateEpisodeRequest true "Episode details"
// @Success 201 {object} models.Episode
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/episodes [post]
// @Security Bearer
func CreateEpisode(c *gin.Context) {
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

	var req CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	number := 1
	if req.Number != nil {
		number = *req.Number
	} else {
		var maxNumber int
		database.DB.Model(&models.Episode{}).
			Where("league_id = ?", leagueID).
			Select("COALESCE(MAX(number), 0)").Scan(&maxNumber)
		number = maxNumber + 1
	}

	episode := models.Episode{
		LeagueID: leagueID,
		Number:   number,
		Title:    req.Title,
	}
	if err := database.DB.Create(&episode).Error; err != nil {
		// The unique index on (league_id, number) rejects duplicates
		respondWithError(c, http.StatusConflict, ErrFailedCreateEpisode)
		return
	}

	c.JSON(http.StatusCreated, episode)
}

// UpdateEpisode updates an episode's title
// @Summary Update an episode
// @Description Update the specified episode's title (commissioner only)
// @Tags Episodes
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Param request body UpdateEpisodeRequest true "Episode details"
// @Success 200 {object} models.Episode
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id} [put]
// @Security Bearer
func UpdateEpisode(c *gin.Context) {
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

	var req UpdateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := database.DB.Model(&episode).Update("title", req.Title).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateEpisode)
		return
	}
	episode.Title = req.Title

	c.JSON(http.StatusOK, episode)
}

// ActivateEpisode makes an episode the league's single active one
// @Summary Activate an episode
// @Description Make the episode active for scoring (commissioner only). Any previously active episode is deactivated in the same transaction.
// @Tags Episodes
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Success 200 {object} models.Episode
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id}/activate [put]
// @Security Bearer
func ActivateEpisode(c *gin.Context) {
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

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Episode{}).
			Where("league_id = ? AND is_active = true", leagueID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&episode).Update("is_active", true).Error
	})
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedActivateEpisode)
		return
	}
	episode.IsActive = true

	c.JSON(http.StatusOK, episode)
}

// DeactivateEpisode closes the league's active episode
// @Summary Deactivate an episode
// @Description Mark the episode inactive, closing the scoring window (commissioner only)
// @Tags Episodes
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Success 200 {object} models.Episode
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id}/deactivate [put]
// @Security Bearer
func DeactivateEpisode(c *gin.Context) {
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

	if err := database.DB.Model(&episode).Update("is_active", false).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateEpisode)
		return
	}
	episode.IsActive = false

	c.JSON(http.StatusOK, episode)
}

// DeleteEpisode removes an episode that has no scoring events
// @Summary Delete an episode
// @Description Delete the specified episode (commissioner only). Blocked while the episode has scoring events.
// @Tags Episodes
// @Produce json
// @Param id path string true "League ID"
// @Param episode_id path string true "Episode ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/episodes/{episode_id} [delete]
// @Security Bearer
func DeleteEpisode(c *gin.Context) {
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

	if episode.EventCount > 0 {
		respondWithError(c, http.StatusConflict, ErrEpisodeHasEvents)
		return
	}

	if err := database.DB.Delete(&episode).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteEpisode)
		return
	}

	response.Message(c, http.StatusOK, "Episode deleted")
}
