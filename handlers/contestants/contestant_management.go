package contestants

import (
	"encoding/json"
	"net/http"

	"api/database"
	"api/logging"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Storage handles contestant photo uploads. Set at startup; photo routes
// respond 503 when it is left nil.
var Storage *services.PhotoStorage

// GetLeagueContestants lists the contestants of a league
// @Summary Get league contestants
// @Description Get all contestants of the specified league
// @Tags Contestants
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} models.Contestant
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/contestants [get]
// @Security Bearer
func GetLeagueContestants(c *gin.Context) {
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

	contestants, err := services.LeagueContestants(leagueID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchContestants)
		return
	}

	c.JSON(http.StatusOK, contestants)
}

// GetContestant retrieves a single contestant
// @Summary Get a contestant
// @Description Get the specified contestant of the league
// @Tags Contestants
// @Produce json
// @Param id path string true "League ID"
// @Param contestant_id path string true "Contestant ID"
// @Success 200 {object} models.Contestant
// @Failure 401,403,404 {object} map[string]string
// @Router /leagues/{id}/contestants/{contestant_id} [get]
// @Security Bearer
func GetContestant(c *gin.Context) {
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

	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ? AND league_id = ?", c.Param("contestant_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestantNotFound)
		return
	}

	c.JSON(http.StatusOK, contestant)
}

// CreateContestant adds a contestant to the league roster
// @Summary Create a contestant
// @Description Add a contestant to the league roster (commissioner only)
// @Tags Contestants
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body CreateContestantRequest true "Contestant details"
// @Success 201 {object} models.Contestant
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/contestants [post]
// @Security Bearer
func CreateContestant(c *gin.Context) {
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

	var req CreateContestantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	contestant := models.Contestant{
		LeagueID:   leagueID,
		Name:       req.Name,
		Age:        req.Age,
		Hometown:   req.Hometown,
		Occupation: req.Occupation,
		PhotoURL:   req.PhotoURL,
	}
	if err := database.DB.Create(&contestant).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateContestant)
		return
	}

	c.JSON(http.StatusCreated, contestant)
}

// UpdateContestant updates a contestant's bio fields
// @Summary Update a contestant
// @Description Update the specified contestant's bio fields (commissioner only)
// @Tags Contestants
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param contestant_id path string true "Contestant ID"
// @Param request body UpdateContestantRequest true "Contestant details"
// @Success 200 {object} models.Contestant
// @Failure 400,401,403,404 {object} map[string]string
// @Router /leagues/{id}/contestants/{contestant_id} [put]
// @Security Bearer
func UpdateContestant(c *gin.Context) {
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

	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ? AND league_id = ?", c.Param("contestant_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestantNotFound)
		return
	}

	var req UpdateContestantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		contestant.Name = req.Name
	}
	if req.Age != nil {
		contestant.Age = *req.Age
	}
	if req.Hometown != "" {
		contestant.Hometown = req.Hometown
	}
	if req.Occupation != "" {
		contestant.Occupation = req.Occupation
	}
	if req.PhotoURL != "" {
		contestant.PhotoURL = req.PhotoURL
	}
	if err := database.DB.Save(&contestant).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateContestant)
		return
	}

	c.JSON(http.StatusOK, contestant)
}

// UploadContestantPhoto stores a profile photo and records its URL
// @Summary Upload contestant photo
// @Description Upload a profile photo for the contestant (commissioner only). Replaces any previous photo.
// @Tags Contestants
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "League ID"
// @Param contestant_id path string true "Contestant ID"
// @Param photo formData file true "Photo file (jpg, png or webp)"
// @Success 200 {object} models.Contestant
// @Failure 400,401,403,404,503 {object} map[string]string
// @Router /leagues/{id}/contestants/{contestant_id}/photo [post]
// @Security Bearer
func UploadContestantPhoto(c *gin.Context) {
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

	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ? AND league_id = ?", c.Param("contestant_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestantNotFound)
		return
	}

	if Storage == nil {
		respondWithError(c, http.StatusServiceUnavailable, ErrPhotoStorageUnavailable)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrMissingPhotoFile)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrMissingPhotoFile)
		return
	}
	defer file.Close()

	url, err := Storage.UploadContestantPhoto(
		c.Request.Context(),
		leagueID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrFailedUploadPhoto)
		return
	}

	oldURL := contestant.PhotoURL
	if err := database.DB.Model(&contestant).Update("photo_url", url).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateContestant)
		return
	}
	contestant.PhotoURL = url

	if oldURL != "" {
		if err := Storage.DeletePhoto(c.Request.Context(), oldURL); err != nil {
			logging.Log.Warnf("failed to delete replaced photo for contestant %s: %v", contestant.ID, err)
		}
	}

	c.JSON(http.StatusOK, contestant)
}

// DeleteContestant removes a contestant that no team has drafted
// @Summary Delete a contestant
// @Description Delete the specified contestant (commissioner only). Blocked once any team has drafted them.
// @Tags Contestants
// @Produce json
// @Param id path string true "League ID"
// @Param contestant_id path string true "Contestant ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,409 {object} map[string]string
// @Router /leagues/{id}/contestants/{contestant_id} [delete]
// @Security Bearer
func DeleteContestant(c *gin.Context) {
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

	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ? AND league_id = ?", c.Param("contestant_id"), leagueID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestantNotFound)
		return
	}

	idJSON, _ := json.Marshal([]string{contestant.ID})
	var draftedCount int64
	database.DB.Model(&models.Team{}).
		Where("league_id = ? AND drafted_contestants @> ?::jsonb", leagueID, string(idJSON)).
		Count(&draftedCount)
	if draftedCount > 0 {
		respondWithError(c, http.StatusConflict, ErrContestantDrafted)
		return
	}

	if err := database.DB.Delete(&contestant).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteContestant)
		return
	}

	if Storage != nil && contestant.PhotoURL != "" {
		if err := Storage.DeletePhoto(c.Request.Context(), contestant.PhotoURL); err != nil {
			logging.Log.Warnf("failed to delete photo for contestant %s: %v", contestant.ID, err)
		}
	}

	services.InvalidateStandingsCache(leagueID)
	response.Message(c, http.StatusOK, "Contestant deleted")
}
