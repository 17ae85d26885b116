package standings

import (
	"fmt"
	"net/http"
	"strings"

	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportStandings produces an XLSX workbook with the league's standings
// @Summary Export standings
// @Description Download the league's team and contestant standings as an XLSX workbook
// @Tags Standings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "League ID"
// @Success 200 {file} binary
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/standings/export [get]
// @Security Bearer
func ExportStandings(c *gin.Context) {
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

	teamStandings, err := services.GetTeamStandings(leagueID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchStandings)
		return
	}
	contestantStandings, err := services.GetContestantStandings(leagueID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchStandings)
		return
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	teamSheet := "Teams"
	xlsx.SetSheetName("Sheet1", teamSheet)
	teamHeaders := []string{"Rank", "Team", "Total Points", "Episode Points", "Contestants"}
	for i, header := range teamHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(teamSheet, cell, header)
	}
	for row, standing := range teamStandings {
		names := make([]string, 0, len(standing.Contestants))
		for _, contestant := range standing.Contestants {
			names = append(names, contestant.Name)
		}
		values := []interface{}{
			standing.Rank,
			standing.Name,
			standing.TotalPoints,
			standing.EpisodePoints,
			strings.Join(names, ", "),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xlsx.SetCellValue(teamSheet, cell, value)
		}
	}

	contestantSheet := "Contestants"
	xlsx.NewSheet(contestantSheet)
	contestantHeaders := []string{"Rank", "Contestant", "Total Points", "Episode Points", "Eliminated", "Teams"}
	for i, header := range contestantHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(contestantSheet, cell, header)
	}
	for row, standing := range contestantStandings {
		values := []interface{}{
			standing.Rank,
			standing.Name,
			standing.TotalPoints,
			standing.EpisodePoints,
			standing.IsEliminated,
			strings.Join(standing.Teams, ", "),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xlsx.SetCellValue(contestantSheet, cell, value)
		}
	}

	filename := fmt.Sprintf("standings-%s.xlsx", league.Season)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsx.Write(c.Writer); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
	}
}
