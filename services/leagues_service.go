package services

import (
	"fmt"

	"api/database"
	"api/models"
)

// GetAccessibleLeague gets the target league but returns an error if the user
// is not a member (commissioner or team owner) of it
func GetAccessibleLeague(userID, leagueID string, league *models.League) error {
	if err := database.DB.First(league, "id = ?", leagueID).Error; err != nil {
		return fmt.Errorf("league not found")
	}
	if league.CommissionerID == userID {
		return nil
	}

	var count int64
	database.DB.Model(&models.Team{}).
		Where("league_id = ? AND owner_id = ?", leagueID, userID).
		Count(&count)
	if count == 0 {
		return fmt.Errorf("user does not have access to this league")
	}
	return nil
}

// IsCommissioner reports whether the user commissions the league
func IsCommissioner(userID string, league *models.League) bool {
	return league.CommissionerID == userID
}

// GetLeagueForEpisode loads the league owning the given episode
func GetLeagueForEpisode(episode *models.Episode, league *models.League) error {
	if err := database.DB.First(league, "id = ?", episode.LeagueID).Error; err != nil {
		return fmt.Errorf("league not found for episode")
	}
	return nil
}

// LeagueTeams returns the league's teams in stable creation order
func LeagueTeams(leagueID string) ([]models.Team, error) {
	var teams []models.Team
	if err := database.DB.Where("league_id = ?", leagueID).
		Order("created_at asc, id asc").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	return teams, nil
}

// LeagueContestants returns the league's contestants in stable creation order
func LeagueContestants(leagueID string) ([]models.Contestant, error) {
	var contestants []models.Contestant
	if err := database.DB.Where("league_id = ?", leagueID).
		Order("created_at asc, id asc").Find(&contestants).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contestants: %w", err)
	}
	return contestants, nil
}
