package services

import (
	"sort"

	"api/models"
)

// ContestantSummary is the slimmed-down contestant view attached to a team standing
type ContestantSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Points       int    `json:"points"`
	IsEliminated bool   `json:"is_eliminated"`
}

// TeamStanding is one ranked row of the team standings
type TeamStanding struct {
	Rank          int                 `json:"rank"`
	TeamID        string              `json:"team_id"`
	Name          string              `json:"name"`
	OwnerID       string              `json:"owner_id"`
	TotalPoints   int                 `json:"total_points"`
	EpisodePoints int                 `json:"episode_points"`
	Contestants   []ContestantSummary `json:"contestants"`
}

// ContestantStanding is one ranked row of the contestant standings
type ContestantStanding struct {
	Rank          int      `json:"rank"`
	ContestantID  string   `json:"contestant_id"`
	Name          string   `json:"name"`
	PhotoURL      string   `json:"photo_url"`
	TotalPoints   int      `json:"total_points"`
	EpisodePoints int      `json:"episode_points"`
	IsEliminated  bool     `json:"is_eliminated"`
	Teams         []string `json:"teams"`
}

// ComputeTeamStandings ranks teams by total points descending. The sort is
// stable, so ties keep the input (creation) order; ranks are a contiguous
// 1-based sequence. Drafted ids that resolve to no contestant are skipped.
func ComputeTeamStandings(teams []models.Team, contestants []models.Contestant) []TeamStanding {
	byID := make(map[string]*models.Contestant, len(contestants))
	for i := range contestants {
		byID[contestants[i].ID] = &contestants[i]
	}

	standings := make([]TeamStanding, 0, len(teams))
	for _, team := range teams {
		summaries := make([]ContestantSummary, 0, len(team.DraftedContestants))
		for _, contestantID := range team.DraftedContestants {
			contestant, ok := byID[contestantID]
			if !ok {
				continue
			}
			summaries = append(summaries, ContestantSummary{
				ID:           contestant.ID,
				Name:         contestant.Name,
				Points:       contestant.TotalPoints,
				IsEliminated: contestant.IsEliminated,
			})
		}
		standings = append(standings, TeamStanding{
			TeamID:        team.ID,
			Name:          team.Name,
			OwnerID:       team.OwnerID,
			TotalPoints:   team.TotalPoints,
			EpisodePoints: team.EpisodeScores.Latest(),
			Contestants:   summaries,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// ComputeContestantStandings ranks contestants by total points descending,
// attaching the lexically sorted names of the teams holding each contestant
func ComputeContestantStandings(contestants []models.Contestant, teams []models.Team) []ContestantStanding {
	standings := make([]ContestantStanding, 0, len(contestants))
	for _, contestant := range contestants {
		teamNames := make([]string, 0, 1)
		for _, team := range teams {
			if team.DraftedContestants.Contains(contestant.ID) {
				teamNames = append(teamNames, team.Name)
			}
		}
		sort.Strings(teamNames)

		standings = append(standings, ContestantStanding{
			ContestantID:  contestant.ID,
			Name:          contestant.Name,
			PhotoURL:      contestant.PhotoURL,
			TotalPoints:   contestant.TotalPoints,
			EpisodePoints: contestant.EpisodeScores.Latest(),
			IsEliminated:  contestant.IsEliminated,
			Teams:         teamNames,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// TopPerformers filters contestant standings down to those with points in
// the most recent episode, sorted by episode points descending, first limit
func TopPerformers(standings []ContestantStanding, limit int) []ContestantStanding {
	top := make([]ContestantStanding, 0, len(standings))
	for _, standing := range standings {
		if standing.EpisodePoints > 0 {
			top = append(top, standing)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].EpisodePoints > top[j].EpisodePoints
	})
	if limit >= 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

// GetTeamStandings produces the ranked team view for a league, served from
// the cache when warm
func GetTeamStandings(leagueID string) ([]TeamStanding, error) {
	var cached []TeamStanding
	if cacheGetStandings("teams", leagueID, &cached) {
		return cached, nil
	}

	teams, err := LeagueTeams(leagueID)
	if err != nil {
		return nil, err
	}
	contestants, err := LeagueContestants(leagueID)
	if err != nil {
		return nil, err
	}

	standings := ComputeTeamStandings(teams, contestants)
	cacheSetStandings("teams", leagueID, standings)
	return standings, nil
}

// GetContestantStandings produces the ranked contestant view for a league
func GetContestantStandings(leagueID string) ([]ContestantStanding, error) {
	var cached []ContestantStanding
	if cacheGetStandings("contestants", leagueID, &cached) {
		return cached, nil
	}

	contestants, err := LeagueContestants(leagueID)
	if err != nil {
		return nil, err
	}
	teams, err := LeagueTeams(leagueID)
	if err != nil {
		return nil, err
	}

	standings := ComputeContestantStandings(contestants, teams)
	cacheSetStandings("contestants", leagueID, standings)
	return standings, nil
}

// GetCurrentEpisodeTopPerformers returns the contestants with the most
// points in the most recent scored episode
func GetCurrentEpisodeTopPerformers(leagueID string, limit int) ([]ContestantStanding, error) {
	standings, err := GetContestantStandings(leagueID)
	if err != nil {
		return nil, err
	}
	return TopPerformers(standings, limit), nil
}
