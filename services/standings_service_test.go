package services

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTeamStandingsRanksByTotalPoints(t *testing.T) {
	contestants := []models.Contestant{
		{ID: "c1", Name: "Hannah", TotalPoints: 30},
		{ID: "c2", Name: "Madison", TotalPoints: 15, IsEliminated: true},
		{ID: "c3", Name: "Victoria", TotalPoints: 5},
	}
	teams := []models.Team{
		{ID: "t1", Name: "Alpha", TotalPoints: 20, DraftedContestants: models.StringList{"c2", "c3"}},
		{ID: "t2", Name: "Beta", TotalPoints: 30, DraftedContestants: models.StringList{"c1"}},
	}

	standings := ComputeTeamStandings(teams, contestants)

	assert.Len(t, standings, 2)
	assert.Equal(t, "Beta", standings[0].Name)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "Alpha", standings[1].Name)
	assert.Equal(t, 2, standings[1].Rank)

	assert.Len(t, standings[1].Contestants, 2)
	assert.Equal(t, "Madison", standings[1].Contestants[0].Name)
	assert.True(t, standings[1].Contestants[0].IsEliminated)
}

func TestComputeTeamStandingsTiesKeepCreationOrder(t *testing.T) {
	teams := []models.Team{
		{ID: "t1", Name: "First", TotalPoints: 10},
		{ID: "t2", Name: "Second", TotalPoints: 10},
		{ID: "t3", Name: "Third", TotalPoints: 10},
	}

	standings := ComputeTeamStandings(teams, nil)

	assert.Equal(t, []string{"First", "Second", "Third"}, []string{
		standings[0].Name, standings[1].Name, standings[2].Name,
	})
	assert.Equal(t, []int{1, 2, 3}, []int{
		standings[0].Rank, standings[1].Rank, standings[2].Rank,
	})
}

func TestComputeTeamStandingsSkipsUnresolvableContestants(t *testing.T) {
	teams := []models.Team{
		{ID: "t1", Name: "Alpha", DraftedContestants: models.StringList{"gone", "c1"}},
	}
	contestants := []models.Contestant{{ID: "c1", Name: "Hannah"}}

	standings := ComputeTeamStandings(teams, contestants)

	assert.Len(t, standings[0].Contestants, 1)
	assert.Equal(t, "Hannah", standings[0].Contestants[0].Name)
}

func TestComputeTeamStandingsEpisodePointsUseLatestEpisode(t *testing.T) {
	teams := []models.Team{
		{ID: "t1", Name: "Alpha", TotalPoints: 25, EpisodeScores: models.EpisodeScores{1: 10, 2: 15}},
	}

	standings := ComputeTeamStandings(teams, nil)
	assert.Equal(t, 15, standings[0].EpisodePoints)
}

func TestComputeContestantStandings(t *testing.T) {
	contestants := []models.Contestant{
		{ID: "c1", Name: "Hannah", TotalPoints: 30, EpisodeScores: models.EpisodeScores{2: 12}},
		{ID: "c2", Name: "Madison", TotalPoints: 45},
	}
	teams := []models.Team{
		{ID: "t1", Name: "Zeta", DraftedContestants: models.StringList{"c1"}},
		{ID: "t2", Name: "Alpha", DraftedContestants: models.StringList{"c1", "c2"}},
	}

	standings := ComputeContestantStandings(contestants, teams)

	assert.Equal(t, "Madison", standings[0].Name)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "Hannah", standings[1].Name)
	assert.Equal(t, 2, standings[1].Rank)
	assert.Equal(t, 12, standings[1].EpisodePoints)

	// Holding team names come back lexically sorted
	assert.Equal(t, []string{"Alpha", "Zeta"}, standings[1].Teams)
}

func TestTopPerformers(t *testing.T) {
	standings := []ContestantStanding{
		{Name: "Hannah", EpisodePoints: 5},
		{Name: "Madison", EpisodePoints: 12},
		{Name: "Victoria", EpisodePoints: 0},
		{Name: "Kelsey", EpisodePoints: 8},
	}

	top := TopPerformers(standings, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "Madison", top[0].Name)
	assert.Equal(t, "Kelsey", top[1].Name)
}

func TestTopPerformersExcludesZeroEpisodePoints(t *testing.T) {
	standings := []ContestantStanding{
		{Name: "Victoria", EpisodePoints: 0},
		{Name: "Hannah", EpisodePoints: 3},
	}

	top := TopPerformers(standings, 10)

	assert.Len(t, top, 1)
	assert.Equal(t, "Hannah", top[0].Name)
}
