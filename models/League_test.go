package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLeagueSettingsAreValid(t *testing.T) {
	settings := DefaultLeagueSettings()
	assert.Empty(t, settings.Validate())
	assert.Equal(t, DraftFormatSnake, settings.DraftFormat)
	assert.Equal(t, 5, settings.ScoringRules["rose_received"].Points)
	assert.Equal(t, 50, settings.ScoringRules["final_rose"].Points)
	assert.Equal(t, -5, settings.ScoringRules["drama_started"].Points)
}

func TestLeagueSettingsValidate(t *testing.T) {
	settings := DefaultLeagueSettings()

	settings.MaxTeams = 1
	errors := settings.Validate()
	assert.Contains(t, errors, "max_teams")

	settings.MaxTeams = 25
	errors = settings.Validate()
	assert.Contains(t, errors, "max_teams")

	settings = DefaultLeagueSettings()
	settings.DraftFormat = "auction"
	errors = settings.Validate()
	assert.Contains(t, errors, "draft_format")

	settings = DefaultLeagueSettings()
	settings.ContestantDraftLimit = 0
	errors = settings.Validate()
	assert.Contains(t, errors, "contestant_draft_limit")

	settings = DefaultLeagueSettings()
	settings.ScoringRules = nil
	errors = settings.Validate()
	assert.Contains(t, errors, "scoring_rules")

	settings = DefaultLeagueSettings()
	settings.ScoringRules["pointless"] = ScoringRule{Label: "Does nothing", Points: 0}
	errors = settings.Validate()
	assert.Contains(t, errors, "scoring_rules")
}

func TestValidStatusTransition(t *testing.T) {
	assert.True(t, ValidStatusTransition(LeagueStatusCreated, LeagueStatusDraftInProgress))
	assert.True(t, ValidStatusTransition(LeagueStatusDraftInProgress, LeagueStatusActive))
	assert.True(t, ValidStatusTransition(LeagueStatusDraftInProgress, LeagueStatusCreated))
	assert.True(t, ValidStatusTransition(LeagueStatusActive, LeagueStatusCompleted))
	assert.True(t, ValidStatusTransition(LeagueStatusCompleted, LeagueStatusArchived))

	assert.False(t, ValidStatusTransition(LeagueStatusCreated, LeagueStatusActive))
	assert.False(t, ValidStatusTransition(LeagueStatusActive, LeagueStatusCreated))
	assert.False(t, ValidStatusTransition(LeagueStatusArchived, LeagueStatusActive))
	assert.False(t, ValidStatusTransition(LeagueStatusCompleted, LeagueStatusActive))
}
