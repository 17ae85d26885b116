package services

import (
	"errors"
	"fmt"
	"time"

	"api/database"
	"api/logging"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// State and validation errors surfaced by the scoring orchestrator
var (
	ErrEpisodeNotActive   = errors.New("episode is not active")
	ErrEventNotFound      = errors.New("scoring event not found for this episode")
	ErrUnknownActionType  = errors.New("action type is not in the league's scoring rules")
	ErrContestantNotFound = errors.New("contestant not found in this league")
)

// ScoreActionRequest carries one point-affecting action to record
type ScoreActionRequest struct {
	ContestantID string
	ActionType   string
	Points       *int // nil means: use the league's rule table value
	Description  string
}

// ScoreAction records a scoring event against a contestant within an active
// episode. The event row, the episode's event counter, the contestant's
// totals and every owning team's totals are updated in one transaction.
func ScoreAction(episodeID string, req ScoreActionRequest, scorerID string) (*models.ScoringEvent, error) {
	var episode models.Episode
	if err := database.DB.First(&episode, "id = ?", episodeID).Error; err != nil {
		return nil, fmt.Errorf("episode not found")
	}
	if !episode.IsActive {
		return nil, ErrEpisodeNotActive
	}

	var league models.League
	if err := GetLeagueForEpisode(&episode, &league); err != nil {
		return nil, err
	}

	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ? AND league_id = ?", req.ContestantID, episode.LeagueID).Error; err != nil {
		return nil, ErrContestantNotFound
	}

	rule, ok := league.Settings.ScoringRules[req.ActionType]
	if !ok {
		return nil, ErrUnknownActionType
	}
	points := rule.Points
	if req.Points != nil {
		points = *req.Points
	}

	description := req.Description
	if description == "" {
		description = rule.Label
	}

	event := models.ScoringEvent{
		LeagueID:     episode.LeagueID,
		EpisodeID:    episode.ID,
		ContestantID: contestant.ID,
		ActionType:   req.ActionType,
		Points:       points,
		Description:  description,
		ScoredBy:     scorerID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create scoring event: %w", err)
		}
		return applyPointDelta(tx, &episode, &contestant, points, 1)
	})
	if err != nil {
		return nil, err
	}

	metrics.ScoringEvents.WithLabelValues(req.ActionType).Inc()
	InvalidateStandingsCache(episode.LeagueID)

	if league.Settings.NotifyScoring {
		Notify(episode.LeagueID, models.NotificationScoringEvent, "Score posted",
			fmt.Sprintf("%s: %s (%+d pts)", contestant.Name, description, points), nil)
	}

	return &event, nil
}

// UndoScoringEvent reverses one event's exact point delta on the contestant
// and every owning team, then deletes the event. Any existing event of the
// episode can be undone by id.
func UndoScoringEvent(episodeID, eventID string) error {
	var event models.ScoringEvent
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return ErrEventNotFound
	}
	if event.EpisodeID != episodeID {
		return ErrEventNotFound
	}

	var episode models.Episode
	if err := database.DB.First(&episode, "id = ?", episodeID).Error; err != nil {
		return fmt.Errorf("episode not found")
	}

	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ?", event.ContestantID).Error; err != nil {
		return fmt.Errorf("contestant not found for event")
	}

	var league models.League
	if err := GetLeagueForEpisode(&episode, &league); err != nil {
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&event).Error; err != nil {
			return fmt.Errorf("failed to delete scoring event: %w", err)
		}
		return applyPointDelta(tx, &episode, &contestant, -event.Points, -1)
	})
	if err != nil {
		return err
	}

	metrics.ScoringUndos.Inc()
	InvalidateStandingsCache(episode.LeagueID)

	if league.Settings.NotifyScoring {
		Notify(episode.LeagueID, models.NotificationScoringUndo, "Score undone",
			fmt.Sprintf("%s: %s reversed (%+d pts)", contestant.Name, event.Description, -event.Points), nil)
	}
	return nil
}

// applyPointDelta applies a point delta to the contestant, to every team of
// the league holding the contestant, and to the episode's event counter
func applyPointDelta(tx *gorm.DB, episode *models.Episode, contestant *models.Contestant, points, eventCountDelta int) error {
	contestant.TotalPoints += points
	if contestant.EpisodeScores == nil {
		contestant.EpisodeScores = models.EpisodeScores{}
	}
	contestant.EpisodeScores.Apply(episode.Number, points)
	if err := tx.Save(contestant).Error; err != nil {
		return fmt.Errorf("failed to update contestant totals: %w", err)
	}

	var teams []models.Team
	if err := tx.Where("league_id = ?", episode.LeagueID).Find(&teams).Error; err != nil {
		return fmt.Errorf("failed to fetch teams: %w", err)
	}
	for i := range teams {
		team := &teams[i]
		if !team.DraftedContestants.Contains(contestant.ID) {
			continue
		}
		team.TotalPoints += points
		if team.EpisodeScores == nil {
			team.EpisodeScores = models.EpisodeScores{}
		}
		team.EpisodeScores.Apply(episode.Number, points)
		if err := tx.Save(team).Error; err != nil {
			return fmt.Errorf("failed to update team totals: %w", err)
		}
	}

	episode.EventCount += eventCountDelta
	if err := tx.Save(episode).Error; err != nil {
		return fmt.Errorf("failed to update episode event count: %w", err)
	}
	return nil
}

// EliminateContestant marks a contestant eliminated at the given episode
// number (the active episode's number when nil). Point totals are untouched.
func EliminateContestant(contestantID string, episodeNumber *int) (*models.Contestant, error) {
	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ?", contestantID).Error; err != nil {
		return nil, ErrContestantNotFound
	}

	marker := episodeNumber
	if marker == nil {
		var active models.Episode
		if err := database.DB.First(&active, "league_id = ? AND is_active = true", contestant.LeagueID).Error; err == nil {
			marker = &active.Number
		}
	}

	updates := map[string]interface{}{
		"is_eliminated":       true,
		"elimination_episode": marker,
	}
	if err := database.DB.Model(&contestant).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to eliminate contestant: %w", err)
	}
	contestant.IsEliminated = true
	contestant.EliminationEpisode = marker

	Notify(contestant.LeagueID, models.NotificationElimination, "Contestant eliminated",
		fmt.Sprintf("%s has been eliminated", contestant.Name), nil)
	return &contestant, nil
}

// RestoreContestant clears the elimination flag and marker
func RestoreContestant(contestantID string) (*models.Contestant, error) {
	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ?", contestantID).Error; err != nil {
		return nil, ErrContestantNotFound
	}

	updates := map[string]interface{}{
		"is_eliminated":       false,
		"elimination_episode": nil,
	}
	if err := database.DB.Model(&contestant).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to restore contestant: %w", err)
	}
	contestant.IsEliminated = false
	contestant.EliminationEpisode = nil

	Notify(contestant.LeagueID, models.NotificationElimination, "Contestant restored",
		fmt.Sprintf("%s is back in the running", contestant.Name), nil)
	return &contestant, nil
}

// RecomputeResult summarizes a full recomputation pass
type RecomputeResult struct {
	Events      int `json:"events"`
	Contestants int `json:"contestants"`
	Teams       int `json:"teams"`
}

// RecomputeLeagueTotals rebuilds every contestant and team total of a league
// from the full scoring event history. The incremental maintenance done by
// ScoreAction/UndoScoringEvent must produce the same result; this is the
// consistency check and repair path.
func RecomputeLeagueTotals(leagueID string) (*RecomputeResult, error) {
	defer metrics.RecordDBOperation("recompute", "scoring_events", time.Now())

	var events []models.ScoringEvent
	if err := database.DB.Where("league_id = ?", leagueID).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scoring events: %w", err)
	}

	var episodes []models.Episode
	if err := database.DB.Where("league_id = ?", leagueID).Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch episodes: %w", err)
	}
	episodeNumbers := make(map[string]int, len(episodes))
	for _, episode := range episodes {
		episodeNumbers[episode.ID] = episode.Number
	}

	contestants, err := LeagueContestants(leagueID)
	if err != nil {
		return nil, err
	}
	teams, err := LeagueTeams(leagueID)
	if err != nil {
		return nil, err
	}

	// Rebuild from scratch
	contestantTotals := make(map[string]int)
	contestantEpisodes := make(map[string]models.EpisodeScores)
	for _, contestant := range contestants {
		contestantEpisodes[contestant.ID] = models.EpisodeScores{}
	}
	for _, event := range events {
		contestantTotals[event.ContestantID] += event.Points
		if scores, ok := contestantEpisodes[event.ContestantID]; ok {
			scores.Apply(episodeNumbers[event.EpisodeID], event.Points)
		}
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for i := range contestants {
			contestant := &contestants[i]
			contestant.TotalPoints = contestantTotals[contestant.ID]
			contestant.EpisodeScores = contestantEpisodes[contestant.ID]
			if err := tx.Save(contestant).Error; err != nil {
				return fmt.Errorf("failed to save contestant %s: %w", contestant.ID, err)
			}
		}
		for i := range teams {
			team := &teams[i]
			team.TotalPoints = 0
			team.EpisodeScores = models.EpisodeScores{}
			for _, contestantID := range team.DraftedContestants {
				team.TotalPoints += contestantTotals[contestantID]
				for episode, points := range contestantEpisodes[contestantID] {
					team.EpisodeScores.Apply(episode, points)
				}
			}
			if err := tx.Save(team).Error; err != nil {
				return fmt.Errorf("failed to save team %s: %w", team.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Log.Infof("recomputed totals for league %s from %d events", leagueID, len(events))
	InvalidateStandingsCache(leagueID)

	return &RecomputeResult{
		Events:      len(events),
		Contestants: len(contestants),
		Teams:       len(teams),
	}, nil
}
