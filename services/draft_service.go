package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"api/database"
	"api/logging"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// State errors surfaced by the draft orchestrator. Handlers map these to
// descriptive HTTP responses; none of them leaves partial state behind.
var (
	ErrDraftExists        = errors.New("a draft already exists for this league")
	ErrDraftNotFound      = errors.New("no draft exists for this league")
	ErrDraftNotInProgress = errors.New("draft is not in progress")
	ErrDraftNotPaused     = errors.New("draft is not paused")
	ErrNotYourTurn        = errors.New("it is not this team's turn to pick")
	ErrAlreadyDrafted     = errors.New("contestant is already drafted in this league")
	ErrTeamAtDraftLimit   = errors.New("team has already drafted the maximum number of contestants")
	ErrNotEnoughTeams     = errors.New("at least 2 teams are required to start a draft")
)

// StartDraft creates the league's draft and opens the first turn.
// The draft order is the league's teams in creation order, optionally
// shuffled. The league moves to draft_in_progress.
func StartDraft(leagueID string, randomize bool) (*models.Draft, error) {
	var league models.League
	if err := database.DB.First(&league, "id = ?", leagueID).Error; err != nil {
		return nil, fmt.Errorf("league not found")
	}

	var existing models.Draft
	err := database.DB.First(&existing, "league_id = ?", leagueID).Error
	if err == nil {
		return nil, ErrDraftExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing draft: %w", err)
	}

	teams, err := LeagueTeams(leagueID)
	if err != nil {
		return nil, err
	}
	if len(teams) < 2 {
		return nil, ErrNotEnoughTeams
	}

	order := make(models.StringList, len(teams))
	for i, team := range teams {
		order[i] = team.ID
	}
	if randomize {
		rand.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	now := time.Now()
	draft := models.Draft{
		LeagueID:      leagueID,
		Status:        models.DraftStatusInProgress,
		CurrentPick:   0,
		DraftOrder:    order,
		Picks:         models.PickList{},
		TurnStartedAt: &now,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&draft).Error; err != nil {
			return fmt.Errorf("failed to create draft: %w", err)
		}
		if err := tx.Model(&league).Update("status", models.LeagueStatusDraftInProgress).Error; err != nil {
			return fmt.Errorf("failed to update league status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Log.Infof("draft started for league %s with %d teams", leagueID, len(order))

	if league.Settings.NotifyDraft {
		Notify(leagueID, models.NotificationDraftStarted, "Draft started",
			fmt.Sprintf("The draft for %s has started", league.Name), nil)
		notifyTurn(&league, &draft)
	}

	return &draft, nil
}

// GetDraft loads the league's draft
func GetDraft(leagueID string) (*models.Draft, error) {
	var draft models.Draft
	if err := database.DB.First(&draft, "league_id = ?", leagueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to fetch draft: %w", err)
	}
	return &draft, nil
}

// MakePick records one pick for the team whose turn it is. The pick log,
// the team's drafted list, the pick counter and the turn timestamp are all
// updated in a single transaction; a rejected pick persists nothing.
func MakePick(leagueID, teamID, contestantID string) (*models.Draft, error) {
	var league models.League
	if err := database.DB.First(&league, "id = ?", leagueID).Error; err != nil {
		return nil, fmt.Errorf("league not found")
	}

	draft, err := GetDraft(leagueID)
	if err != nil {
		return nil, err
	}
	if draft.Status != models.DraftStatusInProgress {
		return nil, ErrDraftNotInProgress
	}

	if draft.CurrentTurnTeam(league.Settings.DraftFormat) != teamID {
		return nil, ErrNotYourTurn
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ? AND league_id = ?", teamID, leagueID).Error; err != nil {
		return nil, fmt.Errorf("team not found in this league")
	}
	if len(team.DraftedContestants) >= league.Settings.ContestantDraftLimit {
		return nil, ErrTeamAtDraftLimit
	}

	var contestant models.Contestant
	if err := database.DB.First(&contestant, "id = ? AND league_id = ?", contestantID, leagueID).Error; err != nil {
		return nil, fmt.Errorf("contestant not found in this league")
	}

	if drafted, err := contestantDrafted(leagueID, contestantID); err != nil {
		return nil, err
	} else if drafted {
		return nil, ErrAlreadyDrafted
	}

	now := time.Now()
	pick := models.DraftPick{
		PickNumber:   draft.CurrentPick,
		TeamID:       teamID,
		ContestantID: contestantID,
		PickedAt:     now,
	}

	draft.Picks = append(draft.Picks, pick)
	draft.CurrentPick++
	draft.TurnStartedAt = &now
	team.DraftedContestants = append(team.DraftedContestants, contestantID)

	completed := draft.CurrentPick >= draft.TotalPicks(league.Settings.ContestantDraftLimit)
	if completed {
		draft.Status = models.DraftStatusCompleted
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(draft).Error; err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
		if err := tx.Save(&team).Error; err != nil {
			return fmt.Errorf("failed to save team: %w", err)
		}
		if completed {
			if err := tx.Model(&league).Update("status", models.LeagueStatusActive).Error; err != nil {
				return fmt.Errorf("failed to update league status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.DraftPicks.WithLabelValues(leagueID).Inc()
	InvalidateStandingsCache(leagueID)

	if league.Settings.NotifyDraft {
		Notify(leagueID, models.NotificationDraftPickMade, "Pick made",
			fmt.Sprintf("%s drafted %s (pick %d)", team.Name, contestant.Name, draft.CurrentPick), nil)
		if completed {
			Notify(leagueID, models.NotificationDraftCompleted, "Draft completed",
				fmt.Sprintf("The draft for %s is complete", league.Name), nil)
		} else {
			notifyTurn(&league, draft)
		}
	}

	return draft, nil
}

// PauseDraft moves an in-progress draft to paused without touching the pick
// counter or the pick log
func PauseDraft(leagueID string) (*models.Draft, error) {
	var league models.League
	if err := database.DB.First(&league, "id = ?", leagueID).Error; err != nil {
		return nil, fmt.Errorf("league not found")
	}

	draft, err := GetDraft(leagueID)
	if err != nil {
		return nil, err
	}
	if draft.Status != models.DraftStatusInProgress {
		return nil, ErrDraftNotInProgress
	}

	if err := database.DB.Model(draft).Update("status", models.DraftStatusPaused).Error; err != nil {
		return nil, fmt.Errorf("failed to pause draft: %w", err)
	}
	draft.Status = models.DraftStatusPaused

	if league.Settings.NotifyDraft {
		Notify(leagueID, models.NotificationDraftPaused, "Draft paused", "The draft has been paused", nil)
	}
	return draft, nil
}

// ResumeDraft moves a paused draft back to in-progress and restarts the
// turn countdown
func ResumeDraft(leagueID string) (*models.Draft, error) {
	var league models.League
	if err := database.DB.First(&league, "id = ?", leagueID).Error; err != nil {
		return nil, fmt.Errorf("league not found")
	}

	draft, err := GetDraft(leagueID)
	if err != nil {
		return nil, err
	}
	if draft.Status != models.DraftStatusPaused {
		return nil, ErrDraftNotPaused
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":          models.DraftStatusInProgress,
		"turn_started_at": now,
	}
	if err := database.DB.Model(draft).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to resume draft: %w", err)
	}
	draft.Status = models.DraftStatusInProgress
	draft.TurnStartedAt = &now

	if league.Settings.NotifyDraft {
		Notify(leagueID, models.NotificationDraftResumed, "Draft resumed", "The draft has been resumed", nil)
	}
	return draft, nil
}

// contestantDrafted reports whether any team of the league already holds the
// contestant, using JSONB containment on the drafted lists
func contestantDrafted(leagueID, contestantID string) (bool, error) {
	needle, err := json.Marshal([]string{contestantID})
	if err != nil {
		return false, err
	}

	var count int64
	if err := database.DB.Model(&models.Team{}).
		Where("league_id = ? AND drafted_contestants @> ?::jsonb", leagueID, string(needle)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check drafted contestants: %w", err)
	}
	return count > 0, nil
}

// notifyTurn emits the draft_turn notification for the team currently on
// the clock, targeted at its owner
func notifyTurn(league *models.League, draft *models.Draft) {
	turnTeamID := draft.CurrentTurnTeam(league.Settings.DraftFormat)
	if turnTeamID == "" {
		return
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", turnTeamID).Error; err != nil {
		logging.Log.Warnf("failed to load turn team %s: %v", turnTeamID, err)
		return
	}

	Notify(league.ID, models.NotificationDraftTurn, "Your turn to pick",
		fmt.Sprintf("%s is on the clock (pick %d)", team.Name, draft.CurrentPick+1), &team.OwnerID)
}
