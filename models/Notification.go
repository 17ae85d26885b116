package models

import "time"

// Notification types emitted by the orchestrators
const (
	NotificationDraftStarted   = "draft_started"
	NotificationDraftTurn      = "draft_turn"
	NotificationDraftPickMade  = "draft_pick_made"
	NotificationDraftPaused    = "draft_paused"
	NotificationDraftResumed   = "draft_resumed"
	NotificationDraftCompleted = "draft_completed"
	NotificationScoringEvent   = "scoring_event"
	NotificationScoringUndo    = "scoring_undo"
	NotificationElimination    = "elimination"
)

// Notification is an ephemeral record describing a state change, fanned out
// to connected clients of the league. It is a hint to re-fetch authoritative
// state, not the state itself; expired records are purged by a background
// sweeper.
type Notification struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	LeagueID     string    `gorm:"type:uuid;not null;index;column:league_id" json:"league_id"`
	Type         string    `gorm:"type:varchar(50);not null" json:"type"`
	Title        string    `gorm:"type:varchar(100);not null" json:"title"`
	Message      string    `gorm:"type:varchar(255)" json:"message"`
	TargetUserID *string   `gorm:"type:uuid;column:target_user_id" json:"target_user_id"`
	ExpiresAt    time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
