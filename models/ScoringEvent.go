package models

import "time"

// ScoringEvent represents one point-affecting action recorded against a
// contestant during an episode. Events are immutable once created; the only
// way to reverse one is the explicit undo flow, which deletes the event and
// applies compensating point deltas.
type ScoringEvent struct {
	ID           string      `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	LeagueID     string      `gorm:"type:uuid;not null;column:league_id" json:"league_id"`
	EpisodeID    string      `gorm:"type:uuid;not null;column:episode_id" json:"episode_id"`
	ContestantID string      `gorm:"type:uuid;not null;column:contestant_id" json:"contestant_id"`
	ActionType   string      `gorm:"type:varchar(50);not null;column:action_type" json:"action_type"`
	Points       int         `gorm:"type:integer;not null" json:"points"`
	Description  string      `gorm:"type:varchar(255)" json:"description"`
	ScoredBy     string      `gorm:"type:uuid;not null;column:scored_by" json:"scored_by"`
	Episode      *Episode    `gorm:"foreignKey:EpisodeID" json:"-"`
	Contestant   *Contestant `gorm:"foreignKey:ContestantID" json:"contestant,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
