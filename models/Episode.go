package models

import "time"

// Episode represents one aired installment of the show within a league.
// At most one episode per league is active at a time; scoring events are
// only accepted against the active episode.
type Episode struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	LeagueID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_league_episode_number;column:league_id" json:"league_id"`
	Number     int       `gorm:"type:integer;not null;uniqueIndex:idx_league_episode_number" json:"number"`
	Title      string    `gorm:"type:varchar(100)" json:"title"`
	IsActive   bool      `gorm:"not null;default:false;column:is_active" json:"is_active"`
	EventCount int       `gorm:"type:integer;not null;default:0;column:event_count" json:"event_count"`
	League     *League   `gorm:"foreignKey:LeagueID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
