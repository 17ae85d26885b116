package models

import "time"

// Contestant represents one contestant of the season within a league
type Contestant struct {
	ID                 string        `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	LeagueID           string        `gorm:"type:uuid;not null;column:league_id" json:"league_id"`
	Name               string        `gorm:"type:varchar(100);not null" json:"name"`
	Age                int           `gorm:"type:integer" json:"age"`
	Hometown           string        `gorm:"type:varchar(100)" json:"hometown"`
	Occupation         string        `gorm:"type:varchar(100)" json:"occupation"`
	PhotoURL           string        `gorm:"type:varchar(512);column:photo_url" json:"photo_url"`
	IsEliminated       bool          `gorm:"not null;default:false;column:is_eliminated" json:"is_eliminated"`
	EliminationEpisode *int          `gorm:"type:integer;column:elimination_episode" json:"elimination_episode"`
	TotalPoints        int           `gorm:"type:integer;not null;default:0;column:total_points" json:"total_points"`
	EpisodeScores      EpisodeScores `gorm:"type:jsonb;not null;default:'{}';column:episode_scores" json:"episode_scores"`
	League             *League       `gorm:"foreignKey:LeagueID" json:"-"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
