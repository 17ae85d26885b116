package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of ids stored as a JSONB array
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan string list: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, l)
}

// Contains reports whether the list holds the given id
func (l StringList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// EpisodeScores maps an episode number to the points accumulated in that episode,
// stored as a JSONB object
type EpisodeScores map[int]int

// Value implements driver.Valuer
func (s EpisodeScores) Value() (driver.Value, error) {
	if s == nil {
		s = EpisodeScores{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *EpisodeScores) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan episode scores: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, s)
}

// Apply adds a point delta to an episode's entry. Entries that net to zero
// are removed so that incremental maintenance and a full recomputation from
// the event history produce identical maps.
func (s EpisodeScores) Apply(episode, delta int) {
	s[episode] += delta
	if s[episode] == 0 {
		delete(s, episode)
	}
}

// Latest returns the points of the highest-numbered episode entry, or 0 if none exist
func (s EpisodeScores) Latest() int {
	latest := -1
	points := 0
	for episode, pts := range s {
		if episode > latest {
			latest = episode
			points = pts
		}
	}
	return points
}

// Team represents one user's fantasy team within a league
type Team struct {
	ID                 string        `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	LeagueID           string        `gorm:"type:uuid;not null;column:league_id" json:"league_id"`
	OwnerID            string        `gorm:"type:uuid;not null;column:owner_id" json:"owner_id"`
	Name               string        `gorm:"type:varchar(100);not null" json:"name"`
	DraftedContestants StringList    `gorm:"type:jsonb;not null;default:'[]';column:drafted_contestants" json:"drafted_contestants"`
	TotalPoints        int           `gorm:"type:integer;not null;default:0;column:total_points" json:"total_points"`
	EpisodeScores      EpisodeScores `gorm:"type:jsonb;not null;default:'{}';column:episode_scores" json:"episode_scores"`
	League             *League       `gorm:"foreignKey:LeagueID" json:"-"`
	Owner              *User         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
