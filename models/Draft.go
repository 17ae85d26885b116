package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Draft statuses
const (
	DraftStatusNotStarted = "not_started"
	DraftStatusInProgress = "in_progress"
	DraftStatusPaused     = "paused"
	DraftStatusCompleted  = "completed"
)

// DraftPick is one recorded pick in the append-only pick log
type DraftPick struct {
	PickNumber   int       `json:"pick_number"`
	TeamID       string    `json:"team_id"`
	ContestantID string    `json:"contestant_id"`
	PickedAt     time.Time `json:"picked_at"`
}

// PickList is the append-only pick log stored as a JSONB array
type PickList []DraftPick

// Value implements driver.Valuer
func (p PickList) Value() (driver.Value, error) {
	if p == nil {
		p = PickList{}
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *PickList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan pick list: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, p)
}

// Draft sequences the picks of one league. A league has at most one draft.
type Draft struct {
	ID            string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	LeagueID      string     `gorm:"type:uuid;unique;not null;column:league_id" json:"league_id"`
	Status        string     `gorm:"type:varchar(30);not null;default:'not_started'" json:"status"`
	CurrentPick   int        `gorm:"type:integer;not null;default:0;column:current_pick" json:"current_pick"`
	DraftOrder    StringList `gorm:"type:jsonb;not null;default:'[]';column:draft_order" json:"draft_order"`
	Picks         PickList   `gorm:"type:jsonb;not null;default:'[]'" json:"picks"`
	TurnStartedAt *time.Time `gorm:"column:turn_started_at" json:"turn_started_at"`
	League        *League    `gorm:"foreignKey:LeagueID" json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TotalPicks returns the number of picks the draft runs for, given the
// per-team contestant draft limit from the league settings
func (d *Draft) TotalPicks(contestantDraftLimit int) int {
	return len(d.DraftOrder) * contestantDraftLimit
}

// CurrentTurnTeam returns the id of the team whose turn it is.
// Linear format cycles through the order; snake format reverses direction
// every full pass (even passes forward, odd passes reversed).
func (d *Draft) CurrentTurnTeam(format string) string {
	teams := len(d.DraftOrder)
	if teams == 0 {
		return ""
	}
	index := d.CurrentPick % teams
	if format == DraftFormatSnake {
		pass := d.CurrentPick / teams
		if pass%2 == 1 {
			index = teams - 1 - index
		}
	}
	return d.DraftOrder[index]
}
