package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// League lifecycle statuses
const (
	LeagueStatusCreated         = "created"
	LeagueStatusDraftInProgress = "draft_in_progress"
	LeagueStatusActive          = "active"
	LeagueStatusCompleted       = "completed"
	LeagueStatusArchived        = "archived"
)

// Draft formats recognized in league settings
const (
	DraftFormatSnake  = "snake"
	DraftFormatLinear = "linear"
)

// ScoringRule defines the point value for one action type
type ScoringRule struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// LeagueSettings holds the typed league configuration stored as JSONB
type LeagueSettings struct {
	MaxTeams             int                    `json:"max_teams"`
	DraftFormat          string                 `json:"draft_format"`
	ContestantDraftLimit int                    `json:"contestant_draft_limit"`
	ScoringRules         map[string]ScoringRule `json:"scoring_rules"`
	NotifyDraft          bool                   `json:"notify_draft"`
	NotifyScoring        bool                   `json:"notify_scoring"`
}

// DefaultLeagueSettings returns the settings a new league starts with,
// including the standard Bachelor scoring rule table
func DefaultLeagueSettings() LeagueSettings {
	return LeagueSettings{
		MaxTeams:             8,
		DraftFormat:          DraftFormatSnake,
		ContestantDraftLimit: 5,
		NotifyDraft:          true,
		NotifyScoring:        true,
		ScoringRules: map[string]ScoringRule{
			"rose_received":    {Label: "Received a rose", Points: 5},
			"first_impression": {Label: "First impression rose", Points: 10},
			"one_on_one_date":  {Label: "One-on-one date", Points: 10},
			"group_date_rose":  {Label: "Group date rose", Points: 7},
			"kiss":             {Label: "Kiss", Points: 3},
			"hometown_visit":   {Label: "Hometown visit", Points: 15},
			"fantasy_suite":    {Label: "Fantasy suite invite", Points: 20},
			"crying":           {Label: "Cried on camera", Points: 2},
			"drama_started":    {Label: "Started drama", Points: -5},
			"left_voluntarily": {Label: "Left voluntarily", Points: -10},
			"eliminated":       {Label: "Eliminated", Points: -3},
			"final_rose":       {Label: "Received the final rose", Points: 50},
		},
	}
}

// Validate checks the settings and returns a map of field name to error message.
// An empty map means the settings are valid.
func (s LeagueSettings) Validate() map[string]string {
	errors := make(map[string]string)
	if s.MaxTeams < 2 {
		errors["max_teams"] = "must allow at least 2 teams"
	}
	if s.MaxTeams > 20 {
		errors["max_teams"] = "cannot exceed 20 teams"
	}
	if s.DraftFormat != DraftFormatSnake && s.DraftFormat != DraftFormatLinear {
		errors["draft_format"] = fmt.Sprintf("must be %q or %q", DraftFormatSnake, DraftFormatLinear)
	}
	if s.ContestantDraftLimit < 1 {
		errors["contestant_draft_limit"] = "must be at least 1"
	}
	if len(s.ScoringRules) == 0 {
		errors["scoring_rules"] = "at least one scoring rule is required"
	}
	for action, rule := range s.ScoringRules {
		if action == "" {
			errors["scoring_rules"] = "action type cannot be empty"
		}
		if rule.Points == 0 {
			errors["scoring_rules"] = fmt.Sprintf("rule %q must have a non-zero point value", action)
		}
	}
	return errors
}

// Value implements driver.Valuer so gorm can persist the settings as JSONB
func (s LeagueSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *LeagueSettings) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan league settings: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, s)
}

// League represents a fantasy league built around one season of the show
type League struct {
	ID             string         `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	Season         string         `gorm:"type:varchar(50);not null" json:"season"`
	JoinCode       string         `gorm:"type:varchar(12);unique;not null;column:join_code" json:"join_code"`
	CommissionerID string         `gorm:"type:uuid;not null;column:commissioner_id" json:"commissioner_id"`
	Status         string         `gorm:"type:varchar(30);not null;default:'created'" json:"status"`
	Settings       LeagueSettings `gorm:"type:jsonb;not null" json:"settings"`
	Commissioner   *User          `gorm:"foreignKey:CommissionerID" json:"commissioner,omitempty"`
	Teams          []*Team        `gorm:"foreignKey:LeagueID" json:"teams,omitempty"`
	Contestants    []*Contestant  `gorm:"foreignKey:LeagueID" json:"contestants,omitempty"`
	Episodes       []*Episode     `gorm:"foreignKey:LeagueID" json:"episodes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ValidStatusTransition reports whether a league may move from one status to another
func ValidStatusTransition(from, to string) bool {
	allowed := map[string][]string{
		LeagueStatusCreated:         {LeagueStatusDraftInProgress},
		LeagueStatusDraftInProgress: {LeagueStatusActive, LeagueStatusCreated},
		LeagueStatusActive:          {LeagueStatusCompleted},
		LeagueStatusCompleted:       {LeagueStatusArchived},
		LeagueStatusArchived:        {},
	}
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}
