package models

import "time"

// User represents a registered user who can commission leagues and own teams
type User struct {
	ID            string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Email         string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password      string     `gorm:"type:varchar(255);not null" json:"-"`
	Firstname     string     `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname      string     `gorm:"type:varchar(100);not null" json:"lastname"`
	Blocked       bool       `gorm:"not null;default:false" json:"blocked"`
	LastConnected *time.Time `gorm:"column:last_connected" json:"last_connected"`
	CreatedAt     time.Time  `json:"created_at"`
}
