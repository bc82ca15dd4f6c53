package models

import "time"

// Profile is the forum-facing identity of an account. Answers and votes are
// keyed by profile, questions by the account itself.
type Profile struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	UserID int    `gorm:"unique;not null" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`
	Avatar string `json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
