package models

import "time"

type Answer struct {
	ID         int      `gorm:"primaryKey" json:"id"`
	QuestionID int      `gorm:"not null;index" json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Body       string   `gorm:"not null" json:"body"`
	AuthorID   int      `gorm:"not null;index" json:"author_id"`
	Author     Profile  `gorm:"foreignKey:AuthorID" json:"author"`
	IsCorrect  bool     `gorm:"not null;default:false" json:"is_correct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAnswerRequest struct {
	Body string `json:"body" binding:"required"`
}
