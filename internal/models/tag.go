package models

// Tag names are unique and matched exactly, case included.
type Tag struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
