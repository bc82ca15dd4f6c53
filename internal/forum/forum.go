package forum

import "gorm.io/gorm"

// Service implements the voting and ranking core on top of the shared
// relational store. It holds no state of its own; every call recomputes from
// the store, so any number of workers can share one database.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}
