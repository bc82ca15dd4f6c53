package models

import "time"

// Vote is one signed vote by a profile on a question or an answer. The
// composite unique index holds a voter to one live vote per target; a revote
// overwrites the row in place and refreshes cast_at.
type Vote struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	ProfileID  int       `gorm:"not null;uniqueIndex:idx_voter_target,priority:1" json:"profile_id"`
	TargetKind string    `gorm:"size:16;not null;uniqueIndex:idx_voter_target,priority:2" json:"target_kind"`
	TargetID   int       `gorm:"not null;uniqueIndex:idx_voter_target,priority:3" json:"target_id"`
	Value      int       `gorm:"not null" json:"value"` // +1 or -1
	CastAt     time.Time `gorm:"not null" json:"cast_at"`
}

// CastVoteRequest carries no binding rules beyond JSON shape: kind, id and
// value are validated by the core so its failure taxonomy answers, not a
// generic binding error.
type CastVoteRequest struct {
	TargetKind string `json:"target_kind"`
	TargetID   int    `json:"target_id"`
	Value      int    `json:"value"`
}
