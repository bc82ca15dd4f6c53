package forum

import (
	"context"
	"fmt"

	"github.com/askme-forum/backend/internal/models"
)

// TargetKind discriminates what a vote attaches to. The set is closed: only
// questions and answers take votes.
type TargetKind string

const (
	KindQuestion TargetKind = "question"
	KindAnswer   TargetKind = "answer"
)

func ParseTargetKind(s string) (TargetKind, error) {
	switch kind := TargetKind(s); kind {
	case KindQuestion, KindAnswer:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// TargetRef addresses one votable entity: which kind, which row.
type TargetRef struct {
	Kind TargetKind `json:"kind"`
	ID   int        `json:"id"`
}

// resolve verifies the referenced row exists. Every ledger write goes through
// this first; the vote table itself carries no cross-kind foreign key, so a
// vote must never reach the ledger unresolved.
func (s *Service) resolve(ctx context.Context, ref TargetRef) error {
	var count int64
	var err error
	switch ref.Kind {
	case KindQuestion:
		err = s.db.WithContext(ctx).Model(&models.Question{}).Where("id = ?", ref.ID).Count(&count).Error
	case KindAnswer:
		err = s.db.WithContext(ctx).Model(&models.Answer{}).Where("id = ?", ref.ID).Count(&count).Error
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, ref.Kind)
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s %d", ErrNotFound, ref.Kind, ref.ID)
	}
	return nil
}
