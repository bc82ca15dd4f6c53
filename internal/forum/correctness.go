package forum

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/askme-forum/backend/internal/models"
)

// MarkCorrect toggles the correct flag on an answer and returns the new flag.
// Only the question's author may call it. An already-correct answer is
// unmarked; otherwise every sibling is cleared and this answer set, inside
// one transaction holding a row lock on the question, so two racing marks on
// the same question serialize and at most one answer ends up correct.
func (s *Service) MarkCorrect(ctx context.Context, actorUserID, answerID int) (bool, error) {
	if actorUserID <= 0 {
		return false, fmt.Errorf("%w: authentication required", ErrPermissionDenied)
	}

	var marked bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.First(&answer, answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
			}
			return err
		}

		var question models.Question
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&question, answer.QuestionID).Error; err != nil {
			return err
		}
		if question.AuthorID != actorUserID {
			return fmt.Errorf("%w: only the question author can mark answers", ErrPermissionDenied)
		}

		// Re-read the flag now that the question is locked; a racing toggle
		// may have flipped it between the first read and the lock.
		if err := tx.First(&answer, answerID).Error; err != nil {
			return err
		}

		if answer.IsCorrect {
			marked = false
			return tx.Model(&models.Answer{}).
				Where("id = ?", answer.ID).
				Update("is_correct", false).Error
		}

		if err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND is_correct", answer.QuestionID).
			Update("is_correct", false).Error; err != nil {
			return err
		}
		marked = true
		return tx.Model(&models.Answer{}).
			Where("id = ?", answer.ID).
			Update("is_correct", true).Error
	})
	if err != nil {
		return false, err
	}
	return marked, nil
}
