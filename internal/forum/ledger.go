package forum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm/clause"

	"github.com/askme-forum/backend/internal/models"
)

// CastVote records the voter's vote on the target and returns the target's
// new rating. A revote overwrites the existing row's value and cast_at; the
// write is a single INSERT ... ON CONFLICT statement against the
// (profile_id, target_kind, target_id) unique index, so two concurrent casts
// from the same voter can never leave two rows. There is no way to delete a
// vote; recasting the same value is a successful no-op.
func (s *Service) CastVote(ctx context.Context, profileID int, ref TargetRef, value int) (int, error) {
	if value != 1 && value != -1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidVoteValue, value)
	}
	if profileID <= 0 {
		return 0, fmt.Errorf("%w: anonymous voters cannot vote", ErrPermissionDenied)
	}
	if err := s.resolve(ctx, ref); err != nil {
		return 0, err
	}

	vote := models.Vote{
		ProfileID:  profileID,
		TargetKind: string(ref.Kind),
		TargetID:   ref.ID,
		Value:      value,
		CastAt:     time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "profile_id"},
			{Name: "target_kind"},
			{Name: "target_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":   vote.Value,
			"cast_at": vote.CastAt,
		}),
	}).Create(&vote).Error
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: concurrent vote on %s %d", ErrConstraintViolation, ref.Kind, ref.ID)
		}
		return 0, err
	}

	return s.Rating(ctx, ref)
}

// Rating sums the target's votes at query time. No stored counter exists;
// a target with no votes rates 0, never null.
func (s *Service) Rating(ctx context.Context, ref TargetRef) (int, error) {
	var rating int
	err := s.db.WithContext(ctx).Model(&models.Vote{}).
		Select("COALESCE(SUM(value), 0)").
		Where("target_kind = ? AND target_id = ?", ref.Kind, ref.ID).
		Scan(&rating).Error
	return rating, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
