package forum

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askme-forum/backend/internal/models"
)

func TestCastVoteAggregates(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, _ := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())
	ref := TargetRef{Kind: KindQuestion, ID: question.ID}

	_, voterA := seedUser(t)
	rating, err := testSvc.CastVote(ctx, voterA.ID, ref, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rating)

	_, voterB := seedUser(t)
	rating, err = testSvc.CastVote(ctx, voterB.ID, ref, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, rating)
}

func TestRevoteReplacesVote(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, authorProfile := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())
	answer := seedAnswer(t, question, authorProfile, time.Now())
	ref := TargetRef{Kind: KindAnswer, ID: answer.ID}

	_, voter := seedUser(t)
	rating, err := testSvc.CastVote(ctx, voter.ID, ref, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rating)

	rating, err = testSvc.CastVote(ctx, voter.ID, ref, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, rating)

	var count int64
	require.NoError(t, testDB.Model(&models.Vote{}).
		Where("profile_id = ? AND target_kind = ? AND target_id = ?", voter.ID, ref.Kind, ref.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count, "revote must overwrite, not add a row")
}

func TestRevoteSameValueIsNoOp(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, _ := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())
	ref := TargetRef{Kind: KindQuestion, ID: question.ID}

	_, voter := seedUser(t)
	for i := 0; i < 3; i++ {
		rating, err := testSvc.CastVote(ctx, voter.ID, ref, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, rating)
	}

	var count int64
	require.NoError(t, testDB.Model(&models.Vote{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCastVoteInvalidValue(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, _ := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())
	_, voter := seedUser(t)

	for _, value := range []int{0, 2, -2, 10} {
		_, err := testSvc.CastVote(ctx, voter.ID, TargetRef{Kind: KindQuestion, ID: question.ID}, value)
		assert.ErrorIs(t, err, ErrInvalidVoteValue)
	}
}

func TestCastVoteUnknownTarget(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	_, voter := seedUser(t)
	_, err := testSvc.CastVote(ctx, voter.ID, TargetRef{Kind: KindQuestion, ID: 9999}, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = testSvc.CastVote(ctx, voter.ID, TargetRef{Kind: KindAnswer, ID: 9999}, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCastVoteInvalidKind(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	_, voter := seedUser(t)
	_, err := testSvc.CastVote(ctx, voter.ID, TargetRef{Kind: "tag", ID: 1}, 1)
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestCastVoteAnonymous(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, _ := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())

	_, err := testSvc.CastVote(ctx, 0, TargetRef{Kind: KindQuestion, ID: question.ID}, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRatingZeroWithoutVotes(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, _ := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())

	rating, err := testSvc.Rating(ctx, TargetRef{Kind: KindQuestion, ID: question.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, rating)
}

// Simultaneous casts by one voter on one target must collapse to a single
// row; the upsert is a single statement guarded by the unique index, never a
// read-then-write.
func TestConcurrentCastsKeepOneRow(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, _ := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())
	ref := TargetRef{Kind: KindQuestion, ID: question.ID}
	_, voter := seedUser(t)

	const casts = 16
	errs := make(chan error, casts)
	var wg sync.WaitGroup
	for i := 0; i < casts; i++ {
		value := 1
		if i%2 == 1 {
			value = -1
		}
		wg.Add(1)
		go func(value int) {
			defer wg.Done()
			_, err := testSvc.CastVote(ctx, voter.ID, ref, value)
			errs <- err
		}(value)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, testDB.Model(&models.Vote{}).
		Where("profile_id = ? AND target_kind = ? AND target_id = ?", voter.ID, ref.Kind, ref.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count, "concurrent casts must never leave two rows")

	// Whichever cast committed last, the voter contributes exactly one value.
	rating, err := testSvc.Rating(ctx, ref)
	require.NoError(t, err)
	assert.Contains(t, []int{-1, 1}, rating)
}

// A vote on question N and a vote on answer N are distinct ledger rows even
// when the ids collide.
func TestVoteTargetsAreKindScoped(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	author, authorProfile := seedUser(t)
	question := seedQuestion(t, author, "q", time.Now())
	answer := seedAnswer(t, question, authorProfile, time.Now())

	_, voter := seedUser(t)
	_, err := testSvc.CastVote(ctx, voter.ID, TargetRef{Kind: KindQuestion, ID: question.ID}, 1)
	require.NoError(t, err)
	_, err = testSvc.CastVote(ctx, voter.ID, TargetRef{Kind: KindAnswer, ID: answer.ID}, -1)
	require.NoError(t, err)

	qRating, err := testSvc.Rating(ctx, TargetRef{Kind: KindQuestion, ID: question.ID})
	require.NoError(t, err)
	aRating, err := testSvc.Rating(ctx, TargetRef{Kind: KindAnswer, ID: answer.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, qRating)
	assert.Equal(t, -1, aRating)
}
