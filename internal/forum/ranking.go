package forum

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/askme-forum/backend/internal/models"
)

// Order selects a question listing order.
type Order string

const (
	// OrderRecency sorts by created_at descending, id descending.
	OrderRecency Order = "recency"
	// OrderPopularity sorts by rating descending, then created_at descending
	// (newer wins ties), then id descending. Strict total order.
	OrderPopularity Order = "popularity"
)

// ParseOrder maps a request parameter to an Order. Empty means recency.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", string(OrderRecency):
		return OrderRecency, nil
	case string(OrderPopularity):
		return OrderPopularity, nil
	default:
		return "", fmt.Errorf("unknown order %q", s)
	}
}

// TagFilter restricts a listing to questions carrying one tag. Matching is by
// id when ID is set, otherwise by exact case-sensitive name. Filtering and
// ordering compose; neither knows about the other.
type TagFilter struct {
	ID   int
	Name string
}

// QuestionListing is a question annotated with its query-time aggregates.
type QuestionListing struct {
	models.Question
	Rating      int `json:"rating"`
	AnswerCount int `json:"answer_count"`
}

// AnswerListing is an answer annotated with its query-time rating.
type AnswerListing struct {
	models.Answer
	Rating int `json:"rating"`
}

const (
	questionRatingJoin = "LEFT JOIN (SELECT target_id, SUM(value) AS rating FROM votes WHERE target_kind = 'question' GROUP BY target_id) vr ON vr.target_id = questions.id"
	answerCountJoin    = "LEFT JOIN (SELECT question_id, COUNT(*) AS answer_count FROM answers GROUP BY question_id) ac ON ac.question_id = questions.id"
	answerRatingJoin   = "LEFT JOIN (SELECT target_id, SUM(value) AS rating FROM votes WHERE target_kind = 'answer' GROUP BY target_id) vr ON vr.target_id = answers.id"
)

// ListQuestions returns one page of questions in the requested order, each
// annotated with rating and answer count. Ratings for the whole page come
// from one grouped aggregation joined into the listing query, not from
// per-row lookups.
func (s *Service) ListQuestions(ctx context.Context, order Order, filter *TagFilter, requestedPage, pageSize int) (Page[QuestionListing], error) {
	var empty Page[QuestionListing]
	pageSize = NormalizePageSize(pageSize)

	var total int64
	if err := s.questionsQuery(ctx, filter).Distinct("questions.id").Count(&total).Error; err != nil {
		return empty, err
	}
	page, totalPages, offset := ResolvePage(requestedPage, pageSize, total)

	type listingRow struct {
		ID          int
		Rating      int
		AnswerCount int
	}
	q := s.questionsQuery(ctx, filter).
		Select("questions.id AS id, COALESCE(vr.rating, 0) AS rating, COALESCE(ac.answer_count, 0) AS answer_count").
		Joins(questionRatingJoin).
		Joins(answerCountJoin)
	switch order {
	case OrderPopularity:
		q = q.Order("rating DESC, questions.created_at DESC, questions.id DESC")
	default:
		q = q.Order("questions.created_at DESC, questions.id DESC")
	}

	var rows []listingRow
	if err := q.Limit(pageSize).Offset(offset).Scan(&rows).Error; err != nil {
		return empty, err
	}

	items := make([]QuestionListing, 0, len(rows))
	if len(rows) > 0 {
		ids := make([]int, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
		var questions []models.Question
		if err := s.db.WithContext(ctx).
			Preload("Tags").Preload("Author").
			Where("id IN ?", ids).
			Find(&questions).Error; err != nil {
			return empty, err
		}
		byID := make(map[int]models.Question, len(questions))
		for _, question := range questions {
			byID[question.ID] = question
		}
		// Reassemble in the order the ranking query produced.
		for _, row := range rows {
			items = append(items, QuestionListing{
				Question:    byID[row.ID],
				Rating:      row.Rating,
				AnswerCount: row.AnswerCount,
			})
		}
	}

	return Page[QuestionListing]{
		Items:      items,
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		PageSize:   pageSize,
	}, nil
}

// GetQuestion returns the question annotated with rating and answer count,
// plus one page of its answers in popularity order. Correctness is a flag on
// each answer, never a sort key.
func (s *Service) GetQuestion(ctx context.Context, id, requestedPage, pageSize int) (QuestionListing, Page[AnswerListing], error) {
	var (
		listing   QuestionListing
		emptyPage Page[AnswerListing]
	)
	pageSize = NormalizePageSize(pageSize)

	var question models.Question
	err := s.db.WithContext(ctx).Preload("Tags").Preload("Author").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return listing, emptyPage, fmt.Errorf("%w: question %d", ErrNotFound, id)
		}
		return listing, emptyPage, err
	}

	rating, err := s.Rating(ctx, TargetRef{Kind: KindQuestion, ID: id})
	if err != nil {
		return listing, emptyPage, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Answer{}).Where("question_id = ?", id).Count(&total).Error; err != nil {
		return listing, emptyPage, err
	}
	page, totalPages, offset := ResolvePage(requestedPage, pageSize, total)

	type answerRow struct {
		ID     int
		Rating int
	}
	var rows []answerRow
	err = s.db.WithContext(ctx).Model(&models.Answer{}).
		Select("answers.id AS id, COALESCE(vr.rating, 0) AS rating").
		Joins(answerRatingJoin).
		Where("answers.question_id = ?", id).
		Order("rating DESC, answers.created_at DESC, answers.id DESC").
		Limit(pageSize).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return listing, emptyPage, err
	}

	items := make([]AnswerListing, 0, len(rows))
	if len(rows) > 0 {
		ids := make([]int, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
		var answers []models.Answer
		if err := s.db.WithContext(ctx).
			Preload("Author").Preload("Author.User").
			Where("id IN ?", ids).
			Find(&answers).Error; err != nil {
			return listing, emptyPage, err
		}
		byID := make(map[int]models.Answer, len(answers))
		for _, answer := range answers {
			byID[answer.ID] = answer
		}
		for _, row := range rows {
			items = append(items, AnswerListing{Answer: byID[row.ID], Rating: row.Rating})
		}
	}

	listing = QuestionListing{Question: question, Rating: rating, AnswerCount: int(total)}
	return listing, Page[AnswerListing]{
		Items:      items,
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		PageSize:   pageSize,
	}, nil
}

// questionsQuery builds the filtered base query. Called once for the count
// and once for the page so the two never share a gorm statement.
func (s *Service) questionsQuery(ctx context.Context, filter *TagFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Question{})
	if filter == nil {
		return q
	}
	q = q.Joins("JOIN question_tags ON question_tags.question_id = questions.id").
		Joins("JOIN tags ON tags.id = question_tags.tag_id")
	if filter.ID != 0 {
		return q.Where("tags.id = ?", filter.ID)
	}
	return q.Where("tags.name = ?", filter.Name)
}
