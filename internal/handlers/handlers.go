package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/askme-forum/backend/internal/forum"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Question *QuestionHandler
	Answer   *AnswerHandler
	Vote     *VoteHandler
	User     *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers sharing one
// forum core service.
func NewHandler(db *gorm.DB) *Handler {
	svc := forum.NewService(db)

	return &Handler{
		Auth:     NewAuthHandler(db),
		Question: NewQuestionHandler(db, svc),
		Answer:   NewAnswerHandler(db, svc),
		Vote:     NewVoteHandler(svc),
		User:     NewUserHandler(db),
	}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := raw.(int)
	return id, ok && id > 0
}

func extractProfileID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("profile_id")
	if !exists {
		return 0, false
	}
	id, ok := raw.(int)
	return id, ok && id > 0
}

// respondForumError maps the core's failure taxonomy to HTTP statuses.
func respondForumError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, forum.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, forum.ErrInvalidKind), errors.Is(err, forum.ErrInvalidVoteValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, forum.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, forum.ErrConstraintViolation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
