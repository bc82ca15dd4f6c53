package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/askme-forum/backend/internal/forum"
	"github.com/askme-forum/backend/internal/models"
)

type QuestionHandler struct {
	db  *gorm.DB
	svc *forum.Service
}

func NewQuestionHandler(db *gorm.DB, svc *forum.Service) *QuestionHandler {
	return &QuestionHandler{db: db, svc: svc}
}

func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}

// ListQuestions returns a page of questions with ratings and answer counts.
// ?order=recency|popularity, ?tag=<id or exact name>, ?page=, ?page_size=
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	order, err := forum.ParseOrder(c.Query("order"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var filter *forum.TagFilter
	if tag := c.Query("tag"); tag != "" {
		if id, err := strconv.Atoi(tag); err == nil {
			filter = &forum.TagFilter{ID: id}
		} else {
			filter = &forum.TagFilter{Name: tag}
		}
	}

	page, err := h.svc.ListQuestions(c.Request.Context(), order, filter, queryInt(c, "page"), queryInt(c, "page_size"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":   page.Items,
		"page":        page.Number,
		"total_pages": page.TotalPages,
		"total_items": page.TotalItems,
		"page_size":   page.PageSize,
	})
}

// GetQuestion returns a single question with a ranked page of its answers
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	question, answers, err := h.svc.GetQuestion(c.Request.Context(), id, queryInt(c, "page"), queryInt(c, "page_size"))
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question":     question,
		"answer_count": question.AnswerCount,
		"answers":      answers.Items,
		"page":         answers.Number,
		"total_pages":  answers.TotalPages,
		"page_size":    answers.PageSize,
	})
}

// CreateQuestion creates a new question with its tags; unknown tag names are
// created on first use (PROTECTED - requires authentication)
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var tags []models.Tag
	for _, name := range input.Tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := h.db.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
			return
		}
		tags = append(tags, tag)
	}

	question := models.Question{
		Title:    input.Title,
		Body:     input.Body,
		AuthorID: userID,
		Tags:     tags,
	}
	if err := h.db.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	h.db.Preload("Tags").Preload("Author").First(&question, question.ID)

	c.JSON(http.StatusCreated, question)
}

// ListTags returns the tag directory
func (h *QuestionHandler) ListTags(c *gin.Context) {
	var tags []models.Tag
	if err := h.db.Order("name").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	c.JSON(http.StatusOK, tags)
}
