package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/askme-forum/backend/internal/forum"
	"github.com/askme-forum/backend/internal/models"
)

type AnswerHandler struct {
	db  *gorm.DB
	svc *forum.Service
}

func NewAnswerHandler(db *gorm.DB, svc *forum.Service) *AnswerHandler {
	return &AnswerHandler{db: db, svc: svc}
}

// CreateAnswer posts an answer to a question (PROTECTED - requires authentication)
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var input models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID, ok := extractProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	var question models.Question
	if err := h.db.First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	answer := models.Answer{
		QuestionID: question.ID,
		Body:       input.Body,
		AuthorID:   profileID,
	}
	if err := h.db.Create(&answer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create answer"})
		return
	}

	h.db.Preload("Author").Preload("Author.User").First(&answer, answer.ID)

	c.JSON(http.StatusCreated, answer)
}

// MarkCorrect toggles the correct flag on an answer; only the question's
// author may do this (PROTECTED - requires authentication)
func (h *AnswerHandler) MarkCorrect(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	answerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	isCorrect, err := h.svc.MarkCorrect(c.Request.Context(), userID, answerID)
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_correct": isCorrect})
}
