package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askme-forum/backend/internal/forum"
	"github.com/askme-forum/backend/internal/models"
)

type VoteHandler struct {
	svc *forum.Service
}

func NewVoteHandler(svc *forum.Service) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// CastVote records a like/dislike on a question or answer and returns the
// target's new rating (PROTECTED - requires authentication)
func (h *VoteHandler) CastVote(c *gin.Context) {
	var input models.CastVoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID, ok := extractProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	kind, err := forum.ParseTargetKind(input.TargetKind)
	if err != nil {
		respondForumError(c, err)
		return
	}
	ref := forum.TargetRef{Kind: kind, ID: input.TargetID}

	rating, err := h.svc.CastVote(c.Request.Context(), profileID, ref, input.Value)
	if errors.Is(err, forum.ErrConstraintViolation) {
		// Lost a race with another cast; the upsert is retryable exactly once.
		rating, err = h.svc.CastVote(c.Request.Context(), profileID, ref, input.Value)
	}
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rating": rating,
		"value":  input.Value,
		"target": ref,
	})
}
