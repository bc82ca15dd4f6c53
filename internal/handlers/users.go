package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/askme-forum/backend/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetMe returns the authenticated user's account and profile (PROTECTED)
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile
	if err := h.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         profile.User.ID,
		"username":   profile.User.Username,
		"email":      profile.User.Email,
		"profile_id": profile.ID,
		"avatar":     profile.Avatar,
	})
}

// UpdateMe updates the authenticated user's settings (PROTECTED)
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Email  string `json:"email"`
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.Profile
	if err := h.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Email != "" {
		var other models.User
		if err := h.db.Where("email = ? AND id <> ?", input.Email, userID).First(&other).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
			return
		}
		if err := h.db.Model(&profile.User).Update("email", input.Email).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email"})
			return
		}
	}
	if input.Avatar != "" {
		if err := h.db.Model(&profile).Update("avatar", input.Avatar).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         profile.User.ID,
		"username":   profile.User.Username,
		"email":      profile.User.Email,
		"profile_id": profile.ID,
		"avatar":     profile.Avatar,
	})
}
