package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/middleware"
	"github.com/servicehub/marketplace-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"role":         user.Role,
			"full_name":    user.FullName,
			"phone_number": user.PhoneNumber,
		},
	}

	if onboarding.Role(user.Role).IsProvider() {
		var provider models.ServiceProvider
		err := h.db.First(&provider, "id = ?", user.ID).Error
		switch {
		case err == nil:
			resp["service_provider"] = provider
		case isRecordNotFound(err):
			resp["service_provider"] = nil
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// isRecordNotFound cobre também erros embrulhados, que escapariam de
// uma comparação por identidade.
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
