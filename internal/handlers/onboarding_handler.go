package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/domain/routing"
	"github.com/servicehub/marketplace-api/internal/httperr"
	"github.com/servicehub/marketplace-api/internal/httpresp"
	"github.com/servicehub/marketplace-api/internal/middleware"
	"github.com/servicehub/marketplace-api/internal/models"
	ucOnboarding "github.com/servicehub/marketplace-api/internal/usecase/onboarding"
)

type OnboardingHandler struct {
	db   *gorm.DB
	flow *ucOnboarding.Flow
}

func NewOnboardingHandler(db *gorm.DB, flow *ucOnboarding.Flow) *OnboardingHandler {
	return &OnboardingHandler{db: db, flow: flow}
}

// --------- Requests ---------

type SubmitOnboardingRequest struct {
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	CategoryID      string `json:"category_id"`
	ExperienceYears string `json:"experience_years"`
	HourlyRate      string `json:"hourly_rate"`
}

// --------- Handlers ---------

// Start abre a sessão de onboarding e carrega o snapshot de categorias.
func (h *OnboardingHandler) Start(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	snap, err := h.flow.Start(c.Request.Context(), user)
	if err != nil {
		h.writeSubmitError(c, snap, err)
		return
	}

	httpresp.OK(c, snap)
}

// Get devolve o estado atual da sessão.
func (h *OnboardingHandler) Get(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	snap, found := h.flow.Get(user)
	if !found {
		httperr.NotFound(c, "onboarding_not_started", "No onboarding session for this user.")
		return
	}

	httpresp.OK(c, snap)
}

// Submit valida e executa o commit em duas fases. No sucesso devolve
// também a decisão de rota para o cliente navegar.
func (h *OnboardingHandler) Submit(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req SubmitOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	form := domain.Form{
		FullName:           req.FullName,
		Phone:              req.Phone,
		SelectedCategoryID: req.CategoryID,
		ExperienceYears:    req.ExperienceYears,
		HourlyRate:         req.HourlyRate,
	}

	snap, err := h.flow.Submit(c.Request.Context(), user, form)
	if err != nil {
		h.writeSubmitError(c, snap, err)
		return
	}

	httpresp.OK(c, gin.H{
		"onboarding": snap,
		"route":      routing.Resolve(user),
	})
}

// End descarta a sessão após a navegação de sucesso.
func (h *OnboardingHandler) End(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	h.flow.End(user)
	c.Status(http.StatusNoContent)
}

// --------- Helpers ---------

func (h *OnboardingHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return nil, false
	}

	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return nil, false
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
		return nil, false
	}

	return &user, true
}

func (h *OnboardingHandler) writeSubmitError(c *gin.Context, snap ucOnboarding.Snapshot, err error) {
	var verr domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"message":    verr.Message,
			"onboarding": snap,
		})
		return
	}

	var berr httperr.BusinessError
	if errors.As(err, &berr) {
		status := http.StatusConflict
		if berr.Code == "onboarding_not_started" {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error_code": berr.Code,
			"message":    berr.Code,
			"onboarding": snap,
		})
		return
	}

	// Falha de commit: a mensagem segue verbatim e a sessão volta ao
	// modo editável para o usuário tentar de novo.
	c.JSON(http.StatusBadGateway, gin.H{
		"error_code": "commit_failed",
		"message":    err.Error(),
		"onboarding": snap,
	})
}
