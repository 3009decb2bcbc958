package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servicehub/marketplace-api/internal/config"
	"github.com/servicehub/marketplace-api/internal/domain/routing"
	"github.com/servicehub/marketplace-api/internal/httpresp"
	"github.com/servicehub/marketplace-api/internal/middleware"
	"github.com/servicehub/marketplace-api/internal/models"
)

type RouteHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewRouteHandler(db *gorm.DB, cfg *config.Config) *RouteHandler {
	return &RouteHandler{db: db, config: cfg}
}

// Resolve devolve o destino inicial e o conjunto de abas. Token ausente
// ou inválido não é erro: cai no placeholder de autenticação pendente.
func (h *RouteHandler) Resolve(c *gin.Context) {
	httpresp.OK(c, routing.Resolve(h.resolveUser(c)))
}

func (h *RouteHandler) resolveUser(c *gin.Context) *models.User {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	userID, _, ok := middleware.ParseToken(parts[1], h.config.JWTSecret)
	if !ok {
		return nil
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil
	}

	return &user
}
