package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/httperr"
	"github.com/servicehub/marketplace-api/internal/httpresp"
)

type CategoryHandler struct {
	directory domain.CategoryDirectory
}

func NewCategoryHandler(directory domain.CategoryDirectory) *CategoryHandler {
	return &CategoryHandler{directory: directory}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.directory.ListServiceCategories(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_categories", err.Error())
		return
	}

	httpresp.List(c, categories)
}
