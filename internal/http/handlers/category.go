package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/robocompare/robocompare-backend/internal/catalog"
	"github.com/robocompare/robocompare-backend/internal/http/response"
)

type CategoryHandler struct {
	registry *catalog.Registry
}

func NewCategoryHandler(registry *catalog.Registry) *CategoryHandler {
	return &CategoryHandler{registry: registry}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	response.RespondOK(c, h.registry.Categories())
}
