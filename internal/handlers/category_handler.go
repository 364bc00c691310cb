package handlers

import (
	"joonbee_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categories *services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/category", h.GroupedTree)
}

// GroupedTree godoc
// @Summary  Category tree grouped by top-level category
// @Success  200 {object} handlers.Response
// @Router   /api/category [get]
func (h *CategoryHandler) GroupedTree(c *gin.Context) {
	groups, err := h.categories.GroupedAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, groups)
}
