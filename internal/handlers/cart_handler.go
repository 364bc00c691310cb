package handlers

import (
	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/middleware"
	"joonbee_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	*BaseHandler
	carts  *services.CartService
	tokens *auth.TokenService
}

func NewCartHandler(base *BaseHandler, carts *services.CartService, tokens *auth.TokenService) *CartHandler {
	return &CartHandler{BaseHandler: base, carts: carts, tokens: tokens}
}

func (h *CartHandler) RegisterRoutes(r *gin.RouterGroup) {
	cart := r.Group("/cart")
	cart.Use(middleware.RequireSession(h.tokens))
	{
		cart.GET("/questions", h.Questions)
		cart.POST("/question/save", h.Save)
	}
}

// Questions godoc
// @Summary  Page the member's cart, optionally filtered by category
// @Param    page        query int    true  "1-based page"
// @Param    category    query string false "top-level category"
// @Param    subcategory query string false "subcategory (requires category)"
// @Success  200 {object} handlers.Response
// @Router   /api/cart/questions [get]
func (h *CartHandler) Questions(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}

	page := ParseQueryInt(c, "page", 0)
	resp, err := h.carts.Questions(c.Request.Context(), memberID, page, c.Query("category"), c.Query("subcategory"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// Save godoc
// @Summary  Add a question to the cart, existing or freshly authored
// @Param    request body dto.CartQuestionSaveRequest true "question payload"
// @Success  200 {object} handlers.Response
// @Router   /api/cart/question/save [post]
func (h *CartHandler) Save(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	var req dto.CartQuestionSaveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var err error
	if req.QuestionID != nil {
		err = h.carts.AddExisting(ctx, memberID, *req.QuestionID, req.CategoryName, req.SubcategoryName, req.QuestionContent)
	} else {
		err = h.carts.AddNew(ctx, memberID, req.CategoryName, req.SubcategoryName, req.QuestionContent)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, true)
}
