package handlers

import (
	"strings"

	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/middleware"
	"joonbee_backend/internal/services"
	"joonbee_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	*BaseHandler
	questions *services.QuestionService
	tokens    *auth.TokenService
}

func NewQuestionHandler(base *BaseHandler, questions *services.QuestionService, tokens *auth.TokenService) *QuestionHandler {
	return &QuestionHandler{BaseHandler: base, questions: questions, tokens: tokens}
}

func (h *QuestionHandler) RegisterRoutes(r *gin.RouterGroup) {
	question := r.Group("/question")
	{
		question.GET("/all", h.List)
		question.GET("/gpt", middleware.RequireSession(h.tokens), h.Draw)
		question.GET("", middleware.RequireSession(h.tokens), h.Check)
	}
}

// List godoc
// @Summary  Page through generated questions, optionally filtered
// @Param    page        query int    true  "1-based page"
// @Param    category    query string false "top-level category"
// @Param    subCategory query string false "subcategory (requires category)"
// @Success  200 {object} handlers.Response
// @Router   /api/question/all [get]
func (h *QuestionHandler) List(c *gin.Context) {
	page := ParseQueryInt(c, "page", 0)
	category := c.Query("category")
	subCategory := c.Query("subCategory")

	resp, err := h.questions.List(c.Request.Context(), page, category, subCategory)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// Draw godoc
// @Summary  Draw random questions for a practice interview
// @Param    category      query string true  "top-level category"
// @Param    subcategory   query string false "comma-separated subcategories"
// @Param    questionCount query int    true  "one of 2, 4, 6, 8, 10"
// @Success  200 {object} handlers.Response
// @Router   /api/question/gpt [get]
func (h *QuestionHandler) Draw(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}

	category := c.Query("category")
	count := ParseQueryInt(c, "questionCount", 0)

	var subcategories []string
	if raw := c.Query("subcategory"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				apperrors.HandleError(c, apperrors.NewBadRequestError("subcategory list has an empty entry"))
				return
			}
			subcategories = append(subcategories, trimmed)
		}
	}

	resp, err := h.questions.Draw(c.Request.Context(), memberID, category, subcategories, count)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// Check godoc
// @Summary  Echo full rows for a list of question ids
// @Param    questionIds query string true "comma-separated question ids"
// @Success  200 {object} handlers.Response
// @Router   /api/question [get]
func (h *QuestionHandler) Check(c *gin.Context) {
	if _, ok := h.SessionMemberID(c); !ok {
		return
	}

	ids, err := ParseQueryIDList(c, "questionIds")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.questions.Check(c.Request.Context(), ids)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}
