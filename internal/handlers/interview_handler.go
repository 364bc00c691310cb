package handlers

import (
	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/middleware"
	"joonbee_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviews *services.InterviewService
	tokens     *auth.TokenService
}

func NewInterviewHandler(base *BaseHandler, interviews *services.InterviewService, tokens *auth.TokenService) *InterviewHandler {
	return &InterviewHandler{BaseHandler: base, interviews: interviews, tokens: tokens}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	interview := r.Group("/interview")
	{
		// The feed personalizes liked state when a session rides along but
		// stays open to anonymous readers.
		interview.GET("/all", middleware.OptionalSession(h.tokens), h.List)
		interview.GET("/detail", h.Info)
	}
}

// List godoc
// @Summary  Public interview feed, paged and sortable
// @Param    page     query int    true  "1-based page"
// @Param    category query string false "top-level category"
// @Param    sort     query string true  "latest or like"
// @Success  200 {object} handlers.Response
// @Router   /api/interview/all [get]
func (h *InterviewHandler) List(c *gin.Context) {
	page := ParseQueryInt(c, "page", 0)
	category := c.Query("category")
	sort := c.Query("sort")
	memberID := middleware.MemberID(c)

	resp, err := h.interviews.List(c.Request.Context(), page, category, sort, memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// Info godoc
// @Summary  Public interview detail without the GPT opinion
// @Param    interId query int true "interview id"
// @Success  200 {object} handlers.Response
// @Router   /api/interview/detail [get]
func (h *InterviewHandler) Info(c *gin.Context) {
	interviewID, err := ParseQueryInt64(c, "interId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.interviews.Info(c.Request.Context(), interviewID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}
