package handlers

import (
	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/middleware"
	"joonbee_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// MemberHandler serves the my-page surface. Every route runs behind the
// strict session guard.
type MemberHandler struct {
	*BaseHandler
	members *services.MemberService
	tokens  *auth.TokenService
}

func NewMemberHandler(base *BaseHandler, members *services.MemberService, tokens *auth.TokenService) *MemberHandler {
	return &MemberHandler{BaseHandler: base, members: members, tokens: tokens}
}

func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup) {
	member := r.Group("/member")
	member.Use(middleware.RequireSession(h.tokens))
	{
		member.GET("/info", h.MyInfo)
		member.GET("/profile", h.Profile)
		member.GET("/category", h.MyCategoryList)
		member.GET("/category/like", h.MyLikedCategoryList)
		member.GET("/cart/read", h.CartRead)
		member.GET("/interview/detail", h.MyInterviewDetail)
		member.GET("/interview/question/detail", h.InterviewQuestionDetail)
		member.POST("/cart/save", h.CartAdd)
		member.POST("/like", h.ToggleLike)
		member.POST("/interview/save", h.SaveInterview)
		member.DELETE("/cart/delete", h.CartDelete)
		member.DELETE("/interview/delete", h.DeleteInterview)
	}
}

// MyInfo godoc
// @Summary  Aggregated my-page header: counts per category, totals, profile
// @Success  200 {object} handlers.Response
// @Router   /api/member/info [get]
func (h *MemberHandler) MyInfo(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}

	resp, err := h.members.MyInfo(c.Request.Context(), memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// Profile godoc
// @Summary  Thumbnail and nickname only
// @Success  200 {object} handlers.Response
// @Router   /api/member/profile [get]
func (h *MemberHandler) Profile(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}

	resp, err := h.members.Profile(c.Request.Context(), memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// MyCategoryList godoc
// @Summary  The member's own interviews reduced to category rows
// @Param    page query int true "1-based page"
// @Success  200 {object} handlers.Response
// @Router   /api/member/category [get]
func (h *MemberHandler) MyCategoryList(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}

	resp, err := h.members.MyCategoryList(c.Request.Context(), memberID, ParseQueryInt(c, "page", 0))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// MyLikedCategoryList godoc
// @Summary  Interviews the member liked, reduced to category rows
// @Param    page query int true "1-based page"
// @Success  200 {object} handlers.Response
// @Router   /api/member/category/like [get]
func (h *MemberHandler) MyLikedCategoryList(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}

	resp, err := h.members.MyLikedCategoryList(c.Request.Context(), memberID, ParseQueryInt(c, "page", 0))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// CartRead godoc
// @Summary  Compact cart view for my-page
// @Param    page query int true "1-based page"
// @Success  200 {object} handlers.Response
// @Router   /api/member/cart/read [get]
func (h *MemberHandler) CartRead(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}

	resp, err := h.members.CartRead(c.Request.Context(), memberID, ParseQueryInt(c, "page", 0))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// MyInterviewDetail godoc
// @Summary  Owner's interview detail including the GPT opinion
// @Param    interId query int true "interview id"
// @Success  200 {object} handlers.Response
// @Router   /api/member/interview/detail [get]
func (h *MemberHandler) MyInterviewDetail(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	interviewID, err := ParseQueryInt64(c, "interId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.members.MyInterviewDetail(c.Request.Context(), interviewID, memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// InterviewQuestionDetail godoc
// @Summary  One answered question out of an owned interview
// @Param    interviewId query int true "interview id"
// @Param    questionId  query int true "question id"
// @Success  200 {object} handlers.Response
// @Router   /api/member/interview/question/detail [get]
func (h *MemberHandler) InterviewQuestionDetail(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	interviewID, err := ParseQueryInt64(c, "interviewId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	questionID, err := ParseQueryInt64(c, "questionId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.members.InterviewQuestionDetail(c.Request.Context(), interviewID, questionID, memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, resp)
}

// CartAdd godoc
// @Summary  Put an existing question into the cart
// @Param    request body dto.MemberCartInsertRequest true "question id and subcategory snapshot"
// @Success  200 {object} handlers.Response
// @Router   /api/member/cart/save [post]
func (h *MemberHandler) CartAdd(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	var req dto.MemberCartInsertRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.members.CartAdd(c.Request.Context(), memberID, req.QuestionID, req.CategoryName); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, true)
}

// ToggleLike godoc
// @Summary  Flip the member's like on an interview
// @Param    request body dto.LikeRequest true "interview id"
// @Success  200 {object} handlers.Response
// @Router   /api/member/like [post]
func (h *MemberHandler) ToggleLike(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	var req dto.LikeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.members.ToggleLike(c.Request.Context(), memberID, req.InterviewID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, true)
}

// SaveInterview godoc
// @Summary  Store a finished interview with its answered questions
// @Param    request body dto.InterviewSaveRequest true "interview payload"
// @Success  200 {object} handlers.Response
// @Router   /api/member/interview/save [post]
func (h *MemberHandler) SaveInterview(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	var req dto.InterviewSaveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.members.SaveInterview(c.Request.Context(), memberID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, true)
}

// CartDelete godoc
// @Summary  Remove one cart entry; 400 body when nothing matched
// @Param    id query int true "question id"
// @Success  200 {object} handlers.Response
// @Router   /api/member/cart/delete [delete]
func (h *MemberHandler) CartDelete(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	questionID, err := ParseQueryInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	deleted, err := h.members.CartDelete(c.Request.Context(), memberID, questionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	boolOutcome(c, deleted)
}

// DeleteInterview godoc
// @Summary  Remove an owned interview; 400 body when nothing matched
// @Param    id query int true "interview id"
// @Success  200 {object} handlers.Response
// @Router   /api/member/interview/delete [delete]
func (h *MemberHandler) DeleteInterview(c *gin.Context) {
	memberID, ok := h.SessionMemberID(c)
	if !ok {
		return
	}
	interviewID, err := ParseQueryInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	deleted, err := h.members.DeleteInterview(c.Request.Context(), interviewID, memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	boolOutcome(c, deleted)
}

// boolOutcome maps a did-anything-happen flag to the 200/400 envelope the
// delete endpoints use instead of error codes.
func boolOutcome(c *gin.Context, ok bool) {
	if ok {
		c.JSON(200, Response{Status: 200, Data: true})
		return
	}
	c.JSON(400, Response{Status: 400, Data: false})
}
