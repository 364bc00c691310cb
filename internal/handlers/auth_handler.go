package handlers

import (
	"net/http"

	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/middleware"
	"joonbee_backend/internal/services"
	"joonbee_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler owns the identity server surface: provider callbacks, token
// refresh, nickname registration and logout.
type AuthHandler struct {
	*BaseHandler
	identity *services.IdentityService
	limiter  *middleware.RateLimiter
}

func NewAuthHandler(base *BaseHandler, identity *services.IdentityService, limiter *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		identity:    identity,
		limiter:     limiter,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	throttled := h.limiter.CallbackMiddleware()
	r.GET("/kakao/callback", throttled, h.KakaoCallback)
	r.GET("/naver/callback", throttled, h.NaverCallback)
	r.GET("/google/callback", throttled, h.GoogleCallback)

	login := r.Group("/login")
	{
		login.GET("/refresh", h.Refresh)
		login.POST("/nick", h.RegisterNickname)
		login.GET("/logout", h.Logout)
	}
}

// KakaoCallback godoc
// @Summary  Kakao OAuth callback
// @Param    code query string true "authorization code"
// @Success  200 {object} handlers.Response
// @Router   /kakao/callback [get]
func (h *AuthHandler) KakaoCallback(c *gin.Context) {
	h.callback(c, "KAKAO")
}

// NaverCallback godoc
// @Summary  Naver OAuth callback
// @Param    code query string true "authorization code"
// @Success  200 {object} handlers.Response
// @Router   /naver/callback [get]
func (h *AuthHandler) NaverCallback(c *gin.Context) {
	h.callback(c, "NAVER")
}

// GoogleCallback godoc
// @Summary  Google OAuth callback
// @Param    code query string true "authorization code"
// @Success  200 {object} handlers.Response
// @Router   /google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	h.callback(c, "GOOGLE")
}

func (h *AuthHandler) callback(c *gin.Context, provider string) {
	code := c.Query("code")
	if code == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing authorization code"))
		return
	}

	access, refresh, err := h.identity.Authenticate(c.Request.Context(), provider, code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookies(c, access, refresh)
	OK(c, true)
}

// Refresh godoc
// @Summary  Rotate the session token pair from the refresh cookie
// @Success  200 {object} handlers.Response
// @Router   /login/refresh [get]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(auth.RefreshCookieName)
	if err != nil {
		refreshToken = ""
	}

	access, refresh, err := h.identity.RefreshSession(c.Request.Context(), refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookies(c, access, refresh)
	OK(c, true)
}

// RegisterNickname godoc
// @Summary  Finish onboarding by registering a nickname
// @Param    request body dto.NickNameUpdateRequest true "member id and nickname"
// @Success  200 {object} handlers.Response
// @Router   /login/nick [post]
func (h *AuthHandler) RegisterNickname(c *gin.Context) {
	var req dto.NickNameUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	access, refresh, err := h.identity.SetNickname(c.Request.Context(), req.ID, req.NickName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookies(c, access, refresh)
	OK(c, true)
}

// Logout godoc
// @Summary  Expire both session cookies
// @Success  200 {object} handlers.Response
// @Router   /login/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, false)
	c.SetCookie(auth.RefreshCookieName, "", -1, "/", "", false, true)
	OK(c, "success")
}

// setSessionCookies writes the pair the frontend expects: a script-readable
// access cookie and an httpOnly refresh cookie, both SameSite=None.
func (h *AuthHandler) setSessionCookies(c *gin.Context, access, refresh string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.SessionCookieName, access, int(auth.AccessTokenTTL.Seconds()), "/", "", false, false)
	c.SetCookie(auth.RefreshCookieName, refresh, int(auth.RefreshTokenTTL.Seconds()), "/", "", false, true)
}
