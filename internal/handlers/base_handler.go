package handlers

import (
	"strconv"
	"strings"

	"joonbee_backend/internal/logger"
	"joonbee_backend/internal/middleware"
	"joonbee_backend/internal/validator"
	"joonbee_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Response is the success envelope: the HTTP status mirrored in the body next
// to the payload.
type Response struct {
	Status int         `json:"status"`
	Data   interface{} `json:"data"`
}

// OK writes the 200 envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Status: 200, Data: data})
}

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the request body and runs struct validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError logs and translates a service-layer error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// SessionMemberID pulls the member id set by the strict guard. An empty id on
// a guarded route means the route was wired without the guard.
func (h *BaseHandler) SessionMemberID(c *gin.Context) (string, bool) {
	memberID := middleware.MemberID(c)
	if memberID == "" {
		logger.CtxWarn(c.Request.Context(), "no member id on guarded route",
			"path", c.Request.URL.Path, "ip", c.ClientIP())
		apperrors.HandleError(c, apperrors.MissingCredential())
		return "", false
	}
	return memberID, true
}

// ParseQueryInt reads an integer query parameter, falling back on absence or
// garbage.
func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseQueryInt64 is ParseQueryInt for id-typed parameters; missing or
// malformed values become a bad request.
func ParseQueryInt64(c *gin.Context, key string) (int64, error) {
	valueStr := c.Query(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("missing required query parameter: " + key)
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("query parameter " + key + " is not an integer")
	}
	return value, nil
}

// ParseQueryIDList splits a comma-separated id list query parameter.
func ParseQueryIDList(c *gin.Context, key string) ([]int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, apperrors.NewBadRequestError("missing required query parameter: " + key)
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, apperrors.NewBadRequestError("query parameter " + key + " contains a non-integer id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
