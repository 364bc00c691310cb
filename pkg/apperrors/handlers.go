package apperrors

import (
	"net/http"

	"joonbee_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope every endpoint returns: the HTTP status
// mirrored in the body next to a human-readable message.
type ErrorResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HandleError is the single translator from error values to HTTP responses.
// Distinguished AppErrors keep their status and message; anything else is
// logged server-side and flattened to a fixed 500 body so internal error text
// never reaches the client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		logger.CtxWithError(c.Request.Context(), "unrecognized error", err, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "SERVER ERROR",
		})
		return
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
			Status:  appErr.HTTPCode,
			Message: "SERVER ERROR",
		})
		return
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Status:  appErr.HTTPCode,
		Message: appErr.Message,
		// OnboardingRequired carries the member id here so the client can
		// route straight to nickname registration.
		Data: appErr.Details,
	})
}

// AsAppError tries to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
