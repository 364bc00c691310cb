package middleware

import (
	"errors"

	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/logger"
	"joonbee_backend/pkg/apperrors"
	"joonbee_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// RequireSession is the strict guard: no cookie means 401, an invalid cookie
// keeps its expired/malformed distinction.
func RequireSession(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, err := resolveSession(c, tokens)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		if memberID == "" {
			apperrors.HandleError(c, apperrors.MissingCredential())
			return
		}
		storeMemberID(c, memberID)
		c.Next()
	}
}

// OptionalSession lets anonymous callers through but still rejects a cookie
// that is present and invalid. Anonymity is only for the cookie-less.
func OptionalSession(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, err := resolveSession(c, tokens)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		if memberID != "" {
			storeMemberID(c, memberID)
		}
		c.Next()
	}
}

// resolveSession returns ("", nil) when no cookie rode in. Expired tokens map
// to 403, malformed ones to 406.
func resolveSession(c *gin.Context, tokens *auth.TokenService) (string, error) {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil || cookie == "" {
		return "", nil
	}
	memberID, err := tokens.Verify(cookie)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return "", apperrors.TokenExpired(err)
		}
		return "", apperrors.TokenMalformed(err)
	}
	return memberID, nil
}

func storeMemberID(c *gin.Context, memberID string) {
	c.Set(string(contextkeys.MemberIDContextKey), memberID)
	c.Request = c.Request.WithContext(logger.WithMemberID(c.Request.Context(), memberID))
}

// MemberID extracts the authenticated member id, "" for anonymous callers.
func MemberID(c *gin.Context) string {
	v, exists := c.Get(string(contextkeys.MemberIDContextKey))
	if !exists {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}
