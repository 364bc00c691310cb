package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/services"
	"joonbee_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQuestionRouter wires the handler with a zero-value service: the tests
// here exercise query parsing, which fails before any service call.
func newQuestionRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("question-test-key")
	access, _, err := tokens.Generate("u1")
	require.NoError(t, err)

	handler := NewQuestionHandler(NewBaseHandler(validator.New()), &services.QuestionService{}, tokens)
	r := gin.New()
	handler.RegisterRoutes(r.Group("/api"))
	return r, access
}

func TestDrawRejectsBlankSubcategorySegments(t *testing.T) {
	r, access := newQuestionRouter(t)

	for _, raw := range []string{"react,,vue", ",react", "react,", "%20,%20"} {
		req := httptest.NewRequest(http.MethodGet, "/api/question/gpt?category=fe&questionCount=4&subcategory="+raw, nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: access})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "subcategory=%q", raw)
	}
}
