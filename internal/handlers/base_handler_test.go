package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseQueryInt(t *testing.T) {
	assert.Equal(t, 3, ParseQueryInt(queryContext("page=3"), "page", 0))
	assert.Equal(t, 0, ParseQueryInt(queryContext(""), "page", 0))
	assert.Equal(t, 0, ParseQueryInt(queryContext("page=abc"), "page", 0))
}

func TestParseQueryInt64(t *testing.T) {
	id, err := ParseQueryInt64(queryContext("interId=42"), "interId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseQueryInt64(queryContext(""), "interId")
	assert.Error(t, err)

	_, err = ParseQueryInt64(queryContext("interId=x"), "interId")
	assert.Error(t, err)
}

func TestParseQueryIDList(t *testing.T) {
	ids, err := ParseQueryIDList(queryContext("questionIds=1,2,3"), "questionIds")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	ids, err = ParseQueryIDList(queryContext("questionIds=7,%208"), "questionIds")
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, ids)

	_, err = ParseQueryIDList(queryContext(""), "questionIds")
	assert.Error(t, err)

	_, err = ParseQueryIDList(queryContext("questionIds=1,x"), "questionIds")
	assert.Error(t, err)
}
