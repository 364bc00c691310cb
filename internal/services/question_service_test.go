package services

import (
	"context"
	"testing"

	"joonbee_backend/internal/models"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/internal/taxonomy"
	"joonbee_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionFixture() (*QuestionService, *fakeQuestionRepo, *memMemberRepo) {
	questions := &fakeQuestionRepo{
		questions: map[int64]repositories.QuestionCheckRow{
			42: {QuestionID: 42, Category: "react", Subcategory: "fe", QuestionContent: "What is a hook?"},
			43: {QuestionID: 43, Category: "spring", Subcategory: "be", QuestionContent: "What is a bean?"},
		},
		picks: []repositories.QuestionPickRow{
			{QuestionID: 1, QuestionContent: "q1"},
			{QuestionID: 2, QuestionContent: "q2"},
			{QuestionID: 3, QuestionContent: "q3"},
			{QuestionID: 4, QuestionContent: "q4"},
		},
	}
	categories := newFakeCategoryRepo()
	members := newMemMemberRepo(&models.Member{ID: "u1", NickName: "Alex"})
	svc := NewQuestionService(questions, categories, members, taxonomy.NewValidator(categories))
	return svc, questions, members
}

func TestQuestionListRejectsBadPage(t *testing.T) {
	svc, _, _ := newQuestionFixture()

	for _, page := range []int{0, -1, -100} {
		_, err := svc.List(context.Background(), page, "", "")
		require.Error(t, err, "page=%d", page)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidPage, appErr.Code)
	}
}

func TestQuestionListValidatesTaxonomy(t *testing.T) {
	svc, _, _ := newQuestionFixture()
	ctx := context.Background()

	_, err := svc.List(ctx, 1, "frontend", "")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCategory, appErr.Code)

	_, err = svc.List(ctx, 1, "be", "react")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeCategoryMismatch, appErr.Code)
}

func TestDrawValidatesCount(t *testing.T) {
	svc, _, _ := newQuestionFixture()
	ctx := context.Background()

	for _, count := range []int{0, 1, 3, 5, 7, 9, 11, -2} {
		_, err := svc.Draw(ctx, "u1", "fe", nil, count)
		require.Error(t, err, "count=%d", count)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidCount, appErr.Code)
	}
}

func TestDrawReturnsRequestedCount(t *testing.T) {
	svc, _, _ := newQuestionFixture()

	resp, err := svc.Draw(context.Background(), "u1", "fe", []string{"react"}, 4)
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.MemberID)
	assert.Equal(t, "fe", resp.Category)
	assert.Len(t, resp.Result, 4)
}

func TestDrawUnknownMember(t *testing.T) {
	svc, _, _ := newQuestionFixture()

	_, err := svc.Draw(context.Background(), "ghost", "fe", nil, 2)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCheckRejectsMissingQuestion(t *testing.T) {
	svc, _, _ := newQuestionFixture()

	_, err := svc.Check(context.Background(), []int64{42, 999})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, "999")
}

func TestCheckEchoesQuestions(t *testing.T) {
	svc, _, _ := newQuestionFixture()

	resp, err := svc.Check(context.Background(), []int64{42, 43})
	require.NoError(t, err)
	require.Len(t, resp.Result, 2)
	assert.Equal(t, int64(42), resp.Result[0].QuestionID)
	assert.Equal(t, "What is a hook?", resp.Result[0].QuestionContent)
}
