package services

import (
	"context"
	"testing"
	"time"

	"joonbee_backend/internal/models"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemberFixture(interviews *fakeInterviewRepo) (*MemberService, *memMemberRepo, *memLikeRepo, *memCartRepo) {
	members := newMemMemberRepo(&models.Member{
		ID:        "u1",
		NickName:  "Alex",
		Email:     "u1@example.com",
		Thumbnail: "t.png",
	})
	likes := newMemLikeRepo()
	carts := newMemCartRepo()
	return NewMemberService(members, interviews, likes, carts), members, likes, carts
}

func TestMyInfoAggregatesCategoryCounts(t *testing.T) {
	svc, members, _, _ := newMemberFixture(&fakeInterviewRepo{})
	members.interviewCount = 3
	members.categoryCounts = []repositories.CategoryCountRow{
		{CategoryName: "fe", QuestionCount: 5},
		{CategoryName: "cs", QuestionCount: 2},
	}

	info, err := svc.MyInfo(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", info.ID)
	assert.Equal(t, int64(3), info.InterviewCount)
	assert.Equal(t, int64(7), info.QuestionCount)
	require.NotNil(t, info.Email)
	assert.Equal(t, "u1@example.com", *info.Email)
	require.Len(t, info.CategoryInfo, 2)
	assert.Equal(t, "fe", info.CategoryInfo[0].CategoryName)
	assert.Equal(t, int64(5), info.CategoryInfo[0].CategoryCount)
}

func TestMyInfoOmitsEmptyEmail(t *testing.T) {
	svc, members, _, _ := newMemberFixture(&fakeInterviewRepo{})
	require.NoError(t, members.Create(context.Background(), &models.Member{ID: "u2", NickName: "Sam"}))

	info, err := svc.MyInfo(context.Background(), "u2")
	require.NoError(t, err)
	assert.Nil(t, info.Email)
}

func TestMyInfoUnknownMember(t *testing.T) {
	svc, _, _, _ := newMemberFixture(&fakeInterviewRepo{})

	_, err := svc.MyInfo(context.Background(), "ghost")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestProfile(t *testing.T) {
	svc, _, _, _ := newMemberFixture(&fakeInterviewRepo{})

	profile, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "t.png", profile.Image)
	assert.Equal(t, "Alex", profile.NickName)
}

func TestToggleLikeInsertsThenDeletes(t *testing.T) {
	svc, _, likes, _ := newMemberFixture(&fakeInterviewRepo{})
	ctx := context.Background()

	require.NoError(t, svc.ToggleLike(ctx, "u1", 7))
	exists, err := likes.Exists(ctx, "u1", 7)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, svc.ToggleLike(ctx, "u1", 7))
	exists, err = likes.Exists(ctx, "u1", 7)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCartAddRejectsDuplicate(t *testing.T) {
	svc, _, _, _ := newMemberFixture(&fakeInterviewRepo{})
	ctx := context.Background()

	require.NoError(t, svc.CartAdd(ctx, "u1", 42, "react"))

	err := svc.CartAdd(ctx, "u1", 42, "react")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeDuplicateCartEntry, appErr.Code)
}

func TestCartDeleteReportsWhetherAnythingMatched(t *testing.T) {
	svc, _, _, _ := newMemberFixture(&fakeInterviewRepo{})
	ctx := context.Background()

	require.NoError(t, svc.CartAdd(ctx, "u1", 42, "react"))

	deleted, err := svc.CartDelete(ctx, "u1", 42)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.CartDelete(ctx, "u1", 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCartReadRejectsBadPage(t *testing.T) {
	svc, _, _, _ := newMemberFixture(&fakeInterviewRepo{})

	_, err := svc.CartRead(context.Background(), "u1", 0)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidPage, appErr.Code)
}

func TestDeleteInterviewPassesOutcomeThrough(t *testing.T) {
	repo := &fakeInterviewRepo{deleteOutcome: true}
	svc, _, _, _ := newMemberFixture(repo)

	deleted, err := svc.DeleteInterview(context.Background(), 1, "u1")
	require.NoError(t, err)
	assert.True(t, deleted)

	repo.deleteOutcome = false
	deleted, err = svc.DeleteInterview(context.Background(), 1, "u1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMyInterviewDetailNotOwned(t *testing.T) {
	svc, _, _, _ := newMemberFixture(&fakeInterviewRepo{})

	_, err := svc.MyInterviewDetail(context.Background(), 99, "u1")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFoundOrNotOwned, appErr.Code)
}

func TestMyInterviewDetailIncludesOpinionAndTimestamp(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	repo := &fakeInterviewRepo{
		ownedRows: []repositories.InterviewDetailRow{
			{GPTOpinion: "solid", CreatedAt: created, QuestionID: 1, QuestionContent: "q1", AnswerContent: "a1"},
		},
	}
	svc, _, _, _ := newMemberFixture(repo)

	detail, err := svc.MyInterviewDetail(context.Background(), 1, "u1")
	require.NoError(t, err)
	assert.Equal(t, "solid", detail.GPTOpinion)
	assert.Equal(t, "2024.03.09 14:05", detail.CreatedAt)
	require.Len(t, detail.QuestionContents, 1)
	assert.Equal(t, "a1", detail.QuestionContents[0].AnswerContent)
}

func TestInterviewQuestionDetailNotOwned(t *testing.T) {
	svc, _, _, _ := newMemberFixture(&fakeInterviewRepo{})

	_, err := svc.InterviewQuestionDetail(context.Background(), 1, 2, "u1")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFoundOrNotOwned, appErr.Code)
}
