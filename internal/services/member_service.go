package services

import (
	"context"
	"errors"
	"time"

	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/models"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/pkg/apperrors"
)

const memberPageSize = 6

// MemberService covers the my-page surface: profile, history, likes, owned
// interviews and the member's own cart view.
type MemberService struct {
	members    repositories.MemberRepository
	interviews repositories.InterviewRepository
	likes      repositories.LikeRepository
	carts      repositories.CartRepository
}

func NewMemberService(
	members repositories.MemberRepository,
	interviews repositories.InterviewRepository,
	likes repositories.LikeRepository,
	carts repositories.CartRepository,
) *MemberService {
	return &MemberService{
		members:    members,
		interviews: interviews,
		likes:      likes,
		carts:      carts,
	}
}

func (s *MemberService) MyInfo(ctx context.Context, memberID string) (*dto.MyInfoResponse, error) {
	info, err := s.members.Info(ctx, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.NotFound("member")
		}
		return nil, apperrors.InternalError(err)
	}

	counts, err := s.members.CategoryQuestionCounts(ctx, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var questionCount int64
	categoryInfo := make([]dto.CategoryInfo, 0, len(counts))
	for _, row := range counts {
		questionCount += row.QuestionCount
		categoryInfo = append(categoryInfo, dto.CategoryInfo{
			CategoryName:  row.CategoryName,
			CategoryCount: row.QuestionCount,
		})
	}

	var email *string
	if info.Email != "" {
		email = &info.Email
	}
	return &dto.MyInfoResponse{
		ID:             info.ID,
		Thumbnail:      info.Thumbnail,
		NickName:       info.NickName,
		Email:          email,
		InterviewCount: info.InterviewCount,
		QuestionCount:  questionCount,
		CategoryInfo:   categoryInfo,
	}, nil
}

func (s *MemberService) Profile(ctx context.Context, memberID string) (*dto.ProfileResponse, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.NotFound("member")
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.ProfileResponse{Image: member.Thumbnail, NickName: member.NickName}, nil
}

// MyCategoryList pages the member's own interviews, newest first, reduced to
// category and question count.
func (s *MemberService) MyCategoryList(ctx context.Context, memberID string, page int) (*dto.PageResponse[dto.InterviewCategoryItem], error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	total, err := s.interviews.CountByMember(ctx, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rows, err := s.interviews.CategoryPageByMember(ctx, memberID, offsetFor(page, memberPageSize), memberPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categoryPage(total, rows), nil
}

// MyLikedCategoryList pages the interviews the member liked.
func (s *MemberService) MyLikedCategoryList(ctx context.Context, memberID string, page int) (*dto.PageResponse[dto.InterviewCategoryItem], error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	total, err := s.interviews.CountLikedByMember(ctx, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rows, err := s.interviews.CategoryPageByLiked(ctx, memberID, offsetFor(page, memberPageSize), memberPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categoryPage(total, rows), nil
}

// MyInterviewDetail is the owner's detail view, GPT opinion included.
func (s *MemberService) MyInterviewDetail(ctx context.Context, interviewID int64, memberID string) (*dto.InterviewDetailResponse, error) {
	rows, err := s.interviews.OwnedDetailRows(ctx, interviewID, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFoundOrNotOwned("interview")
	}

	answered := make([]dto.AnsweredQuestion, 0, len(rows))
	for _, row := range rows {
		answered = append(answered, dto.AnsweredQuestion{
			QuestionID:      row.QuestionID,
			QuestionContent: row.QuestionContent,
			Commentary:      row.Commentary,
			Evaluation:      row.Evaluation,
			AnswerContent:   row.AnswerContent,
		})
	}
	return &dto.InterviewDetailResponse{
		GPTOpinion:       rows[0].GPTOpinion,
		CreatedAt:        formatTimestamp(rows[0].CreatedAt),
		QuestionContents: answered,
	}, nil
}

func (s *MemberService) InterviewQuestionDetail(ctx context.Context, interviewID, questionID int64, memberID string) (*dto.InterviewQuestionDetailResponse, error) {
	row, err := s.interviews.QuestionDetail(ctx, interviewID, questionID, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.NotFoundOrNotOwned("interview question")
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.InterviewQuestionDetailResponse{
		InterviewID:     row.InterviewID,
		QuestionID:      row.QuestionID,
		AnswerContent:   row.AnswerContent,
		Commentary:      row.Commentary,
		Evaluation:      row.Evaluation,
		QuestionContent: row.QuestionContent,
	}, nil
}

// SaveInterview stores an interview and its answered questions atomically.
// The handler has already rejected an empty question list.
func (s *MemberService) SaveInterview(ctx context.Context, memberID string, req *dto.InterviewSaveRequest) error {
	interview := &models.Interview{
		MemberID:     memberID,
		CategoryName: req.CategoryName,
		GPTOpinion:   req.GPTOpinion,
	}
	questions := make([]models.InterviewAndQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, models.InterviewAndQuestion{
			QuestionID:    q.QuestionID,
			AnswerContent: q.AnswerContent,
			Commentary:    q.Commentary,
			Evaluation:    q.Evaluation,
		})
	}
	if err := s.interviews.CreateWithQuestions(ctx, interview, questions); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteInterview removes an owned interview; false means nothing matched.
func (s *MemberService) DeleteInterview(ctx context.Context, interviewID int64, memberID string) (bool, error) {
	deleted, err := s.interviews.DeleteOwned(ctx, interviewID, memberID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return deleted, nil
}

// ToggleLike flips the (member, interview) like. Read-then-branch: two
// concurrent toggles can both read "absent" and both insert.
func (s *MemberService) ToggleLike(ctx context.Context, memberID string, interviewID int64) error {
	exists, err := s.likes.Exists(ctx, memberID, interviewID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		if err := s.likes.Delete(ctx, memberID, interviewID); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	}
	if err := s.likes.Insert(ctx, memberID, interviewID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// CartRead is the compact my-page cart view.
func (s *MemberService) CartRead(ctx context.Context, memberID string, page int) (*dto.PageResponse[dto.CartItem], error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	total, err := s.carts.CountByMember(ctx, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rows, err := s.carts.ListByMember(ctx, memberID, offsetFor(page, memberPageSize), memberPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	items := make([]dto.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.CartItem{
			QuestionID:      row.QuestionID,
			QuestionContent: row.QuestionContent,
		})
	}
	return &dto.PageResponse[dto.CartItem]{Total: total, Result: items}, nil
}

// CartAdd inserts an existing question with its subcategory snapshot. The
// duplicate check is read-then-insert; see ToggleLike for the same caveat.
func (s *MemberService) CartAdd(ctx context.Context, memberID string, questionID int64, categoryName string) error {
	exists, err := s.carts.Exists(ctx, memberID, questionID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.DuplicateCartEntry()
	}
	if err := s.carts.Insert(ctx, &models.Cart{
		MemberID:     memberID,
		QuestionID:   questionID,
		CategoryName: categoryName,
	}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// CartDelete removes one entry; false means it was already gone.
func (s *MemberService) CartDelete(ctx context.Context, memberID string, questionID int64) (bool, error) {
	deleted, err := s.carts.Delete(ctx, memberID, questionID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return deleted, nil
}

func categoryPage(total int64, rows []repositories.InterviewCategoryRow) *dto.PageResponse[dto.InterviewCategoryItem] {
	items := make([]dto.InterviewCategoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.InterviewCategoryItem{
			CategoryName:  row.CategoryName,
			QuestionCount: row.QuestionCount,
			InterviewID:   row.InterviewID,
		})
	}
	return &dto.PageResponse[dto.InterviewCategoryItem]{Total: total, Result: items}
}

// formatTimestamp renders creation times the way the clients expect them.
func formatTimestamp(t time.Time) string {
	return t.Format("2006.01.02 15:04")
}
