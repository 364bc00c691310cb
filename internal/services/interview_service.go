package services

import (
	"context"

	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/internal/taxonomy"
	"joonbee_backend/pkg/apperrors"
)

const interviewPageSize = 16

// InterviewService serves the public interview feed and detail view.
type InterviewService struct {
	interviews repositories.InterviewRepository
	likes      repositories.LikeRepository
	members    repositories.MemberRepository
	validator  *taxonomy.Validator
}

func NewInterviewService(
	interviews repositories.InterviewRepository,
	likes repositories.LikeRepository,
	members repositories.MemberRepository,
	validator *taxonomy.Validator,
) *InterviewService {
	return &InterviewService{
		interviews: interviews,
		likes:      likes,
		members:    members,
		validator:  validator,
	}
}

// List pages the feed. memberID may be empty; when present each row carries
// the caller's liked flag and the member must exist.
func (s *InterviewService) List(ctx context.Context, page int, category, sort, memberID string) (*dto.PageResponse[dto.InterviewListItem], error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	if err := checkSort(sort); err != nil {
		return nil, err
	}
	if category != "" && !s.validator.IsValidTopCategory(category) {
		return nil, apperrors.InvalidCategory(category)
	}
	if memberID != "" {
		exists, err := s.members.Exists(ctx, memberID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !exists {
			return nil, apperrors.NotFound("member")
		}
	}

	total, err := s.interviews.Count(ctx, category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows, err := s.interviews.List(ctx, repositories.InterviewFilter{
		CategoryName: category,
		Sort:         sort,
		MemberID:     memberID,
		Offset:       offsetFor(page, interviewPageSize),
		Limit:        interviewPageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.InterviewListItem, 0, len(rows))
	if len(rows) == 0 {
		// Nothing on this page: skip the child query entirely.
		return &dto.PageResponse[dto.InterviewListItem]{Total: total, Result: items}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.InterviewID)
	}
	questionRows, err := s.interviews.QuestionsByInterviewIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	questionsByInterview := make(map[int64][]dto.InterviewQuestionItem, len(rows))
	subcategoriesByInterview := make(map[int64][]string, len(rows))
	seenSubcategory := make(map[int64]map[string]struct{}, len(rows))
	for _, q := range questionRows {
		questionsByInterview[q.InterviewID] = append(questionsByInterview[q.InterviewID], dto.InterviewQuestionItem{
			QuestionID:      q.QuestionID,
			QuestionContent: q.QuestionContent,
		})
		if seenSubcategory[q.InterviewID] == nil {
			seenSubcategory[q.InterviewID] = make(map[string]struct{})
		}
		if _, dup := seenSubcategory[q.InterviewID][q.SubcategoryName]; !dup {
			seenSubcategory[q.InterviewID][q.SubcategoryName] = struct{}{}
			subcategoriesByInterview[q.InterviewID] = append(subcategoriesByInterview[q.InterviewID], q.SubcategoryName)
		}
	}

	for _, row := range rows {
		item := dto.InterviewListItem{
			InterviewID:     row.InterviewID,
			MemberID:        row.MemberID,
			Nickname:        row.Nickname,
			Thumbnail:       row.Thumbnail,
			CategoryName:    row.CategoryName,
			LikeCount:       row.LikeCount,
			Questions:       questionsByInterview[row.InterviewID],
			SubcategoryName: subcategoriesByInterview[row.InterviewID],
		}
		if memberID != "" {
			liked := row.Liked == 1
			item.Liked = &liked
		}
		items = append(items, item)
	}
	return &dto.PageResponse[dto.InterviewListItem]{Total: total, Result: items}, nil
}

// Info is the public detail view. The GPT opinion stays hidden here; only
// the owner's endpoint exposes it.
func (s *InterviewService) Info(ctx context.Context, interviewID int64) (*dto.InterviewInfoResponse, error) {
	rows, err := s.interviews.DetailRows(ctx, interviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("interview")
	}

	likeCount, err := s.likes.CountByInterview(ctx, interviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
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

	return &dto.InterviewInfoResponse{
		MemberThumbnail:  rows[0].Thumbnail,
		MemberNickName:   rows[0].NickName,
		QuestionContents: answered,
		CategoryName:     rows[0].CategoryName,
		LikeCount:        likeCount,
	}, nil
}
