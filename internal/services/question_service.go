package services

import (
	"context"
	"fmt"

	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/internal/taxonomy"
	"joonbee_backend/pkg/apperrors"
)

const questionPageSize = 16

// QuestionService serves the question catalogue: paged listings, random
// interview draws and cart echo-back.
type QuestionService struct {
	questions  repositories.QuestionRepository
	categories repositories.CategoryRepository
	members    repositories.MemberRepository
	validator  *taxonomy.Validator
}

func NewQuestionService(
	questions repositories.QuestionRepository,
	categories repositories.CategoryRepository,
	members repositories.MemberRepository,
	validator *taxonomy.Validator,
) *QuestionService {
	return &QuestionService{
		questions:  questions,
		categories: categories,
		members:    members,
		validator:  validator,
	}
}

// List pages the generated questions, narrowed by an optional top category
// and an optional subcategory. A subcategory without its top category is
// rejected.
func (s *QuestionService) List(ctx context.Context, page int, category, subcategory string) (*dto.PageResponse[dto.QuestionListItem], error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	offset := offsetFor(page, questionPageSize)

	switch {
	case category == "" && subcategory == "":
		total, err := s.questions.CountGenerated(ctx)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		rows, err := s.questions.ListGenerated(ctx, offset, questionPageSize)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return pageOf(total, rows, ""), nil

	case category != "" && subcategory == "":
		top, err := s.resolveTop(ctx, category)
		if err != nil {
			return nil, err
		}
		total, err := s.questions.CountGeneratedByUpper(ctx, top)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		rows, err := s.questions.ListGeneratedByUpper(ctx, top, offset, questionPageSize)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return pageOf(total, rows, category), nil

	case category != "" && subcategory != "":
		if !s.validator.IsValidTopCategory(category) {
			return nil, apperrors.InvalidCategory(category)
		}
		if err := s.validator.ValidateChain(ctx, category, subcategory); err != nil {
			return nil, err
		}
		total, err := s.questions.CountGeneratedBySubcategory(ctx, subcategory)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		rows, err := s.questions.ListGeneratedBySubcategory(ctx, subcategory, offset, questionPageSize)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return pageOf(total, rows, category), nil

	default:
		return nil, apperrors.NewBadRequestError("subcategory given without its category")
	}
}

// Draw picks a random set of generated questions for an interview. With
// subcategories it draws from exactly those; without it draws across the
// whole top category.
func (s *QuestionService) Draw(ctx context.Context, memberID, category string, subcategories []string, count int) (*dto.DrawResponse, error) {
	if err := s.checkMember(ctx, memberID); err != nil {
		return nil, err
	}
	if !s.validator.IsValidTopCategory(category) {
		return nil, apperrors.InvalidCategory(category)
	}
	if err := checkQuestionCount(count); err != nil {
		return nil, err
	}

	var (
		rows []repositories.QuestionPickRow
		err  error
	)
	if len(subcategories) > 0 {
		for _, sub := range subcategories {
			if err := s.validator.ValidateChain(ctx, category, sub); err != nil {
				return nil, err
			}
		}
		rows, err = s.questions.RandomGeneratedBySubcategories(ctx, subcategories, count)
	} else {
		var top int64
		top, err = s.resolveTop(ctx, category)
		if err != nil {
			return nil, err
		}
		rows, err = s.questions.RandomGeneratedByUpper(ctx, top, count)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	drawn := make([]dto.DrawnQuestion, 0, len(rows))
	for _, row := range rows {
		drawn = append(drawn, dto.DrawnQuestion{
			QuestionID:      row.QuestionID,
			QuestionContent: row.QuestionContent,
		})
	}
	return &dto.DrawResponse{MemberID: memberID, Category: category, Result: drawn}, nil
}

// Check verifies every id exists, then echoes the questions back with their
// full category path.
func (s *QuestionService) Check(ctx context.Context, ids []int64) (*dto.CheckedQuestionsResponse, error) {
	for _, id := range ids {
		exists, err := s.questions.ExistsByID(ctx, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !exists {
			return nil, apperrors.NotFound(fmt.Sprintf("question %d", id))
		}
	}

	rows, err := s.questions.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	checked := make([]dto.CheckedQuestion, 0, len(rows))
	for _, row := range rows {
		checked = append(checked, dto.CheckedQuestion{
			QuestionID:      row.QuestionID,
			Category:        row.Category,
			Subcategory:     row.Subcategory,
			QuestionContent: row.QuestionContent,
		})
	}
	return &dto.CheckedQuestionsResponse{Result: checked}, nil
}

func (s *QuestionService) resolveTop(ctx context.Context, category string) (int64, error) {
	if !s.validator.IsValidTopCategory(category) {
		return 0, apperrors.InvalidCategory(category)
	}
	top, err := s.categories.FindTopCategory(ctx, category)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if top == nil {
		return 0, apperrors.InvalidCategory(category)
	}
	return top.ID, nil
}

func (s *QuestionService) checkMember(ctx context.Context, memberID string) error {
	exists, err := s.members.Exists(ctx, memberID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.NotFound("member")
	}
	return nil
}

// pageOf maps listing rows to the page envelope. category overrides the
// row's top-category name for variants whose query does not join the parent.
func pageOf(total int64, rows []repositories.QuestionWithCategoryRow, category string) *dto.PageResponse[dto.QuestionListItem] {
	items := make([]dto.QuestionListItem, 0, len(rows))
	for _, row := range rows {
		name := row.CategoryName
		if category != "" {
			name = category
		}
		items = append(items, dto.QuestionListItem{
			QuestionID:      row.QuestionID,
			CategoryID:      row.CategoryID,
			CategoryName:    name,
			SubcategoryName: row.SubcategoryName,
			QuestionContent: row.QuestionContent,
		})
	}
	return &dto.PageResponse[dto.QuestionListItem]{Total: total, Result: items}
}
