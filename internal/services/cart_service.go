package services

import (
	"context"
	"strings"

	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/models"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/internal/taxonomy"
	"joonbee_backend/pkg/apperrors"
)

const cartPageSize = 10

// CartService serves the pre-interview cart: filtered listings plus adding
// questions, either existing ones or freshly authored.
type CartService struct {
	carts      repositories.CartRepository
	questions  repositories.QuestionRepository
	categories repositories.CategoryRepository
	members    repositories.MemberRepository
	validator  *taxonomy.Validator
}

func NewCartService(
	carts repositories.CartRepository,
	questions repositories.QuestionRepository,
	categories repositories.CategoryRepository,
	members repositories.MemberRepository,
	validator *taxonomy.Validator,
) *CartService {
	return &CartService{
		carts:      carts,
		questions:  questions,
		categories: categories,
		members:    members,
		validator:  validator,
	}
}

// Questions pages the cart, optionally narrowed to one top category or one
// subcategory. A subcategory without its top category is rejected.
func (s *CartService) Questions(ctx context.Context, memberID string, page int, category, subcategory string) (*dto.PageResponse[dto.CartQuestionItem], error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	offset := offsetFor(page, cartPageSize)

	switch {
	case category == "" && subcategory == "":
		total, err := s.carts.CountByMember(ctx, memberID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		rows, err := s.carts.ListByMember(ctx, memberID, offset, cartPageSize)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return cartPage(total, rows, ""), nil

	case category == "":
		return nil, apperrors.NewBadRequestError("subcategory given without its category")

	case subcategory == "":
		subNames, err := s.subcategoriesOf(ctx, category)
		if err != nil {
			return nil, err
		}
		total, err := s.carts.CountByMemberAndSubcategories(ctx, memberID, subNames)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		rows, err := s.carts.ListByMemberAndSubcategories(ctx, memberID, subNames, offset, cartPageSize)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return cartPage(total, rows, category), nil

	default:
		if err := s.validator.ValidateChain(ctx, category, subcategory); err != nil {
			return nil, err
		}
		total, err := s.carts.CountByMemberAndSubcategory(ctx, memberID, subcategory)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		rows, err := s.carts.ListByMemberAndSubcategory(ctx, memberID, subcategory, offset, cartPageSize)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return cartPage(total, rows, category), nil
	}
}

// AddExisting puts an already stored question into the cart after checking
// that the claimed subcategory and content match the stored row.
func (s *CartService) AddExisting(ctx context.Context, memberID string, questionID int64, category, subcategory, questionContent string) error {
	if err := s.checkMember(ctx, memberID); err != nil {
		return err
	}

	exists, err := s.questions.ExistsByID(ctx, questionID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.NotFound("question")
	}

	inCart, err := s.carts.Exists(ctx, memberID, questionID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if inCart {
		return apperrors.DuplicateCartEntry()
	}

	if err := s.validator.ValidateChain(ctx, category, subcategory); err != nil {
		return err
	}

	stored, err := s.questions.ContentAndSubcategory(ctx, questionID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if stored.Subcategory != subcategory || stored.QuestionContent != questionContent {
		return apperrors.NewBadRequestError("subcategory or content does not match the stored question")
	}

	if err := s.carts.Insert(ctx, &models.Cart{
		MemberID:     memberID,
		QuestionID:   questionID,
		CategoryName: subcategory,
	}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// AddNew stores a member-authored question and its cart entry in one
// transaction.
func (s *CartService) AddNew(ctx context.Context, memberID, category, subcategory, questionContent string) error {
	if err := s.checkMember(ctx, memberID); err != nil {
		return err
	}
	if strings.TrimSpace(questionContent) == "" {
		return apperrors.NewBadRequestError("question content is empty")
	}
	if err := s.validator.ValidateChain(ctx, category, subcategory); err != nil {
		return err
	}

	taken, err := s.questions.ExistsByContent(ctx, questionContent)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if taken {
		return apperrors.DuplicateQuestion()
	}

	sub, err := s.categories.FindSubcategory(ctx, subcategory)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if sub == nil {
		return apperrors.InvalidSubcategory(subcategory)
	}

	question := &models.Question{
		CategoryID: sub.ID,
		GPTFlag:    0,
		Level:      models.CategoryLevelSub,
		Writer:     memberID,
		Content:    questionContent,
	}
	if err := s.carts.InsertWithNewQuestion(ctx, question, memberID, subcategory); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CartService) subcategoriesOf(ctx context.Context, category string) ([]string, error) {
	if !s.validator.IsValidTopCategory(category) {
		return nil, apperrors.InvalidCategory(category)
	}
	top, err := s.categories.FindTopCategory(ctx, category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if top == nil {
		return nil, apperrors.InvalidCategory(category)
	}
	names, err := s.categories.SubcategoryNames(ctx, top.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return names, nil
}

func (s *CartService) checkMember(ctx context.Context, memberID string) error {
	exists, err := s.members.Exists(ctx, memberID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.NotFound("member")
	}
	return nil
}

func cartPage(total int64, rows []repositories.CartQuestionRow, category string) *dto.PageResponse[dto.CartQuestionItem] {
	items := make([]dto.CartQuestionItem, 0, len(rows))
	for _, row := range rows {
		name := row.Category
		if category != "" {
			name = category
		}
		items = append(items, dto.CartQuestionItem{
			QuestionID:      row.QuestionID,
			Category:        name,
			Subcategory:     row.Subcategory,
			QuestionContent: row.QuestionContent,
		})
	}
	return &dto.PageResponse[dto.CartQuestionItem]{Total: total, Result: items}
}
