package services

import (
	"context"

	"joonbee_backend/internal/dto"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/pkg/apperrors"
)

// CategoryService exposes the taxonomy tree for pickers.
type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// GroupedAll folds the flat self-join rows into one group per top-level
// category, children in storage order.
func (s *CategoryService) GroupedAll(ctx context.Context) ([]dto.CategoryGroup, error) {
	rows, err := s.categories.GroupedTree(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	groups := make([]dto.CategoryGroup, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.MainCategoryName]
		if !ok {
			i = len(groups)
			index[row.MainCategoryName] = i
			groups = append(groups, dto.CategoryGroup{
				ID:       row.MainCategoryName,
				Value:    row.MainCategoryNameKR,
				Children: []dto.CategoryNode{},
			})
		}
		if row.SubCategoryName != "" {
			groups[i].Children = append(groups[i].Children, dto.CategoryNode{
				ID:    row.SubCategoryName,
				Value: row.SubCategoryNameKR,
			})
		}
	}
	return groups, nil
}
