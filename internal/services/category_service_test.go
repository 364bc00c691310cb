package services

import (
	"context"
	"testing"

	"joonbee_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupedAllFoldsRowsByTopCategory(t *testing.T) {
	categories := newFakeCategoryRepo()
	categories.groupedRows = []repositories.GroupedCategoryRow{
		{MainCategoryName: "fe", MainCategoryNameKR: "Frontend", SubCategoryName: "react", SubCategoryNameKR: "React"},
		{MainCategoryName: "fe", MainCategoryNameKR: "Frontend", SubCategoryName: "vue", SubCategoryNameKR: "Vue"},
		{MainCategoryName: "be", MainCategoryNameKR: "Backend", SubCategoryName: "spring", SubCategoryNameKR: "Spring"},
		{MainCategoryName: "etc", MainCategoryNameKR: "Etc"},
	}
	svc := NewCategoryService(categories)

	groups, err := svc.GroupedAll(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "fe", groups[0].ID)
	assert.Equal(t, "Frontend", groups[0].Value)
	require.Len(t, groups[0].Children, 2)
	assert.Equal(t, "react", groups[0].Children[0].ID)
	assert.Equal(t, "Vue", groups[0].Children[1].Value)

	assert.Equal(t, "be", groups[1].ID)
	require.Len(t, groups[1].Children, 1)

	// A top with no subcategories still shows up, just childless.
	assert.Equal(t, "etc", groups[2].ID)
	assert.Empty(t, groups[2].Children)
}

func TestGroupedAllEmptyTree(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	groups, err := svc.GroupedAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}
