package taxonomy

import (
	"context"
	"testing"

	"joonbee_backend/internal/models"
	"joonbee_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	tops map[string]*models.Category
	subs map[string]*models.Category
}

func newFakeLookup() *fakeLookup {
	f := &fakeLookup{
		tops: map[string]*models.Category{},
		subs: map[string]*models.Category{},
	}
	var id int64 = 1
	for _, name := range TopCategoryNames {
		f.tops[name] = &models.Category{ID: id, Name: name, Level: models.CategoryLevelTop}
		id++
	}
	add := func(name, parent string) {
		f.subs[name] = &models.Category{ID: id, Name: name, Level: models.CategoryLevelSub, UpperID: f.tops[parent].ID}
		id++
	}
	add("react", "fe")
	add("vue", "fe")
	add("spring", "be")
	add("network", "cs")
	return f
}

func (f *fakeLookup) FindTopCategory(_ context.Context, name string) (*models.Category, error) {
	return f.tops[name], nil
}

func (f *fakeLookup) FindSubcategory(_ context.Context, name string) (*models.Category, error) {
	return f.subs[name], nil
}

func TestIsValidTopCategory(t *testing.T) {
	v := NewValidator(newFakeLookup())

	for _, name := range TopCategoryNames {
		assert.True(t, v.IsValidTopCategory(name), name)
	}
	assert.False(t, v.IsValidTopCategory(""))
	assert.False(t, v.IsValidTopCategory("frontend"))
	assert.False(t, v.IsValidTopCategory("FE"))
}

func TestSubcategoryBelongsTo(t *testing.T) {
	v := NewValidator(newFakeLookup())
	ctx := context.Background()

	valid := map[string]string{"react": "fe", "vue": "fe", "spring": "be", "network": "cs"}
	for sub, top := range valid {
		ok, err := v.SubcategoryBelongsTo(ctx, top, sub)
		require.NoError(t, err)
		assert.True(t, ok, "%s/%s", top, sub)
	}

	ok, err := v.SubcategoryBelongsTo(ctx, "be", "react")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateChainOrder(t *testing.T) {
	v := NewValidator(newFakeLookup())
	ctx := context.Background()

	tests := []struct {
		name     string
		top, sub string
		wantCode apperrors.ErrorCode
	}{
		{"unknown top checked first", "frontend", "nope", apperrors.CodeInvalidCategory},
		{"unknown top beats unknown sub", "frontend", "react", apperrors.CodeInvalidCategory},
		{"missing sub checked second", "fe", "nope", apperrors.CodeInvalidSubcategory},
		{"parent mismatch checked last", "be", "react", apperrors.CodeCategoryMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateChain(ctx, tt.top, tt.sub)
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, 400, appErr.HTTPCode)
		})
	}

	assert.NoError(t, v.ValidateChain(ctx, "fe", "react"))
}
