package taxonomy

import (
	"context"

	"joonbee_backend/internal/models"
	"joonbee_backend/pkg/apperrors"
)

// TopCategoryNames is the fixed set of level-0 category slugs. Built into a
// lookup table once at process start; nothing re-declares this list.
var TopCategoryNames = []string{"fe", "be", "language", "cs", "mobile", "etc"}

// Lookup resolves category rows by name. The gorm category repository
// implements it; tests use an in-memory fake.
type Lookup interface {
	FindTopCategory(ctx context.Context, name string) (*models.Category, error)
	FindSubcategory(ctx context.Context, name string) (*models.Category, error)
}

// Validator answers the three taxonomy questions every content and mutation
// operation asks, in the fixed fail-fast order.
type Validator struct {
	tops   map[string]struct{}
	lookup Lookup
}

func NewValidator(lookup Lookup) *Validator {
	tops := make(map[string]struct{}, len(TopCategoryNames))
	for _, name := range TopCategoryNames {
		tops[name] = struct{}{}
	}
	return &Validator{tops: tops, lookup: lookup}
}

// IsValidTopCategory reports membership in the fixed slug set.
func (v *Validator) IsValidTopCategory(name string) bool {
	_, ok := v.tops[name]
	return ok
}

// IsValidSubcategory reports whether a level-1 category row exists with the
// given name.
func (v *Validator) IsValidSubcategory(ctx context.Context, name string) (bool, error) {
	sub, err := v.lookup.FindSubcategory(ctx, name)
	if err != nil {
		return false, err
	}
	return sub != nil, nil
}

// SubcategoryBelongsTo reports whether subName's upper reference resolves to
// the row for topName.
func (v *Validator) SubcategoryBelongsTo(ctx context.Context, topName, subName string) (bool, error) {
	sub, err := v.lookup.FindSubcategory(ctx, subName)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, nil
	}
	top, err := v.lookup.FindTopCategory(ctx, topName)
	if err != nil {
		return false, err
	}
	if top == nil {
		return false, nil
	}
	return sub.UpperID == top.ID, nil
}

// ValidateChain applies the three checks in order and fails on the first
// violation: enum membership, then subcategory existence, then parentage.
func (v *Validator) ValidateChain(ctx context.Context, topName, subName string) error {
	if !v.IsValidTopCategory(topName) {
		return apperrors.InvalidCategory(topName)
	}
	ok, err := v.IsValidSubcategory(ctx, subName)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !ok {
		return apperrors.InvalidSubcategory(subName)
	}
	ok, err = v.SubcategoryBelongsTo(ctx, topName, subName)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !ok {
		return apperrors.CategoryMismatch(topName, subName)
	}
	return nil
}
