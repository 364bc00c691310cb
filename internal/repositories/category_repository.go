package repositories

import (
	"context"
	"errors"

	"joonbee_backend/internal/models"

	"gorm.io/gorm"
)

// GroupedCategoryRow is one (top, sub) pair from the self-joined tree query.
type GroupedCategoryRow struct {
	MainCategoryName   string `gorm:"column:main_category_name"`
	MainCategoryNameKR string `gorm:"column:main_category_name_kr"`
	SubCategoryName    string `gorm:"column:sub_category_name"`
	SubCategoryNameKR  string `gorm:"column:sub_category_name_kr"`
}

type CategoryRepository interface {
	FindTopCategory(ctx context.Context, name string) (*models.Category, error)
	FindSubcategory(ctx context.Context, name string) (*models.Category, error)
	SubcategoryNames(ctx context.Context, upperID int64) ([]string, error)
	GroupedTree(ctx context.Context) ([]GroupedCategoryRow, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// FindTopCategory returns the level-0 row by name, or nil when absent.
func (r *CategoryRepositoryImpl) FindTopCategory(ctx context.Context, name string) (*models.Category, error) {
	return r.findByNameAndLevel(ctx, name, models.CategoryLevelTop)
}

// FindSubcategory returns the level-1 row by name, or nil when absent.
func (r *CategoryRepositoryImpl) FindSubcategory(ctx context.Context, name string) (*models.Category, error) {
	return r.findByNameAndLevel(ctx, name, models.CategoryLevelSub)
}

func (r *CategoryRepositoryImpl) findByNameAndLevel(ctx context.Context, name string, level int) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("category_name = ? AND category_level = ?", name, level).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) SubcategoryNames(ctx context.Context, upperID int64) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("category_upper_id = ?", upperID).
		Pluck("category_name", &names).Error
	return names, err
}

// GroupedTree returns every top-level category joined to its subcategories,
// ordered so consecutive rows of one top can be folded into a group.
func (r *CategoryRepositoryImpl) GroupedTree(ctx context.Context) ([]GroupedCategoryRow, error) {
	var rows []GroupedCategoryRow
	err := r.db.WithContext(ctx).
		Table("category AS main").
		Select(`main.category_name AS main_category_name,
			main.category_name_kr AS main_category_name_kr,
			sub.category_name AS sub_category_name,
			sub.category_name_kr AS sub_category_name_kr`).
		Joins("LEFT JOIN category AS sub ON main.id = sub.category_upper_id").
		Where("main.category_upper_id = 0").
		Order("sub.category_upper_id").
		Scan(&rows).Error
	return rows, err
}
