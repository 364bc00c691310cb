package repositories

import (
	"context"
	"errors"

	"joonbee_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionWithCategoryRow is one listing row joined up through the taxonomy.
type QuestionWithCategoryRow struct {
	QuestionID      int64  `gorm:"column:question_id"`
	CategoryID      int64  `gorm:"column:category_id"`
	CategoryName    string `gorm:"column:category_name"`
	SubcategoryName string `gorm:"column:subcategory_name"`
	QuestionContent string `gorm:"column:question_content"`
}

// QuestionPickRow is one randomly drawn question.
type QuestionPickRow struct {
	QuestionID      int64  `gorm:"column:question_id"`
	QuestionContent string `gorm:"column:question_content"`
}

// QuestionCheckRow echoes a selected question with its full category path.
type QuestionCheckRow struct {
	QuestionID      int64  `gorm:"column:question_id"`
	Category        string `gorm:"column:category"`
	Subcategory     string `gorm:"column:subcategory"`
	QuestionContent string `gorm:"column:question_content"`
}

type QuestionRepository interface {
	CountGenerated(ctx context.Context) (int64, error)
	ListGenerated(ctx context.Context, offset, limit int) ([]QuestionWithCategoryRow, error)
	CountGeneratedByUpper(ctx context.Context, upperID int64) (int64, error)
	ListGeneratedByUpper(ctx context.Context, upperID int64, offset, limit int) ([]QuestionWithCategoryRow, error)
	CountGeneratedBySubcategory(ctx context.Context, subcategoryName string) (int64, error)
	ListGeneratedBySubcategory(ctx context.Context, subcategoryName string, offset, limit int) ([]QuestionWithCategoryRow, error)
	RandomGeneratedBySubcategories(ctx context.Context, subcategoryNames []string, count int) ([]QuestionPickRow, error)
	RandomGeneratedByUpper(ctx context.Context, upperID int64, count int) ([]QuestionPickRow, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByContent(ctx context.Context, content string) (bool, error)
	ListByIDs(ctx context.Context, ids []int64) ([]QuestionCheckRow, error)
	ContentAndSubcategory(ctx context.Context, id int64) (*QuestionCheckRow, error)
}

type QuestionRepositoryImpl struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &QuestionRepositoryImpl{db: db}
}

func (r *QuestionRepositoryImpl) CountGenerated(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("writer = ?", models.GPTWriter).Count(&count).Error
	return count, err
}

func (r *QuestionRepositoryImpl) ListGenerated(ctx context.Context, offset, limit int) ([]QuestionWithCategoryRow, error) {
	var rows []QuestionWithCategoryRow
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Select(`q.id AS question_id, c.id AS category_id,
			parent.category_name AS category_name,
			c.category_name AS subcategory_name,
			q.question_content AS question_content`).
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Joins("INNER JOIN category parent ON c.category_upper_id = parent.id").
		Where("q.writer = ?", models.GPTWriter).
		Order("q.id").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepositoryImpl) CountGeneratedByUpper(ctx context.Context, upperID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("c.category_upper_id = ? AND q.writer = ?", upperID, models.GPTWriter).
		Count(&count).Error
	return count, err
}

func (r *QuestionRepositoryImpl) ListGeneratedByUpper(ctx context.Context, upperID int64, offset, limit int) ([]QuestionWithCategoryRow, error) {
	var rows []QuestionWithCategoryRow
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Select(`q.id AS question_id, c.id AS category_id,
			c.category_name AS subcategory_name,
			q.question_content AS question_content`).
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("c.category_upper_id = ? AND q.writer = ?", upperID, models.GPTWriter).
		Order("q.id").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepositoryImpl) CountGeneratedBySubcategory(ctx context.Context, subcategoryName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("c.category_name = ? AND q.writer = ?", subcategoryName, models.GPTWriter).
		Count(&count).Error
	return count, err
}

func (r *QuestionRepositoryImpl) ListGeneratedBySubcategory(ctx context.Context, subcategoryName string, offset, limit int) ([]QuestionWithCategoryRow, error) {
	var rows []QuestionWithCategoryRow
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Select(`q.id AS question_id, c.id AS category_id,
			c.category_name AS subcategory_name,
			q.question_content AS question_content`).
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("c.category_name = ? AND q.writer = ?", subcategoryName, models.GPTWriter).
		Order("q.id").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// RandomGeneratedBySubcategories draws count random generated questions from
// the named subcategories. ORDER BY RAND() is fine at this table size.
func (r *QuestionRepositoryImpl) RandomGeneratedBySubcategories(ctx context.Context, subcategoryNames []string, count int) ([]QuestionPickRow, error) {
	var rows []QuestionPickRow
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Select("q.id AS question_id, q.question_content AS question_content").
		Joins("INNER JOIN category c ON q.category_id = c.id AND c.category_name IN ?", subcategoryNames).
		Where("q.writer = ?", models.GPTWriter).
		Order("RAND()").Limit(count).
		Scan(&rows).Error
	return rows, err
}

// RandomGeneratedByUpper draws from every subcategory under one top category.
func (r *QuestionRepositoryImpl) RandomGeneratedByUpper(ctx context.Context, upperID int64, count int) ([]QuestionPickRow, error) {
	var rows []QuestionPickRow
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Select("q.id AS question_id, q.question_content AS question_content").
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("q.writer = ? AND c.category_upper_id = ?", models.GPTWriter, upperID).
		Order("RAND()").Limit(count).
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepositoryImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByContent reports whether any question, regardless of writer, already
// carries exactly this content.
func (r *QuestionRepositoryImpl) ExistsByContent(ctx context.Context, content string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("question_content = ?", content).Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepositoryImpl) ListByIDs(ctx context.Context, ids []int64) ([]QuestionCheckRow, error) {
	var rows []QuestionCheckRow
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Select(`q.id AS question_id,
			c.category_name AS category,
			(SELECT c2.category_name FROM category c2 WHERE c2.id = c.category_upper_id) AS subcategory,
			q.question_content AS question_content`).
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("q.id IN ?", ids).
		Scan(&rows).Error
	return rows, err
}

// ContentAndSubcategory returns the stored content and subcategory name for
// one question, ErrQuestionNotFound when the id does not exist.
func (r *QuestionRepositoryImpl) ContentAndSubcategory(ctx context.Context, id int64) (*QuestionCheckRow, error) {
	var row QuestionCheckRow
	err := r.db.WithContext(ctx).
		Table("question AS q").
		Select(`q.id AS question_id, c.category_name AS subcategory,
			q.question_content AS question_content`).
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("q.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &row, nil
}
