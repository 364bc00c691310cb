package repositories

import (
	"context"

	"joonbee_backend/internal/models"

	"gorm.io/gorm"
)

// CartQuestionRow is one cart listing row. Category is filled either from a
// parent join or by the caller, depending on the listing variant.
type CartQuestionRow struct {
	QuestionID      int64  `gorm:"column:question_id"`
	Category        string `gorm:"column:category"`
	Subcategory     string `gorm:"column:subcategory"`
	QuestionContent string `gorm:"column:question_content"`
}

type CartRepository interface {
	CountByMember(ctx context.Context, memberID string) (int64, error)
	ListByMember(ctx context.Context, memberID string, offset, limit int) ([]CartQuestionRow, error)
	CountByMemberAndSubcategories(ctx context.Context, memberID string, subcategoryNames []string) (int64, error)
	ListByMemberAndSubcategories(ctx context.Context, memberID string, subcategoryNames []string, offset, limit int) ([]CartQuestionRow, error)
	CountByMemberAndSubcategory(ctx context.Context, memberID, subcategoryName string) (int64, error)
	ListByMemberAndSubcategory(ctx context.Context, memberID, subcategoryName string, offset, limit int) ([]CartQuestionRow, error)
	Exists(ctx context.Context, memberID string, questionID int64) (bool, error)
	Insert(ctx context.Context, cart *models.Cart) error
	InsertWithNewQuestion(ctx context.Context, question *models.Question, memberID, subcategoryName string) error
	Delete(ctx context.Context, memberID string, questionID int64) (bool, error)
}

type CartRepositoryImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) CountByMember(ctx context.Context, memberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cart{}).
		Where("member_id = ?", memberID).Count(&count).Error
	return count, err
}

// ListByMember resolves each entry's top category with a self join on the
// taxonomy, newest entries first.
func (r *CartRepositoryImpl) ListByMember(ctx context.Context, memberID string, offset, limit int) ([]CartQuestionRow, error) {
	var rows []CartQuestionRow
	err := r.db.WithContext(ctx).
		Table("cart").
		Select(`cart.question_id AS question_id,
			c_upper.category_name AS category,
			cart.category_name AS subcategory,
			q.question_content AS question_content`).
		Joins("INNER JOIN question q ON cart.question_id = q.id").
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Joins("INNER JOIN category c_upper ON c.category_upper_id = c_upper.id").
		Where("cart.member_id = ?", memberID).
		Order("cart.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *CartRepositoryImpl) CountByMemberAndSubcategories(ctx context.Context, memberID string, subcategoryNames []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cart{}).
		Where("member_id = ? AND category_name IN ?", memberID, subcategoryNames).
		Count(&count).Error
	return count, err
}

func (r *CartRepositoryImpl) ListByMemberAndSubcategories(ctx context.Context, memberID string, subcategoryNames []string, offset, limit int) ([]CartQuestionRow, error) {
	var rows []CartQuestionRow
	err := r.db.WithContext(ctx).
		Table("cart").
		Select(`cart.question_id AS question_id,
			cart.category_name AS subcategory,
			q.question_content AS question_content`).
		Joins("INNER JOIN question q ON cart.question_id = q.id").
		Where("cart.member_id = ? AND cart.category_name IN ?", memberID, subcategoryNames).
		Order("cart.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *CartRepositoryImpl) CountByMemberAndSubcategory(ctx context.Context, memberID, subcategoryName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cart{}).
		Where("member_id = ? AND category_name = ?", memberID, subcategoryName).
		Count(&count).Error
	return count, err
}

func (r *CartRepositoryImpl) ListByMemberAndSubcategory(ctx context.Context, memberID, subcategoryName string, offset, limit int) ([]CartQuestionRow, error) {
	var rows []CartQuestionRow
	err := r.db.WithContext(ctx).
		Table("cart").
		Select(`cart.question_id AS question_id,
			cart.category_name AS subcategory,
			q.question_content AS question_content`).
		Joins("INNER JOIN question q ON cart.question_id = q.id").
		Where("cart.member_id = ? AND cart.category_name = ?", memberID, subcategoryName).
		Order("cart.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *CartRepositoryImpl) Exists(ctx context.Context, memberID string, questionID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cart{}).
		Where("member_id = ? AND question_id = ?", memberID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *CartRepositoryImpl) Insert(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

// InsertWithNewQuestion stores a member-authored question and its cart entry
// in one transaction, so a failed cart insert never leaves an orphan question.
func (r *CartRepositoryImpl) InsertWithNewQuestion(ctx context.Context, question *models.Question, memberID, subcategoryName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return tx.Create(&models.Cart{
			MemberID:     memberID,
			QuestionID:   question.ID,
			CategoryName: subcategoryName,
		}).Error
	})
}

// Delete removes one entry and reports whether it existed, so a second call
// on the same pair reads as success-then-not-found.
func (r *CartRepositoryImpl) Delete(ctx context.Context, memberID string, questionID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("member_id = ? AND question_id = ?", memberID, questionID).
		Delete(&models.Cart{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
