package repositories

import (
	"context"
	"errors"

	"joonbee_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

// MemberInfoRow aggregates the member row with its interview count.
type MemberInfoRow struct {
	ID             string `gorm:"column:id"`
	Thumbnail      string `gorm:"column:thumbnail"`
	NickName       string `gorm:"column:nick_name"`
	Email          string `gorm:"column:email"`
	InterviewCount int64  `gorm:"column:interview_count"`
}

// CategoryCountRow is one (subcategory, answered-question count) pair for the
// my-info breakdown.
type CategoryCountRow struct {
	CategoryName  string `gorm:"column:category_name"`
	QuestionCount int64  `gorm:"column:question_count"`
}

type MemberRepository interface {
	FindByID(ctx context.Context, id string) (*models.Member, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, member *models.Member) error
	ExistsByNickName(ctx context.Context, nickName string) (bool, error)
	UpdateNickName(ctx context.Context, id, nickName string) error
	Info(ctx context.Context, id string) (*MemberInfoRow, error)
	CategoryQuestionCounts(ctx context.Context, memberID string) ([]CategoryCountRow, error)
}

type MemberRepositoryImpl struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

func (r *MemberRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepositoryImpl) ExistsByNickName(ctx context.Context, nickName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("nick_name = ?", nickName).Count(&count).Error
	return count > 0, err
}

func (r *MemberRepositoryImpl) UpdateNickName(ctx context.Context, id, nickName string) error {
	result := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("id = ?", id).Update("nick_name", nickName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// Info returns the member row together with how many interviews it owns.
func (r *MemberRepositoryImpl) Info(ctx context.Context, id string) (*MemberInfoRow, error) {
	var row MemberInfoRow
	err := r.db.WithContext(ctx).
		Table("member AS m").
		Select(`m.id AS id, m.thumbnail AS thumbnail, m.nick_name AS nick_name,
			m.email AS email, COUNT(i.id) AS interview_count`).
		Joins("LEFT JOIN interview i ON i.member_id = m.id").
		Where("m.id = ?", id).
		Group("m.id").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &row, nil
}

// CategoryQuestionCounts groups the member's answered questions by their
// subcategory, largest bucket first.
func (r *MemberRepositoryImpl) CategoryQuestionCounts(ctx context.Context, memberID string) ([]CategoryCountRow, error) {
	var rows []CategoryCountRow
	err := r.db.WithContext(ctx).
		Table("interview AS i").
		Select("c.category_name AS category_name, COUNT(*) AS question_count").
		Joins("INNER JOIN interview_and_question iaq ON iaq.interview_id = i.id").
		Joins("INNER JOIN question q ON q.id = iaq.question_id").
		Joins("INNER JOIN category c ON c.id = q.category_id AND c.category_level = 1").
		Where("i.member_id = ?", memberID).
		Group("c.category_name").
		Order("question_count DESC").
		Scan(&rows).Error
	return rows, err
}
