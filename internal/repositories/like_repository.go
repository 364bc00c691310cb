package repositories

import (
	"context"

	"joonbee_backend/internal/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Exists(ctx context.Context, memberID string, interviewID int64) (bool, error)
	Insert(ctx context.Context, memberID string, interviewID int64) error
	Delete(ctx context.Context, memberID string, interviewID int64) error
	CountByInterview(ctx context.Context, interviewID int64) (int64, error)
}

type LikeRepositoryImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &LikeRepositoryImpl{db: db}
}

func (r *LikeRepositoryImpl) Exists(ctx context.Context, memberID string, interviewID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("member_id = ? AND interview_id = ?", memberID, interviewID).
		Count(&count).Error
	return count > 0, err
}

func (r *LikeRepositoryImpl) Insert(ctx context.Context, memberID string, interviewID int64) error {
	return r.db.WithContext(ctx).Create(&models.Like{
		MemberID:    memberID,
		InterviewID: interviewID,
	}).Error
}

func (r *LikeRepositoryImpl) Delete(ctx context.Context, memberID string, interviewID int64) error {
	return r.db.WithContext(ctx).
		Where("member_id = ? AND interview_id = ?", memberID, interviewID).
		Delete(&models.Like{}).Error
}

func (r *LikeRepositoryImpl) CountByInterview(ctx context.Context, interviewID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("interview_id = ?", interviewID).Count(&count).Error
	return count, err
}
