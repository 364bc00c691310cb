package repositories

import (
	"context"
	"errors"
	"time"

	"joonbee_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

// Sort values accepted by List.
const (
	SortLatest = "latest"
	SortLike   = "like"
)

// InterviewFilter narrows the interview feed. Empty CategoryName means no
// category filter; empty MemberID means no liked column is computed.
type InterviewFilter struct {
	CategoryName string
	Sort         string
	MemberID     string
	Offset       int
	Limit        int
}

// InterviewListRow is one feed row with its aggregate like count. Liked is
// only meaningful when the filter carried a member id.
type InterviewListRow struct {
	InterviewID  int64  `gorm:"column:interview_id"`
	MemberID     string `gorm:"column:member_id"`
	Nickname     string `gorm:"column:nickname"`
	Thumbnail    string `gorm:"column:thumbnail"`
	CategoryName string `gorm:"column:category_name"`
	LikeCount    int64  `gorm:"column:like_count"`
	Liked        int    `gorm:"column:liked"`
}

// InterviewQuestionRow is one fan-out row of the per-page child query.
type InterviewQuestionRow struct {
	InterviewID     int64  `gorm:"column:interview_id"`
	QuestionID      int64  `gorm:"column:question_id"`
	QuestionContent string `gorm:"column:question_content"`
	SubcategoryName string `gorm:"column:subcategory_name"`
}

// InterviewDetailRow is one (interview, question) row of a detail lookup.
type InterviewDetailRow struct {
	Thumbnail       string    `gorm:"column:thumbnail"`
	NickName        string    `gorm:"column:nick_name"`
	CategoryName    string    `gorm:"column:category_name"`
	GPTOpinion      string    `gorm:"column:gpt_opinion"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	QuestionID      int64     `gorm:"column:question_id"`
	QuestionContent string    `gorm:"column:question_content"`
	AnswerContent   string    `gorm:"column:answer_content"`
	Commentary      string    `gorm:"column:commentary"`
	Evaluation      string    `gorm:"column:evaluation"`
}

// InterviewCategoryRow is one my-page row: an interview reduced to its
// category and how many questions it contains.
type InterviewCategoryRow struct {
	CategoryName  string `gorm:"column:category_name"`
	QuestionCount int64  `gorm:"column:question_count"`
	InterviewID   int64  `gorm:"column:interview_id"`
}

// InterviewQuestionDetailRow is one answered question inside an owned
// interview.
type InterviewQuestionDetailRow struct {
	InterviewID     int64  `gorm:"column:interview_id"`
	QuestionID      int64  `gorm:"column:question_id"`
	AnswerContent   string `gorm:"column:answer_content"`
	Commentary      string `gorm:"column:commentary"`
	Evaluation      string `gorm:"column:evaluation"`
	QuestionContent string `gorm:"column:question_content"`
}

type InterviewRepository interface {
	Count(ctx context.Context, categoryName string) (int64, error)
	List(ctx context.Context, filter InterviewFilter) ([]InterviewListRow, error)
	QuestionsByInterviewIDs(ctx context.Context, interviewIDs []int64) ([]InterviewQuestionRow, error)
	DetailRows(ctx context.Context, interviewID int64) ([]InterviewDetailRow, error)
	OwnedDetailRows(ctx context.Context, interviewID int64, memberID string) ([]InterviewDetailRow, error)
	CreateWithQuestions(ctx context.Context, interview *models.Interview, questions []models.InterviewAndQuestion) error
	DeleteOwned(ctx context.Context, interviewID int64, memberID string) (bool, error)
	CountByMember(ctx context.Context, memberID string) (int64, error)
	CategoryPageByMember(ctx context.Context, memberID string, offset, limit int) ([]InterviewCategoryRow, error)
	CountLikedByMember(ctx context.Context, memberID string) (int64, error)
	CategoryPageByLiked(ctx context.Context, memberID string, offset, limit int) ([]InterviewCategoryRow, error)
	QuestionDetail(ctx context.Context, interviewID, questionID int64, memberID string) (*InterviewQuestionDetailRow, error)
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) Count(ctx context.Context, categoryName string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Interview{})
	if categoryName != "" {
		query = query.Where("category_name = ?", categoryName)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// List runs the grouped feed query. The liked column is an EXISTS subselect
// added only when a member id is present, so anonymous reads never pay for it.
func (r *InterviewRepositoryImpl) List(ctx context.Context, filter InterviewFilter) ([]InterviewListRow, error) {
	selects := `i.id AS interview_id, i.member_id AS member_id,
		m.nick_name AS nickname, m.thumbnail AS thumbnail,
		i.category_name AS category_name,
		COUNT(l.member_id) AS like_count`

	query := r.db.WithContext(ctx).Table("interview AS i")

	if filter.MemberID != "" {
		selects += `,
		CASE WHEN EXISTS (
			SELECT 1 FROM ` + "`like`" + ` ll
			WHERE ll.interview_id = i.id AND ll.member_id = ?
		) THEN 1 ELSE 0 END AS liked`
		query = query.Select(selects, filter.MemberID)
	} else {
		query = query.Select(selects)
	}

	query = query.
		Joins("INNER JOIN member m ON i.member_id = m.id").
		Joins("LEFT JOIN `like` l ON i.id = l.interview_id")

	if filter.CategoryName != "" {
		query = query.Where("i.category_name = ?", filter.CategoryName)
	}

	query = query.Group("i.id, i.member_id, m.nick_name, m.thumbnail, i.category_name")

	if filter.Sort == SortLike {
		query = query.Order("like_count DESC")
	} else {
		query = query.Order("i.created_at DESC")
	}

	var rows []InterviewListRow
	err := query.Offset(filter.Offset).Limit(filter.Limit).Scan(&rows).Error
	return rows, err
}

func (r *InterviewRepositoryImpl) QuestionsByInterviewIDs(ctx context.Context, interviewIDs []int64) ([]InterviewQuestionRow, error) {
	var rows []InterviewQuestionRow
	err := r.db.WithContext(ctx).
		Table("interview_and_question AS iaq").
		Select(`iaq.interview_id AS interview_id, iaq.question_id AS question_id,
			q.question_content AS question_content,
			c.category_name AS subcategory_name`).
		Joins("INNER JOIN question q ON iaq.question_id = q.id").
		Joins("INNER JOIN category c ON q.category_id = c.id").
		Where("iaq.interview_id IN ?", interviewIDs).
		Scan(&rows).Error
	return rows, err
}

func (r *InterviewRepositoryImpl) DetailRows(ctx context.Context, interviewID int64) ([]InterviewDetailRow, error) {
	var rows []InterviewDetailRow
	err := r.db.WithContext(ctx).
		Table("interview AS i").
		Select(detailSelect).
		Joins("INNER JOIN member m ON i.member_id = m.id").
		Joins("INNER JOIN interview_and_question iaq ON iaq.interview_id = i.id").
		Joins("INNER JOIN question q ON iaq.question_id = q.id").
		Where("i.id = ?", interviewID).
		Scan(&rows).Error
	return rows, err
}

func (r *InterviewRepositoryImpl) OwnedDetailRows(ctx context.Context, interviewID int64, memberID string) ([]InterviewDetailRow, error) {
	var rows []InterviewDetailRow
	err := r.db.WithContext(ctx).
		Table("interview AS i").
		Select(detailSelect).
		Joins("INNER JOIN member m ON i.member_id = m.id").
		Joins("INNER JOIN interview_and_question iaq ON iaq.interview_id = i.id").
		Joins("INNER JOIN question q ON iaq.question_id = q.id").
		Where("i.id = ? AND i.member_id = ?", interviewID, memberID).
		Scan(&rows).Error
	return rows, err
}

const detailSelect = `m.thumbnail AS thumbnail, m.nick_name AS nick_name,
	i.category_name AS category_name, i.gpt_opinion AS gpt_opinion,
	i.created_at AS created_at,
	q.id AS question_id, q.question_content AS question_content,
	iaq.answer_content AS answer_content,
	iaq.commentary AS commentary, iaq.evaluation AS evaluation`

// CreateWithQuestions inserts the interview and its join rows atomically.
func (r *InterviewRepositoryImpl) CreateWithQuestions(ctx context.Context, interview *models.Interview, questions []models.InterviewAndQuestion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(interview).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].InterviewID = interview.ID
		}
		return tx.Create(&questions).Error
	})
}

// DeleteOwned removes an interview the member owns, children first. Returns
// false without deleting anything when no such owned interview exists.
func (r *InterviewRepositoryImpl) DeleteOwned(ctx context.Context, interviewID int64, memberID string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var interview models.Interview
		err := tx.Where("id = ? AND member_id = ?", interviewID, memberID).
			First(&interview).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("interview_id = ?", interviewID).
			Delete(&models.InterviewAndQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&interview).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *InterviewRepositoryImpl) CountByMember(ctx context.Context, memberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interview{}).
		Where("member_id = ?", memberID).Count(&count).Error
	return count, err
}

func (r *InterviewRepositoryImpl) CategoryPageByMember(ctx context.Context, memberID string, offset, limit int) ([]InterviewCategoryRow, error) {
	var rows []InterviewCategoryRow
	err := r.db.WithContext(ctx).
		Table("interview AS i").
		Select(`COUNT(*) AS question_count, i.category_name AS category_name,
			i.id AS interview_id`).
		Joins("INNER JOIN interview_and_question iaq ON iaq.interview_id = i.id").
		Where("i.member_id = ?", memberID).
		Group("i.id").
		Order("i.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *InterviewRepositoryImpl) CountLikedByMember(ctx context.Context, memberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("member_id = ?", memberID).Count(&count).Error
	return count, err
}

func (r *InterviewRepositoryImpl) CategoryPageByLiked(ctx context.Context, memberID string, offset, limit int) ([]InterviewCategoryRow, error) {
	var rows []InterviewCategoryRow
	err := r.db.WithContext(ctx).
		Table("interview AS i").
		Select(`COUNT(*) AS question_count, i.category_name AS category_name,
			i.id AS interview_id`).
		Joins("INNER JOIN interview_and_question iaq ON iaq.interview_id = i.id").
		Where("i.id IN (SELECT ll.interview_id FROM `like` ll WHERE ll.member_id = ?)", memberID).
		Group("i.id").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// QuestionDetail returns one answered question, scoped to interviews the
// member owns. ErrInterviewNotFound covers both a bad id pair and someone
// else's interview.
func (r *InterviewRepositoryImpl) QuestionDetail(ctx context.Context, interviewID, questionID int64, memberID string) (*InterviewQuestionDetailRow, error) {
	var row InterviewQuestionDetailRow
	err := r.db.WithContext(ctx).
		Table("interview_and_question AS iaq").
		Select(`iaq.interview_id AS interview_id, iaq.question_id AS question_id,
			iaq.answer_content AS answer_content, iaq.commentary AS commentary,
			iaq.evaluation AS evaluation,
			q.question_content AS question_content`).
		Joins("INNER JOIN interview i ON iaq.interview_id = i.id").
		Joins("INNER JOIN question q ON iaq.question_id = q.id").
		Where("iaq.interview_id = ? AND iaq.question_id = ? AND i.member_id = ?",
			interviewID, questionID, memberID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &row, nil
}
