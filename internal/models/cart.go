package models

import "time"

// Cart associates a member with a saved question. CategoryName snapshots the
// question's subcategory at insertion time. At most one row per
// (member, question) pair; the check is application-level, not a constraint.
type Cart struct {
	MemberID     string    `gorm:"column:member_id;primaryKey;type:varchar(100)"`
	QuestionID   int64     `gorm:"column:question_id;primaryKey"`
	CategoryName string    `gorm:"column:category_name;type:varchar(50);not null"`
	CreatedAt    time.Time
}

func (Cart) TableName() string { return "cart" }
