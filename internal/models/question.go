package models

import "time"

// GPTWriter is the writer sentinel for questions seeded by the automated
// content pipeline.
const GPTWriter = "gpt"

// Question always belongs to a level-1 subcategory. Rows are immutable after
// creation.
type Question struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	CategoryID int64  `gorm:"column:category_id;not null;index"`
	GPTFlag    int    `gorm:"column:gpt_flag;not null;default:0"`
	Level      int    `gorm:"column:question_level;not null;default:1"`
	Writer     string `gorm:"type:varchar(100);not null"`
	Content    string `gorm:"column:question_content;type:text;not null"`
	CreatedAt  time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Question) TableName() string { return "question" }
