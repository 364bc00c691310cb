package models

import "time"

// Interview is one completed mock-interview session. Its question set is
// written once, together with the interview row, and never mutated.
type Interview struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	MemberID     string `gorm:"column:member_id;type:varchar(100);not null;index"`
	CategoryName string `gorm:"column:category_name;type:varchar(50);not null"`
	GPTOpinion   string `gorm:"column:gpt_opinion;type:text"`
	CreatedAt    time.Time

	Member *Member `gorm:"foreignKey:MemberID"`
}

func (Interview) TableName() string { return "interview" }

// InterviewAndQuestion is the per-question record of what was asked and
// answered within an interview. Deleting an interview removes these rows
// first; the cleanup is enforced in the mutation layer, not by the schema.
type InterviewAndQuestion struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	InterviewID   int64  `gorm:"column:interview_id;not null;index"`
	QuestionID    int64  `gorm:"column:question_id;not null"`
	AnswerContent string `gorm:"column:answer_content;type:text"`
	Commentary    string `gorm:"type:text"`
	Evaluation    string `gorm:"type:text"`
}

func (InterviewAndQuestion) TableName() string { return "interview_and_question" }
