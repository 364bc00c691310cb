package models

import "time"

// Like marks that a member recommended an interview. Toggling is
// read-then-branch in the service layer: a second like from the same member
// deletes the row instead of accumulating.
type Like struct {
	MemberID    string    `gorm:"column:member_id;primaryKey;type:varchar(100)"`
	InterviewID int64     `gorm:"column:interview_id;primaryKey"`
	CreatedAt   time.Time
}

func (Like) TableName() string { return "like" }
