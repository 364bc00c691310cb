package models

import "time"

// LoginType tags which OAuth provider owns the member's identity.
type LoginType string

const (
	LoginTypeKakao  LoginType = "KAKAO"
	LoginTypeNaver  LoginType = "NAVER"
	LoginTypeGoogle LoginType = "GOOGLE"
)

// Member is keyed by the opaque id the OAuth provider supplies. A member with
// an empty nickname has not finished onboarding and never gets a session.
type Member struct {
	ID        string    `gorm:"primaryKey;type:varchar(100)"`
	Email     string    `gorm:"type:varchar(100)"`
	Password  string    `gorm:"type:varchar(200);not null"`
	NickName  string    `gorm:"column:nick_name;type:varchar(50)"`
	Thumbnail string    `gorm:"type:varchar(500)"`
	LoginType LoginType `gorm:"column:login_type;type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Member) TableName() string { return "member" }

// Onboarded reports whether the member finished nickname registration.
func (m *Member) Onboarded() bool {
	return m.NickName != ""
}
