package models

// Category is a node in the two-level taxonomy tree. Level 0 rows are the
// fixed top-level tags; level 1 rows point at their parent via UpperID.
// Reference data: never written at runtime.
type Category struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"column:category_name;type:varchar(50);uniqueIndex;not null"`
	NameKR  string `gorm:"column:category_name_kr;type:varchar(50)"`
	Level   int    `gorm:"column:category_level;not null"`
	UpperID int64  `gorm:"column:category_upper_id;not null;default:0"`
}

func (Category) TableName() string { return "category" }

const (
	CategoryLevelTop = 0
	CategoryLevelSub = 1
)
