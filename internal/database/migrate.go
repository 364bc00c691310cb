package database

import (
	"fmt"

	"joonbee_backend/internal/logger"
	"joonbee_backend/internal/models"
	"joonbee_backend/internal/taxonomy"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every entity and seeds the category tree.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Member{},
		&models.Category{},
		&models.Question{},
		&models.Cart{},
		&models.Interview{},
		&models.InterviewAndQuestion{},
		&models.Like{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := seedCategories(db); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	logger.Info("database migrated")
	return nil
}

// topCategorySeed maps the fixed top slugs to display names.
var topCategorySeed = map[string]string{
	"fe":       "Frontend",
	"be":       "Backend",
	"language": "Language",
	"cs":       "CS",
	"mobile":   "Mobile",
	"etc":      "Etc",
}

type subCategorySeed struct {
	name    string
	display string
	parent  string
}

var subCategorySeeds = []subCategorySeed{
	{"react", "React", "fe"},
	{"vue", "Vue", "fe"},
	{"next", "Next.js", "fe"},
	{"spring", "Spring", "be"},
	{"node", "Node.js", "be"},
	{"express", "Express", "be"},
	{"java", "Java", "language"},
	{"javascript", "JavaScript", "language"},
	{"python", "Python", "language"},
	{"network", "Network", "cs"},
	{"os", "OS", "cs"},
	{"database", "Database", "cs"},
	{"datastructure", "Data Structure", "cs"},
	{"android", "Android", "mobile"},
	{"ios", "iOS", "mobile"},
	{"flutter", "Flutter", "mobile"},
	{"devops", "DevOps", "etc"},
	{"git", "Git", "etc"},
}

// seedCategories inserts the two-level tree if it is not there yet. Existing
// rows stay untouched so a redeploy never rewrites reference data.
func seedCategories(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		topIDs := make(map[string]int64, len(taxonomy.TopCategoryNames))

		// Iterate the fixed slice, not the map, to keep ids stable.
		for _, name := range taxonomy.TopCategoryNames {
			row := models.Category{
				Name:   name,
				NameKR: topCategorySeed[name],
				Level:  models.CategoryLevelTop,
			}
			if err := tx.Where("category_name = ?", name).FirstOrCreate(&row).Error; err != nil {
				return err
			}
			topIDs[name] = row.ID
		}

		for _, seed := range subCategorySeeds {
			row := models.Category{
				Name:    seed.name,
				NameKR:  seed.display,
				Level:   models.CategoryLevelSub,
				UpperID: topIDs[seed.parent],
			}
			if err := tx.Where("category_name = ?", seed.name).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
