package validator

import (
	"log"

	"joonbee_backend/internal/taxonomy"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the project-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'topcategory': the value must be one of the fixed top-level category
	// names. Empty values pass; 'required' covers those.
	mustRegister("topcategory", validateTopCategory)
}

func validateTopCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, name := range taxonomy.TopCategoryNames {
		if value == name {
			return true
		}
	}
	return false
}
