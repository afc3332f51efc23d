package models

// Category is the closed set of document buckets. Stored as text in the
// database under a CHECK constraint, so new values require a migration.
type Category string

const (
	CategoryMedical   Category = "medical"
	CategoryEducation Category = "education"
	CategoryUtility   Category = "utility"
	CategoryInsurance Category = "insurance"
	CategoryOthers    Category = "others"
	CategoryEvents    Category = "events"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryMedical,
		CategoryEducation,
		CategoryUtility,
		CategoryInsurance,
		CategoryOthers,
		CategoryEvents,
	}
}

// ParseCategory validates a raw client value against the known set.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return "", false
}
