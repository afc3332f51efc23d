package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryNote is free text a user keeps per category. At most one row per
// (user, category), maintained by upsert.
type CategoryNote struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Category  Category  `db:"category"`
	Content   string    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}
