package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the one-row-per-user display profile, maintained by upsert.
type Profile struct {
	UserID    uuid.UUID `db:"user_id"`
	FullName  string    `db:"full_name"`
	UpdatedAt time.Time `db:"updated_at"`
}
