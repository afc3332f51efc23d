package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a date-anchored notification, created either by the analysis
// pipeline (one per important detected date) or manually by the user.
// is_acknowledged only ever moves false -> true.
type Reminder struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	DocumentID     *uuid.UUID `db:"document_id"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	DueDate        time.Time  `db:"due_date"`
	DueTime        string     `db:"due_time"`
	IsAcknowledged bool       `db:"is_acknowledged"`
	CreatedAt      time.Time  `db:"created_at"`
}
