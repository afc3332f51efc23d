package models

import (
	"time"

	"github.com/google/uuid"
)

// Document holds the text derived from one uploaded file. The raw image
// bytes are never stored, only what the model extracted. Rows are created
// by the analysis pipeline and deleted by their owner; never updated.
type Document struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Category      Category  `db:"category"`
	Title         string    `db:"title"`
	ExtractedText string    `db:"extracted_text"`
	Summary       string    `db:"summary"`
	CreatedAt     time.Time `db:"created_at"`
}
