package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of the per-document conversation. Messages are
// append-only and ordered by created_at.
type ChatMessage struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	DocumentID uuid.UUID `db:"document_id"`
	Role       ChatRole  `db:"role"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}
