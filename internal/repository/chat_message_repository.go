package repository

import (
	"context"

	"prisma-ai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ChatMessageRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatMessageRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatMessageRepository {
	return &ChatMessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatMessageRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	query := squirrel.Insert("chat_messages").
		Columns("id", "user_id", "document_id", "role", "content", "created_at").
		Values(msg.ID, msg.UserID, msg.DocumentID, msg.Role, msg.Content, msg.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByDocument returns the oldest messages first, capped at limit. A limit
// of 0 means no cap.
func (r *ChatMessageRepository) ListByDocument(ctx context.Context, documentID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	query := squirrel.Select("id", "user_id", "document_id", "role", "content", "created_at").
		From("chat_messages").
		Where(squirrel.Eq{"document_id": documentID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(
			&msg.ID, &msg.UserID, &msg.DocumentID, &msg.Role, &msg.Content, &msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}

func (r *ChatMessageRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return countRows(ctx, r.db, "chat_messages", userID)
}
