package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// countRows counts a user's rows in one table. The profile stats endpoint
// calls this for documents, chat_messages and reminders.
func countRows(ctx context.Context, db *pgxpool.Pool, table string, userID uuid.UUID) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
