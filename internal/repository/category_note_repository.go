package repository

import (
	"context"

	"prisma-ai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryNoteRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryNoteRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryNoteRepository {
	return &CategoryNoteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryNoteRepository) GetByUserCategory(ctx context.Context, userID uuid.UUID, category models.Category) (*models.CategoryNote, error) {
	query := squirrel.Select("id", "user_id", "category", "content", "updated_at").
		From("category_notes").
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var note models.CategoryNote
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&note.ID, &note.UserID, &note.Category, &note.Content, &note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// Upsert keeps the one-row-per-(user, category) invariant through the
// unique constraint.
func (r *CategoryNoteRepository) Upsert(ctx context.Context, note *models.CategoryNote) error {
	query := squirrel.Insert("category_notes").
		Columns("id", "user_id", "category", "content", "updated_at").
		Values(note.ID, note.UserID, note.Category, note.Content, note.UpdatedAt).
		Suffix("ON CONFLICT (user_id, category) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
