package repository

import (
	"context"

	"prisma-ai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := squirrel.Select("user_id", "full_name", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.UserID, &profile.FullName, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query := squirrel.Insert("profiles").
		Columns("user_id", "full_name", "updated_at").
		Values(profile.UserID, profile.FullName, profile.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
