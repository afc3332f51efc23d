package repository

import (
	"context"

	"prisma-ai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const documentColumns = "id, user_id, category, title, extracted_text, summary, created_at"

type DocumentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDocumentRepository(db *pgxpool.Pool, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := squirrel.Insert("documents").
		Columns("id", "user_id", "category", "title", "extracted_text", "summary", "created_at").
		Values(doc.ID, doc.UserID, doc.Category, doc.Title, doc.ExtractedText, doc.Summary, doc.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByIDForUser is the only lookup path, so a document another user owns
// reads exactly like a document that does not exist.
func (r *DocumentRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Document, error) {
	query := squirrel.Select(documentColumns).
		From("documents").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var doc models.Document
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&doc.ID, &doc.UserID, &doc.Category, &doc.Title, &doc.ExtractedText, &doc.Summary, &doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID uuid.UUID, category *models.Category, limit, offset int) ([]*models.Document, error) {
	query := squirrel.Select(documentColumns).
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if category != nil {
		query = query.Where(squirrel.Eq{"category": *category})
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

	var documents []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID, &doc.UserID, &doc.Category, &doc.Title, &doc.ExtractedText, &doc.Summary, &doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		documents = append(documents, &doc)
	}

	return documents, rows.Err()
}

// ListRecentByCategory returns the newest documents of one category,
// excluding the given document. Used for the health journey context.
func (r *DocumentRepository) ListRecentByCategory(ctx context.Context, userID uuid.UUID, category models.Category, excludeID uuid.UUID, limit int) ([]*models.Document, error) {
	query := squirrel.Select(documentColumns).
		From("documents").
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		Where(squirrel.NotEq{"id": excludeID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID, &doc.UserID, &doc.Category, &doc.Title, &doc.ExtractedText, &doc.Summary, &doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		documents = append(documents, &doc)
	}

	return documents, rows.Err()
}

func (r *DocumentRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := squirrel.Delete("documents").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// CountByCategory returns per-category document counts for the dashboard.
func (r *DocumentRepository) CountByCategory(ctx context.Context, userID uuid.UUID) (map[models.Category]int, error) {
	query := squirrel.Select("category", "COUNT(*)").
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("category").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.Category]int)
	for rows.Next() {
		var category models.Category
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}

	return counts, rows.Err()
}

func (r *DocumentRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return countRows(ctx, r.db, "documents", userID)
}
