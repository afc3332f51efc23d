package repository

import (
	"context"

	"prisma-ai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const reminderColumns = "id, user_id, document_id, title, description, due_date, due_time, is_acknowledged, created_at"

type ReminderRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReminderRepository(db *pgxpool.Pool, logger *zap.Logger) *ReminderRepository {
	return &ReminderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	query := squirrel.Insert("reminders").
		Columns("id", "user_id", "document_id", "title", "description", "due_date", "due_time", "is_acknowledged", "created_at").
		Values(reminder.ID, reminder.UserID, reminder.DocumentID, reminder.Title, reminder.Description,
			reminder.DueDate, reminder.DueTime, reminder.IsAcknowledged, reminder.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ReminderRepository) CreateBatch(ctx context.Context, reminders []*models.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}

	query := squirrel.Insert("reminders").
		Columns("id", "user_id", "document_id", "title", "description", "due_date", "due_time", "is_acknowledged", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, reminder := range reminders {
		query = query.Values(reminder.ID, reminder.UserID, reminder.DocumentID, reminder.Title, reminder.Description,
			reminder.DueDate, reminder.DueTime, reminder.IsAcknowledged, reminder.CreatedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ReminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Reminder, error) {
	query := squirrel.Select(reminderColumns).
		From("reminders").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("due_date ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

// ListPending returns unacknowledged reminders, soonest first. Feeds the
// notification bell.
func (r *ReminderRepository) ListPending(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Reminder, error) {
	query := squirrel.Select(reminderColumns).
		From("reminders").
		Where(squirrel.Eq{"user_id": userID, "is_acknowledged": false}).
		OrderBy("due_date ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

// Acknowledge marks a reminder as done. Acknowledging an already
// acknowledged reminder rewrites true over true, so the call is idempotent.
func (r *ReminderRepository) Acknowledge(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := squirrel.Update("reminders").
		Set("is_acknowledged", true).
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

func (r *ReminderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return countRows(ctx, r.db, "reminders", userID)
}

func (r *ReminderRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Reminder, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		if err := rows.Scan(
			&reminder.ID, &reminder.UserID, &reminder.DocumentID, &reminder.Title, &reminder.Description,
			&reminder.DueDate, &reminder.DueTime, &reminder.IsAcknowledged, &reminder.CreatedAt,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, &reminder)
	}

	return reminders, rows.Err()
}
