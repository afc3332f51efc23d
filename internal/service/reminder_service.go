package service

import (
	"context"
	"fmt"
	"time"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/models"
	"prisma-ai/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderService struct {
	reminderRepo *repository.ReminderRepository
	logger       *zap.Logger
}

func NewReminderService(reminderRepo *repository.ReminderRepository, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

func (s *ReminderService) List(ctx context.Context, userID uuid.UUID) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return remindersToResponse(reminders), nil
}

func (s *ReminderService) ListPending(ctx context.Context, userID uuid.UUID, limit int) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.ListPending(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}
	return remindersToResponse(reminders), nil
}

// Create adds a manual reminder from the notes dialog. Due date is the only
// required date field; due time stays free-form text.
func (s *ReminderService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: %w", req.DueDate, err)
	}

	reminder := &models.Reminder{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        dueDate,
		DueTime:        req.DueTime,
		IsAcknowledged: false,
		CreatedAt:      time.Now(),
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	resp := reminderToResponse(reminder)
	return &resp, nil
}

// Acknowledge marks a reminder done. Repeated acknowledgements are no-ops,
// there is no way back to unacknowledged.
func (s *ReminderService) Acknowledge(ctx context.Context, userID, reminderID uuid.UUID) error {
	found, err := s.reminderRepo.Acknowledge(ctx, reminderID, userID)
	if err != nil {
		return fmt.Errorf("failed to acknowledge reminder: %w", err)
	}
	if !found {
		return ErrReminderNotFound
	}
	return nil
}

func remindersToResponse(reminders []*models.Reminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i, r := range reminders {
		responses[i] = reminderToResponse(r)
	}
	return responses
}

func reminderToResponse(r *models.Reminder) dto.ReminderResponse {
	resp := dto.ReminderResponse{
		ID:             r.ID.String(),
		Title:          r.Title,
		Description:    r.Description,
		DueDate:        r.DueDate.Format("2006-01-02"),
		DueTime:        r.DueTime,
		IsAcknowledged: r.IsAcknowledged,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
	if r.DocumentID != nil {
		resp.DocumentID = r.DocumentID.String()
	}
	return resp
}
