package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/models"
	"prisma-ai/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileService struct {
	profileRepo  *repository.ProfileRepository
	docRepo      *repository.DocumentRepository
	msgRepo      *repository.ChatMessageRepository
	reminderRepo *repository.ReminderRepository
	logger       *zap.Logger
}

func NewProfileService(
	profileRepo *repository.ProfileRepository,
	docRepo *repository.DocumentRepository,
	msgRepo *repository.ChatMessageRepository,
	reminderRepo *repository.ReminderRepository,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		docRepo:      docRepo,
		msgRepo:      msgRepo,
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &dto.ProfileResponse{}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &dto.ProfileResponse{
		FullName:  profile.FullName,
		UpdatedAt: profile.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (s *ProfileService) Save(ctx context.Context, userID uuid.UUID, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error) {
	profile := &models.Profile{
		UserID:    userID,
		FullName:  strings.TrimSpace(req.FullName),
		UpdatedAt: time.Now(),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &dto.ProfileResponse{
		FullName:  profile.FullName,
		UpdatedAt: profile.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (s *ProfileService) Stats(ctx context.Context, userID uuid.UUID) (*dto.ProfileStatsResponse, error) {
	docs, err := s.docRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	msgs, err := s.msgRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	reminders, err := s.reminderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reminders: %w", err)
	}

	return &dto.ProfileStatsResponse{
		DocumentsCount: docs,
		MessagesCount:  msgs,
		RemindersCount: reminders,
	}, nil
}
