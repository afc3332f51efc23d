package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/models"
	"prisma-ai/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NoteService struct {
	noteRepo *repository.CategoryNoteRepository
	logger   *zap.Logger
}

func NewNoteService(noteRepo *repository.CategoryNoteRepository, logger *zap.Logger) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Get returns the user's note for a category, or an empty note when none
// was saved yet.
func (s *NoteService) Get(ctx context.Context, userID uuid.UUID, categoryStr string) (*dto.NoteResponse, error) {
	category, ok := models.ParseCategory(categoryStr)
	if !ok {
		return nil, ErrInvalidCategory
	}

	note, err := s.noteRepo.GetByUserCategory(ctx, userID, category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &dto.NoteResponse{Category: string(category)}, nil
		}
		return nil, fmt.Errorf("failed to load note: %w", err)
	}

	return &dto.NoteResponse{
		Category:  string(note.Category),
		Content:   note.Content,
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (s *NoteService) Save(ctx context.Context, userID uuid.UUID, categoryStr, content string) (*dto.NoteResponse, error) {
	category, ok := models.ParseCategory(categoryStr)
	if !ok {
		return nil, ErrInvalidCategory
	}

	note := &models.CategoryNote{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Content:   content,
		UpdatedAt: time.Now(),
	}

	if err := s.noteRepo.Upsert(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	return &dto.NoteResponse{
		Category:  string(note.Category),
		Content:   note.Content,
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}, nil
}
