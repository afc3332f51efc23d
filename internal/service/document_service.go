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

// DocumentService serves the document list, dashboard counts, per-document
// chat history and the owner delete path.
type DocumentService struct {
	docRepo *repository.DocumentRepository
	msgRepo *repository.ChatMessageRepository
	logger  *zap.Logger
}

func NewDocumentService(docRepo *repository.DocumentRepository, msgRepo *repository.ChatMessageRepository, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		docRepo: docRepo,
		msgRepo: msgRepo,
		logger:  logger,
	}
}

func (s *DocumentService) List(ctx context.Context, userID uuid.UUID, categoryStr string, limit, offset int) ([]dto.DocumentResponse, error) {
	var category *models.Category
	if categoryStr != "" {
		c, ok := models.ParseCategory(categoryStr)
		if !ok {
			return nil, ErrInvalidCategory
		}
		category = &c
	}

	docs, err := s.docRepo.ListByUser(ctx, userID, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]dto.DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = documentToResponse(doc)
	}

	return responses, nil
}

func (s *DocumentService) Get(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentResponse, error) {
	doc, err := s.docRepo.GetByIDForUser(ctx, documentID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	resp := documentToResponse(doc)
	return &resp, nil
}

func (s *DocumentService) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	deleted, err := s.docRepo.Delete(ctx, documentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if !deleted {
		return ErrDocumentNotFound
	}

	s.logger.Info("Document deleted", zap.String("document_id", documentID.String()))
	return nil
}

func (s *DocumentService) Counts(ctx context.Context, userID uuid.UUID) (*dto.CategoryCountsResponse, error) {
	counts, err := s.docRepo.CountByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	// Every category appears in the response, empty ones as zero.
	result := make(map[string]int, len(models.Categories()))
	for _, c := range models.Categories() {
		result[string(c)] = counts[c]
	}

	return &dto.CategoryCountsResponse{Counts: result}, nil
}

// History returns the full chat history of one owned document, oldest first.
func (s *DocumentService) History(ctx context.Context, userID, documentID uuid.UUID) ([]dto.ChatMessageResponse, error) {
	if _, err := s.docRepo.GetByIDForUser(ctx, documentID, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	messages, err := s.msgRepo.ListByDocument(ctx, documentID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	responses := make([]dto.ChatMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = dto.ChatMessageResponse{
			ID:        msg.ID.String(),
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		}
	}

	return responses, nil
}
