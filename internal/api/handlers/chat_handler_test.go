package handlers

import (
	"context"
	"testing"
	"time"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/models"
	"prisma-ai/internal/service"
	"prisma-ai/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDocumentReader struct{ doc *models.Document }

func (s *stubDocumentReader) GetByIDForUser(_ context.Context, id, userID uuid.UUID) (*models.Document, error) {
	if s.doc == nil || s.doc.ID != id || s.doc.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	return s.doc, nil
}

func (s *stubDocumentReader) ListRecentByCategory(context.Context, uuid.UUID, models.Category, uuid.UUID, int) ([]*models.Document, error) {
	return nil, nil
}

type stubChatMessageStore struct{}

func (s *stubChatMessageStore) Create(context.Context, *models.ChatMessage) error { return nil }

func (s *stubChatMessageStore) ListByDocument(context.Context, uuid.UUID, int) ([]*models.ChatMessage, error) {
	return nil, nil
}

func newChatApp(doc *models.Document, llm *stubCompleter) *fiber.App {
	cfg := &config.ChatConfig{HistoryLimit: 20, JourneyLimit: 5, ExcerptLength: 500}
	svc := service.NewChatService(&stubDocumentReader{doc: doc}, &stubChatMessageStore{}, llm, cfg, zap.NewNop())
	handler := NewChatHandler(svc, zap.NewNop())

	app := fiber.New()
	withUser(app)
	app.Post("/chat", handler.ChatDocument)
	return app
}

func TestChatDocumentHandler(t *testing.T) {
	docID := uuid.New()
	doc := &models.Document{
		ID:            docID,
		UserID:        uuid.MustParse(testUserID),
		Category:      models.CategoryUtility,
		Title:         "Bill",
		ExtractedText: "total 10",
		CreatedAt:     time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		app := newChatApp(doc, &stubCompleter{reply: "The total is 10."})

		status, body := postJSON(t, app, "/chat", dto.ChatRequest{
			DocumentID: docID.String(),
			Message:    "what is the total?",
		})
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "The total is 10.", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		app := newChatApp(doc, &stubCompleter{})
		status, body := postJSON(t, app, "/chat", dto.ChatRequest{Message: "hi"})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Document ID and message are required", body["error"])
	})

	t.Run("malformed document id reads as missing", func(t *testing.T) {
		app := newChatApp(doc, &stubCompleter{})
		status, body := postJSON(t, app, "/chat", dto.ChatRequest{
			DocumentID: "not-a-uuid",
			Message:    "hi",
		})
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Document not found", body["error"])
	})

	t.Run("unknown document", func(t *testing.T) {
		app := newChatApp(doc, &stubCompleter{})
		status, body := postJSON(t, app, "/chat", dto.ChatRequest{
			DocumentID: uuid.NewString(),
			Message:    "hi",
		})
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Document not found", body["error"])
	})

	t.Run("upstream quota error", func(t *testing.T) {
		app := newChatApp(doc, &stubCompleter{err: service.ErrLLMQuotaExhausted})
		status, body := postJSON(t, app, "/chat", dto.ChatRequest{
			DocumentID: docID.String(),
			Message:    "hi",
		})
		assert.Equal(t, fiber.StatusPaymentRequired, status)
		require.Contains(t, body["error"], "OpenRouter")
	})
}
