package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/models"
	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID = "0d4f5bcb-5c0f-4d53-b1d5-73e22b1a4f52"

type stubDocumentCreator struct{ err error }

func (s *stubDocumentCreator) Create(context.Context, *models.Document) error { return s.err }

type stubReminderCreator struct{}

func (s *stubReminderCreator) CreateBatch(context.Context, []*models.Reminder) error { return nil }

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(context.Context, []service.ChatMessage) (string, error) {
	return s.reply, s.err
}

func withUser(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", testUserID)
		return c.Next()
	})
}

func newAnalyzeApp(docErr error, llm *stubCompleter) *fiber.App {
	svc := service.NewAnalysisService(&stubDocumentCreator{err: docErr}, &stubReminderCreator{}, llm, zap.NewNop())
	handler := NewAnalyzeHandler(svc, zap.NewNop())

	app := fiber.New(fiber.Config{BodyLimit: 16 * 1024 * 1024})
	withUser(app)
	app.Post("/analyze", handler.AnalyzeDocument)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestAnalyzeDocumentHandler(t *testing.T) {
	validBody := func() dto.AnalyzeDocumentRequest {
		return dto.AnalyzeDocumentRequest{
			ImageBase64: "QUJD",
			Category:    "utility",
			MimeType:    "image/png",
		}
	}

	t.Run("success", func(t *testing.T) {
		llm := &stubCompleter{reply: `{"title":"Bill","extractedText":"total 10","summary":"A bill."}`}
		app := newAnalyzeApp(nil, llm)

		status, body := postJSON(t, app, "/analyze", validBody())
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])

		doc, ok := body["document"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Bill", doc["title"])
	})

	t.Run("missing fields", func(t *testing.T) {
		app := newAnalyzeApp(nil, &stubCompleter{})
		status, body := postJSON(t, app, "/analyze", dto.AnalyzeDocumentRequest{Category: "utility"})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Image and category are required", body["error"])
	})

	t.Run("invalid category", func(t *testing.T) {
		app := newAnalyzeApp(nil, &stubCompleter{})
		req := validBody()
		req.Category = "taxes"
		status, body := postJSON(t, app, "/analyze", req)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Invalid category", body["error"])
	})

	t.Run("unsupported mime type", func(t *testing.T) {
		app := newAnalyzeApp(nil, &stubCompleter{})
		req := validBody()
		req.MimeType = "video/mp4"
		status, body := postJSON(t, app, "/analyze", req)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Unsupported file type", body["error"])
	})

	t.Run("oversized upload", func(t *testing.T) {
		app := newAnalyzeApp(nil, &stubCompleter{})
		req := validBody()
		req.ImageBase64 = strings.Repeat("A", 15*1024*1024)
		status, body := postJSON(t, app, "/analyze", req)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "File exceeds the 10 MB limit", body["error"])
	})

	t.Run("upstream error statuses", func(t *testing.T) {
		tests := []struct {
			err        error
			wantStatus int
		}{
			{service.ErrLLMNotConfigured, fiber.StatusInternalServerError},
			{service.ErrLLMUnauthorized, fiber.StatusUnauthorized},
			{service.ErrLLMRateLimited, fiber.StatusTooManyRequests},
			{service.ErrLLMQuotaExhausted, fiber.StatusPaymentRequired},
		}

		for _, tt := range tests {
			app := newAnalyzeApp(nil, &stubCompleter{err: tt.err})
			status, _ := postJSON(t, app, "/analyze", validBody())
			assert.Equal(t, tt.wantStatus, status)
		}
	})

	t.Run("save failure", func(t *testing.T) {
		llm := &stubCompleter{reply: `{"title":"x","extractedText":"y","summary":"z"}`}
		app := newAnalyzeApp(assert.AnError, llm)

		status, body := postJSON(t, app, "/analyze", validBody())
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Failed to save document", body["error"])
	})
}
