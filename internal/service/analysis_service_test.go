package service

import (
	"context"
	"errors"
	"testing"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDocumentCreator struct {
	created []*models.Document
	err     error
}

func (f *fakeDocumentCreator) Create(_ context.Context, doc *models.Document) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, doc)
	return nil
}

type fakeReminderBatchCreator struct {
	batches [][]*models.Reminder
	err     error
}

func (f *fakeReminderBatchCreator) CreateBatch(_ context.Context, reminders []*models.Reminder) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, reminders)
	return nil
}

type fakeCompleter struct {
	reply    string
	err      error
	received [][]ChatMessage
}

func (f *fakeCompleter) Complete(_ context.Context, messages []ChatMessage) (string, error) {
	f.received = append(f.received, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAnalysisServiceAnalyze(t *testing.T) {
	userID := uuid.New()

	validRequest := func() *dto.AnalyzeDocumentRequest {
		return &dto.AnalyzeDocumentRequest{
			ImageBase64: "QUJD",
			Category:    "medical",
			MimeType:    "image/png",
		}
	}

	t.Run("structured reply creates document and important reminders", func(t *testing.T) {
		docs := &fakeDocumentCreator{}
		rems := &fakeReminderBatchCreator{}
		llm := &fakeCompleter{reply: `{
			"title": "Lab Report",
			"extractedText": "Cholesterol: 190",
			"summary": "Annual labs.",
			"detectedDates": [
				{"date": "2026-10-01", "description": "Retest", "isImportant": true},
				{"date": "2026-10-02", "description": "Printed on", "isImportant": false},
				{"date": "not-a-date", "description": "Garbage", "isImportant": true},
				{"date": "2026-11-05", "description": "", "isImportant": true}
			]
		}`}

		svc := NewAnalysisService(docs, rems, llm, zap.NewNop())
		resp, err := svc.Analyze(context.Background(), userID, validRequest())
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, "Lab Report", resp.Document.Title)
		assert.Equal(t, "medical", resp.Document.Category)
		assert.Len(t, resp.DetectedDates, 4)

		require.Len(t, docs.created, 1)
		doc := docs.created[0]
		assert.Equal(t, userID, doc.UserID)
		assert.Equal(t, "Cholesterol: 190", doc.ExtractedText)

		// Only important dates with parseable values become reminders.
		require.Len(t, rems.batches, 1)
		batch := rems.batches[0]
		require.Len(t, batch, 2)
		assert.Equal(t, "Retest", batch[0].Title)
		assert.Equal(t, "Important Date", batch[1].Title)
		for _, r := range batch {
			require.NotNil(t, r.DocumentID)
			assert.Equal(t, doc.ID, *r.DocumentID)
			assert.Equal(t, userID, r.UserID)
			assert.False(t, r.IsAcknowledged)
		}
	})

	t.Run("plain text reply still creates a document", func(t *testing.T) {
		docs := &fakeDocumentCreator{}
		rems := &fakeReminderBatchCreator{}
		llm := &fakeCompleter{reply: "I could not find any structured data here."}

		svc := NewAnalysisService(docs, rems, llm, zap.NewNop())
		resp, err := svc.Analyze(context.Background(), userID, validRequest())
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, "Extracted Document", resp.Document.Title)
		assert.Equal(t, "I could not find any structured data here.", resp.Document.ExtractedText)
		assert.Empty(t, resp.DetectedDates)
		assert.Empty(t, rems.batches)
	})

	t.Run("invalid category rejected before model call", func(t *testing.T) {
		llm := &fakeCompleter{reply: "unused"}
		svc := NewAnalysisService(&fakeDocumentCreator{}, &fakeReminderBatchCreator{}, llm, zap.NewNop())

		req := validRequest()
		req.Category = "finance"
		_, err := svc.Analyze(context.Background(), userID, req)
		assert.ErrorIs(t, err, ErrInvalidCategory)
		assert.Empty(t, llm.received)
	})

	t.Run("model failure propagates", func(t *testing.T) {
		docs := &fakeDocumentCreator{}
		llm := &fakeCompleter{err: ErrLLMRateLimited}
		svc := NewAnalysisService(docs, &fakeReminderBatchCreator{}, llm, zap.NewNop())

		_, err := svc.Analyze(context.Background(), userID, validRequest())
		assert.ErrorIs(t, err, ErrLLMRateLimited)
		assert.Empty(t, docs.created)
	})

	t.Run("document save failure", func(t *testing.T) {
		docs := &fakeDocumentCreator{err: errors.New("connection refused")}
		llm := &fakeCompleter{reply: `{"title":"x","extractedText":"y","summary":"z"}`}
		svc := NewAnalysisService(docs, &fakeReminderBatchCreator{}, llm, zap.NewNop())

		_, err := svc.Analyze(context.Background(), userID, validRequest())
		assert.ErrorIs(t, err, ErrSaveDocument)
	})

	t.Run("reminder failure does not fail analysis", func(t *testing.T) {
		docs := &fakeDocumentCreator{}
		rems := &fakeReminderBatchCreator{err: errors.New("insert failed")}
		llm := &fakeCompleter{reply: `{
			"title": "x", "extractedText": "y", "summary": "z",
			"detectedDates": [{"date": "2026-12-01", "description": "Due", "isImportant": true}]
		}`}

		svc := NewAnalysisService(docs, rems, llm, zap.NewNop())
		resp, err := svc.Analyze(context.Background(), userID, validRequest())
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("prompt carries category and language hints", func(t *testing.T) {
		llm := &fakeCompleter{reply: `{"title":"x","extractedText":"y","summary":"z"}`}
		svc := NewAnalysisService(&fakeDocumentCreator{}, &fakeReminderBatchCreator{}, llm, zap.NewNop())

		req := validRequest()
		req.Language = "ur"
		req.ResponseLanguage = "ar"
		_, err := svc.Analyze(context.Background(), userID, req)
		require.NoError(t, err)

		require.Len(t, llm.received, 1)
		messages := llm.received[0]
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].Role)

		prompt, ok := messages[0].Content.(string)
		require.True(t, ok)
		assert.Contains(t, prompt, "Category context: medical")
		assert.Contains(t, prompt, "written in Urdu")
		assert.Contains(t, prompt, "title and summary in Arabic")

		parts, ok := messages[1].Content.([]imagePart)
		require.True(t, ok)
		assert.Equal(t, "data:image/png;base64,QUJD", parts[0].ImageURL.URL)
	})
}
