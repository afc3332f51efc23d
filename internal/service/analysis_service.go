package service

import (
	"context"
	"fmt"
	"time"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type documentCreator interface {
	Create(ctx context.Context, doc *models.Document) error
}

type reminderBatchCreator interface {
	CreateBatch(ctx context.Context, reminders []*models.Reminder) error
}

type completer interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// AnalysisService turns one uploaded file into a persisted document plus
// zero or more reminders. One model call, no retries.
type AnalysisService struct {
	docRepo      documentCreator
	reminderRepo reminderBatchCreator
	llm          completer
	logger       *zap.Logger
}

func NewAnalysisService(docRepo documentCreator, reminderRepo reminderBatchCreator, llm completer, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		docRepo:      docRepo,
		reminderRepo: reminderRepo,
		llm:          llm,
		logger:       logger,
	}
}

func buildAnalysisPrompt(category models.Category, language, respLanguage string) string {
	prompt := fmt.Sprintf(`You are Prisma AI, a professional document analysis assistant. Your task is to:

1. Extract ALL text from the uploaded document image using OCR
2. Format the extracted text cleanly and organized
3. Identify the document type and provide a brief summary
4. Detect any important dates (appointments, due dates, expiry dates, deadlines)
5. Never generate medical or legal advice

Respond ONLY in this JSON format:
{
  "title": "Brief descriptive title for this document",
  "extractedText": "The full extracted text, cleanly formatted",
  "summary": "A 2-3 sentence summary of what this document contains",
  "detectedDates": [
    {
      "date": "YYYY-MM-DD",
      "description": "What this date represents",
      "isImportant": true/false
    }
  ]
}

Category context: %s
Be accurate and factual. Only extract what you can see.`, category)

	if language != "" {
		prompt += fmt.Sprintf("\nThe document may be written in %s.", responseLanguage(language))
	}
	if respLanguage != "" {
		prompt += fmt.Sprintf("\nWrite the title and summary in %s.", responseLanguage(respLanguage))
	}

	return prompt
}

// Analyze runs the full pipeline: model call, best-effort parse, document
// insert, one reminder per important detected date.
func (s *AnalysisService) Analyze(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeDocumentRequest) (*dto.AnalyzeDocumentResponse, error) {
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	s.logger.Info("Processing document",
		zap.String("user_id", userID.String()),
		zap.String("category", string(category)),
	)

	messages := []ChatMessage{
		{Role: "system", Content: buildAnalysisPrompt(category, req.Language, req.ResponseLanguage)},
		{Role: "user", Content: imageContent(req.ImageBase64, req.MimeType, "Please analyze this document image and extract all text content.")},
	}

	content, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	result, parsed := parseAnalysisReply(content)
	if !parsed {
		s.logger.Warn("Failed to parse model reply, storing raw text",
			zap.Int("reply_length", len(content)),
		)
	}

	doc := &models.Document{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		Title:         result.Title,
		ExtractedText: result.ExtractedText,
		Summary:       result.Summary,
		CreatedAt:     time.Now(),
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		// The model result is discarded here; the call cost is sunk.
		s.logger.Error("Failed to save document", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSaveDocument, err)
	}

	s.createReminders(ctx, doc, result.DetectedDates)

	s.logger.Info("Document saved",
		zap.String("document_id", doc.ID.String()),
		zap.Int("detected_dates", len(result.DetectedDates)),
	)

	detected := make([]dto.DetectedDate, 0, len(result.DetectedDates))
	for _, d := range result.DetectedDates {
		detected = append(detected, dto.DetectedDate{
			Date:        d.Date,
			Description: d.Description,
			IsImportant: d.IsImportant,
		})
	}

	return &dto.AnalyzeDocumentResponse{
		Success:       true,
		Document:      documentToResponse(doc),
		DetectedDates: detected,
	}, nil
}

// createReminders inserts one reminder per important detected date. A
// reminder failure never fails the analysis, the document is already saved.
func (s *AnalysisService) createReminders(ctx context.Context, doc *models.Document, dates []detectedDate) {
	var reminders []*models.Reminder
	now := time.Now()

	for _, d := range dates {
		if d.Date == "" || !d.IsImportant {
			continue
		}

		dueDate, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			s.logger.Warn("Skipping detected date with unparseable value",
				zap.String("date", d.Date),
			)
			continue
		}

		title := d.Description
		if title == "" {
			title = "Important Date"
		}

		docID := doc.ID
		reminders = append(reminders, &models.Reminder{
			ID:             uuid.New(),
			UserID:         doc.UserID,
			DocumentID:     &docID,
			Title:          title,
			DueDate:        dueDate,
			IsAcknowledged: false,
			CreatedAt:      now,
		})
	}

	if len(reminders) == 0 {
		return
	}

	if err := s.reminderRepo.CreateBatch(ctx, reminders); err != nil {
		s.logger.Error("Failed to create reminders", zap.Error(err))
	}
}

func documentToResponse(doc *models.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:            doc.ID.String(),
		Category:      string(doc.Category),
		Title:         doc.Title,
		ExtractedText: doc.ExtractedText,
		Summary:       doc.Summary,
		CreatedAt:     doc.CreatedAt.Format(time.RFC3339),
	}
}
