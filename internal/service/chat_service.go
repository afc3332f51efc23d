package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"prisma-ai/internal/models"
	"prisma-ai/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type documentReader interface {
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Document, error)
	ListRecentByCategory(ctx context.Context, userID uuid.UUID, category models.Category, excludeID uuid.UUID, limit int) ([]*models.Document, error)
}

type chatMessageStore interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListByDocument(ctx context.Context, documentID uuid.UUID, limit int) ([]*models.ChatMessage, error)
}

// ChatService answers one question about one analyzed document, grounded
// strictly in the document's stored text.
type ChatService struct {
	docRepo documentReader
	msgRepo chatMessageStore
	llm     completer
	cfg     *config.ChatConfig
	logger  *zap.Logger
}

func NewChatService(docRepo documentReader, msgRepo chatMessageStore, llm completer, cfg *config.ChatConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		docRepo: docRepo,
		msgRepo: msgRepo,
		llm:     llm,
		cfg:     cfg,
		logger:  logger,
	}
}

// Chat runs one turn. The user message is persisted before the model call;
// the assistant message only after a successful one. If the call fails the
// user turn stays written and the caller re-issues the question.
func (s *ChatService) Chat(ctx context.Context, userID, documentID uuid.UUID, message, language string) (string, error) {
	doc, err := s.docRepo.GetByIDForUser(ctx, documentID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to load document: %w", err)
	}

	respLang := responseLanguage(language)

	journeyContext := ""
	if doc.Category == models.CategoryMedical {
		journeyContext = s.buildJourneyContext(ctx, doc)
	}

	history, err := s.msgRepo.ListByDocument(ctx, documentID, s.cfg.HistoryLimit)
	if err != nil {
		s.logger.Warn("Failed to load chat history", zap.Error(err))
	}

	userMsg := &models.ChatMessage{
		ID:         uuid.New(),
		UserID:     userID,
		DocumentID: documentID,
		Role:       models.ChatRoleUser,
		Content:    message,
		CreatedAt:  time.Now(),
	}
	if err := s.msgRepo.Create(ctx, userMsg); err != nil {
		s.logger.Warn("Failed to persist user message", zap.Error(err))
	}

	s.logger.Info("Chat request",
		zap.String("document_id", documentID.String()),
		zap.String("language", respLang),
	)

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{
		Role:    "system",
		Content: buildChatPrompt(doc, journeyContext, respLang),
	})
	for _, m := range history {
		messages = append(messages, ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: message})

	reply, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return "", err
	}

	assistantMsg := &models.ChatMessage{
		ID:         uuid.New(),
		UserID:     userID,
		DocumentID: documentID,
		Role:       models.ChatRoleAssistant,
		Content:    reply,
		CreatedAt:  time.Now(),
	}
	if err := s.msgRepo.Create(ctx, assistantMsg); err != nil {
		s.logger.Warn("Failed to persist assistant message", zap.Error(err))
	}

	return reply, nil
}

// buildJourneyContext collects prior medical documents, newest first, as
// bounded excerpts, so the model can compare values across reports.
func (s *ChatService) buildJourneyContext(ctx context.Context, doc *models.Document) string {
	previous, err := s.docRepo.ListRecentByCategory(ctx, doc.UserID, models.CategoryMedical, doc.ID, s.cfg.JourneyLimit)
	if err != nil {
		s.logger.Warn("Failed to load previous medical documents", zap.Error(err))
		return ""
	}
	if len(previous) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nHEALTH JOURNEY MAP - Previous Medical Reports for comparison:\n")
	for i, prev := range previous {
		summary := prev.Summary
		if summary == "" {
			summary = "No summary"
		}
		excerpt := prev.ExtractedText
		if len(excerpt) > s.cfg.ExcerptLength {
			excerpt = excerpt[:s.cfg.ExcerptLength]
		}
		fmt.Fprintf(&b, "\nReport %d (%s):\nTitle: %s\nSummary: %s\nKey content: %s...\n",
			i+1, prev.CreatedAt.Format("2006-01-02"), prev.Title, summary, excerpt)
	}
	b.WriteString("\nWhen the user asks about health progress, compare current values with previous reports and highlight improvements or concerns.")

	return b.String()
}

func buildChatPrompt(doc *models.Document, journeyContext, respLang string) string {
	summaryLine := ""
	if doc.Summary != "" {
		summaryLine = fmt.Sprintf("DOCUMENT SUMMARY: %s", doc.Summary)
	}

	return fmt.Sprintf(`You are Prisma AI, a helpful document assistant. You answer questions ONLY based on the document content provided below. You MUST respond in %s.

DOCUMENT TITLE: %s
DOCUMENT CATEGORY: %s
DOCUMENT CONTENT:
%s

%s
%s

IMPORTANT RULES:
1. Answer ONLY based on the document content above
2. If the information is not in the document, say "This information is not found in the document" (in %s)
3. Never make assumptions or add information not present in the document
4. Be clear, concise, and helpful
5. Respond STRICTLY in %s language
6. If asked about dates, reference only what's in the document
7. For medical reports with medicines, always add this disclaimer after listing medicines: "%s"
8. If comparing with previous reports (Health Journey Map), show progress with clear comparisons
9. For Hajj/Umrah documents, help with event planning and date tracking`,
		respLang, doc.Title, doc.Category, doc.ExtractedText,
		summaryLine, journeyContext,
		respLang, respLang, medicalDisclaimer(respLang))
}
