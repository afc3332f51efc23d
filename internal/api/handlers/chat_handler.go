package handlers

import (
	"errors"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ChatDocument godoc
// @Summary Chat about a document
// @Description Answer one question about an analyzed document, grounded in its extracted text
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Security Bearer
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/documents/chat [post]
func (h *ChatHandler) ChatDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.DocumentID == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Document ID and message are required",
		})
	}

	documentID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		// An unparseable id cannot name any document; same outcome as a miss.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	reply, err := h.chatService.Chat(c.Context(), userID, documentID, req.Message, req.Language)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Document not found",
			})
		}
		h.logger.Error("Chat failed", zap.Error(err))
		return llmError(c, err, "Failed to process chat")
	}

	return c.JSON(dto.ChatResponse{
		Success: true,
		Message: reply,
	})
}
