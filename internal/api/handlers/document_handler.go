package handlers

import (
	"errors"

	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService *service.DocumentService
	logger     *zap.Logger
}

func NewDocumentHandler(docService *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// ListDocuments godoc
// @Summary List user's documents
// @Description Get a list of the user's documents, newest first, optionally filtered by category
// @Tags documents
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Security Bearer
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	docs, err := h.docService.List(c.Context(), userID, c.Query("category"), limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category",
			})
		}
		h.logger.Error("Failed to list documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}

	return c.JSON(docs)
}

// CategoryCounts godoc
// @Summary Per-category document counts
// @Description Document counts per category for the dashboard cards
// @Tags documents
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CategoryCountsResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/documents/counts [get]
func (h *DocumentHandler) CategoryCounts(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	counts, err := h.docService.Counts(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to count documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count documents",
		})
	}

	return c.JSON(counts)
}

// GetDocument godoc
// @Summary Get one document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	doc, err := h.docService.Get(c.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Document not found",
			})
		}
		h.logger.Error("Failed to load document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load document",
		})
	}

	return c.JSON(doc)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Description Remove one of the user's documents; linked reminders lose their back-reference, chat history is removed
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	if err := h.docService.Delete(c.Context(), userID, documentID); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Document not found",
			})
		}
		h.logger.Error("Failed to delete document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete document",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// ChatHistory godoc
// @Summary Chat history for a document
// @Description All chat turns of one document, oldest first
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {array} dto.ChatMessageResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id}/messages [get]
func (h *DocumentHandler) ChatHistory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	messages, err := h.docService.History(c.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Document not found",
			})
		}
		h.logger.Error("Failed to load chat history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	return c.JSON(messages)
}
