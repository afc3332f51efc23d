package handlers

import (
	"encoding/base64"
	"errors"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxUploadBytes caps the decoded size of one uploaded file.
const maxUploadBytes = 10 * 1024 * 1024

var supportedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/heic":         true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type AnalyzeHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalyzeHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// AnalyzeDocument godoc
// @Summary Analyze an uploaded document
// @Description Run OCR and summarization on a base64-encoded file, file the result in a category and create reminders for important dates
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeDocumentRequest true "Analysis request"
// @Security Bearer
// @Success 200 {object} dto.AnalyzeDocumentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/documents/analyze [post]
func (h *AnalyzeHandler) AnalyzeDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AnalyzeDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ImageBase64 == "" || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image and category are required",
		})
	}

	if base64.StdEncoding.DecodedLen(len(req.ImageBase64)) > maxUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File exceeds the 10 MB limit",
		})
	}

	if req.MimeType != "" && !supportedMimeTypes[req.MimeType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file type",
		})
	}

	resp, err := h.analysisService.Analyze(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category",
			})
		}
		h.logger.Error("Document analysis failed", zap.Error(err))
		if errors.Is(err, service.ErrSaveDocument) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save document",
			})
		}
		return llmError(c, err, "Failed to analyze document")
	}

	return c.JSON(resp)
}
