package handlers

import (
	"errors"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type NoteHandler struct {
	noteService *service.NoteService
	logger      *zap.Logger
}

func NewNoteHandler(noteService *service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// GetNote godoc
// @Summary Get the category note
// @Description The user's free-text note for one category; empty if never saved
// @Tags notes
// @Produce json
// @Param category path string true "Category"
// @Security Bearer
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/notes/{category} [get]
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	note, err := h.noteService.Get(c.Context(), userID, c.Params("category"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category",
			})
		}
		h.logger.Error("Failed to load note", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load note",
		})
	}

	return c.JSON(note)
}

// SaveNote godoc
// @Summary Save the category note
// @Description Create or overwrite the user's note for one category
// @Tags notes
// @Accept json
// @Produce json
// @Param category path string true "Category"
// @Param request body dto.SaveNoteRequest true "Note content"
// @Security Bearer
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/notes/{category} [put]
func (h *NoteHandler) SaveNote(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SaveNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	note, err := h.noteService.Save(c.Context(), userID, c.Params("category"), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category",
			})
		}
		h.logger.Error("Failed to save note", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save note",
		})
	}

	return c.JSON(note)
}
