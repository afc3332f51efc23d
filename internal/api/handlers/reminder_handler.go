package handlers

import (
	"errors"

	"prisma-ai/internal/dto"
	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderHandler struct {
	reminderService *service.ReminderService
	logger          *zap.Logger
}

func NewReminderHandler(reminderService *service.ReminderService, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger,
	}
}

// ListReminders godoc
// @Summary List reminders
// @Description All of the user's reminders ordered by due date
// @Tags reminders
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ReminderResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/reminders [get]
func (h *ReminderHandler) ListReminders(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reminders, err := h.reminderService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list reminders", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load reminders",
		})
	}

	return c.JSON(reminders)
}

// ListPendingReminders godoc
// @Summary List unacknowledged reminders
// @Description Unacknowledged reminders, soonest due first; feeds the notification bell
// @Tags reminders
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Security Bearer
// @Success 200 {array} dto.ReminderResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/reminders/pending [get]
func (h *ReminderHandler) ListPendingReminders(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit := c.QueryInt("limit", 10)

	reminders, err := h.reminderService.ListPending(c.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to list pending reminders", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load reminders",
		})
	}

	return c.JSON(reminders)
}

// CreateReminder godoc
// @Summary Create a reminder
// @Description Create a manual reminder with a due date and optional time
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body dto.CreateReminderRequest true "Reminder"
// @Security Bearer
// @Success 201 {object} dto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/reminders [post]
func (h *ReminderHandler) CreateReminder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title == "" || req.DueDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and due date are required",
		})
	}

	reminder, err := h.reminderService.Create(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create reminder", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to create reminder",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(reminder)
}

// AcknowledgeReminder godoc
// @Summary Acknowledge a reminder
// @Description Mark a reminder as done; acknowledging twice is a no-op
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Security Bearer
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/reminders/{id}/acknowledge [post]
func (h *ReminderHandler) AcknowledgeReminder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reminder not found",
		})
	}

	if err := h.reminderService.Acknowledge(c.Context(), userID, reminderID); err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Reminder not found",
			})
		}
		h.logger.Error("Failed to acknowledge reminder", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to acknowledge reminder",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
