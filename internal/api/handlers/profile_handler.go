package handlers

import (
	"prisma-ai/internal/dto"
	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary Get the user profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	profile, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load profile",
		})
	}

	return c.JSON(profile)
}

// SaveProfile godoc
// @Summary Save the user profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.SaveProfileRequest true "Profile"
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile [put]
func (h *ProfileHandler) SaveProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := h.profileService.Save(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to save profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	return c.JSON(profile)
}

// ProfileStats godoc
// @Summary Usage statistics
// @Description Counts of the user's documents, chat messages and reminders
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileStatsResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile/stats [get]
func (h *ProfileHandler) ProfileStats(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.profileService.Stats(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load stats",
		})
	}

	return c.JSON(stats)
}
