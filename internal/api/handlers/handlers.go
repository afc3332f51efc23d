package handlers

import (
	"errors"

	"prisma-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

// llmError maps an upstream model failure onto the HTTP taxonomy shared by
// both pipelines. Statuses pass through 1:1 from the upstream reply.
func llmError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrLLMNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "AI API key not configured. Please add your API key in settings.",
		})
	case errors.Is(err, service.ErrLLMUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid API key. Please check your API key.",
		})
	case errors.Is(err, service.ErrLLMRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Rate limit exceeded. Please try again in a moment.",
		})
	case errors.Is(err, service.ErrLLMQuotaExhausted):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error": "API usage limit reached. Please check your OpenRouter account.",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
