package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"prisma-ai/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProtectedApp(t *testing.T, manager *auth.JWTManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(AuthMiddleware(manager, zap.NewNop()))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("missing header", func(t *testing.T) {
		app := newProtectedApp(t, manager)
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		app := newProtectedApp(t, manager)
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := manager.GenerateToken("user-123", "alice", "alice@example.com")
		require.NoError(t, err)

		app := newProtectedApp(t, manager)
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("token from another secret", func(t *testing.T) {
		other := auth.NewJWTManager("other-secret", time.Hour, 24*time.Hour)
		token, err := other.GenerateToken("user-123", "alice", "alice@example.com")
		require.NoError(t, err)

		app := newProtectedApp(t, manager)
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
