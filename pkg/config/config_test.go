package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "prisma_ai", cfg.Database.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExp)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.OpenRouter.Model)
	assert.Equal(t, 120*time.Second, cfg.OpenRouter.Timeout)
	assert.Equal(t, 20, cfg.Chat.HistoryLimit)
	assert.Equal(t, 5, cfg.Chat.JourneyLimit)
	assert.Equal(t, 500, cfg.Chat.ExcerptLength)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("OPENROUTER_MODEL", "openai/gpt-4o-mini")
	t.Setenv("CHAT_HISTORY_LIMIT", "50")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.OpenRouter.Model)
	assert.Equal(t, 50, cfg.Chat.HistoryLimit)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
}
