package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prisma-ai/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLLMService(t *testing.T, handler http.HandlerFunc) (*LLMService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.OpenRouterConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "google/gemini-2.5-flash",
		Referer: "https://example.test",
		Title:   "Prisma AI",
		Timeout: 5 * time.Second,
	}
	return NewLLMService(cfg, zap.NewNop()), server
}

func completionReply(content string) string {
	return `{"choices":[{"message":{"content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestLLMServiceComplete(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		var gotAuth, gotReferer, gotTitle string
		var gotBody map[string]interface{}

		svc, _ := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotReferer = r.Header.Get("HTTP-Referer")
			gotTitle = r.Header.Get("X-Title")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(completionReply("  extracted text  ")))
		})

		content, err := svc.Complete(context.Background(), []ChatMessage{
			{Role: "user", Content: "hello"},
		})
		require.NoError(t, err)
		assert.Equal(t, "extracted text", content)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "https://example.test", gotReferer)
		assert.Equal(t, "Prisma AI", gotTitle)
		assert.Equal(t, "google/gemini-2.5-flash", gotBody["model"])
	})

	t.Run("missing api key", func(t *testing.T) {
		svc := NewLLMService(&config.OpenRouterConfig{Timeout: time.Second}, zap.NewNop())
		_, err := svc.Complete(context.Background(), nil)
		assert.ErrorIs(t, err, ErrLLMNotConfigured)
	})

	t.Run("status mapping", func(t *testing.T) {
		tests := []struct {
			status int
			want   error
		}{
			{http.StatusUnauthorized, ErrLLMUnauthorized},
			{http.StatusTooManyRequests, ErrLLMRateLimited},
			{http.StatusPaymentRequired, ErrLLMQuotaExhausted},
		}

		for _, tt := range tests {
			svc, _ := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := svc.Complete(context.Background(), nil)
			assert.ErrorIs(t, err, tt.want)
		}
	})

	t.Run("unexpected status", func(t *testing.T) {
		svc, _ := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := svc.Complete(context.Background(), nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLLMUnauthorized)
	})

	t.Run("empty choices", func(t *testing.T) {
		svc, _ := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		})
		_, err := svc.Complete(context.Background(), nil)
		assert.ErrorIs(t, err, ErrLLMEmptyReply)
	})

	t.Run("whitespace only content", func(t *testing.T) {
		svc, _ := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionReply("   \n  ")))
		})
		_, err := svc.Complete(context.Background(), nil)
		assert.ErrorIs(t, err, ErrLLMEmptyReply)
	})
}

func TestImageContent(t *testing.T) {
	parts := imageContent("QUJD", "application/pdf", "extract text")
	require.Len(t, parts, 2)
	assert.Equal(t, "image_url", parts[0].Type)
	assert.Equal(t, "data:application/pdf;base64,QUJD", parts[0].ImageURL.URL)
	assert.Equal(t, "text", parts[1].Type)
	assert.Equal(t, "extract text", parts[1].Text)

	parts = imageContent("QUJD", "", "extract text")
	assert.Equal(t, "data:image/jpeg;base64,QUJD", parts[0].ImageURL.URL)
}
