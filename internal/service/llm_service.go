package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"prisma-ai/pkg/config"

	"go.uber.org/zap"
)

// ChatMessage is one turn sent to the completion endpoint. Content is either
// a plain string or a multimodal part list built by imageContent.
type ChatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type imagePart struct {
	Type     string   `json:"type"`
	Text     string   `json:"text,omitempty"`
	ImageURL *itemURL `json:"image_url,omitempty"`
}

type itemURL struct {
	URL string `json:"url"`
}

// LLMService talks to the OpenRouter chat-completions API. One request per
// call, no retries; failures map onto the service error taxonomy.
type LLMService struct {
	config     *config.OpenRouterConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewLLMService(cfg *config.OpenRouterConfig, logger *zap.Logger) *LLMService {
	return &LLMService{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Complete sends one chat-completion request and returns the reply text.
func (s *LLMService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if s.config.APIKey == "" {
		s.logger.Error("OPENROUTER_API_KEY is not configured")
		return "", ErrLLMNotConfigured
	}

	requestBody := map[string]interface{}{
		"model":    s.config.Model,
		"messages": messages,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("HTTP-Referer", s.config.Referer)
	req.Header.Set("X-Title", s.config.Title)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.logger.Error("OpenRouter API error",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
		)

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return "", ErrLLMUnauthorized
		case http.StatusTooManyRequests:
			return "", ErrLLMRateLimited
		case http.StatusPaymentRequired:
			return "", ErrLLMQuotaExhausted
		}
		return "", fmt.Errorf("completion failed with status %d", resp.StatusCode)
	}

	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&completionResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completionResp.Choices) == 0 {
		return "", ErrLLMEmptyReply
	}

	content := strings.TrimSpace(completionResp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrLLMEmptyReply
	}

	return content, nil
}

// imageContent builds the multimodal user turn: the file inlined as a data
// URL plus the extraction instruction.
func imageContent(imageBase64, mimeType, instruction string) []imagePart {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return []imagePart{
		{
			Type:     "image_url",
			ImageURL: &itemURL{URL: fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64)},
		},
		{
			Type: "text",
			Text: instruction,
		},
	}
}
