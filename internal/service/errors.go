package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	ErrDocumentNotFound = errors.New("document not found")
	ErrSaveDocument     = errors.New("failed to save document")
	ErrReminderNotFound = errors.New("reminder not found")
	ErrInvalidCategory  = errors.New("invalid category")

	// Upstream model errors, one per status the API distinguishes.
	ErrLLMNotConfigured  = errors.New("model API key not configured")
	ErrLLMUnauthorized   = errors.New("invalid model API key")
	ErrLLMRateLimited    = errors.New("model rate limit exceeded")
	ErrLLMQuotaExhausted = errors.New("model usage limit reached")
	ErrLLMEmptyReply     = errors.New("no content in model response")
)
