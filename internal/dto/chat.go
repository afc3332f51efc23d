package dto

type ChatRequest struct {
	DocumentID string `json:"documentId" validate:"required,uuid"`
	Message    string `json:"message" validate:"required"`
	Language   string `json:"language,omitempty"`
}

type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
