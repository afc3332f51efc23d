package dto

type CreateReminderRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date" validate:"required"`
	DueTime     string `json:"due_time,omitempty"`
}

type ReminderResponse struct {
	ID             string `json:"id"`
	DocumentID     string `json:"document_id,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	DueDate        string `json:"due_date"`
	DueTime        string `json:"due_time,omitempty"`
	IsAcknowledged bool   `json:"is_acknowledged"`
	CreatedAt      string `json:"created_at"`
}
