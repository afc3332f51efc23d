package dto

type SaveNoteRequest struct {
	Content string `json:"content"`
}

type NoteResponse struct {
	Category  string `json:"category"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
