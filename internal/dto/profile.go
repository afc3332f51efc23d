package dto

type SaveProfileRequest struct {
	FullName string `json:"full_name"`
}

type ProfileResponse struct {
	FullName  string `json:"full_name"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type ProfileStatsResponse struct {
	DocumentsCount int `json:"documents_count"`
	MessagesCount  int `json:"messages_count"`
	RemindersCount int `json:"reminders_count"`
}
