package dto

// AnalyzeDocumentRequest carries one uploaded file as base64 plus its
// filing category. Language selects the source-language hint, Response
// Language the language the summary should be written in.
type AnalyzeDocumentRequest struct {
	ImageBase64      string `json:"imageBase64" validate:"required"`
	Category         string `json:"category" validate:"required,oneof=medical education utility insurance others events"`
	MimeType         string `json:"mimeType,omitempty"`
	Language         string `json:"language,omitempty"`
	ResponseLanguage string `json:"responseLanguage,omitempty"`
}

// DetectedDate is one calendar date the model flagged in the document.
type DetectedDate struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	IsImportant bool   `json:"isImportant"`
}

type DocumentResponse struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Title         string `json:"title"`
	ExtractedText string `json:"extracted_text"`
	Summary       string `json:"summary,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type AnalyzeDocumentResponse struct {
	Success       bool             `json:"success"`
	Document      DocumentResponse `json:"document"`
	DetectedDates []DetectedDate   `json:"detectedDates"`
}

type CategoryCountsResponse struct {
	Counts map[string]int `json:"counts"`
}
