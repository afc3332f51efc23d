package service

import (
	"encoding/json"
	"strings"
)

// analysisResult is the structured reply the model is instructed to produce.
type analysisResult struct {
	Title         string         `json:"title"`
	ExtractedText string         `json:"extractedText"`
	Summary       string         `json:"summary"`
	DetectedDates []detectedDate `json:"detectedDates"`
}

type detectedDate struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	IsImportant bool   `json:"isImportant"`
}

// extractJSONObject pulls the first-to-last brace span out of free text.
// The model wraps its JSON in prose or markdown fencing often enough that
// decoding the raw reply directly is hopeless. Deliberately best-effort:
// a decorative brace outside the object mis-parses, and the caller falls
// back to the raw text.
func extractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// parseAnalysisReply decodes the model reply, degrading to a raw-text
// result when no parseable JSON object is present. The fallback is a
// success path: the document is still created, just without structure.
func parseAnalysisReply(content string) (*analysisResult, bool) {
	if jsonStr, ok := extractJSONObject(content); ok {
		var result analysisResult
		if err := json.Unmarshal([]byte(jsonStr), &result); err == nil {
			if result.Title == "" {
				result.Title = "Untitled Document"
			}
			if result.ExtractedText == "" {
				result.ExtractedText = content
			}
			return &result, true
		}
	}

	return &analysisResult{
		Title:         "Extracted Document",
		ExtractedText: content,
		Summary:       "Document analysis completed",
		DetectedDates: nil,
	}, false
}
