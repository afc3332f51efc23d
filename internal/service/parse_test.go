package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		ok      bool
	}{
		{
			name:    "bare object",
			content: `{"title":"x"}`,
			want:    `{"title":"x"}`,
			ok:      true,
		},
		{
			name:    "markdown fenced",
			content: "Here you go:\n```json\n{\"title\":\"x\"}\n```\nHope that helps!",
			want:    `{"title":"x"}`,
			ok:      true,
		},
		{
			name:    "surrounding prose",
			content: `I analyzed the document. {"title":"Invoice"} Let me know if you need more.`,
			want:    `{"title":"Invoice"}`,
			ok:      true,
		},
		{
			name:    "no braces",
			content: "plain text reply",
			ok:      false,
		},
		{
			name:    "closing brace before opening",
			content: "} nothing here {",
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.content)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseAnalysisReply(t *testing.T) {
	t.Run("well formed reply", func(t *testing.T) {
		reply := `{
			"title": "Blood Test Report",
			"extractedText": "Hemoglobin: 14.2 g/dL",
			"summary": "Routine blood panel.",
			"detectedDates": [
				{"date": "2026-09-15", "description": "Follow-up appointment", "isImportant": true}
			]
		}`

		result, parsed := parseAnalysisReply(reply)
		require.True(t, parsed)
		assert.Equal(t, "Blood Test Report", result.Title)
		assert.Equal(t, "Hemoglobin: 14.2 g/dL", result.ExtractedText)
		assert.Equal(t, "Routine blood panel.", result.Summary)
		require.Len(t, result.DetectedDates, 1)
		assert.Equal(t, "2026-09-15", result.DetectedDates[0].Date)
		assert.True(t, result.DetectedDates[0].IsImportant)
	})

	t.Run("missing title defaults", func(t *testing.T) {
		result, parsed := parseAnalysisReply(`{"extractedText":"some text","summary":"s"}`)
		require.True(t, parsed)
		assert.Equal(t, "Untitled Document", result.Title)
	})

	t.Run("missing extracted text falls back to raw reply", func(t *testing.T) {
		reply := `{"title":"Receipt"}`
		result, parsed := parseAnalysisReply(reply)
		require.True(t, parsed)
		assert.Equal(t, reply, result.ExtractedText)
	})

	t.Run("unparseable reply degrades to raw text", func(t *testing.T) {
		reply := "The document appears to be a utility bill for March."
		result, parsed := parseAnalysisReply(reply)
		assert.False(t, parsed)
		assert.Equal(t, "Extracted Document", result.Title)
		assert.Equal(t, reply, result.ExtractedText)
		assert.Equal(t, "Document analysis completed", result.Summary)
		assert.Empty(t, result.DetectedDates)
	})

	t.Run("broken json inside braces degrades", func(t *testing.T) {
		reply := `{"title": "Oops", "extractedText": }`
		result, parsed := parseAnalysisReply(reply)
		assert.False(t, parsed)
		assert.Equal(t, reply, result.ExtractedText)
	})
}
