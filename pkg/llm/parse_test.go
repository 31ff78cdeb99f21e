package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStructured(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "fenced json block",
			raw:      "Here is your lesson plan:\n```json\n{\"lessonTitle\": \"Fractions\"}\n```\nEnjoy!",
			expected: `{"lessonTitle": "Fractions"}`,
		},
		{
			name:     "fenced block without language tag",
			raw:      "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "bare json object",
			raw:      `{"programTitle": "Algebra I"}`,
			expected: `{"programTitle": "Algebra I"}`,
		},
		{
			name:     "bare json with surrounding whitespace",
			raw:      "\n  {\"a\": true}  \n",
			expected: `{"a": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStructured(tt.raw)
			assert.JSONEq(t, tt.expected, string(got))
		})
	}
}

func TestParseStructured_FallbackWrapsRawText(t *testing.T) {
	got := ParseStructured("Sorry, I cannot help with that.")

	var wrapped map[string]string
	err := json.Unmarshal(got, &wrapped)
	assert.NoError(t, err)
	assert.Equal(t, "Sorry, I cannot help with that.", wrapped["content"])
}

func TestParseStructured_InvalidFencedFallsThrough(t *testing.T) {
	got := ParseStructured("```json\n{broken\n```")

	var wrapped map[string]string
	err := json.Unmarshal(got, &wrapped)
	assert.NoError(t, err)
	assert.Contains(t, wrapped["content"], "{broken")
}
