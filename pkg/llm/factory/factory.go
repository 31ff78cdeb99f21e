package factory

import (
	"ai-curriculum-be/pkg/llm"
	"ai-curriculum-be/pkg/llm/claude"
)

// NewLLMProvider returns the configured provider, or nil when no API key is
// set. Callers treat a nil provider as mock mode.
func NewLLMProvider(claudeApiKey string) llm.LLMProvider {
	if claudeApiKey == "" {
		return nil
	}
	return claude.NewClaudeProvider(claudeApiKey)
}
