package llm

import (
	"context"
)

// Option allows for optional parameters like MaxTokens or model override.
type Option func(*Options)

type Options struct {
	MaxTokens int
	Model     string
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Generate sends a single prompt to the model and returns the raw text response
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
