package processor

import (
	"context"

	"career-ai-go/internal/llm"
)

// CompletionClient is the surface the advisor needs from the completion
// endpoint client. *llm.GroqCompletionClient satisfies it; tests supply
// mocks.
type CompletionClient interface {
	// IsAvailable reports whether a completion credential is configured.
	IsAvailable() bool

	// Complete sends a single-turn prompt and returns the first choice's
	// content, trimmed.
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)

	// ChatCompletion sends a full message list and returns the first
	// choice's content, trimmed.
	ChatCompletion(ctx context.Context, messages []llm.ChatCompletionMessage, temperature float64, maxTokens int) (string, error)
}
