// Package llm defines the boundary to external generative-model providers.
package llm

import "context"

// CompletionProvider produces a text completion for a system/user prompt
// pair. Implementations bound the call with their configured timeout;
// callers treat any error as a recoverable generation failure.
type CompletionProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
