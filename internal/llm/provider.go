// Package llm wraps the external text-completion services the assistant
// falls back to when no local rule produces an answer.
package llm

import "context"

// Provider defines the interface for completion providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
