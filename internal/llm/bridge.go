package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// DefaultModels is the candidate model preference list tried in order.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash-lite",
	"gemini-2.0-flash",
}

// Bridge sends a prompt to an ordered list of candidate models, falling
// through to the next one when a model errors. A rate-limited response
// aborts the whole list immediately. An optional ClientLimiter rejects
// excess requests per client before any external call is made.
type Bridge struct {
	provider    Provider
	models      []string
	limiter     *ClientLimiter
	maxTokens   int
	temperature float64
}

// NewBridge creates a Bridge over the given provider. models defaults to
// DefaultModels when empty; limiter may be nil to disable caller-side
// limiting.
func NewBridge(provider Provider, models []string, limiter *ClientLimiter) *Bridge {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Bridge{
		provider:    provider,
		models:      models,
		limiter:     limiter,
		maxTokens:   500,
		temperature: 0.7,
	}
}

// SetSampling overrides the default completion size and temperature.
func (b *Bridge) SetSampling(maxTokens int, temperature float64) {
	if maxTokens > 0 {
		b.maxTokens = maxTokens
	}
	b.temperature = temperature
}

// Complete runs the candidate list for the given client. The returned error
// is ErrTooManyRequests, ErrRateLimited or ErrUnavailable (wrapped), so
// callers can pick the right user-facing reply with errors.Is.
func (b *Bridge) Complete(ctx context.Context, clientID string, messages []Message) (string, error) {
	if b.limiter != nil && !b.limiter.Allow(clientID) {
		return "", ErrTooManyRequests
	}

	var lastErr error
	for _, model := range b.models {
		resp, err := b.provider.Complete(ctx, CompletionRequest{
			Model:       model,
			Messages:    messages,
			MaxTokens:   b.maxTokens,
			Temperature: b.temperature,
		})
		if err == nil {
			return resp.Content, nil
		}
		if errors.Is(err, ErrRateLimited) {
			return "", err
		}
		log.Printf("llm: model %s failed: %v", model, err)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no candidate models configured")
	}
	return "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
