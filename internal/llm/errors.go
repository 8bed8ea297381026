package llm

import "errors"

// Error kinds the chat layer distinguishes when picking a user-facing reply.
var (
	// ErrRateLimited means the provider refused the request because its
	// quota is exhausted. Trying further candidate models is pointless.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrUnavailable means every candidate model failed for a reason other
	// than rate limiting.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrTooManyRequests means the caller-side per-client limit was hit
	// before any external call was made.
	ErrTooManyRequests = errors.New("client request limit exceeded")
)
