package adapter

import (
	"errors"
	"fmt"
)

// ErrProvider is the base sentinel wrapped into every [*ProviderError], so
// callers can match any provider-side failure with errors.Is(err, ErrProvider).
var ErrProvider = errors.New("provider error")

// ProviderError is a normalized provider-side failure: whatever shape the
// provider returned (top-level "msg", "message", "error_description", or a
// nested error object), it is reduced to a status code and one message here,
// at the system boundary. Internal code never branches on response shapes.
type ProviderError struct {
	// StatusCode is the HTTP status the provider responded with.
	StatusCode int

	// Message is the human-readable provider message, used by the auth
	// service's pattern table to pick a client-facing status.
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (http %d): %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return ErrProvider
}
