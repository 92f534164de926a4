package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ProviderError is the error returned by every provider operation.
// StatusCode is set when the provider answered with a non-2xx status;
// Cause is set for transport failures and undecodable responses.
type ProviderError struct {
	// Provider is the name of the provider that returned the error
	Provider string

	// StatusCode is the HTTP status code (0 if not applicable)
	StatusCode int

	// Message is the error message
	Message string

	// Cause is the underlying error (if any)
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("provider %q error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("provider %q error: %s: %v", e.Provider, e.Message, e.Cause)
	default:
		return fmt.Sprintf("provider %q error: %s", e.Provider, e.Message)
	}
}

// Unwrap returns the underlying error for error chain support.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether the error was caused by a deadline, either the
// client timeout or the caller's context.
func (e *ProviderError) IsTimeout() bool {
	return isTimeout(e.Cause)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsCanceled reports whether the caller's context was cancelled.
func (e *ProviderError) IsCanceled() bool {
	return errors.Is(e.Cause, context.Canceled)
}

// AsProviderError extracts a *ProviderError from err's chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ConfigError represents a provider configuration error.
// This occurs when the provider configuration is invalid.
type ConfigError struct {
	// Provider is the name of the provider with invalid configuration
	Provider string

	// Field is the configuration field that is invalid
	Field string

	// Message describes the configuration error
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("provider %q configuration error for field %q: %s",
		e.Provider, e.Field, e.Message)
}
