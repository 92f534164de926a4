package providers

import "context"

// Provider is the interface an LLM provider adapter implements.
//
// SendCompletion makes exactly one attempt. It must respect context
// cancellation and return a *ProviderError on any failure.
type Provider interface {
	// SendCompletion sends a completion request and returns the normalized
	// response.
	SendCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// GetName returns the provider's configured name (e.g., "openai").
	GetName() string

	// Close releases idle connections. The provider must not be used
	// afterwards.
	Close() error
}
