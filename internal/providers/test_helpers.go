package providers

import (
	"testing"
	"time"

	"mercator-hq/textutil/pkg/providers"
)

// TestConfig returns a test provider configuration.
func TestConfig(name string) providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:                name,
		BaseURL:             "http://localhost:8080",
		APIKey:              "test-key",
		Timeout:             5 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestConfigWithURL returns a test config with a specific base URL.
func TestConfigWithURL(name, baseURL string) providers.ProviderConfig {
	config := TestConfig(name)
	config.BaseURL = baseURL
	return config
}

// TestCompletionRequest creates a test completion request with a system
// and a user message.
func TestCompletionRequest(model, system, user string) *providers.CompletionRequest {
	return &providers.CompletionRequest{
		Model: model,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: system},
			{Role: providers.RoleUser, Content: user},
		},
		MaxTokens: 100,
	}
}

// ChatPayload is the decoded shape of an outbound chat-completions body.
type ChatPayload struct {
	Model       string              `json:"model"`
	Messages    []providers.Message `json:"messages"`
	Temperature *float64            `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

// LastChatPayload decodes the most recent request body received by ms.
func LastChatPayload(t *testing.T, ms *MockServer) ChatPayload {
	t.Helper()

	req, ok := ms.LastRequest()
	if !ok {
		t.Fatal("mock server received no requests")
	}

	var payload ChatPayload
	if err := req.DecodeBody(&payload); err != nil {
		t.Fatalf("failed to decode request body %q: %v", req.Body, err)
	}
	return payload
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertProviderError fails the test unless err is a *providers.ProviderError
// and returns it.
func AssertProviderError(t *testing.T, err error) *providers.ProviderError {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	pe, ok := providers.AsProviderError(err)
	if !ok {
		t.Fatalf("expected ProviderError, got %T: %v", err, err)
	}
	return pe
}
