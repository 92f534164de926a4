package openai

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mercator-hq/textutil/pkg/providers"
)

const (
	// DefaultBaseURL is the public OpenAI API.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultName is used when the configuration carries no name.
	DefaultName = "openai"

	completionsPath = "/chat/completions"
)

// Provider is the OpenAI chat-completions adapter. It works against any
// OpenAI-compatible endpoint.
type Provider struct {
	*providers.HTTPProvider
}

// NewProvider creates a new OpenAI provider instance. The API key is
// optional; without one no Authorization header is sent.
func NewProvider(config providers.ProviderConfig) (*Provider, error) {
	if config.Name == "" {
		config.Name = DefaultName
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(config.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "base_url",
			Message:  "base URL must be an absolute http(s) URL",
		}
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 100
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 10
	}
	if config.IdleConnTimeout == 0 {
		config.IdleConnTimeout = 90 * time.Second
	}

	p := &Provider{
		HTTPProvider: providers.NewHTTPProvider(config),
	}

	slog.Debug("OpenAI provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
		"timeout", config.Timeout,
	)

	return p, nil
}

// CompletionsURL returns the full chat-completions endpoint.
func (p *Provider) CompletionsURL() string {
	return p.GetConfig().BaseURL + completionsPath
}

// SendCompletion sends one chat-completion request. The response latency
// covers the full round trip including body decoding.
func (p *Provider) SendCompletion(ctx context.Context, req *providers.CompletionRequest) (*providers.CompletionResponse, error) {
	if err := p.validateRequest(req); err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if key := p.GetConfig().APIKey; key != "" {
		headers["Authorization"] = "Bearer " + key
	}

	start := time.Now()

	var openaiResp OpenAIResponse
	if err := p.DoJSONRequest(ctx, http.MethodPost, p.CompletionsURL(), transformRequest(req), &openaiResp, headers); err != nil {
		return nil, err
	}

	resp := transformResponse(&openaiResp, req.Model)
	resp.Latency = time.Since(start)

	slog.DebugContext(ctx, "completion request succeeded",
		"provider", p.GetName(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
		"latency_ms", resp.Latency.Milliseconds(),
	)

	return resp, nil
}

// validateRequest validates the completion request.
func (p *Provider) validateRequest(req *providers.CompletionRequest) error {
	switch {
	case req == nil:
		return &providers.ProviderError{Provider: p.GetName(), Message: "request cannot be nil"}
	case req.Model == "":
		return &providers.ProviderError{Provider: p.GetName(), Message: "model is required"}
	case len(req.Messages) == 0:
		return &providers.ProviderError{Provider: p.GetName(), Message: "at least one message is required"}
	}
	return nil
}

var _ providers.Provider = (*Provider)(nil)
