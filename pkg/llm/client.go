package llm

import (
	"context"
	"log/slog"
	"time"

	"mercator-hq/textutil/pkg/config"
	"mercator-hq/textutil/pkg/prompt"
	"mercator-hq/textutil/pkg/providers"
	"mercator-hq/textutil/pkg/providers/openai"
	"mercator-hq/textutil/pkg/telemetry/tracing"
)

// SystemPromptSource supplies the system prompt for each call.
type SystemPromptSource interface {
	SystemPrompt() string
}

type staticPrompt string

func (s staticPrompt) SystemPrompt() string { return string(s) }

// Client sends questions to the provider and turns the replies into
// structured answers.
type Client struct {
	provider providers.Provider
	cfg      config.LLMConfig
	prompts  SystemPromptSource
	logger   *slog.Logger
}

// New creates a client over provider. A nil prompts source serves
// prompt.DefaultSystemPrompt.
func New(cfg config.LLMConfig, provider providers.Provider, prompts SystemPromptSource) *Client {
	if prompts == nil {
		prompts = staticPrompt(prompt.DefaultSystemPrompt)
	}
	return &Client{
		provider: provider,
		cfg:      cfg,
		prompts:  prompts,
		logger:   slog.Default().With("component", "llm"),
	}
}

// NewFromConfig creates a client backed by the OpenAI chat-completions
// adapter described by cfg.
func NewFromConfig(cfg config.LLMConfig, prompts SystemPromptSource) (*Client, error) {
	provider, err := openai.NewProvider(providers.ProviderConfig{
		Name:    openai.DefaultName,
		BaseURL: cfg.APIBase,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return New(cfg, provider, prompts), nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Close releases the provider's connections.
func (c *Client) Close() error {
	return c.provider.Close()
}

// Call asks question and returns the parsed answer with usage statistics.
//
// Any failure to obtain a reply is returned as a *providers.ProviderError.
// A reply that cannot be parsed is not an error: it becomes the answer
// text with default confidence.
func (c *Client) Call(ctx context.Context, question string, opts ...CallOption) (ParsedAnswer, UsageStats, error) {
	ctx, span := tracing.Start(ctx, "llm.call")
	defer span.End()

	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	system := c.prompts.SystemPrompt()
	if o.systemPrompt != nil {
		system = *o.systemPrompt
	}

	req := &providers.CompletionRequest{
		Model: c.cfg.Model,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: system},
			{Role: providers.RoleUser, Content: prompt.RenderQuestion(c.cfg.UserTemplate, question)},
		},
		Temperature: 0,
		MaxTokens:   c.resolveMaxTokens(o.maxTokens),
	}
	tracing.SetQueryAttributes(span, req.Model, req.MaxTokens)

	start := time.Now()
	resp, err := c.provider.SendCompletion(ctx, req)
	latency := time.Since(start)

	if err != nil {
		pe, ok := providers.AsProviderError(err)
		if !ok {
			pe = &providers.ProviderError{
				Provider: c.provider.GetName(),
				Message:  "request failed",
				Cause:    err,
			}
		}
		c.logger.WarnContext(ctx, "llm call failed",
			"model", c.cfg.Model,
			"status", pe.StatusCode,
			"timeout", pe.IsTimeout(),
			"canceled", pe.IsCanceled(),
			"latency_ms", latency.Milliseconds(),
			"error", pe,
		)
		tracing.SetError(span, pe)
		return ParsedAnswer{}, UsageStats{}, pe
	}

	// Prefer the adapter's own round-trip measurement.
	if resp.Latency > 0 {
		latency = resp.Latency
	}

	usage := UsageStats{
		PromptTokens:     clamp(resp.Usage.PromptTokens),
		CompletionTokens: clamp(resp.Usage.CompletionTokens),
		TotalTokens:      clamp(resp.Usage.TotalTokens),
		LatencyMS:        latency.Milliseconds(),
	}

	if resp.FinishReason == providers.FinishReasonLength {
		c.logger.WarnContext(ctx, "llm reply truncated",
			"model", c.cfg.Model,
			"max_tokens", req.MaxTokens,
			"completion_tokens", usage.CompletionTokens,
		)
	}

	parsed := ParseReply(resp.Content)

	tracing.SetUsageAttributes(span, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens, usage.LatencyMS)
	tracing.SetError(span, nil)

	c.logger.DebugContext(ctx, "llm call completed",
		"model", c.cfg.Model,
		"max_tokens", req.MaxTokens,
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"latency_ms", usage.LatencyMS,
	)

	return parsed, usage, nil
}

func (c *Client) resolveMaxTokens(n int) int {
	if n > 0 {
		return n
	}
	if c.cfg.DefaultMaxTokens > 0 {
		return c.cfg.DefaultMaxTokens
	}
	return config.DefaultMaxTokens
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
