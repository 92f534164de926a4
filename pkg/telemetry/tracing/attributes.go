package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys used on query spans.
const (
	AttrModel            = "textutil.model"
	AttrMaxTokens        = "textutil.max_tokens"
	AttrRequestID        = "textutil.request_id"
	AttrTokensPrompt     = "textutil.tokens.prompt"
	AttrTokensCompletion = "textutil.tokens.completion"
	AttrTokensTotal      = "textutil.tokens.total"
	AttrLatencyMS        = "textutil.latency_ms"
	AttrCostUSD          = "textutil.cost_usd"
	AttrStatusCode       = "http.status_code"
)

// SetQueryAttributes records what was asked of the provider.
func SetQueryAttributes(span trace.Span, model string, maxTokens int) {
	span.SetAttributes(
		attribute.String(AttrModel, model),
		attribute.Int(AttrMaxTokens, maxTokens),
	)
}

// SetUsageAttributes records provider token usage and latency.
func SetUsageAttributes(span trace.Span, promptTokens, completionTokens, totalTokens int, latencyMS int64) {
	span.SetAttributes(
		attribute.Int(AttrTokensPrompt, promptTokens),
		attribute.Int(AttrTokensCompletion, completionTokens),
		attribute.Int(AttrTokensTotal, totalTokens),
		attribute.Int64(AttrLatencyMS, latencyMS),
	)
}

// SetCostAttribute records the estimated cost in USD.
func SetCostAttribute(span trace.Span, costUSD float64) {
	span.SetAttributes(attribute.Float64(AttrCostUSD, costUSD))
}

// SetError records err on the span and marks it failed. A nil err marks the
// span OK.
func SetError(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SpanFromContext returns the current span, or a no-op span.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
