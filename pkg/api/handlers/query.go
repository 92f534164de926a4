package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"mercator-hq/textutil/pkg/api"
	"mercator-hq/textutil/pkg/api/types"
	"mercator-hq/textutil/pkg/llm"
	"mercator-hq/textutil/pkg/processing/costs"
	"mercator-hq/textutil/pkg/providers"
	"mercator-hq/textutil/pkg/telemetry/metrics"
	"mercator-hq/textutil/pkg/telemetry/tracing"
)

// Querier answers a single question. *llm.Client implements it.
type Querier interface {
	Call(ctx context.Context, question string, opts ...llm.CallOption) (llm.ParsedAnswer, llm.UsageStats, error)
	Model() string
}

// QueryHandler serves POST /query.
type QueryHandler struct {
	client  Querier
	costs   *costs.Calculator
	metrics *metrics.Collector
	now     func() time.Time
}

// NewQueryHandler creates the query endpoint. collector may be nil.
func NewQueryHandler(client Querier, calculator *costs.Calculator, collector *metrics.Collector) *QueryHandler {
	return &QueryHandler{
		client:  client,
		costs:   calculator,
		metrics: collector,
		now:     time.Now,
	}
}

// ServeHTTP implements http.Handler.
func (h *QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		if err := api.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed"); err != nil {
			slog.ErrorContext(ctx, "failed to write error response", "error", err)
		}
		return
	}

	req, err := api.ParseQueryRequest(r)
	if err != nil {
		slog.WarnContext(ctx, "rejected query request", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	resp, err := h.Query(ctx, req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	if err := api.WriteJSONResponse(w, http.StatusOK, resp); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// Query runs one question through the model and assembles the response
// payload. It is shared by the HTTP endpoint and the CLI.
func (h *QueryHandler) Query(ctx context.Context, req *types.QueryRequest) (*types.QueryResponse, error) {
	model := h.client.Model()
	if h.metrics != nil {
		defer h.metrics.TrackInFlight()()
	}

	start := h.now()
	parsed, usage, err := h.client.Call(ctx, req.QuestionText(), llm.WithMaxTokens(req.MaxTokensValue()))
	elapsed := h.now().Sub(start)

	if err != nil {
		slog.ErrorContext(ctx, "query failed",
			"model", model,
			"latency_ms", elapsed.Milliseconds(),
			"error", err,
		)
		if h.metrics != nil {
			status := 0
			if pe, ok := providers.AsProviderError(err); ok {
				status = pe.StatusCode
			}
			h.metrics.RecordProviderError(model, status)
			h.metrics.RecordQuery(model, metrics.StatusError, elapsed, 0, 0, 0)
		}
		return nil, err
	}

	latencyMS := usage.LatencyMS
	if latencyMS <= 0 {
		latencyMS = elapsed.Milliseconds()
	}

	tokenUsage := costs.TokenUsage{
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}
	estimate := h.costs.Calculate(tokenUsage)
	cost := estimate.TotalCost
	tracing.SetCostAttribute(tracing.SpanFromContext(ctx), cost)

	answer := llm.Normalize(parsed.Fields())

	if h.metrics != nil {
		h.metrics.RecordProviderLatency(model, time.Duration(latencyMS)*time.Millisecond)
		h.metrics.RecordQuery(model, metrics.StatusSuccess, elapsed, usage.PromptTokens, usage.CompletionTokens, cost)
	}

	slog.InfoContext(ctx, "query answered",
		"model", model,
		"latency_ms", latencyMS,
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"total_tokens", usage.TotalTokens,
		"prompt_cost_usd", estimate.PromptCost,
		"completion_cost_usd", estimate.CompletionCost,
		"estimated_cost_usd", cost,
	)

	return &types.QueryResponse{
		Response: types.Answer{
			Answer:     answer.Answer,
			Confidence: answer.Confidence,
			Actions:    answer.Actions,
		},
		Metrics: types.QueryMetrics{
			LatencyMS:        latencyMS,
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
			EstimatedCostUSD: cost,
			Model:            model,
		},
	}, nil
}

func (h *QueryHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := api.HandleError(err)
	if err := api.WriteJSONResponse(w, status, body); err != nil {
		slog.ErrorContext(ctx, "failed to write error response", "error", err)
	}
}
