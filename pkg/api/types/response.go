package types

// QueryResponse is the body of a successful POST /query.
type QueryResponse struct {
	Response Answer       `json:"response"`
	Metrics  QueryMetrics `json:"metrics"`
}

// Answer is the structured reply extracted from the model output.
type Answer struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Actions    []string `json:"actions"`
}

// QueryMetrics reports usage and cost for one query.
type QueryMetrics struct {
	LatencyMS        int64   `json:"latency_ms"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
	Model            string  `json:"model"`
}
