package llm

// ParsedAnswer is the structured reply extracted from the model output.
type ParsedAnswer struct {
	// Answer is the short answer text, trimmed.
	Answer string `json:"answer"`

	// Confidence is the model's self-reported confidence. It is intended to
	// lie in [0, 1] but is not clamped.
	Confidence float64 `json:"confidence"`

	// Actions lists recommended follow-up actions. It is never nil.
	Actions []string `json:"actions"`
}

// Fields returns the answer as a generic object, the shape Normalize
// accepts.
func (p ParsedAnswer) Fields() map[string]interface{} {
	actions := make([]interface{}, len(p.Actions))
	for i, a := range p.Actions {
		actions[i] = a
	}
	return map[string]interface{}{
		"answer":     p.Answer,
		"confidence": p.Confidence,
		"actions":    actions,
	}
}

// UsageStats reports token usage and latency for one call. All counters
// are non-negative.
type UsageStats struct {
	PromptTokens     int   `json:"prompt_tokens"`
	CompletionTokens int   `json:"completion_tokens"`
	TotalTokens      int   `json:"total_tokens"`
	LatencyMS        int64 `json:"latency_ms"`
}
