package costs

import "mercator-hq/textutil/pkg/config"

// Pricing holds per-1000-token rates in USD.
type Pricing struct {
	// PromptPer1K is the cost of 1000 prompt tokens.
	PromptPer1K float64

	// CompletionPer1K is the cost of 1000 completion tokens.
	CompletionPer1K float64
}

// PricingFromConfig reads the rates from the LLM snapshot.
func PricingFromConfig(cfg config.LLMConfig) Pricing {
	return Pricing{
		PromptPer1K:     cfg.CostPromptPer1K,
		CompletionPer1K: cfg.CostCompletionPer1K,
	}
}

// CostEstimate contains cost calculations in USD.
type CostEstimate struct {
	// PromptCost is the cost for prompt tokens in USD.
	PromptCost float64

	// CompletionCost is the cost for completion tokens in USD.
	CompletionCost float64

	// TotalCost is the total cost in USD.
	TotalCost float64

	// Model is the model used for pricing.
	Model string

	// Currency is the currency code (always "USD").
	Currency string
}

// TokenUsage contains token counts to be priced.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int

	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int

	// TotalTokens is the total number of tokens used. It does not affect
	// the price.
	TotalTokens int
}
