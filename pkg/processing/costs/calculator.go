package costs

import (
	"math"

	"mercator-hq/textutil/pkg/config"
)

// Currency is the currency every estimate is expressed in.
const Currency = "USD"

// precision is the number of decimal places estimates are rounded to.
const precision = 8

// Calculator prices token usage for one model at fixed per-1K rates.
// It is immutable and safe for concurrent use.
type Calculator struct {
	model   string
	pricing Pricing
}

// NewCalculator creates a calculator for model at the given rates.
func NewCalculator(model string, pricing Pricing) *Calculator {
	return &Calculator{
		model:   model,
		pricing: pricing,
	}
}

// NewCalculatorFromConfig creates a calculator from the LLM snapshot.
func NewCalculatorFromConfig(cfg config.LLMConfig) *Calculator {
	return NewCalculator(cfg.Model, PricingFromConfig(cfg))
}

// Pricing returns the calculator's rates.
func (c *Calculator) Pricing() Pricing {
	return c.pricing
}

// Calculate returns the cost breakdown of usage. TotalCost is the value
// reported as estimated_cost_usd.
func (c *Calculator) Calculate(usage TokenUsage) *CostEstimate {
	est := Calculate(usage, c.pricing)
	est.Model = c.model
	return est
}

// Estimate computes (prompt/1000)*promptRate + (completion/1000)*completionRate
// rounded to 8 decimal places. Negative counts contribute nothing.
func Estimate(usage TokenUsage, pricing Pricing) float64 {
	return round(calculateTokenCost(usage.PromptTokens, pricing.PromptPer1K) +
		calculateTokenCost(usage.CompletionTokens, pricing.CompletionPer1K))
}

// Calculate returns the per-side breakdown. TotalCost always equals
// Estimate(usage, pricing).
func Calculate(usage TokenUsage, pricing Pricing) *CostEstimate {
	return &CostEstimate{
		PromptCost:     round(calculateTokenCost(usage.PromptTokens, pricing.PromptPer1K)),
		CompletionCost: round(calculateTokenCost(usage.CompletionTokens, pricing.CompletionPer1K)),
		TotalCost:      Estimate(usage, pricing),
		Currency:       Currency,
	}
}

// calculateTokenCost calculates the cost for a given number of tokens.
// costPer1K is the cost per 1000 tokens in USD.
func calculateTokenCost(tokens int, costPer1K float64) float64 {
	if tokens <= 0 {
		return 0.0
	}

	return (float64(tokens) / 1000.0) * costPer1K
}

func round(v float64) float64 {
	scale := math.Pow10(precision)
	return math.Round(v*scale) / scale
}
