// Package costs estimates the USD cost of a completion from its token usage.
//
// Pricing is linear in each side of the exchange:
//
//	cost = (prompt/1000)*PromptPer1K + (completion/1000)*CompletionPer1K
//
// and the result is rounded to 8 decimal places. The functions are pure:
// the same usage and pricing always give the same estimate.
//
// # Usage
//
//	calculator := costs.NewCalculatorFromConfig(cfg.LLM)
//
//	breakdown := calculator.Calculate(costs.TokenUsage{
//	    PromptTokens:     1000,
//	    CompletionTokens: 500,
//	})
//	// breakdown.TotalCost == 0.06 at the default rates (0.03 / 0.06)
//
//	fmt.Printf("$%.8f (prompt: $%.8f, completion: $%.8f)\n",
//	    breakdown.TotalCost, breakdown.PromptCost, breakdown.CompletionCost)
package costs
