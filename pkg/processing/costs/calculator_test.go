package costs

import (
	"math"
	"testing"

	"mercator-hq/textutil/pkg/config"
)

func TestEstimate(t *testing.T) {
	defaultPricing := Pricing{PromptPer1K: 0.03, CompletionPer1K: 0.06}

	tests := []struct {
		name     string
		usage    TokenUsage
		pricing  Pricing
		expected float64
	}{
		{
			name:     "default rates",
			usage:    TokenUsage{PromptTokens: 1000, CompletionTokens: 500},
			pricing:  defaultPricing,
			expected: 0.06,
		},
		{
			name:     "zero usage",
			usage:    TokenUsage{},
			pricing:  defaultPricing,
			expected: 0,
		},
		{
			name:     "negative counts ignored",
			usage:    TokenUsage{PromptTokens: -10, CompletionTokens: 1000},
			pricing:  defaultPricing,
			expected: 0.06,
		},
		{
			name:     "small usage",
			usage:    TokenUsage{PromptTokens: 12, CompletionTokens: 8},
			pricing:  defaultPricing,
			expected: 0.00084, // 0.00036 + 0.00048
		},
		{
			name:     "rounded to 8 decimals",
			usage:    TokenUsage{PromptTokens: 1, CompletionTokens: 0},
			pricing:  Pricing{PromptPer1K: 0.000123456789},
			expected: 0.00000012,
		},
		{
			name:     "rounding keeps 8th decimal",
			usage:    TokenUsage{PromptTokens: 1},
			pricing:  Pricing{PromptPer1K: 0.0123456789},
			expected: 0.00001235,
		},
		{
			name:     "free model",
			usage:    TokenUsage{PromptTokens: 5000, CompletionTokens: 5000},
			pricing:  Pricing{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.usage, tt.pricing)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Estimate() = %.10f, want %.10f", got, tt.expected)
			}
		})
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	usage := TokenUsage{PromptTokens: 731, CompletionTokens: 289}
	pricing := Pricing{PromptPer1K: 0.0015, CompletionPer1K: 0.002}

	first := Estimate(usage, pricing)
	for i := 0; i < 100; i++ {
		if got := Estimate(usage, pricing); got != first {
			t.Fatalf("Estimate() not deterministic: %v != %v", got, first)
		}
	}
}

func TestEstimate_IgnoresTotal(t *testing.T) {
	pricing := Pricing{PromptPer1K: 0.03, CompletionPer1K: 0.06}
	a := Estimate(TokenUsage{PromptTokens: 100, CompletionTokens: 100, TotalTokens: 200}, pricing)
	b := Estimate(TokenUsage{PromptTokens: 100, CompletionTokens: 100, TotalTokens: 99999}, pricing)
	if a != b {
		t.Errorf("total_tokens must not affect the estimate: %v != %v", a, b)
	}
}

func TestCalculate(t *testing.T) {
	est := Calculate(TokenUsage{PromptTokens: 1000, CompletionTokens: 500}, Pricing{PromptPer1K: 0.03, CompletionPer1K: 0.06})

	if est.PromptCost != 0.03 {
		t.Errorf("PromptCost = %v, want 0.03", est.PromptCost)
	}
	if est.CompletionCost != 0.03 {
		t.Errorf("CompletionCost = %v, want 0.03", est.CompletionCost)
	}
	if est.TotalCost != 0.06 {
		t.Errorf("TotalCost = %v, want 0.06", est.TotalCost)
	}
	if est.Currency != Currency {
		t.Errorf("Currency = %q, want %q", est.Currency, Currency)
	}
}

func TestCalculator_FromConfig(t *testing.T) {
	calculator := NewCalculatorFromConfig(config.Default().LLM)

	if calculator.Pricing() != (Pricing{PromptPer1K: 0.03, CompletionPer1K: 0.06}) {
		t.Errorf("unexpected pricing %+v", calculator.Pricing())
	}

	est := calculator.Calculate(TokenUsage{PromptTokens: 1000, CompletionTokens: 500})
	if est.TotalCost != 0.06 {
		t.Errorf("TotalCost = %v, want 0.06", est.TotalCost)
	}
	if est.Model != config.DefaultModel {
		t.Errorf("Model = %q, want %q", est.Model, config.DefaultModel)
	}
}

func BenchmarkEstimate(b *testing.B) {
	usage := TokenUsage{PromptTokens: 1234, CompletionTokens: 567}
	pricing := Pricing{PromptPer1K: 0.03, CompletionPer1K: 0.06}

	for i := 0; i < b.N; i++ {
		_ = Estimate(usage, pricing)
	}
}
