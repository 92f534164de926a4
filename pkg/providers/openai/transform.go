package openai

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"mercator-hq/textutil/pkg/providers"
)

// OpenAI API request/response types

// OpenAIRequest represents an OpenAI chat completion request.
// Temperature is always sent, including zero.
type OpenAIRequest struct {
	Model       string          `json:"model"`
	Messages    []OpenAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

// OpenAIMessage represents a message in OpenAI format.
type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIResponse represents an OpenAI chat completion response.
//
// Decoding is tolerant: the body must be a JSON object, but any field with
// an unexpected shape is treated as absent rather than failing the call.
type OpenAIResponse struct {
	ID      string
	Model   string
	Created int64
	Choices []OpenAIChoice
	Usage   OpenAIUsage
}

// OpenAIChoice represents a completion choice in OpenAI format.
type OpenAIChoice struct {
	Index        int
	Message      OpenAIMessage
	FinishReason string
}

// OpenAIUsage represents token usage in OpenAI format. A nil field was
// absent or not a number.
type OpenAIUsage struct {
	PromptTokens     *int
	CompletionTokens *int
	TotalTokens      *int
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *OpenAIResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = OpenAIResponse{}
	_ = json.Unmarshal(raw["id"], &r.ID)
	_ = json.Unmarshal(raw["model"], &r.Model)
	_ = json.Unmarshal(raw["created"], &r.Created)

	var choices []json.RawMessage
	if json.Unmarshal(raw["choices"], &choices) == nil {
		for i, c := range choices {
			r.Choices = append(r.Choices, decodeChoice(i, c))
		}
	}

	var usage map[string]json.RawMessage
	if json.Unmarshal(raw["usage"], &usage) == nil {
		r.Usage = OpenAIUsage{
			PromptTokens:     decodeCount(usage["prompt_tokens"]),
			CompletionTokens: decodeCount(usage["completion_tokens"]),
			TotalTokens:      decodeCount(usage["total_tokens"]),
		}
	}

	return nil
}

func decodeChoice(index int, data json.RawMessage) OpenAIChoice {
	choice := OpenAIChoice{Index: index}

	var raw map[string]json.RawMessage
	if json.Unmarshal(data, &raw) != nil {
		return choice
	}
	_ = json.Unmarshal(raw["finish_reason"], &choice.FinishReason)

	var msg map[string]json.RawMessage
	if json.Unmarshal(raw["message"], &msg) != nil {
		return choice
	}
	_ = json.Unmarshal(msg["role"], &choice.Message.Role)
	if json.Unmarshal(msg["content"], &choice.Message.Content) != nil {
		choice.Message.Content = ""
	}

	return choice
}

// decodeCount accepts integers, floats (truncated) and numeric strings.
func decodeCount(data json.RawMessage) *int {
	if len(data) == 0 {
		return nil
	}

	var v interface{}
	if json.Unmarshal(data, &v) != nil {
		return nil
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	count := int(f)
	return &count
}

// Transformation functions

// transformRequest transforms a provider-agnostic request to OpenAI format.
func transformRequest(req *providers.CompletionRequest) *OpenAIRequest {
	openaiReq := &OpenAIRequest{
		Model:       req.Model,
		Messages:    make([]OpenAIMessage, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	for i, msg := range req.Messages {
		openaiReq.Messages[i] = OpenAIMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	return openaiReq
}

// transformResponse transforms an OpenAI response to provider-agnostic
// format. A response without choices yields empty content.
func transformResponse(resp *OpenAIResponse, requestModel string) *providers.CompletionResponse {
	result := &providers.CompletionResponse{
		ID:    resp.ID,
		Model: resp.Model,
		Usage: transformUsage(resp.Usage),
	}
	if result.Model == "" {
		result.Model = requestModel
	}

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		result.Content = choice.Message.Content
		result.FinishReason = normalizeFinishReason(choice.FinishReason)
	}

	return result
}

// transformUsage fills absent counters with zero, clamps negatives and
// derives the total from its parts when the provider omits it.
func transformUsage(u OpenAIUsage) providers.TokenUsage {
	prompt := nonNegative(u.PromptTokens)
	completion := nonNegative(u.CompletionTokens)

	total := prompt + completion
	if u.TotalTokens != nil {
		total = nonNegative(u.TotalTokens)
	}

	return providers.TokenUsage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      total,
	}
}

func nonNegative(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

// normalizeFinishReason normalizes OpenAI finish reasons to provider-agnostic values.
func normalizeFinishReason(reason string) string {
	switch reason {
	case "stop":
		return providers.FinishReasonStop
	case "length":
		return providers.FinishReasonLength
	case "content_filter":
		return providers.FinishReasonContentFilter
	default:
		return reason
	}
}
