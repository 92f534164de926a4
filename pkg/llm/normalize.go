package llm

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize coerces a decoded reply object into a ParsedAnswer.
//
//   - answer: rendered as text and trimmed; missing or null is ""
//   - confidence: numbers, numeric strings and booleans are accepted;
//     anything else (or a non-finite value) becomes DefaultConfidence
//   - actions: an array is kept with each element rendered as text;
//     anything else becomes an empty list
func Normalize(raw map[string]interface{}) ParsedAnswer {
	return ParsedAnswer{
		Answer:     strings.TrimSpace(coerceString(raw["answer"])),
		Confidence: coerceConfidence(raw["confidence"]),
		Actions:    coerceActions(raw["actions"]),
	}
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func coerceConfidence(v interface{}) float64 {
	var f float64
	switch t := v.(type) {
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return DefaultConfidence
		}
		f = parsed
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return DefaultConfidence
		}
		f = parsed
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return DefaultConfidence
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultConfidence
	}
	return f
}

func coerceActions(v interface{}) []string {
	var items []interface{}
	switch t := v.(type) {
	case []interface{}:
		items = t
	case []string:
		return append([]string{}, t...)
	default:
		return []string{}
	}

	actions := make([]string, len(items))
	for i, item := range items {
		actions[i] = coerceString(item)
	}
	return actions
}
