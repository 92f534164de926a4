package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
)

// DefaultConfidence is used when the model gives no usable confidence.
const DefaultConfidence = 0.5

// objectPattern matches from the first "{" to the last "}".
var objectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON finds a JSON object in model output. It first parses the
// trimmed text as a whole, then falls back to the span between the first
// "{" and the last "}". ok is false when neither yields an object.
func ExtractJSON(s string) (obj map[string]interface{}, ok bool) {
	s = strings.TrimSpace(s)

	if obj, ok := decodeObject(s); ok {
		return obj, true
	}

	if m := objectPattern.FindString(s); m != "" {
		if obj, ok := decodeObject(m); ok {
			return obj, true
		}
	}

	return nil, false
}

// decodeObject parses s as exactly one JSON object, keeping numbers as
// json.Number so their original spelling survives.
func decodeObject(s string) (map[string]interface{}, bool) {
	if s == "" || s[0] != '{' {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}

	return obj, true
}

// ParseReply turns raw model output into a ParsedAnswer. It never fails:
// output without a JSON object becomes the answer itself, with default
// confidence and no actions.
func ParseReply(content string) ParsedAnswer {
	if obj, ok := ExtractJSON(content); ok {
		return Normalize(obj)
	}

	return ParsedAnswer{
		Answer:     strings.TrimSpace(content),
		Confidence: DefaultConfidence,
		Actions:    []string{},
	}
}
