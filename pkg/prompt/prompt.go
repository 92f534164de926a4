package prompt

import "strings"

// DefaultSystemPrompt requires exactly one JSON object with the answer,
// a confidence and a list of recommended actions.
const DefaultSystemPrompt = "You are an assistant that must respond with a single JSON object only. " +
	"Given a user question, return a JSON object with keys: " +
	"\"answer\" (short string), " +
	"\"confidence\" (a float between 0 and 1), and " +
	"\"actions\" (an array of short recommended action strings). " +
	"Do not include any other text or explanation."

// QuestionKey is the placeholder name the user template renders the
// question into.
const QuestionKey = "question"

// Fill substitutes {name} placeholders in template with values.
//
// Doubled braces escape to a single literal brace. A placeholder with no
// entry in values, or an unterminated one, is copied through unchanged.
func Fill(template string, values map[string]string) string {
	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				sb.WriteString(template[i:])
				return sb.String()
			}
			name := template[i+1 : i+1+end]
			if v, ok := values[name]; ok {
				sb.WriteString(v)
			} else {
				sb.WriteString(template[i : i+2+end])
			}
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}
			sb.WriteByte('}')
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// RenderQuestion renders the user message for question through template.
// An empty template renders the question unchanged.
func RenderQuestion(template, question string) string {
	if template == "" {
		return question
	}
	return Fill(template, map[string]string{QuestionKey: question})
}
