package llm

// CallOption customizes a single Call.
type CallOption func(*callOptions)

type callOptions struct {
	systemPrompt *string
	maxTokens    int
}

// WithSystemPrompt overrides the system prompt for one call.
func WithSystemPrompt(prompt string) CallOption {
	return func(o *callOptions) {
		o.systemPrompt = &prompt
	}
}

// WithMaxTokens sets the completion limit for one call. Values of zero or
// less select the configured default.
func WithMaxTokens(n int) CallOption {
	return func(o *callOptions) {
		o.maxTokens = n
	}
}
