package types

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	// Question is required. An empty string is accepted.
	Question *string `json:"question"`

	// MaxTokens optionally overrides the configured completion limit.
	// Non-positive values fall back to the default.
	MaxTokens *int `json:"max_tokens,omitempty"`
}

// ValidationError describes a request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks required fields.
func (r *QueryRequest) Validate() error {
	if r.Question == nil {
		return &ValidationError{Field: "question", Message: "field required"}
	}
	return nil
}

// QuestionText returns the question, or "" when absent.
func (r *QueryRequest) QuestionText() string {
	if r.Question == nil {
		return ""
	}
	return *r.Question
}

// MaxTokensValue returns the requested limit, or 0 when absent.
func (r *QueryRequest) MaxTokensValue() int {
	if r.MaxTokens == nil {
		return 0
	}
	return *r.MaxTokens
}
