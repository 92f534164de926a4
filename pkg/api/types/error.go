package types

// ErrorResponse is the body of every non-2xx response from the query API.
//
//	{"detail": "provider \"openai\" error (status 401): invalid api key"}
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse creates an ErrorResponse.
func NewErrorResponse(detail string) *ErrorResponse {
	return &ErrorResponse{Detail: detail}
}
