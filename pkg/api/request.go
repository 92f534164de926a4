package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"mercator-hq/textutil/pkg/api/types"
)

// MaxRequestBodySize is the maximum allowed request body size (1MB).
const MaxRequestBodySize = 1 << 20

// RequestError is a request the handler refuses before calling the model.
type RequestError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// ParseQueryRequest decodes and validates a POST /query body. Malformed JSON,
// a missing question or a non-integer max_tokens yield a 422 RequestError;
// an oversized body yields 413.
func ParseQueryRequest(r *http.Request) (*types.QueryRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if len(body) > MaxRequestBodySize {
		return nil, &RequestError{
			StatusCode: http.StatusRequestEntityTooLarge,
			Message:    fmt.Sprintf("request body exceeds maximum size of %d bytes", MaxRequestBodySize),
		}
	}

	var req types.QueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &RequestError{
				StatusCode: http.StatusUnprocessableEntity,
				Message:    fmt.Sprintf("%s: expected %s", typeErr.Field, typeErr.Type),
			}
		}
		return nil, &RequestError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    fmt.Sprintf("invalid JSON: %v", err),
		}
	}

	if err := req.Validate(); err != nil {
		return nil, &RequestError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    err.Error(),
		}
	}

	return &req, nil
}
