package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mercator-hq/textutil/pkg/api/types"
)

// WriteJSONResponse writes data as JSON with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// WriteError writes {"detail": ...} with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, detail string) error {
	return WriteJSONResponse(w, statusCode, types.NewErrorResponse(detail))
}

// HandleError maps err to a status code and error body. Request errors keep
// their own status; everything else is a 500 carrying the error text.
func HandleError(err error) (int, *types.ErrorResponse) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode, types.NewErrorResponse(reqErr.Message)
	}

	return http.StatusInternalServerError, types.NewErrorResponse(err.Error())
}
