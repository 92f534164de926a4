package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"mercator-hq/textutil/pkg/api"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and answers
// 500 {"detail":"Internal Server Error"}. The panic and stack trace are
// logged; neither reaches the client.
//
// Example usage:
//
//	handler = RecoveryMiddleware(handler)
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				_ = api.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
