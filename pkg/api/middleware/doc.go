// Package middleware provides the HTTP middleware wrapped around the query
// endpoint.
//
// # Middleware Chain
//
// The server composes the chain outermost first:
//
//	handler = middleware.Chain(mux,
//	    middleware.RequestIDMiddleware,
//	    middleware.LoggingMiddleware,
//	    middleware.RecoveryMiddleware,
//	    tracing.HTTPMiddleware,
//	)
//
// RequestIDMiddleware runs first so that every later log line, including
// the completion line written by LoggingMiddleware and the panic report from
// RecoveryMiddleware, carries the request ID.
//
// # Request ID
//
// A client-supplied X-Request-ID is reused; otherwise a UUID v4 is
// generated. The ID is echoed in the response header and stored with
// logging.WithRequestID.
//
// # Recovery
//
// Panics become:
//
//	HTTP/1.1 500 Internal Server Error
//	{"detail":"Internal Server Error"}
//
// http.ErrAbortHandler is re-panicked so net/http aborts the connection.
package middleware
