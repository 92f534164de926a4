// Package api holds the HTTP surface of the query service: request parsing
// and JSON responses here, the endpoint in handlers, the middleware chain in
// middleware and the wire types in types.
//
// Every error body has the shape {"detail": "..."}:
//
//   - 405 for a method other than POST on /query
//   - 413 for a body over MaxRequestBodySize
//   - 422 for malformed JSON, a missing question or a non-integer max_tokens
//   - 500 for any failure talking to the provider, with the error text
package api
