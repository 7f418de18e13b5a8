// Package http implements the REST transport of the feedback sandbox.
//
// It wires the chi router, the JSON handlers of the customer and survey
// endpoints, and the middleware chain (panic recovery, request tracing,
// access logging, gzip). Handlers translate sandbox errors into the
// {"detail": ...} bodies the feedback client expects.
package http
