// Package net holds transport pieces shared by the HTTP server and its middleware:
// the response envelope and request id plumbing
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// HeaderRequestID is echoed on every response that carries a request id
const HeaderRequestID = "X-Request-ID"

// WithRequest stores reqID where the chi RequestID middleware would
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx, if any
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
