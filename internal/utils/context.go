// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization and identifier generation.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the ledger session id in the context.
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, session.ID)
var SessionIDCtxKey = contextKey("sessionID")

// TraceIDCtxKey holds the request trace id set by the HTTP middleware.
var TraceIDCtxKey = contextKey("traceID")

// WithSessionID returns a copy of ctx carrying the session id.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, id)
}

// GetSessionIDFromContext retrieves the session id from the context.
//
// Returns ok == false when the value is missing, has an unexpected type
// or is the nil UUID.
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetTraceIDFromContext retrieves the request trace id, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
