// Copyright 2025 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Private custom types to avoid collisions
type userContextKeyType struct{}
type sessionContextKeyType struct{}

var userContextKey = userContextKeyType{}
var sessionContextKey = sessionContextKeyType{}

// WithUserID returns a new context with the given user ID derived from the parent context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if the user ID is not present.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	return id, ok && id != ""
}

// WithSessionID returns a new context carrying the request's session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionContextKey, sessionID)
}

// GetSessionID retrieves the session ID from the context.
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionContextKey).(string)
	return id, ok && id != ""
}
