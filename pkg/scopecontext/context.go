// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

// Package scopecontext resolves the active tenant of a request. The active
// scope is an explicit context value threaded through the request
// pipeline; the only ambient piece is the zero-argument team hook the
// permission layer requires, and that hook delegates straight back to the
// explicit context.
package scopecontext

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/scope"
)

type activeScopeKeyType struct{}

var activeScopeKey = activeScopeKeyType{}

// WithActiveScope returns a context carrying ref as the active tenant.
func WithActiveScope(ctx context.Context, ref scope.Ref) context.Context {
	return context.WithValue(ctx, activeScopeKey, ref)
}

// WithoutActiveScope returns a context with no active tenant, shadowing
// any active scope on the parent. Used to restore global context.
func WithoutActiveScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, activeScopeKey, nil)
}

// ActiveScope returns the active tenant of the request, if any.
func ActiveScope(ctx context.Context) (scope.Ref, bool) {
	ref, ok := ctx.Value(activeScopeKey).(scope.Ref)
	return ref, ok
}
