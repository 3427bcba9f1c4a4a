// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/scope"
)

// StoreInterface persists the per-session "current scope" set by the
// access flow. The value lives only as long as the session.
type StoreInterface interface {
	CurrentScope(ctx context.Context, sessionID string) (*scope.Ref, error)
	SetCurrentScope(ctx context.Context, sessionID string, ref scope.Ref) error
	ClearCurrentScope(ctx context.Context, sessionID string) error
}
