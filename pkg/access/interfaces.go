// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

//go:generate mockgen -source=interfaces.go -destination=mock_access.go -package=access
package access

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/types"
)

type MembershipInterface interface {
	CanView(ctx context.Context, userID string, ref scope.Ref) (bool, error)
	TenantsOfKind(ctx context.Context, userID string, kind types.ScopeKind) ([]*types.MembershipTenant, error)
}

type SessionsInterface interface {
	SetCurrentScope(ctx context.Context, sessionID string, ref scope.Ref) error
	ClearCurrentScope(ctx context.Context, sessionID string) error
}

type ServiceInterface interface {
	Browse(ctx context.Context, userID string) (*ChooserView, error)
	Select(ctx context.Context, userID, sessionID string, req SelectRequest) (string, error)
}
