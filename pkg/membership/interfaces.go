// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/types"
)

type StorageInterface interface {
	GetMembership(ctx context.Context, userID, tenantType string, tenantID int64) (*types.Membership, error)
	ListMembershipsByUserAndType(ctx context.Context, userID, tenantType string) ([]*types.MembershipTenant, error)
	UpsertMembership(ctx context.Context, userID, tenantType string, tenantID int64, role types.RoleKind) (string, error)
	DeleteMembership(ctx context.Context, userID, tenantType string, tenantID int64) error
}

type ServiceInterface interface {
	RoleFor(ctx context.Context, userID string, ref scope.Ref) (types.RoleKind, error)
	CanManage(ctx context.Context, userID string, ref scope.Ref) (bool, error)
	CanView(ctx context.Context, userID string, ref scope.Ref) (bool, error)
	TenantsOfKind(ctx context.Context, userID string, kind types.ScopeKind) ([]*types.MembershipTenant, error)
	Grant(ctx context.Context, userID string, ref scope.Ref, role types.RoleKind) error
	Revoke(ctx context.Context, userID string, ref scope.Ref) error
	On(ctx context.Context, userID string, ref scope.Ref) (*Accessor, error)
}
