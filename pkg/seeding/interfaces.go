// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package seeding

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/types"
)

type StorageInterface interface {
	EnsurePermissions(ctx context.Context, names []string) error
	ListRolesByScopeKind(ctx context.Context, kind types.ScopeKind) ([]*types.Role, error)
	ReplaceRolePermissions(ctx context.Context, roleID int64, names []string) error
}

// CacheInterface is the permission cache the seeder must keep coherent.
type CacheInterface interface {
	Purge()
	Invalidate(teamID *int64, roleName types.RoleKind)
}

type SeederInterface interface {
	Run(ctx context.Context) error
}
