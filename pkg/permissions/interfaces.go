// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/types"
)

// BackendInterface is the binding lookup the checker sits on. The storage
// layer implements it.
type BackendInterface interface {
	ListRolePermissions(ctx context.Context, teamID *int64, roleName types.RoleKind) ([]string, error)
}

type CheckerInterface interface {
	HasPermission(ctx context.Context, roleName types.RoleKind, permission string) (bool, error)
	Permissions(ctx context.Context, roleName types.RoleKind) ([]string, error)
	Invalidate(teamID *int64, roleName types.RoleKind)
	Purge()
}
