// Copyright 2025 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/types"
)

type StorageInterface interface {
	// Memberships
	GetMembership(ctx context.Context, userID, tenantType string, tenantID int64) (*types.Membership, error)
	ListMembershipsByUserAndType(ctx context.Context, userID, tenantType string) ([]*types.MembershipTenant, error)
	UpsertMembership(ctx context.Context, userID, tenantType string, tenantID int64, role types.RoleKind) (string, error)
	DeleteMembership(ctx context.Context, userID, tenantType string, tenantID int64) error

	// Users
	GetUser(ctx context.Context, id string) (*types.User, error)

	// Tenant entities
	GetOrganization(ctx context.Context, id int64) (*types.Organization, error)
	GetBrand(ctx context.Context, id int64) (*types.Brand, error)
	GetStore(ctx context.Context, id int64) (*types.Store, error)
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error)
	CreateStore(ctx context.Context, s *types.Store) (*types.Store, error)
	DeleteBrand(ctx context.Context, id int64) error
	DeleteStore(ctx context.Context, id int64) error

	// Roles and permissions
	EnsurePermissions(ctx context.Context, names []string) error
	ListRolesByScopeKind(ctx context.Context, kind types.ScopeKind) ([]*types.Role, error)
	ReplaceRolePermissions(ctx context.Context, roleID int64, names []string) error
	ListRolePermissions(ctx context.Context, teamID *int64, roleName types.RoleKind) ([]string, error)
}
