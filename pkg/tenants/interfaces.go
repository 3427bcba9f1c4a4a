// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

//go:generate mockgen -source=interfaces.go -destination=mock_tenants.go -package=tenants
package tenants

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error)
	CreateStore(ctx context.Context, s *types.Store) (*types.Store, error)
	DeleteBrand(ctx context.Context, id int64) error
	DeleteStore(ctx context.Context, id int64) error
}

type MembershipInterface interface {
	RoleFor(ctx context.Context, userID string, ref scope.Ref) (types.RoleKind, error)
	Grant(ctx context.Context, userID string, ref scope.Ref, role types.RoleKind) error
}

type InitializerInterface interface {
	Apply(ctx context.Context, record any) error
}

type ServiceInterface interface {
	CreateOrganization(ctx context.Context, userID string, req CreateOrganizationRequest) (*types.Organization, error)
	CreateBrand(ctx context.Context, userID string, req CreateBrandRequest) (*types.Brand, error)
	CreateStore(ctx context.Context, userID string, req CreateStoreRequest) (*types.Store, error)
	DeleteBrand(ctx context.Context, userID string, id int64) error
	DeleteStore(ctx context.Context, userID string, id int64) error
}
