// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

// Package tenants manages the tenant entities themselves: self-service
// creation from the chooser, scoped creation from inside a tenant surface,
// and removal of directly operated children.
package tenants

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/permissions"
	"github.com/mx-olulo/scope-service/pkg/scopecontext"
)

var _ ServiceInterface = (*Service)(nil)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type Service struct {
	storage     StorageInterface
	membership  MembershipInterface
	checker     *permissions.Checker
	initializer InitializerInterface
	validate    *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	membership MembershipInterface,
	checker *permissions.Checker,
	initializer InitializerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		membership:  membership,
		checker:     checker,
		initializer: initializer,
		validate:    validator.New(),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// authorize verifies the user holds the permission at the active tenant.
// The caller's role is resolved from their membership on the active tenant
// and checked against that tenant's own permission bindings.
func (s *Service) authorize(ctx context.Context, userID, permission string, allowed ...types.ScopeKind) error {
	ref, ok := scopecontext.ActiveScope(ctx)
	if !ok {
		return ErrForbidden
	}

	kindAllowed := false
	for _, kind := range allowed {
		if ref.Kind == kind {
			kindAllowed = true
			break
		}
	}
	if !kindAllowed {
		return ErrForbidden
	}

	role, err := s.membership.RoleFor(ctx, userID, ref)
	if err != nil {
		return fmt.Errorf("failed to resolve role: %w", err)
	}
	if role == types.RoleNone {
		s.logger.Security().AuthorizationDenied(userID, ref.String())
		return ErrForbidden
	}

	bound := s.checker.WithTeamHook(scopecontext.BindTeamHook(ctx, scopecontext.NewContextResolver()))
	granted, err := bound.HasPermission(ctx, role, permission)
	if err != nil {
		return fmt.Errorf("failed to check permission: %w", err)
	}
	if !granted {
		s.logger.Security().AuthorizationDenied(userID, ref.String())
		return ErrForbidden
	}

	s.logger.Security().AuthorizationGranted(userID, ref.String())
	return nil
}

// CreateOrganization is self-service: any admin-capable user may register
// an organization and becomes its owner.
func (s *Service) CreateOrganization(ctx context.Context, userID string, req CreateOrganizationRequest) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.CreateOrganization")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:         req.Name,
		Relationship: types.RelationshipTenant,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	ref := scope.Ref{Kind: types.ScopeOrganization, ID: created.ID}
	if err := s.membership.Grant(ctx, userID, ref, types.RoleOwner); err != nil {
		return nil, fmt.Errorf("failed to grant ownership: %w", err)
	}

	return created, nil
}

// CreateBrand is only reachable from inside an organization surface; the
// new brand is stamped with the active organization and is a directly
// operated child, so the organization may later delete it.
func (s *Service) CreateBrand(ctx context.Context, userID string, req CreateBrandRequest) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.CreateBrand")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.authorize(ctx, userID, "create-brands", types.ScopeOrganization); err != nil {
		return nil, err
	}

	brand := &types.Brand{Name: req.Name, Relationship: types.RelationshipOwned}
	if err := s.initializer.Apply(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to stamp tenant ownership: %w", err)
	}

	created, err := s.storage.CreateBrand(ctx, brand)
	if err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return created, nil
}

// CreateStore works both ways: self-service from the chooser, where the
// creator becomes owner of an ownerless affiliate store, and scoped from
// inside an organization or brand surface, where the store inherits the
// active tenant's ancestry and becomes a directly operated child instead.
func (s *Service) CreateStore(ctx context.Context, userID string, req CreateStoreRequest) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.CreateStore")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	relationship := types.RelationshipTenant
	_, scoped := scopecontext.ActiveScope(ctx)
	if scoped {
		if err := s.authorize(ctx, userID, "create-stores", types.ScopeOrganization, types.ScopeBrand); err != nil {
			return nil, err
		}
		relationship = types.RelationshipOwned
	}

	store := &types.Store{Name: req.Name, Relationship: relationship}
	if err := s.initializer.Apply(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to stamp tenant ownership: %w", err)
	}

	created, err := s.storage.CreateStore(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	if !scoped {
		ref := scope.Ref{Kind: types.ScopeStore, ID: created.ID}
		if err := s.membership.Grant(ctx, userID, ref, types.RoleOwner); err != nil {
			return nil, fmt.Errorf("failed to grant ownership: %w", err)
		}
	}

	return created, nil
}

func (s *Service) DeleteBrand(ctx context.Context, userID string, id int64) error {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.DeleteBrand")
	defer span.End()

	if err := s.authorize(ctx, userID, "delete-brands", types.ScopeOrganization); err != nil {
		return err
	}

	return s.storage.DeleteBrand(ctx, id)
}

func (s *Service) DeleteStore(ctx context.Context, userID string, id int64) error {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.DeleteStore")
	defer span.End()

	if err := s.authorize(ctx, userID, "delete-stores", types.ScopeOrganization, types.ScopeBrand); err != nil {
		return err
	}

	return s.storage.DeleteStore(ctx, id)
}
