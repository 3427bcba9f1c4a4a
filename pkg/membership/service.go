// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

var ErrInvalidRole = errors.New("invalid role")

// Service answers membership questions for an explicit user id. It is a
// composition over the membership store, not an augmentation of the user
// type.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RoleFor resolves the user's role on one tenant. A missing membership, an
// orphaned target or an unknown scope kind all yield RoleNone, never an
// error and never a grant.
func (s *Service) RoleFor(ctx context.Context, userID string, ref scope.Ref) (types.RoleKind, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RoleFor")
	defer span.End()

	code, ok := scope.CodeOf(ref.Kind)
	if !ok {
		// Unknown discriminant fails closed.
		return types.RoleNone, nil
	}

	m, err := s.storage.GetMembership(ctx, userID, code, ref.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.RoleNone, nil
		}
		return types.RoleNone, err
	}

	return m.Role, nil
}

// CanManage reports the manage capability. Derived from the role kind
// alone, no second lookup.
func (s *Service) CanManage(ctx context.Context, userID string, ref scope.Ref) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.CanManage")
	defer span.End()

	role, err := s.RoleFor(ctx, userID, ref)
	if err != nil {
		return false, err
	}
	return role.CanManage(), nil
}

// CanView reports the view capability. Derived from the role kind alone,
// no second lookup.
func (s *Service) CanView(ctx context.Context, userID string, ref scope.Ref) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.CanView")
	defer span.End()

	role, err := s.RoleFor(ctx, userID, ref)
	if err != nil {
		return false, err
	}
	return role.CanView(), nil
}

// TenantsOfKind lists the user's memberships of one scope kind, ordered by
// grant time. Memberships whose target entity no longer exists are dropped
// silently.
func (s *Service) TenantsOfKind(ctx context.Context, userID string, kind types.ScopeKind) ([]*types.MembershipTenant, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.TenantsOfKind")
	defer span.End()

	code, ok := scope.CodeOf(kind)
	if !ok {
		return nil, fmt.Errorf("unknown scope kind %q", kind)
	}

	return s.storage.ListMembershipsByUserAndType(ctx, userID, code)
}

// Grant gives the user a role on the tenant, or updates the role if a
// membership already exists.
func (s *Service) Grant(ctx context.Context, userID string, ref scope.Ref, role types.RoleKind) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Grant")
	defer span.End()

	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	code, ok := scope.CodeOf(ref.Kind)
	if !ok {
		return fmt.Errorf("unknown scope kind %q", ref.Kind)
	}

	if _, err := s.storage.UpsertMembership(ctx, userID, code, ref.ID, role); err != nil {
		return fmt.Errorf("failed to grant membership: %w", err)
	}
	return nil
}

// Revoke removes the user's membership on the tenant.
func (s *Service) Revoke(ctx context.Context, userID string, ref scope.Ref) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Revoke")
	defer span.End()

	code, ok := scope.CodeOf(ref.Kind)
	if !ok {
		return fmt.Errorf("unknown scope kind %q", ref.Kind)
	}

	return s.storage.DeleteMembership(ctx, userID, code, ref.ID)
}

// On binds (user, tenant) once and returns a read-only accessor. The
// accessor is strictly a facade over that single lookup; it grants no
// authority of its own.
func (s *Service) On(ctx context.Context, userID string, ref scope.Ref) (*Accessor, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.On")
	defer span.End()

	role, err := s.RoleFor(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	return &Accessor{role: role}, nil
}
