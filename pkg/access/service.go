// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

// Package access implements the tenant-selection flow: browsing a user's
// memberships grouped by scope kind, verifying a selection, and switching
// the session onto the selected tenant.
package access

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

var (
	// ErrForbidden is deliberately opaque: it reveals nothing about
	// whether the requested tenant exists.
	ErrForbidden = errors.New("forbidden")

	ErrInvalidSelection = errors.New("invalid selection")
)

// SelectRequest is the payload of a scope-selection request. Only the
// three selectable kinds pass validation; anything else is rejected before
// any membership lookup.
type SelectRequest struct {
	TenantType string `json:"tenant_type" validate:"required,oneof=organization store brand"`
	TenantID   int64  `json:"tenant_id" validate:"required,gt=0"`
}

// MembershipView is one row on the chooser.
type MembershipView struct {
	TenantID   int64          `json:"tenant_id"`
	TenantName string         `json:"tenant_name"`
	Role       types.RoleKind `json:"role"`
}

// KindGroup is the chooser's per-kind section.
type KindGroup struct {
	Kind        types.ScopeKind  `json:"kind"`
	Memberships []MembershipView `json:"memberships"`
	CanCreate   bool             `json:"can_create"`
}

type ChooserView struct {
	Groups []KindGroup `json:"groups"`
}

type Service struct {
	membership MembershipInterface
	sessions   SessionsInterface
	validate   *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	membership MembershipInterface,
	sessions SessionsInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		membership: membership,
		sessions:   sessions,
		validate:   validator.New(),
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// selfServiceCreation reports whether a user may create a new tenant of
// the kind from the chooser. Brand creation is reachable only from inside
// an organization's surface, never here.
func selfServiceCreation(kind types.ScopeKind) bool {
	return kind == types.ScopeOrganization || kind == types.ScopeStore
}

// Browse groups the user's memberships by scope kind for the chooser.
// Each group keeps the store's grant ordering.
func (s *Service) Browse(ctx context.Context, userID string) (*ChooserView, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Browse")
	defer span.End()

	view := &ChooserView{}
	for _, kind := range scope.SelectableKinds() {
		memberships, err := s.membership.TenantsOfKind(ctx, userID, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s memberships: %w", kind, err)
		}

		group := KindGroup{
			Kind:        kind,
			Memberships: make([]MembershipView, 0, len(memberships)),
			CanCreate:   selfServiceCreation(kind),
		}
		for _, m := range memberships {
			group.Memberships = append(group.Memberships, MembershipView{
				TenantID:   m.Membership.TenantID,
				TenantName: m.TenantName,
				Role:       m.Membership.Role,
			})
		}
		view.Groups = append(view.Groups, group)
	}

	return view, nil
}

// Select verifies the requested scope switch and, on success, stores it as
// the session's current scope and returns the tenant's administrative
// path. Membership is re-verified here regardless of what the chooser
// showed; stale or forged input yields the opaque forbidden outcome.
func (s *Service) Select(ctx context.Context, userID, sessionID string, req SelectRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Select")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	kind, ok := scope.KindOfPathSegment(req.TenantType)
	if !ok {
		return "", fmt.Errorf("%w: unknown tenant type", ErrInvalidSelection)
	}

	ref := scope.Ref{Kind: kind, ID: req.TenantID}

	canView, err := s.membership.CanView(ctx, userID, ref)
	if err != nil {
		return "", fmt.Errorf("failed to verify membership: %w", err)
	}
	if !canView {
		s.logger.Security().AuthorizationDenied(userID, ref.String())
		return "", ErrForbidden
	}

	if err := s.sessions.SetCurrentScope(ctx, sessionID, ref); err != nil {
		return "", fmt.Errorf("failed to store session scope: %w", err)
	}

	s.logger.Security().ScopeSwitched(userID, ref.String())

	segment, _ := scope.PathSegmentOf(kind)
	return "/" + segment + "/" + strconv.FormatInt(ref.ID, 10), nil
}
