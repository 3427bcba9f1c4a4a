// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package scopecontext

import (
	"context"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/sessions"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/authentication"
)

// Resolver derives the active team id for permission checks. A nil result
// means global context. Resolution is idempotent and side-effect free; it
// returns the id even when the referenced tenant no longer exists, the
// downstream binding lookup fails closed in that case.
type Resolver interface {
	ResolveTeamID(ctx context.Context) *int64
}

var (
	_ Resolver = (*SurfaceResolver)(nil)
	_ Resolver = (*SessionResolver)(nil)
	_ Resolver = (*ContextResolver)(nil)
)

// Surface describes one administrative surface and the tenant it is bound
// to. Global surfaces carry no tenant.
type Surface struct {
	Kind   types.ScopeKind
	Tenant *scope.Ref
}

// SurfaceResolver yields the key of the surface's bound tenant. Surfaces
// with no bound tenant resolve to the global context.
type SurfaceResolver struct {
	surface Surface
}

func (r *SurfaceResolver) ResolveTeamID(_ context.Context) *int64 {
	if r.surface.Tenant == nil {
		return nil
	}
	id := r.surface.Tenant.ID
	return &id
}

func NewSurfaceResolver(surface Surface) *SurfaceResolver {
	return &SurfaceResolver{surface: surface}
}

// SessionResolver yields the "current scope" the access flow stored on the
// session. Absence of a session or of a selection resolves to the global
// context.
type SessionResolver struct {
	sessions sessions.StoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *SessionResolver) ResolveTeamID(ctx context.Context) *int64 {
	sessionID, ok := authentication.GetSessionID(ctx)
	if !ok {
		return nil
	}

	ref, err := r.sessions.CurrentScope(ctx, sessionID)
	if err != nil {
		// Fail closed: an unreadable session never widens access.
		r.logger.Errorf("failed to resolve session scope: %v", err)
		return nil
	}
	if ref == nil {
		return nil
	}

	id := ref.ID
	return &id
}

func NewSessionResolver(sessions sessions.StoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionResolver {
	return &SessionResolver{
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// ContextResolver yields the explicit active scope already threaded on the
// context, as set by WithActiveScope.
type ContextResolver struct{}

func (r *ContextResolver) ResolveTeamID(ctx context.Context) *int64 {
	ref, ok := ActiveScope(ctx)
	if !ok {
		return nil
	}
	id := ref.ID
	return &id
}

func NewContextResolver() *ContextResolver {
	return &ContextResolver{}
}

// TeamHook is the zero-argument callback shape the low-level permission
// layer registers; it has no other way to learn which tenant a check
// applies to.
type TeamHook func() *int64

// BindTeamHook is the single registration point adapting a request context
// and resolver into the permission layer's zero-argument hook. The hook
// delegates immediately to the explicit context it was bound with.
func BindTeamHook(ctx context.Context, r Resolver) TeamHook {
	return func() *int64 {
		return r.ResolveTeamID(ctx)
	}
}
