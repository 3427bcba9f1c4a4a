// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package scopecontext

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/sessions"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/authentication"
)

func newSessionStore(t *testing.T) *sessions.Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return sessions.NewStoreWithClient(
		client,
		time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestActiveScopeRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := ActiveScope(ctx); ok {
		t.Fatal("expected no active scope on empty context")
	}

	ref := scope.Ref{Kind: types.ScopeBrand, ID: 7}
	ctx = WithActiveScope(ctx, ref)

	got, ok := ActiveScope(ctx)
	if !ok || got != ref {
		t.Errorf("expected %v, got %v (ok=%v)", ref, got, ok)
	}

	if _, ok := ActiveScope(WithoutActiveScope(ctx)); ok {
		t.Error("expected WithoutActiveScope to shadow the active scope")
	}
}

func TestSurfaceResolver(t *testing.T) {
	global := NewSurfaceResolver(Surface{Kind: types.ScopePlatform})
	if teamID := global.ResolveTeamID(context.Background()); teamID != nil {
		t.Errorf("expected nil team id for global surface, got %d", *teamID)
	}

	bound := NewSurfaceResolver(Surface{
		Kind:   types.ScopeOrganization,
		Tenant: &scope.Ref{Kind: types.ScopeOrganization, ID: 42},
	})
	teamID := bound.ResolveTeamID(context.Background())
	if teamID == nil || *teamID != 42 {
		t.Errorf("expected team id 42, got %v", teamID)
	}
}

func TestSessionResolver(t *testing.T) {
	store := newSessionStore(t)
	r := NewSessionResolver(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	// No session id on the context.
	if teamID := r.ResolveTeamID(context.Background()); teamID != nil {
		t.Errorf("expected nil team id without session, got %d", *teamID)
	}

	// Session with no selection.
	ctx := authentication.WithSessionID(context.Background(), "sid-1")
	if teamID := r.ResolveTeamID(ctx); teamID != nil {
		t.Errorf("expected nil team id without selection, got %d", *teamID)
	}

	// Session with a selection.
	if err := store.SetCurrentScope(ctx, "sid-1", scope.Ref{Kind: types.ScopeStore, ID: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	teamID := r.ResolveTeamID(ctx)
	if teamID == nil || *teamID != 5 {
		t.Errorf("expected team id 5, got %v", teamID)
	}
}

func TestStrategiesAgree(t *testing.T) {
	// For the same request, the surface-derived and session-derived
	// strategies must yield the same team id.
	store := newSessionStore(t)
	ctx := authentication.WithSessionID(context.Background(), "sid-1")
	if err := store.SetCurrentScope(ctx, "sid-1", scope.Ref{Kind: types.ScopeOrganization, ID: 9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session := NewSessionResolver(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	surface := NewSurfaceResolver(Surface{
		Kind:   types.ScopeOrganization,
		Tenant: &scope.Ref{Kind: types.ScopeOrganization, ID: 9},
	})

	a := session.ResolveTeamID(ctx)
	b := surface.ResolveTeamID(ctx)
	if a == nil || b == nil || *a != *b {
		t.Errorf("strategies disagree: session=%v surface=%v", a, b)
	}
}

func TestContextResolverAndTeamHook(t *testing.T) {
	r := NewContextResolver()

	ctx := context.Background()
	hook := BindTeamHook(ctx, r)
	if teamID := hook(); teamID != nil {
		t.Errorf("expected nil team id from global context, got %d", *teamID)
	}

	ctx = WithActiveScope(ctx, scope.Ref{Kind: types.ScopeStore, ID: 11})
	hook = BindTeamHook(ctx, r)

	teamID := hook()
	if teamID == nil || *teamID != 11 {
		t.Errorf("expected team id 11, got %v", teamID)
	}

	// Idempotent: repeated invocations yield the same result.
	again := hook()
	if again == nil || *again != 11 {
		t.Errorf("expected hook to be idempotent, got %v", again)
	}
}
