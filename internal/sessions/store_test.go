// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := NewStoreWithClient(
		client,
		time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return s, mr
}

func TestCurrentScopeEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	ref, err := s.CurrentScope(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != nil {
		t.Errorf("expected nil scope for fresh session, got %v", ref)
	}
}

func TestSetAndGetCurrentScope(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	want := scope.Ref{Kind: types.ScopeStore, ID: 5}
	if err := s.SetCurrentScope(ctx, "sid-1", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.CurrentScope(ctx, "sid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Another session is unaffected.
	other, err := s.CurrentScope(ctx, "sid-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other != nil {
		t.Errorf("expected nil scope for other session, got %v", other)
	}
}

func TestClearCurrentScope(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.SetCurrentScope(ctx, "sid-1", scope.Ref{Kind: types.ScopeOrganization, ID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ClearCurrentScope(ctx, "sid-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref, err := s.CurrentScope(ctx, "sid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != nil {
		t.Errorf("expected nil scope after clear, got %v", ref)
	}
}

func TestMalformedScopeDiscarded(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set(keyPrefix+"sid-1", "garbage")

	ref, err := s.CurrentScope(ctx, "sid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != nil {
		t.Errorf("expected malformed value to be discarded, got %v", ref)
	}

	mr.Set(keyPrefix+"sid-2", "warehouse:9")
	ref, err = s.CurrentScope(ctx, "sid-2")
	if err != nil || ref != nil {
		t.Errorf("expected unknown kind to be discarded, got %v err %v", ref, err)
	}
}
