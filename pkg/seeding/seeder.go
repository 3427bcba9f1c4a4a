// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

// Package seeding reconciles the permission catalog and the per-role
// permission bindings across every scope level. Runs are idempotent and
// remove bindings the catalog no longer grants.
package seeding

import (
	"context"
	"fmt"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/scopecontext"
)

var _ SeederInterface = (*Seeder)(nil)

type Seeder struct {
	storage StorageInterface
	cache   CacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSeeder(storage StorageInterface, cache CacheInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Seeder {
	return &Seeder{
		storage: storage,
		cache:   cache,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Run ensures every catalog permission exists, then rewrites each role's
// bindings to exactly what the catalog grants. Each role is seeded under
// its own team context so tenant-scoped roles never bleed into the global
// bindings. Any failure aborts the run; a half-seeded catalog is repaired
// by simply running again.
func (s *Seeder) Run(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "seeding.Seeder.Run")
	defer span.End()

	// Drop every cached lookup up front so nothing stale survives a
	// successful run.
	s.cache.Purge()

	if err := s.storage.EnsurePermissions(ctx, AllPermissionNames()); err != nil {
		return fmt.Errorf("failed to ensure permission catalog: %w", err)
	}

	for _, kind := range scope.Kinds() {
		if err := s.seedKind(ctx, kind); err != nil {
			return fmt.Errorf("failed to seed %s roles: %w", kind, err)
		}
	}

	s.logger.Infof("permission seeding complete")
	return nil
}

func (s *Seeder) seedKind(ctx context.Context, kind types.ScopeKind) error {
	roles, err := s.storage.ListRolesByScopeKind(ctx, kind)
	if err != nil {
		return err
	}

	grants := RoleGrants(kind)
	for _, role := range roles {
		// Unknown role names get their bindings cleared, not skipped.
		wanted := grants[role.Name]

		roleCtx := scopecontext.WithoutActiveScope(ctx)
		if role.TeamID != nil {
			roleCtx = scopecontext.WithActiveScope(ctx, scope.Ref{Kind: kind, ID: *role.TeamID})
		}

		if err := s.storage.ReplaceRolePermissions(roleCtx, role.ID, wanted); err != nil {
			return fmt.Errorf("role %q (team %v): %w", role.Name, role.TeamID, err)
		}
		s.cache.Invalidate(role.TeamID, role.Name)

		s.logger.Debugf("seeded role %q at %s with %d permissions", role.Name, kind, len(wanted))
	}
	return nil
}
