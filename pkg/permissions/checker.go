// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"slices"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/scopecontext"
)

var _ CheckerInterface = (*Checker)(nil)

const defaultCacheSize = 4096

// Checker answers permission questions for a role name under the active
// team. The team id comes exclusively from the bound team hook: the
// checker itself has no other way to learn which tenant a check applies
// to. Lookups are cached process-wide keyed by (team id, role name).
type Checker struct {
	backend  BackendInterface
	cache    *lru.Cache[string, []string]
	teamHook scopecontext.TeamHook

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewChecker(backend BackendInterface, cacheSize int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Checker, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Checker{
		backend: backend,
		cache:   cache,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

// WithTeamHook returns a checker bound to the given team hook, sharing the
// process-wide cache. The zero-argument hook shape is required here; it is
// expected to delegate to the request's explicit scope context.
func (c *Checker) WithTeamHook(hook scopecontext.TeamHook) *Checker {
	bound := *c
	bound.teamHook = hook
	return &bound
}

func cacheKey(teamID *int64, roleName types.RoleKind) string {
	if teamID == nil {
		return "global/" + string(roleName)
	}
	return strconv.FormatInt(*teamID, 10) + "/" + string(roleName)
}

// Permissions returns the permission names the role holds under the active
// team. A missing binding yields an empty set, never an error.
func (c *Checker) Permissions(ctx context.Context, roleName types.RoleKind) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "permissions.Checker.Permissions")
	defer span.End()

	var teamID *int64
	if c.teamHook != nil {
		teamID = c.teamHook()
	}

	key := cacheKey(teamID, roleName)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	names, err := c.backend.ListRolePermissions(ctx, teamID, roleName)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, names)
	return names, nil
}

// HasPermission reports whether the role holds the permission under the
// active team. Fails closed on missing bindings.
func (c *Checker) HasPermission(ctx context.Context, roleName types.RoleKind, permission string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "permissions.Checker.HasPermission")
	defer span.End()

	names, err := c.Permissions(ctx, roleName)
	if err != nil {
		return false, err
	}

	return slices.Contains(names, permission), nil
}

// Invalidate drops the cached permission set of one (team, role) pair.
// Must be called before the next read after any binding write.
func (c *Checker) Invalidate(teamID *int64, roleName types.RoleKind) {
	c.cache.Remove(cacheKey(teamID, roleName))
}

// Purge drops the whole cache. Seeding runs call this up front.
func (c *Checker) Purge() {
	c.cache.Purge()
}
