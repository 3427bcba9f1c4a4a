// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package seeding

import (
	"github.com/mx-olulo/scope-service/internal/types"
)

// Actions and resources compose the permission names. A permission is
// "<action>-<resource>", e.g. "update-organizations".
var actions = []string{"view", "create", "update", "delete"}

var resources = []string{
	"organizations",
	"brands",
	"stores",
	"users",
	"memberships",
}

// resourcesForKind limits which resources a scope level manages. The top
// two levels administer everything; tenant levels see their own slice of
// the hierarchy.
func resourcesForKind(kind types.ScopeKind) []string {
	switch kind {
	case types.ScopePlatform, types.ScopeSystem:
		return resources
	case types.ScopeOrganization:
		return []string{"organizations", "brands", "stores", "memberships"}
	case types.ScopeBrand:
		return []string{"brands", "stores", "memberships"}
	case types.ScopeStore:
		return []string{"stores", "memberships"}
	default:
		return nil
	}
}

// AllPermissionNames returns the complete permission catalog.
func AllPermissionNames() []string {
	names := make([]string, 0, len(actions)*len(resources))
	for _, resource := range resources {
		for _, action := range actions {
			names = append(names, action+"-"+resource)
		}
	}
	return names
}

// RoleGrants returns the permission names each role receives at the given
// scope level. Owners get every action on the level's resources, managers
// everything but delete, viewers read-only. Roles absent from the map
// keep no permissions.
func RoleGrants(kind types.ScopeKind) map[types.RoleKind][]string {
	scoped := resourcesForKind(kind)
	if len(scoped) == 0 {
		return nil
	}

	grants := map[types.RoleKind][]string{
		types.RoleOwner:   {},
		types.RoleManager: {},
		types.RoleViewer:  {},
	}
	for _, resource := range scoped {
		for _, action := range actions {
			name := action + "-" + resource
			grants[types.RoleOwner] = append(grants[types.RoleOwner], name)
			if action != "delete" {
				grants[types.RoleManager] = append(grants[types.RoleManager], name)
			}
			if action == "view" {
				grants[types.RoleViewer] = append(grants[types.RoleViewer], name)
			}
		}
	}
	return grants
}
