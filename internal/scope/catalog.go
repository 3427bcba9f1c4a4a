// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

// Package scope holds the static taxonomy mapping scope kinds to their
// backing entity types, short storage codes and addressable path segments.
// Everything here is pure data; it is safe to call from any goroutine.
package scope

import (
	"strconv"

	"github.com/mx-olulo/scope-service/internal/types"
)

// EntityType names the backing entity table of a scope kind.
type EntityType string

const (
	EntityPlatform     EntityType = "platforms"
	EntitySystem       EntityType = "systems"
	EntityOrganization EntityType = "organizations"
	EntityBrand        EntityType = "brands"
	EntityStore        EntityType = "stores"
)

// Ref addresses one concrete tenant: a scope kind plus the entity key.
type Ref struct {
	Kind types.ScopeKind
	ID   int64
}

func (r Ref) String() string {
	return string(r.Kind) + ":" + strconv.FormatInt(r.ID, 10)
}

type entry struct {
	kind        types.ScopeKind
	entityType  EntityType
	code        string
	pathSegment string
}

// The single mapping point for the five scope levels. ScopeKind, entity
// type, storage code and path segment are pairwise bijective.
var catalog = []entry{
	{types.ScopePlatform, EntityPlatform, "PLT", "platform"},
	{types.ScopeSystem, EntitySystem, "SYS", "system"},
	{types.ScopeOrganization, EntityOrganization, "ORG", "organization"},
	{types.ScopeBrand, EntityBrand, "BRD", "brand"},
	{types.ScopeStore, EntityStore, "STR", "store"},
}

// Kinds returns all scope kinds in hierarchy order, top first.
func Kinds() []types.ScopeKind {
	kinds := make([]types.ScopeKind, len(catalog))
	for i, e := range catalog {
		kinds[i] = e.kind
	}
	return kinds
}

// SelectableKinds are the kinds a user may pick on the scope chooser.
// Platform and system surfaces are reachable through global roles only.
func SelectableKinds() []types.ScopeKind {
	return []types.ScopeKind{types.ScopeOrganization, types.ScopeBrand, types.ScopeStore}
}

func lookup(kind types.ScopeKind) (entry, bool) {
	for _, e := range catalog {
		if e.kind == kind {
			return e, true
		}
	}
	return entry{}, false
}

// EntityTypeOf returns the backing entity type of a scope kind.
func EntityTypeOf(kind types.ScopeKind) (EntityType, bool) {
	e, ok := lookup(kind)
	return e.entityType, ok
}

// KindOfEntityType is the inverse of EntityTypeOf.
func KindOfEntityType(et EntityType) (types.ScopeKind, bool) {
	for _, e := range catalog {
		if e.entityType == et {
			return e.kind, true
		}
	}
	return "", false
}

// CodeOf returns the short code persisted as a membership's tenant_type.
func CodeOf(kind types.ScopeKind) (string, bool) {
	e, ok := lookup(kind)
	return e.code, ok
}

// KindOfCode is the inverse of CodeOf. Unknown codes fail soft.
func KindOfCode(code string) (types.ScopeKind, bool) {
	for _, e := range catalog {
		if e.code == code {
			return e.kind, true
		}
	}
	return "", false
}

// PathSegmentOf returns the path segment a scope-bound surface is mounted
// under.
func PathSegmentOf(kind types.ScopeKind) (string, bool) {
	e, ok := lookup(kind)
	return e.pathSegment, ok
}

// KindOfPathSegment is the inverse of PathSegmentOf. Unknown segments fail
// soft, returning ok=false rather than an error.
func KindOfPathSegment(segment string) (types.ScopeKind, bool) {
	for _, e := range catalog {
		if e.pathSegment == segment {
			return e.kind, true
		}
	}
	return "", false
}

// Ancestors returns the ancestor kinds of a scope kind, nearest first.
// Platform and system sit at the top and have none.
func Ancestors(kind types.ScopeKind) []types.ScopeKind {
	switch kind {
	case types.ScopeBrand:
		return []types.ScopeKind{types.ScopeOrganization}
	case types.ScopeStore:
		return []types.ScopeKind{types.ScopeBrand, types.ScopeOrganization}
	default:
		return nil
	}
}
