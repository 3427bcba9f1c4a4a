// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// ScopeKind is one of the five hierarchy levels an administrative surface
// can be bound to.
type ScopeKind string

const (
	ScopePlatform     ScopeKind = "platform"
	ScopeSystem       ScopeKind = "system"
	ScopeOrganization ScopeKind = "organization"
	ScopeBrand        ScopeKind = "brand"
	ScopeStore        ScopeKind = "store"
)

// RoleKind is the role a membership grants on one tenant.
type RoleKind string

const (
	RoleOwner   RoleKind = "owner"
	RoleManager RoleKind = "manager"
	RoleViewer  RoleKind = "viewer"

	// RoleNone is the absence of a membership.
	RoleNone RoleKind = ""
)

// CanManage reports whether the role carries the manage capability.
func (r RoleKind) CanManage() bool {
	return r == RoleOwner || r == RoleManager
}

// CanView reports whether the role carries the view capability.
func (r RoleKind) CanView() bool {
	return r == RoleOwner || r == RoleManager || r == RoleViewer
}

// Valid reports whether r is one of the known role kinds.
func (r RoleKind) Valid() bool {
	return r == RoleOwner || r == RoleManager || r == RoleViewer
}

// RelationshipType marks a child tenant as directly operated (owned) or as
// an independently operated affiliate. Affiliates are never hard-deletable
// by their parent.
type RelationshipType string

const (
	RelationshipOwned  RelationshipType = "owned"
	RelationshipTenant RelationshipType = "tenant"
)

// UserCategory gates whether any administrative panel is reachable.
type UserCategory string

const (
	CategoryStaff      UserCategory = "staff"
	CategoryTenantUser UserCategory = "tenant_user"
	CategoryCustomer   UserCategory = "customer"
)

// GlobalRole is a non-tenant-scoped marker, valid only for staff users.
type GlobalRole string

const (
	GlobalRoleAdmin    GlobalRole = "admin"
	GlobalRoleOperator GlobalRole = "operator"
)

type User struct {
	ID         string       `db:"id"`
	Email      string       `db:"email"`
	Name       string       `db:"name"`
	Category   UserCategory `db:"category"`
	GlobalRole *GlobalRole  `db:"global_role"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}

type Platform struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type System struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Organization struct {
	ID           int64            `db:"id"`
	Name         string           `db:"name"`
	Relationship RelationshipType `db:"relationship"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

// Brand optionally belongs to a parent organization.
type Brand struct {
	ID             int64            `db:"id"`
	OrganizationID *int64           `db:"organization_id"`
	Name           string           `db:"name"`
	Relationship   RelationshipType `db:"relationship"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

func (b *Brand) SetOrganizationID(id int64) { b.OrganizationID = &id }

// Store may belong to an organization directly, indirectly via a brand, or
// to neither. A store with no brand and no organization is ownerless until
// explicitly attached.
type Store struct {
	ID             int64            `db:"id"`
	BrandID        *int64           `db:"brand_id"`
	OrganizationID *int64           `db:"organization_id"`
	Name           string           `db:"name"`
	Relationship   RelationshipType `db:"relationship"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

func (s *Store) SetBrandID(id int64)        { s.BrandID = &id }
func (s *Store) SetOrganizationID(id int64) { s.OrganizationID = &id }

// Membership records a user's right to access one tenant at one role level.
// tenant_type holds the catalog's short scope code.
type Membership struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	TenantType string    `db:"tenant_type"`
	TenantID   int64     `db:"tenant_id"`
	Role       RoleKind  `db:"role"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Role is a permission-bearing role instance scoped to one team id.
// TeamID is nil for platform and system roles operating in global context.
type Role struct {
	ID        int64     `db:"id"`
	Name      RoleKind  `db:"name"`
	ScopeKind ScopeKind `db:"scope_kind"`
	TeamID    *int64    `db:"team_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Permission struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// MembershipTenant is a membership joined with its backing tenant entity,
// as listed on the scope chooser.
type MembershipTenant struct {
	Membership Membership
	TenantName string
}
