// Copyright 2025 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mx-olulo/scope-service/internal/types"
)

// EnsurePermissions inserts any missing permission names. Existing names
// are left untouched, so re-running is a no-op.
func (s *Storage) EnsurePermissions(ctx context.Context, names []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.EnsurePermissions")
	defer span.End()

	if len(names) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("permissions").
		Columns("name")
	for _, name := range names {
		insert = insert.Values(name)
	}

	_, err := insert.
		Suffix("ON CONFLICT (name) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to ensure permissions: %w", err)
	}

	return nil
}

// ListRolesByScopeKind lists every role instance bound to one scope kind.
func (s *Storage) ListRolesByScopeKind(ctx context.Context, kind types.ScopeKind) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolesByScopeKind")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "scope_kind", "team_id", "created_at").
		From("roles").
		Where(sq.Eq{"scope_kind": kind}).
		OrderBy("id ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
	for rows.Next() {
		var r types.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.ScopeKind, &r.TeamID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// ReplaceRolePermissions replaces the full permission set of one role in a
// single transaction. Stale bindings from a prior catalog version are
// removed; re-running with the same names converges to the same state.
func (s *Storage) ReplaceRolePermissions(ctx context.Context, roleID int64, names []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceRolePermissions")
	defer span.End()

	return s.db.WithTx(ctx, func(txCtx context.Context) error {
		_, err := s.db.Statement(txCtx).
			Delete("permission_role").
			Where(sq.Eq{"role_id": roleID}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to clear role permissions: %w", err)
		}

		if len(names) == 0 {
			return nil
		}

		_, err = s.db.Statement(txCtx).
			Insert("permission_role").
			Columns("role_id", "permission_id").
			Select(
				sq.Select(fmt.Sprint(roleID), "id").
					From("permissions").
					Where(sq.Eq{"name": names}),
			).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to bind role permissions: %w", err)
		}

		return nil
	})
}

// ListRolePermissions returns the permission names bound to a role name
// under one team id. A nil team id addresses global-context roles.
func (s *Storage) ListRolePermissions(ctx context.Context, teamID *int64, roleName types.RoleKind) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolePermissions")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("p.name").
		From("permissions p").
		Join("permission_role pr ON pr.permission_id = p.id").
		Join("roles r ON r.id = pr.role_id").
		Where(sq.Eq{
			"r.name":    roleName,
			"r.team_id": teamID,
		}).
		OrderBy("p.name ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return names, nil
}
