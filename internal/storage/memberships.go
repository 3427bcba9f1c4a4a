// Copyright 2025 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/types"
)

// GetMembership returns the membership row for (user, tenant_type, tenant_id).
// The unique constraint guarantees at most one row.
func (s *Storage) GetMembership(ctx context.Context, userID, tenantType string, tenantID int64) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_type", "tenant_id", "role", "created_at", "updated_at").
		From("memberships").
		Where(sq.Eq{
			"user_id":     userID,
			"tenant_type": tenantType,
			"tenant_id":   tenantID,
		}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.TenantType, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// ListMembershipsByUserAndType lists a user's memberships for one scope
// kind, joined with the backing entity table. Rows whose target entity no
// longer exists are dropped by the join, never surfaced as an error.
// Results are ordered by membership creation time.
func (s *Storage) ListMembershipsByUserAndType(ctx context.Context, userID, tenantType string) ([]*types.MembershipTenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByUserAndType")
	defer span.End()

	kind, ok := scope.KindOfCode(tenantType)
	if !ok {
		return nil, fmt.Errorf("unknown tenant type %q", tenantType)
	}
	entityTable, _ := scope.EntityTypeOf(kind)

	query := s.db.Statement(ctx).
		Select("m.id", "m.user_id", "m.tenant_type", "m.tenant_id", "m.role", "m.created_at", "m.updated_at", "e.name").
		From("memberships m").
		Join(fmt.Sprintf("%s e ON e.id = m.tenant_id", entityTable)).
		Where(sq.Eq{
			"m.user_id":     userID,
			"m.tenant_type": tenantType,
		}).
		OrderBy("m.created_at ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.MembershipTenant
	for rows.Next() {
		var mt types.MembershipTenant
		m := &mt.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.TenantType, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt, &mt.TenantName); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &mt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

// UpsertMembership grants access or updates the role of an existing grant.
// Concurrency is handled by the unique constraint on
// (user_id, tenant_type, tenant_id), not application-level locking.
func (s *Storage) UpsertMembership(ctx context.Context, userID, tenantType string, tenantID int64, role types.RoleKind) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var memberID string
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "user_id", "tenant_type", "tenant_id", "role").
		Values(id.String(), userID, tenantType, tenantID, role).
		Suffix("ON CONFLICT (user_id, tenant_type, tenant_id) DO UPDATE SET role = EXCLUDED.role, updated_at = NOW() RETURNING id").
		QueryRowContext(ctx).
		Scan(&memberID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to upsert membership: %w", err)
	}

	return memberID, nil
}

// DeleteMembership revokes a grant.
func (s *Storage) DeleteMembership(ctx context.Context, userID, tenantType string, tenantID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"user_id":     userID,
			"tenant_type": tenantType,
			"tenant_id":   tenantID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
