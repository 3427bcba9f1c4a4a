// Copyright 2025 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mx-olulo/scope-service/internal/db"
	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "name", "category", "global_role", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.Name, &u.Category, &u.GlobalRole, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetOrganization(ctx context.Context, id int64) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganization")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "relationship", "created_at", "updated_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Relationship, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) GetBrand(ctx context.Context, id int64) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBrand")
	defer span.End()

	var b types.Brand
	err := s.db.Statement(ctx).
		Select("id", "organization_id", "name", "relationship", "created_at", "updated_at").
		From("brands").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&b.ID, &b.OrganizationID, &b.Name, &b.Relationship, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return &b, nil
}

func (s *Storage) GetStore(ctx context.Context, id int64) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetStore")
	defer span.End()

	var st types.Store
	err := s.db.Statement(ctx).
		Select("id", "brand_id", "organization_id", "name", "relationship", "created_at", "updated_at").
		From("stores").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&st.ID, &st.BrandID, &st.OrganizationID, &st.Name, &st.Relationship, &st.CreatedAt, &st.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return &st, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	relationship := o.Relationship
	if relationship == "" {
		relationship = types.RelationshipOwned
	}

	var created types.Organization
	err := s.db.Statement(ctx).
		Insert("organizations").
		Columns("name", "relationship").
		Values(o.Name, relationship).
		Suffix("RETURNING id, name, relationship, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Relationship, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &created, nil
}

func (s *Storage) CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBrand")
	defer span.End()

	relationship := b.Relationship
	if relationship == "" {
		relationship = types.RelationshipOwned
	}

	var created types.Brand
	err := s.db.Statement(ctx).
		Insert("brands").
		Columns("organization_id", "name", "relationship").
		Values(b.OrganizationID, b.Name, relationship).
		Suffix("RETURNING id, organization_id, name, relationship, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrganizationID, &created.Name, &created.Relationship, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert brand: %w", err)
	}

	return &created, nil
}

func (s *Storage) CreateStore(ctx context.Context, st *types.Store) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateStore")
	defer span.End()

	relationship := st.Relationship
	if relationship == "" {
		relationship = types.RelationshipOwned
	}

	var created types.Store
	err := s.db.Statement(ctx).
		Insert("stores").
		Columns("brand_id", "organization_id", "name", "relationship").
		Values(st.BrandID, st.OrganizationID, st.Name, relationship).
		Suffix("RETURNING id, brand_id, organization_id, name, relationship, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.BrandID, &created.OrganizationID, &created.Name, &created.Relationship, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert store: %w", err)
	}

	return &created, nil
}

// DeleteBrand removes a brand. Affiliate brands are protected from hard
// deletion by their parent.
func (s *Storage) DeleteBrand(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBrand")
	defer span.End()

	b, err := s.GetBrand(ctx, id)
	if err != nil {
		return err
	}
	if b.Relationship == types.RelationshipTenant {
		return ErrAffiliateProtected
	}

	_, err = s.db.Statement(ctx).
		Delete("brands").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

// DeleteStore removes a store. Affiliate stores are protected from hard
// deletion by their parent.
func (s *Storage) DeleteStore(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteStore")
	defer span.End()

	st, err := s.GetStore(ctx, id)
	if err != nil {
		return err
	}
	if st.Relationship == types.RelationshipTenant {
		return ErrAffiliateProtected
	}

	_, err = s.db.Statement(ctx).
		Delete("stores").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}
