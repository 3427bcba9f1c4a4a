// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mx-olulo/scope-service/internal/types"
)

func TestGetUserNotFound(t *testing.T) {
	s, mock := newStorageWithMock(t)

	mock.ExpectQuery("SELECT id, email, name, category, global_role, created_at, updated_at FROM users").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := s.GetUser(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetOrganization(t *testing.T) {
	s, mock := newStorageWithMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, name, relationship, created_at, updated_at FROM organizations").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "relationship", "created_at", "updated_at"}).
			AddRow(int64(1), "Acme", "tenant", now, now))

	o, err := s.GetOrganization(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Name != "Acme" || o.Relationship != types.RelationshipTenant {
		t.Errorf("unexpected organization: %+v", o)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrganizationDefaultsRelationship(t *testing.T) {
	s, mock := newStorageWithMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO organizations").
		WithArgs("Acme", "owned").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "relationship", "created_at", "updated_at"}).
			AddRow(int64(1), "Acme", "owned", now, now))

	created, err := s.CreateOrganization(context.Background(), &types.Organization{Name: "Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 || created.Relationship != types.RelationshipOwned {
		t.Errorf("unexpected organization: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateBrandForeignKeyViolation(t *testing.T) {
	s, mock := newStorageWithMock(t)

	orgID := int64(99)
	mock.ExpectQuery("INSERT INTO brands").
		WithArgs(orgID, "Acme Coffee", "tenant").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	b := &types.Brand{Name: "Acme Coffee", Relationship: types.RelationshipTenant}
	b.SetOrganizationID(orgID)
	if _, err := s.CreateBrand(context.Background(), b); !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateStoreOwnerless(t *testing.T) {
	s, mock := newStorageWithMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO stores").
		WithArgs(nil, nil, "Pop-up", "tenant").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "brand_id", "organization_id", "name", "relationship", "created_at", "updated_at"}).
			AddRow(int64(4), nil, nil, "Pop-up", "tenant", now, now))

	created, err := s.CreateStore(context.Background(), &types.Store{Name: "Pop-up", Relationship: types.RelationshipTenant})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 4 || created.BrandID != nil || created.OrganizationID != nil {
		t.Errorf("unexpected store: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteBrandAffiliateProtected(t *testing.T) {
	s, mock := newStorageWithMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, organization_id, name, relationship, created_at, updated_at FROM brands").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "organization_id", "name", "relationship", "created_at", "updated_at"}).
			AddRow(int64(3), int64(1), "Affiliate", "tenant", now, now))

	if err := s.DeleteBrand(context.Background(), 3); !errors.Is(err, ErrAffiliateProtected) {
		t.Errorf("expected ErrAffiliateProtected, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteStoreOwned(t *testing.T) {
	s, mock := newStorageWithMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, brand_id, organization_id, name, relationship, created_at, updated_at FROM stores").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "brand_id", "organization_id", "name", "relationship", "created_at", "updated_at"}).
			AddRow(int64(2), int64(1), int64(1), "Centro", "owned", now, now))
	mock.ExpectExec("DELETE FROM stores").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DeleteStore(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
