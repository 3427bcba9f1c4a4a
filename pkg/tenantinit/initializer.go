// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

// Package tenantinit stamps tenant ownership onto new child records. It is
// an explicit builder step invoked once before validation and persistence,
// not a persistence lifecycle hook.
package tenantinit

import (
	"context"
	"errors"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/scopecontext"
)

// Child records declare their ancestor fields through these interfaces;
// the initializer stamps only what a record declares.

type OrganizationScoped interface {
	SetOrganizationID(id int64)
}

type BrandScoped interface {
	SetBrandID(id int64)
}

type StoreScoped interface {
	SetStoreID(id int64)
}

type StorageInterface interface {
	GetBrand(ctx context.Context, id int64) (*types.Brand, error)
	GetStore(ctx context.Context, id int64) (*types.Store, error)
}

type Initializer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewInitializer(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Initializer {
	return &Initializer{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Apply copies the active tenant's key, and its ancestors' keys, onto the
// record. With no active tenant it is a no-op. Call it exactly once per
// creation, before any validation that depends on the stamped fields.
func (i *Initializer) Apply(ctx context.Context, record any) error {
	ctx, span := i.tracer.Start(ctx, "tenantinit.Initializer.Apply")
	defer span.End()

	ref, ok := scopecontext.ActiveScope(ctx)
	if !ok {
		return nil
	}

	switch ref.Kind {
	case types.ScopeOrganization:
		if r, ok := record.(OrganizationScoped); ok {
			r.SetOrganizationID(ref.ID)
		}
		return nil

	case types.ScopeBrand:
		return i.applyBrand(ctx, ref.ID, record)

	case types.ScopeStore:
		return i.applyStore(ctx, ref.ID, record)

	default:
		// Platform and system surfaces operate in global context; there
		// is no tenant ownership to stamp.
		return nil
	}
}

func (i *Initializer) applyBrand(ctx context.Context, brandID int64, record any) error {
	if r, ok := record.(BrandScoped); ok {
		r.SetBrandID(brandID)
	}

	r, ok := record.(OrganizationScoped)
	if !ok {
		return nil
	}

	brand, err := i.storage.GetBrand(ctx, brandID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The active brand vanished mid-request; the direct id is
			// already stamped, ancestors stay unset.
			return nil
		}
		return err
	}

	if brand.OrganizationID != nil {
		r.SetOrganizationID(*brand.OrganizationID)
	}
	return nil
}

func (i *Initializer) applyStore(ctx context.Context, storeID int64, record any) error {
	if r, ok := record.(StoreScoped); ok {
		r.SetStoreID(storeID)
	}

	_, wantsBrand := record.(BrandScoped)
	_, wantsOrg := record.(OrganizationScoped)
	if !wantsBrand && !wantsOrg {
		return nil
	}

	store, err := i.storage.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	if wantsBrand && store.BrandID != nil {
		record.(BrandScoped).SetBrandID(*store.BrandID)
	}

	if !wantsOrg {
		return nil
	}

	// Prefer the store's own organization; fall back to the one its
	// brand belongs to. A store with neither stays ownerless.
	switch {
	case store.OrganizationID != nil:
		record.(OrganizationScoped).SetOrganizationID(*store.OrganizationID)
	case store.BrandID != nil:
		brand, err := i.storage.GetBrand(ctx, *store.BrandID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			return err
		}
		if brand.OrganizationID != nil {
			record.(OrganizationScoped).SetOrganizationID(*brand.OrganizationID)
		}
	}

	return nil
}
