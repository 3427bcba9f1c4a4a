// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/permissions"
	"github.com/mx-olulo/scope-service/pkg/scopecontext"
)

// grantBackend serves fixed permission sets keyed by "team/role".
type grantBackend struct {
	grants map[string][]string
}

func (g *grantBackend) ListRolePermissions(_ context.Context, teamID *int64, roleName types.RoleKind) ([]string, error) {
	if teamID == nil {
		return g.grants["global/"+string(roleName)], nil
	}
	return g.grants[refKey(*teamID, roleName)], nil
}

func refKey(teamID int64, roleName types.RoleKind) string {
	return strconv.FormatInt(teamID, 10) + "/" + string(roleName)
}

type testDeps struct {
	storage     *MockStorageInterface
	membership  *MockMembershipInterface
	initializer *MockInitializerInterface
}

func newTestService(t *testing.T, grants map[string][]string) (*Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		storage:     NewMockStorageInterface(ctrl),
		membership:  NewMockMembershipInterface(ctrl),
		initializer: NewMockInitializerInterface(ctrl),
	}

	checker, err := permissions.NewChecker(
		&grantBackend{grants: grants},
		16,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("failed to create checker: %v", err)
	}

	svc := NewService(
		deps.storage,
		deps.membership,
		checker,
		deps.initializer,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return svc, deps
}

func orgCtx(id int64) context.Context {
	return scopecontext.WithActiveScope(context.Background(), scope.Ref{Kind: types.ScopeOrganization, ID: id})
}

func TestCreateOrganizationSelfService(t *testing.T) {
	svc, deps := newTestService(t, nil)
	ctx := context.Background()

	deps.storage.EXPECT().
		CreateOrganization(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *types.Organization) (*types.Organization, error) {
			if o.Relationship != types.RelationshipTenant {
				t.Errorf("expected affiliate relationship, got %q", o.Relationship)
			}
			created := *o
			created.ID = 1
			return &created, nil
		})
	deps.membership.EXPECT().
		Grant(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}, types.RoleOwner).
		Return(nil)

	created, err := svc.CreateOrganization(ctx, "user-x", CreateOrganizationRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 || created.Name != "Acme" {
		t.Errorf("unexpected organization: %+v", created)
	}
}

func TestCreateOrganizationInvalidInput(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.CreateOrganization(context.Background(), "user-x", CreateOrganizationRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateBrandRequiresOrganizationContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"global context", context.Background()},
		{"store context", scopecontext.WithActiveScope(context.Background(), scope.Ref{Kind: types.ScopeStore, ID: 5})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, nil)

			_, err := svc.CreateBrand(tt.ctx, "user-x", CreateBrandRequest{Name: "B"})
			if !errors.Is(err, ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestCreateBrandDeniedWithoutPermission(t *testing.T) {
	ctx := orgCtx(1)

	t.Run("no membership", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.membership.EXPECT().
			RoleFor(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}).
			Return(types.RoleNone, nil)

		_, err := svc.CreateBrand(ctx, "user-x", CreateBrandRequest{Name: "B"})
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("viewer lacks create-brands", func(t *testing.T) {
		svc, deps := newTestService(t, map[string][]string{
			refKey(1, types.RoleViewer): {"view-brands"},
		})
		deps.membership.EXPECT().
			RoleFor(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}).
			Return(types.RoleViewer, nil)

		_, err := svc.CreateBrand(ctx, "user-x", CreateBrandRequest{Name: "B"})
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestCreateBrandStampsActiveOrganization(t *testing.T) {
	svc, deps := newTestService(t, map[string][]string{
		refKey(1, types.RoleManager): {"create-brands"},
	})
	ctx := orgCtx(1)

	deps.membership.EXPECT().
		RoleFor(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}).
		Return(types.RoleManager, nil)
	deps.initializer.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record any) error {
			record.(*types.Brand).SetOrganizationID(1)
			return nil
		})
	deps.storage.EXPECT().
		CreateBrand(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *types.Brand) (*types.Brand, error) {
			if b.OrganizationID == nil || *b.OrganizationID != 1 {
				t.Errorf("expected brand stamped with organization 1, got %v", b.OrganizationID)
			}
			if b.Relationship != types.RelationshipOwned {
				t.Errorf("expected directly operated brand, got %q", b.Relationship)
			}
			created := *b
			created.ID = 2
			return &created, nil
		})

	created, err := svc.CreateBrand(ctx, "user-x", CreateBrandRequest{Name: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 2 {
		t.Errorf("unexpected brand: %+v", created)
	}
}

func TestCreateStoreSelfService(t *testing.T) {
	svc, deps := newTestService(t, nil)
	ctx := context.Background()

	deps.initializer.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil)
	deps.storage.EXPECT().
		CreateStore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *types.Store) (*types.Store, error) {
			if st.BrandID != nil || st.OrganizationID != nil {
				t.Errorf("expected ownerless store, got %+v", st)
			}
			if st.Relationship != types.RelationshipTenant {
				t.Errorf("expected affiliate store, got %q", st.Relationship)
			}
			created := *st
			created.ID = 5
			return &created, nil
		})
	deps.membership.EXPECT().
		Grant(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeStore, ID: 5}, types.RoleOwner).
		Return(nil)

	created, err := svc.CreateStore(ctx, "user-x", CreateStoreRequest{Name: "Centro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 5 {
		t.Errorf("unexpected store: %+v", created)
	}
}

func TestCreateStoreScopedSkipsOwnershipGrant(t *testing.T) {
	svc, deps := newTestService(t, map[string][]string{
		refKey(1, types.RoleOwner): {"create-stores"},
	})
	ctx := orgCtx(1)

	deps.membership.EXPECT().
		RoleFor(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}).
		Return(types.RoleOwner, nil)
	deps.initializer.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record any) error {
			record.(*types.Store).SetOrganizationID(1)
			return nil
		})
	deps.storage.EXPECT().
		CreateStore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *types.Store) (*types.Store, error) {
			if st.Relationship != types.RelationshipOwned {
				t.Errorf("expected directly operated store, got %q", st.Relationship)
			}
			created := *st
			created.ID = 6
			return &created, nil
		})
	// No Grant expectation: the organization owns the store, not the caller.

	created, err := svc.CreateStore(ctx, "user-x", CreateStoreRequest{Name: "Centro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OrganizationID == nil || *created.OrganizationID != 1 {
		t.Errorf("expected store owned by organization 1, got %+v", created)
	}
}

// A brand created from inside its organization surface is directly
// operated, so the same organization can delete it again.
func TestDeleteBrandOwnedChild(t *testing.T) {
	svc, deps := newTestService(t, map[string][]string{
		refKey(1, types.RoleOwner): {"create-brands", "delete-brands"},
	})
	ctx := orgCtx(1)

	deps.membership.EXPECT().
		RoleFor(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}).
		Return(types.RoleOwner, nil).
		Times(2)
	deps.initializer.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil)
	deps.storage.EXPECT().
		CreateBrand(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *types.Brand) (*types.Brand, error) {
			created := *b
			created.ID = 3
			return &created, nil
		})

	created, err := svc.CreateBrand(ctx, "user-x", CreateBrandRequest{Name: "House Brand"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Relationship != types.RelationshipOwned {
		t.Fatalf("expected directly operated brand, got %q", created.Relationship)
	}

	deps.storage.EXPECT().DeleteBrand(gomock.Any(), created.ID).Return(nil)
	if err := svc.DeleteBrand(ctx, "user-x", created.ID); err != nil {
		t.Errorf("expected owned child to be deletable, got %v", err)
	}
}

func TestDeleteBrandAffiliateProtected(t *testing.T) {
	svc, deps := newTestService(t, map[string][]string{
		refKey(1, types.RoleOwner): {"delete-brands"},
	})
	ctx := orgCtx(1)

	deps.membership.EXPECT().
		RoleFor(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}).
		Return(types.RoleOwner, nil)
	deps.storage.EXPECT().DeleteBrand(gomock.Any(), int64(2)).Return(storage.ErrAffiliateProtected)

	err := svc.DeleteBrand(ctx, "user-x", 2)
	if !errors.Is(err, storage.ErrAffiliateProtected) {
		t.Errorf("expected ErrAffiliateProtected, got %v", err)
	}
}

func TestDeleteStoreRequiresPermission(t *testing.T) {
	svc, deps := newTestService(t, map[string][]string{
		refKey(1, types.RoleViewer): {"view-stores"},
	})
	ctx := orgCtx(1)

	deps.membership.EXPECT().
		RoleFor(gomock.Any(), "user-x", scope.Ref{Kind: types.ScopeOrganization, ID: 1}).
		Return(types.RoleViewer, nil)

	err := svc.DeleteStore(ctx, "user-x", 6)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}
