// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/authentication"
)

func newTestRouter(t *testing.T) (chi.Router, *MockServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	h := NewHandler(
		service,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, service
}

func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(authentication.WithUserID(r.Context(), userID))
}

func TestCreateOrganizationEndpoint(t *testing.T) {
	router, service := newTestRouter(t)

	service.EXPECT().
		CreateOrganization(gomock.Any(), "user-x", CreateOrganizationRequest{Name: "Acme"}).
		Return(&types.Organization{ID: 1, Name: "Acme"}, nil)

	req := asUser(httptest.NewRequest(http.MethodPost, "/organizations", strings.NewReader(`{"name":"Acme"}`)), "user-x")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Acme"`) {
		t.Errorf("expected created organization in body, got %s", rec.Body.String())
	}
}

func TestCreateBrandForbidden(t *testing.T) {
	router, service := newTestRouter(t)

	service.EXPECT().
		CreateBrand(gomock.Any(), "user-x", gomock.Any()).
		Return(nil, ErrForbidden)

	req := asUser(httptest.NewRequest(http.MethodPost, "/brands", strings.NewReader(`{"name":"B"}`)), "user-x")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestCreateStoreRequiresIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader(`{"name":"Centro"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestDeleteBrandStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(service *MockServiceInterface)
		wantStatus int
	}{
		{
			name:   "deleted",
			target: "/brands/2",
			setup: func(service *MockServiceInterface) {
				service.EXPECT().DeleteBrand(gomock.Any(), "user-x", int64(2)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "affiliate protected",
			target: "/brands/2",
			setup: func(service *MockServiceInterface) {
				service.EXPECT().DeleteBrand(gomock.Any(), "user-x", int64(2)).Return(storage.ErrAffiliateProtected)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "not found",
			target: "/brands/99",
			setup: func(service *MockServiceInterface) {
				service.EXPECT().DeleteBrand(gomock.Any(), "user-x", int64(99)).Return(storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			target:     "/brands/abc",
			setup:      func(service *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newTestRouter(t)
			tt.setup(service)

			req := asUser(httptest.NewRequest(http.MethodDelete, tt.target, nil), "user-x")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
