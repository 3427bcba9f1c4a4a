// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"errors"
	"net/http"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
	"github.com/mx-olulo/scope-service/pkg/authentication"
)

const (
	// HeaderName carries the authenticated identity ID, set upstream by
	// the identity provider integration. The core never verifies tokens.
	HeaderName = "X-Authenticated-User-Id"
	// SessionCookieName carries the request's session id.
	SessionCookieName = "sid"
)

type Middleware struct {
	storage storage.StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(storage storage.StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware copies the authenticated identity and session id from the
// request onto the context.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := r.Header.Get(HeaderName); userID != "" {
			ctx = authentication.WithUserID(ctx, userID)
		}

		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			ctx = authentication.WithSessionID(ctx, cookie.Value)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminCapable gates administrative routes by user category.
// Unauthenticated requests are rejected before any scope resolution; end
// customers get an opaque not-found so panel paths are not discoverable.
func (m *Middleware) RequireAdminCapable(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.RequireAdminCapable")
		defer span.End()

		userID, ok := authentication.GetUserID(ctx)
		if !ok {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}

		user, err := m.storage.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			m.logger.Errorf("failed to load user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if user.Category == types.CategoryCustomer {
			http.NotFound(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
