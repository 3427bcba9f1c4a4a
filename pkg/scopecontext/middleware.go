// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package scopecontext

import (
	"net/http"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/sessions"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/pkg/authentication"
)

// Middleware resolves the session's current scope once per request and
// threads it through the request context. Mid-request scope switches are
// deliberately not picked up; a switch goes through the access flow, which
// ends the request with a redirect so the next request resolves cleanly.
type Middleware struct {
	sessions sessions.StoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) ActiveScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "scopecontext.Middleware.ActiveScope")
		defer span.End()

		if sessionID, ok := authentication.GetSessionID(ctx); ok {
			ref, err := m.sessions.CurrentScope(ctx, sessionID)
			if err != nil {
				m.logger.Errorf("failed to load session scope: %v", err)
			} else if ref != nil {
				ctx = WithActiveScope(ctx, *ref)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewMiddleware(sessions sessions.StoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
