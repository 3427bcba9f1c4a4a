// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mx-olulo/scope-service/internal/db"
	"github.com/mx-olulo/scope-service/internal/identity"
	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/sessions"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/pkg/access"
	"github.com/mx-olulo/scope-service/pkg/metrics"
	"github.com/mx-olulo/scope-service/pkg/scopecontext"
	"github.com/mx-olulo/scope-service/pkg/status"
	"github.com/mx-olulo/scope-service/pkg/tenants"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	sessionStore sessions.StoreInterface,
	accessHandler *access.Handler,
	tenantsHandler *tenants.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	identityMdw := identity.NewMiddleware(s, tracer, monitor, logger)
	scopeMdw := scopecontext.NewMiddleware(sessionStore, tracer, monitor, logger)

	router.Group(func(r chi.Router) {
		r.Use(identityMdw.HTTPMiddleware)
		r.Use(identityMdw.RequireAdminCapable)
		r.Use(scopeMdw.ActiveScope)
		r.Use(db.TransactionMiddleware(dbClient, logger))

		accessHandler.RegisterRoutes(r)
		tenantsHandler.RegisterRoutes(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", identity.HeaderName},
			MaxAge:         300,
		},
	)
}
