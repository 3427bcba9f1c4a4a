// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/pkg/authentication"
)

type Handler struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewHandler(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Handler {
	return &Handler{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterRoutes mounts the chooser endpoints. The caller is expected to
// have authenticated the request already.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/scopes", h.browse)
	r.Post("/scopes/select", h.selectScope)
}

func (h *Handler) browse(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "access.Handler.browse")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.service.Browse(ctx, userID)
	if err != nil {
		h.logger.Errorf("failed to build scope chooser: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		h.logger.Errorf("failed to encode scope chooser: %v", err)
	}
}

func (h *Handler) selectScope(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "access.Handler.selectScope")
	defer span.End()

	userID, okUser := authentication.GetUserID(ctx)
	sessionID, okSession := authentication.GetSessionID(ctx)
	if !okUser || !okSession {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	location, err := h.service.Select(ctx, userID, sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSelection):
			http.Error(w, "invalid selection", http.StatusBadRequest)
		case errors.Is(err, ErrForbidden):
			// Same body whether the tenant is missing or merely not ours.
			http.Error(w, "forbidden", http.StatusForbidden)
		default:
			h.logger.Errorf("failed to select scope: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}
