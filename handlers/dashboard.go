// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mwestlake/pulseboard/cliparse"
	"github.com/mwestlake/pulseboard/middleware"
	"github.com/mwestlake/pulseboard/models"
	"github.com/mwestlake/pulseboard/store"
)

type DashboardHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewDashboardHandler(st store.Store, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{store: st, cfg: cfg}
}

// GetDashboard handles GET /api/dashboard?week=
// Defaults to the current week when no week is given.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get("week")
	if week == "" {
		week = GetWeekStart(time.Now())
	}

	ds, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DashboardResponse{
		Week:    week,
		Clients: ComputeWeekReport(ds, week),
	})
}

// GetWeeks handles GET /api/dashboard/weeks
func (h *DashboardHandler) GetWeeks(w http.ResponseWriter, r *http.Request) {
	ds, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, AvailableWeeks(ds))
}
