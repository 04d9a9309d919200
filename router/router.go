// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/mwestlake/pulseboard/cliparse"
	"github.com/mwestlake/pulseboard/handlers"
	"github.com/mwestlake/pulseboard/metrics"
	"github.com/mwestlake/pulseboard/middleware"
	"github.com/mwestlake/pulseboard/store"
)

// NewRouter builds the full handler chain: CORS and panic recovery wrap
// the mux, each route is instrumented and logged under its pattern.
func NewRouter(st store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(st, cfg)
	surveyHandler := handlers.NewSurveyHandler(st, cfg)
	dashboardHandler := handlers.NewDashboardHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	wrap := func(pattern string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithMetrics(pattern, middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus exposition
	mux.Handle("GET /metrics", metrics.Handler())

	// Client management
	mux.HandleFunc("GET /api/clients", wrap("/api/clients", clientHandler.List))
	mux.HandleFunc("GET /api/clients/all", wrap("/api/clients/all", clientHandler.ListAll))
	mux.HandleFunc("POST /api/clients", wrap("/api/clients", clientHandler.Create))
	mux.HandleFunc("PUT /api/clients/{id}", wrap("/api/clients/{id}", clientHandler.Update))
	mux.HandleFunc("DELETE /api/clients/{id}", wrap("/api/clients/{id}", clientHandler.Delete))

	// Survey submission
	mux.HandleFunc("POST /api/survey", wrap("/api/survey", surveyHandler.Submit))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", wrap("/api/dashboard", dashboardHandler.GetDashboard))
	mux.HandleFunc("GET /api/dashboard/weeks", wrap("/api/dashboard/weeks", dashboardHandler.GetWeeks))

	// Admin
	mux.HandleFunc("GET /api/admin/responses", wrap("/api/admin/responses", adminHandler.GetResponses))
	mux.HandleFunc("GET /api/admin/stats", wrap("/api/admin/stats", adminHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pulseboard API v1"))
	})

	// Everything else is a JSON 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	})

	return middleware.CORS(middleware.Recover(mux))
}
