// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pulseboard API.

# Route Registration

NewRouter creates the full handler chain with all endpoints:

	handler := router.NewRouter(st, cfg)

The mux is wrapped in panic recovery and permissive CORS; each route is
instrumented (Prometheus) and logged under its registered pattern.

# Endpoints

Health and observability:

	GET /health
	GET /metrics

Client management:

	GET    /api/clients      - Active clients, name ascending
	GET    /api/clients/all  - All clients including deactivated
	POST   /api/clients      - Register client
	PUT    /api/clients/{id} - Rename / toggle active
	DELETE /api/clients/{id} - Soft delete (idempotent)

Survey:

	POST /api/survey - Bulk weekly submission

Dashboard:

	GET /api/dashboard?week=    - Per-client weekly aggregates
	GET /api/dashboard/weeks    - Distinct weeks, most recent first

Admin:

	GET /api/admin/responses?week=&client_id= - Annotated responses
	GET /api/admin/stats?week=                - Weekly counters

# Fallbacks

OPTIONS preflights are answered 204 before routing. Unmatched routes
return 404 {"error":"Not found"}; handler panics return 500
{"error":"Internal server error"}.

# Handler Initialization

The router creates handler instances with dependency injection:

	clientHandler := handlers.NewClientHandler(st, cfg)
	surveyHandler := handlers.NewSurveyHandler(st, cfg)
	dashboardHandler := handlers.NewDashboardHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

All handlers receive the storage port and configuration.
*/
package router
