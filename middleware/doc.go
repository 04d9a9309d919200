// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/clients", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(duration_ms). The request_id is a fresh UUID per request.

# Metrics

WithMetrics records a Prometheus counter and latency histogram per
route pattern:

	middleware.WithMetrics("/api/clients", middleware.WithLogging(handler))

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

All origins are permitted. OPTIONS preflights are answered with 204 and
no body before routing.

# Panic Recovery

Recover converts handler panics into 500 {"error":"Internal server error"}:

	handler := middleware.CORS(middleware.Recover(mux))

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ErrorResponse bodies have the shape {"error": message}.

Parse JSON request bodies:

	var req models.CreateClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
