// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pulseboard API server.

Pulseboard is a weekly team pulse survey service: clients (teams) are
tracked, survey responses are submitted in weekly buckets, and a
dashboard serves per-client, per-metric averages with color-coded
scoring.

# Starting the Server

The default configuration needs nothing but a writable working
directory:

	go run .

Or with flags:

	go run . -p 3324 -s sqlite -d pulseboard.db

# Configuration

Optional settings (flags or environment, .env is loaded if present):

  - PORT (-p): Server port (default: 3324)
  - STORE_TYPE (-s): file, sqlite, or postgres (default: file)
  - DATA_FILE (-f): JSON document path for the file store
  - DATABASE_URL (-d): connection string for sqlite/postgres stores

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (clients, survey, dashboard, admin)
    plus the weekly aggregation engine
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, panic recovery, JSON helpers
  - models: Request/response and domain types
  - store: Whole-document persistence (JSON file or SQL row)
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
